package config

// DefaultAnimations is the built-in animation table.
func DefaultAnimations() map[string]string {
	return map[string]string{
		"chest":       "https://assets5.lottiefiles.com/packages/lf20_x1gjdldd.json",
		"dumbbells":   "https://assets5.lottiefiles.com/packages/lf20_ck6mwxc8.json",
		"body weight": "https://assets5.lottiefiles.com/packages/lf20_qm8eqkqm.json",
		"default":     "https://assets5.lottiefiles.com/packages/lf20_tqsxjo2e.json",
	}
}

// DefaultImages is the built-in category image table.
func DefaultImages() map[string]string {
	return map[string]string{
		"chest":      "https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?w=500",
		"back":       "https://images.unsplash.com/photo-1603287681836-b174ce5074c2?w=500",
		"shoulders":  "https://images.unsplash.com/photo-1598971639058-b1dc33468340?w=500",
		"biceps":     "https://images.unsplash.com/photo-1581009137042-c552e485697a?w=500",
		"triceps":    "https://images.unsplash.com/photo-1590507621108-433608c97823?w=500",
		"legs":       "https://images.unsplash.com/photo-1434608519344-49d77a699e1d?w=500",
		"abs":        "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=500",
		"dumbbells":  "https://images.unsplash.com/photo-1586401100295-7a8096fd231a?w=500",
		"barbell":    "https://images.unsplash.com/photo-1541534741688-6078c6bfb5c5?w=500",
		"kettlebell": "https://images.unsplash.com/photo-1603555591682-66cfb0c44c61?w=500",
		"machine":    "https://images.unsplash.com/photo-1576678927484-cc907957088c?w=500",
		"default":    "https://images.unsplash.com/photo-1517963879433-6ad2b056d712?w=500",
	}
}

func DefaultBodyParts() []CategoryConfig {
	return names(
		"Chest", "Upper Back", "Lower Back", "Shoulders", "Biceps",
		"Triceps", "Forearms", "Quadriceps", "Hamstrings", "Calves",
		"Abdominals", "Obliques", "Traps", "Lats", "Glutes",
		"Hip Flexors", "Lower Chest", "Upper Chest", "Middle Back", "Neck",
	)
}

func DefaultEquipment() []CategoryConfig {
	return names(
		"Dumbbells", "Barbell", "Kettlebell", "Resistance Bands", "Body Weight",
		"Cable Machine", "Smith Machine", "Medicine Ball", "Pull-up Bar", "Bench Press",
		"Squat Rack", "Leg Press", "Foam Roller", "Exercise Ball", "TRX",
		"Power Rack", "Battle Ropes", "Bosu Ball", "Weight Plates", "Rowing Machine",
		"Elliptical", "Treadmill", "Stationary Bike", "Yoga Mat",
	)
}

// names numbers categories from 1 in list order.
func names(list ...string) []CategoryConfig {
	out := make([]CategoryConfig, len(list))
	for i, n := range list {
		out[i] = CategoryConfig{ID: i + 1, Name: n}
	}
	return out
}
