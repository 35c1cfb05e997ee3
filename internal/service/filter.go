package service

import (
	"strings"

	"alcyxob/fitlife/internal/domain"
)

// Equipment values that mean "no equipment needed".
var bodyweightEquipment = map[string]bool{
	"body weight": true,
	"none":        true,
}

// IsBodyweight reports whether the exercise needs no equipment.
func IsBodyweight(ex domain.Exercise) bool {
	return bodyweightEquipment[strings.ToLower(ex.Equipment)]
}

// FilterExercises keeps the exercises matching mode, preserving order.
// FilterAll returns the input unchanged.
func FilterExercises(exercises []domain.Exercise, mode domain.FilterMode) []domain.Exercise {
	if mode != domain.FilterBodyweight && mode != domain.FilterEquipment {
		return exercises
	}

	wantBodyweight := mode == domain.FilterBodyweight
	filtered := make([]domain.Exercise, 0, len(exercises))
	for _, ex := range exercises {
		if IsBodyweight(ex) == wantBodyweight {
			filtered = append(filtered, ex)
		}
	}
	return filtered
}
