package domain

import "strings"

// Category is a named body part or equipment item used as a browse key.
type Category struct {
	ID   int    `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

// CategoryKind selects which taxonomy a category belongs to.
type CategoryKind string

const (
	KindBodyPart  CategoryKind = "bodyPart"
	KindEquipment CategoryKind = "equipment"
)

// Browse tab names as they appear in page routes (/exercises/{tab}/{category}).
const (
	TabBodyParts = "bodyParts"
	TabEquipment = "equipment"
)

// KindFromTab maps a route segment to a category kind.
// Only "bodyParts" selects body parts; everything else is equipment.
func KindFromTab(tab string) CategoryKind {
	if tab == TabBodyParts {
		return KindBodyPart
	}
	return KindEquipment
}

// Tab is the inverse of KindFromTab.
func (k CategoryKind) Tab() string {
	if k == KindBodyPart {
		return TabBodyParts
	}
	return TabEquipment
}

// ParseCategoryKind accepts both the API kind names and the tab names.
func ParseCategoryKind(s string) (CategoryKind, bool) {
	switch strings.ToLower(s) {
	case "bodypart", "bodyparts", "body-parts", "muscle", "muscles":
		return KindBodyPart, true
	case "equipment":
		return KindEquipment, true
	}
	return "", false
}

// Slug is the lower-cased name used in exercise list routes.
func (c Category) Slug() string {
	return strings.ToLower(c.Name)
}
