package domain

import "strings"

// FilterMode narrows an exercise list by equipment requirement.
type FilterMode string

const (
	FilterAll        FilterMode = "all"
	FilterBodyweight FilterMode = "bodyweight" // Only exercises needing no equipment
	FilterEquipment  FilterMode = "equipment"  // Only exercises needing equipment
)

// FilterModes in the order they are offered on the list page.
var FilterModes = []FilterMode{FilterAll, FilterBodyweight, FilterEquipment}

// ParseFilterMode never fails: unknown values mean "all".
func ParseFilterMode(s string) FilterMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bodyweight", "bodyweight-only", "no-equipment":
		return FilterBodyweight
	case "equipment", "equipment-required", "with-equipment":
		return FilterEquipment
	}
	return FilterAll
}

// Label is the button caption for the mode.
func (m FilterMode) Label() string {
	switch m {
	case FilterBodyweight:
		return "No Equipment"
	case FilterEquipment:
		return "With Equipment"
	}
	return "All"
}
