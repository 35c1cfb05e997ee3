// internal/domain/exercise.go
package domain

// Exercise is a single record from the exercise database.
// It is transient: built from a gateway response and held only for the
// lifetime of the page that fetched it.
type Exercise struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Target           string   `json:"target"`    // Primary target muscle, e.g. "pectorals"
	Equipment        string   `json:"equipment"` // e.g. "body weight", "barbell"
	BodyPart         string   `json:"bodyPart"`
	GifURL           string   `json:"gifUrl"`
	Instructions     []string `json:"instructions"`
	SecondaryMuscles []string `json:"secondaryMuscles"`

	// Not every upstream record carries these.
	Type       *string `json:"type,omitempty"`
	Difficulty *string `json:"difficulty,omitempty"`
}

// IsEmpty reports whether the record carries no identifying data.
// The exercise API answers unknown IDs with an empty object.
func (e *Exercise) IsEmpty() bool {
	return e == nil || (e.ID == "" && e.Name == "")
}

// AnimationName is the name used to pick a card animation for this exercise.
func (e *Exercise) AnimationName() string {
	if e == nil {
		return ""
	}
	return e.Equipment
}
