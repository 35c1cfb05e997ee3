package domain

import "encoding/json"

// LoadState is the lifecycle of an animation retrieval.
type LoadState string

const (
	LoadStateLoading  LoadState = "loading"
	LoadStateReady    LoadState = "ready"    // Primary animation loaded
	LoadStateFallback LoadState = "fallback" // Primary failed, default animation loaded
	LoadStateFailed   LoadState = "failed"   // Both failed: render nothing
)

// Terminal reports whether no further transition will happen.
func (s LoadState) Terminal() bool {
	return s != LoadStateLoading
}

// AnimationAsset is an opaque animation payload and its loading state.
type AnimationAsset struct {
	Locator string          `json:"locator"`
	Payload json.RawMessage `json:"payload,omitempty"`
	State   LoadState       `json:"state"`
}

// StaticImageAsset is a remote image locator.
type StaticImageAsset struct {
	Locator string `json:"locator"`
}
