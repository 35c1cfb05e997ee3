// Package media maps category names to visual assets and loads card
// animations.
package media

import "strings"

// DefaultKey is the table entry used when nothing else matches.
const DefaultKey = "default"

// Used when an injected table has no "default" entry.
const (
	fallbackAnimationLocator = "https://assets5.lottiefiles.com/packages/lf20_tqsxjo2e.json"
	fallbackImageLocator     = "https://images.unsplash.com/photo-1517963879433-6ad2b056d712?w=500"
)

// Resolver looks up animation and image locators by category name.
// It is immutable after construction and safe for concurrent use.
type Resolver struct {
	animations table
	images     table
}

// NewResolver copies both tables, lower-casing their keys.
func NewResolver(animations, images map[string]string) *Resolver {
	return &Resolver{
		animations: newTable(animations, fallbackAnimationLocator),
		images:     newTable(images, fallbackImageLocator),
	}
}

// ResolveAnimation returns the animation locator for name. It never returns
// an empty string.
func (r *Resolver) ResolveAnimation(name string) string {
	return r.animations.lookup(name)
}

// ResolveImage returns the static image locator for name. It never returns
// an empty string.
func (r *Resolver) ResolveImage(name string) string {
	return r.images.lookup(name)
}

// DefaultAnimation is the locator of the fallback animation.
func (r *Resolver) DefaultAnimation() string {
	return r.animations.def
}

// DefaultImage is the locator of the fallback image.
func (r *Resolver) DefaultImage() string {
	return r.images.def
}

type table struct {
	entries map[string]string
	def     string
}

func newTable(src map[string]string, fallback string) table {
	t := table{entries: make(map[string]string, len(src)), def: fallback}
	for k, v := range src {
		if v == "" {
			continue
		}
		t.entries[strings.ToLower(k)] = v
	}
	if d, ok := t.entries[DefaultKey]; ok {
		t.def = d
	}
	return t
}

// lookup tries the full lower-cased name, then its first word, then the
// default entry. A name sharing only its first word with an entry resolves
// to that entry.
func (t table) lookup(name string) string {
	key := strings.ToLower(name)
	if v, ok := t.entries[key]; ok {
		return v
	}
	firstWord, _, _ := strings.Cut(key, " ")
	if v, ok := t.entries[firstWord]; ok {
		return v
	}
	return t.def
}
