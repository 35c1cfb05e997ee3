// Package view builds the page models rendered by the HTML templates. Each
// page owns a lifecycle.Mount for the duration of one request; fetch results
// land on the page only through that mount.
package view

import (
	"context"
	"strings"

	"alcyxob/fitlife/internal/domain"
	"alcyxob/fitlife/internal/lifecycle"
	"alcyxob/fitlife/internal/media"
	"alcyxob/fitlife/internal/service"
)

// Status is the display state of a page section.
type Status string

const (
	StatusLoading  Status = "loading"
	StatusReady    Status = "ready"
	StatusEmpty    Status = "empty"
	StatusError    Status = "error"
	StatusNotFound Status = "not-found"
)

// Fixed panel texts.
const (
	MsgBodyPartsFailed = "Failed to fetch body parts. Please try again later."
	MsgEquipmentFailed = "Failed to fetch equipment. Please try again later."
	MsgExercisesFailed = "Failed to fetch exercises. Please try again later."
	MsgNoExercises     = "No exercises found for this category."
	MsgNotFound        = "Exercise not found"
)

// NavLink is one entry of the navigation bar.
type NavLink struct {
	Label  string
	Href   string
	Active bool
}

// Layout is shared by every page.
type Layout struct {
	Title      string
	Nav        []NavLink
	Background string
	RequestID  string
}

// NewLayout marks the nav link matching active.
func NewLayout(title, active string) Layout {
	links := []NavLink{
		{Label: "Home", Href: "/"},
		{Label: "About", Href: "/about"},
		{Label: "Search", Href: "/search"},
	}
	for i := range links {
		links[i].Active = links[i].Href == active
	}
	return Layout{Title: title, Nav: links}
}

// CategoryCard is a category tile on the search page.
type CategoryCard struct {
	domain.Category
	Image string
	Href  string
}

// SearchPage is the browse page for one tab.
type SearchPage struct {
	Layout
	Tab        string
	Tabs       []TabLink
	Categories []CategoryCard
	Reference  []domain.Category
	Status     Status
	Error      string
}

// TabLink is one of the two browse tabs.
type TabLink struct {
	Label  string
	Href   string
	Active bool
}

// NewSearchPage starts a search page in the loading state.
func NewSearchPage(tab string) *SearchPage {
	if tab != domain.TabEquipment {
		tab = domain.TabBodyParts
	}
	return &SearchPage{
		Layout: NewLayout("Search", "/search"),
		Tab:    tab,
		Tabs: []TabLink{
			{Label: "Body Parts", Href: "/search?tab=" + domain.TabBodyParts, Active: tab == domain.TabBodyParts},
			{Label: "Equipment", Href: "/search?tab=" + domain.TabEquipment, Active: tab == domain.TabEquipment},
		},
		Status: StatusLoading,
	}
}

// Kind is the category kind of the active tab.
func (p *SearchPage) Kind() domain.CategoryKind {
	return domain.KindFromTab(p.Tab)
}

// SetCategories fills the category grid.
func (p *SearchPage) SetCategories(categories []domain.Category, resolver *media.Resolver) {
	p.Categories = make([]CategoryCard, len(categories))
	for i, c := range categories {
		p.Categories[i] = CategoryCard{
			Category: c,
			Image:    resolver.ResolveImage(c.Name),
			Href:     "/exercises/" + p.Tab + "/" + c.Slug(),
		}
	}
}

// ApplyReference records the outcome of the reference data fetch.
func (p *SearchPage) ApplyReference(categories []domain.Category, err error) {
	if err != nil {
		p.Status = StatusError
		p.Error = MsgBodyPartsFailed
		if p.Kind() == domain.KindEquipment {
			p.Error = MsgEquipmentFailed
		}
		return
	}
	p.Reference = categories
	p.Status = StatusReady
}

// ExerciseCard is one exercise on the list page.
type ExerciseCard struct {
	domain.Exercise
	Href          string
	AnimationName string
}

// FilterLink is one filter button on the list page.
type FilterLink struct {
	Label  string
	Href   string
	Active bool
}

// ExerciseListPage lists the exercises of one category.
type ExerciseListPage struct {
	Layout
	Type        string
	Category    string
	Heading     string
	Filter      domain.FilterMode
	ShowFilters bool
	Filters     []FilterLink
	Cards       []ExerciseCard
	Status      Status
	Error       string
}

// NewExerciseListPage starts a list page in the loading state.
func NewExerciseListPage(typ, category string, mode domain.FilterMode, filterable []string) *ExerciseListPage {
	p := &ExerciseListPage{
		Layout:      NewLayout(Heading(category), ""),
		Type:        typ,
		Category:    category,
		Heading:     Heading(category),
		Filter:      mode,
		ShowFilters: offersFilters(category, filterable),
		Status:      StatusLoading,
	}
	base := "/exercises/" + typ + "/" + category
	for _, m := range domain.FilterModes {
		p.Filters = append(p.Filters, FilterLink{
			Label:  m.Label(),
			Href:   base + "?filter=" + string(m),
			Active: m == mode,
		})
	}
	return p
}

// Kind is the category kind selected by the route type.
func (p *ExerciseListPage) Kind() domain.CategoryKind {
	return domain.KindFromTab(p.Type)
}

// ApplyExercises records the outcome of the exercise fetch. The exercises
// are expected to be filtered already.
func (p *ExerciseListPage) ApplyExercises(exercises []domain.Exercise, err error) {
	if err != nil {
		p.Status = StatusError
		p.Error = MsgExercisesFailed
		return
	}
	if len(exercises) == 0 {
		p.Status = StatusEmpty
		p.Error = MsgNoExercises
		return
	}
	p.Cards = make([]ExerciseCard, len(exercises))
	for i := range exercises {
		ex := exercises[i]
		p.Cards[i] = ExerciseCard{
			Exercise:      ex,
			Href:          "/exercise/" + ex.ID,
			AnimationName: ex.AnimationName(),
		}
	}
	p.Status = StatusReady
}

// ExerciseDetailPage shows one exercise.
type ExerciseDetailPage struct {
	Layout
	ID       string
	Exercise *domain.Exercise
	Status   Status
	Error    string
}

// NewExerciseDetailPage starts a detail page in the loading state.
func NewExerciseDetailPage(id string) *ExerciseDetailPage {
	return &ExerciseDetailPage{
		Layout: NewLayout("Exercise", ""),
		ID:     id,
		Status: StatusLoading,
	}
}

// ApplyExercise records the outcome of the single-exercise fetch. Any
// failure, network or missing record, shows the not-found panel.
func (p *ExerciseDetailPage) ApplyExercise(exercise *domain.Exercise, err error) {
	if err != nil || exercise.IsEmpty() {
		p.Status = StatusNotFound
		p.Error = MsgNotFound
		return
	}
	p.Exercise = exercise
	p.Title = exercise.Name
	p.Status = StatusReady
}

// StaticPage is the model of Home and About.
type StaticPage struct {
	Layout
}

// Heading turns a category slug into a page heading ("upper_back" -> "upper back").
func Heading(category string) string {
	return strings.Join(strings.Split(category, "_"), " ")
}

func offersFilters(category string, filterable []string) bool {
	if len(filterable) == 0 {
		return true
	}
	for _, c := range filterable {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

// LoadSearch fills p for the active tab. It reports false when the mount was
// disposed before the fetch returned; p must not be rendered then.
func LoadSearch(ctx context.Context, m *lifecycle.Mount, svc service.ExerciseService, resolver *media.Resolver, p *SearchPage) bool {
	// The grid comes from the in-process catalog, which only fails for an
	// unknown kind; the tab is normalised, so an error just leaves it empty.
	if categories, err := svc.ListCategories(ctx, p.Kind()); err == nil {
		p.SetCategories(categories, resolver)
	}

	return lifecycle.Track(ctx, m,
		func(ctx context.Context) ([]domain.Category, error) { return svc.ReferenceData(ctx, p.Kind()) },
		p.ApplyReference)
}

// LoadExerciseList fills p with the filtered exercises of its category.
func LoadExerciseList(ctx context.Context, m *lifecycle.Mount, svc service.ExerciseService, p *ExerciseListPage) bool {
	return lifecycle.Track(ctx, m,
		func(ctx context.Context) ([]domain.Exercise, error) {
			return svc.ExercisesByCategory(ctx, p.Kind(), p.Category, p.Filter)
		},
		p.ApplyExercises)
}

// LoadExerciseDetail fills p with its exercise.
func LoadExerciseDetail(ctx context.Context, m *lifecycle.Mount, svc service.ExerciseService, p *ExerciseDetailPage) bool {
	return lifecycle.Track(ctx, m,
		func(ctx context.Context) (*domain.Exercise, error) { return svc.ExerciseByID(ctx, p.ID) },
		p.ApplyExercise)
}
