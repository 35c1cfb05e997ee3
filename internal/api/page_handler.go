package api

import (
	"log"
	"net/http"

	"alcyxob/fitlife/internal/domain"
	"alcyxob/fitlife/internal/lifecycle"
	"alcyxob/fitlife/internal/media"
	"alcyxob/fitlife/internal/service"
	"alcyxob/fitlife/internal/view"

	"github.com/gin-gonic/gin"
)

// PageHandler renders the HTML pages. Every request is one mounted view:
// its fetches run under a lifecycle.Mount that is disposed when the client
// goes away, and a disposed view is never rendered.
type PageHandler struct {
	exerciseService service.ExerciseService
	assetService    service.AssetService
	resolver        *media.Resolver
	filterable      []string
}

// NewPageHandler creates a new PageHandler. filterable lists the category
// slugs that offer filter buttons; empty means all of them.
func NewPageHandler(exerciseService service.ExerciseService, assetService service.AssetService, resolver *media.Resolver, filterable []string) *PageHandler {
	return &PageHandler{
		exerciseService: exerciseService,
		assetService:    assetService,
		resolver:        resolver,
		filterable:      filterable,
	}
}

// Home handles GET /
func (h *PageHandler) Home(c *gin.Context) {
	h.renderStatic(c, "home.html", "Home", "/", service.PageHome)
}

// About handles GET /about
func (h *PageHandler) About(c *gin.Context) {
	h.renderStatic(c, "about.html", "About", "/about", service.PageAbout)
}

func (h *PageHandler) renderStatic(c *gin.Context, name, title, href, page string) {
	p := view.StaticPage{Layout: view.NewLayout(title, href)}
	p.RequestID = getRequestIDFromContext(c)
	p.Background = h.assetService.BackgroundURL(c.Request.Context(), page)
	c.HTML(http.StatusOK, name, p)
}

// Search handles GET /search?tab=
func (h *PageHandler) Search(c *gin.Context) {
	p := view.NewSearchPage(c.Query("tab"))
	p.RequestID = getRequestIDFromContext(c)

	m, stop := mountFor(c)
	defer stop()
	if !view.LoadSearch(c.Request.Context(), m, h.exerciseService, h.resolver, p) || clientGone(c) {
		logDisposed(c, m, "search")
		return
	}
	c.HTML(pageStatus(p.Status), "search.html", p)
}

// ExerciseList handles GET /exercises/:type/:category?filter=
func (h *PageHandler) ExerciseList(c *gin.Context) {
	mode := domain.ParseFilterMode(c.Query("filter"))
	p := view.NewExerciseListPage(c.Param("type"), c.Param("category"), mode, h.filterable)
	p.RequestID = getRequestIDFromContext(c)

	m, stop := mountFor(c)
	defer stop()
	if !view.LoadExerciseList(c.Request.Context(), m, h.exerciseService, p) || clientGone(c) {
		logDisposed(c, m, "exercise list")
		return
	}
	c.HTML(pageStatus(p.Status), "exercises.html", p)
}

// ExerciseDetail handles GET /exercise/:id
func (h *PageHandler) ExerciseDetail(c *gin.Context) {
	p := view.NewExerciseDetailPage(c.Param("id"))
	p.RequestID = getRequestIDFromContext(c)

	m, stop := mountFor(c)
	defer stop()
	if !view.LoadExerciseDetail(c.Request.Context(), m, h.exerciseService, p) || clientGone(c) {
		logDisposed(c, m, "exercise detail")
		return
	}
	c.HTML(pageStatus(p.Status), "exercise.html", p)
}

// mountFor ties a new view mount to the request context.
func mountFor(c *gin.Context) (*lifecycle.Mount, func() bool) {
	m := lifecycle.NewMount()
	return m, m.DisposeWith(c.Request.Context())
}

// clientGone covers a cancellation that lands after the fetch returned but
// before the mount's disposal ran.
func clientGone(c *gin.Context) bool {
	return c.Request.Context().Err() != nil
}

func logDisposed(c *gin.Context, m *lifecycle.Mount, page string) {
	log.Printf("INFO: [%s] %s view %s disposed before render", getRequestIDFromContext(c), page, m.ID())
	c.Abort()
}

func pageStatus(s view.Status) int {
	switch s {
	case view.StatusNotFound:
		return http.StatusNotFound
	case view.StatusError:
		return http.StatusBadGateway
	default:
		return http.StatusOK
	}
}
