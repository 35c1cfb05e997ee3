package api

import (
	"errors"
	"log"
	"net/http"

	"alcyxob/fitlife/internal/domain"
	"alcyxob/fitlife/internal/media"
	"alcyxob/fitlife/internal/service"
	"alcyxob/fitlife/internal/view"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler serves the exercise and category JSON API.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
	resolver        *media.Resolver
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService, resolver *media.Resolver) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService, resolver: resolver}
}

// --- DTOs for API (Data Transfer Objects) ---

// CategoryResponse is a browse category with its card image.
type CategoryResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image"`
}

// ExerciseResponse is the DTO for returning exercise details.
type ExerciseResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Target           string   `json:"target"`
	Equipment        string   `json:"equipment"`
	BodyPart         string   `json:"bodyPart"`
	GifURL           string   `json:"gifUrl"`
	Instructions     []string `json:"instructions"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
	Type             *string  `json:"type,omitempty"`
	Difficulty       *string  `json:"difficulty,omitempty"`
	Animation        string   `json:"animation"`
}

// MapCategoriesToResponse converts categories to CategoryResponse DTOs.
func MapCategoriesToResponse(categories []domain.Category, resolver *media.Resolver) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = CategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug(), Image: resolver.ResolveImage(c.Name)}
	}
	return responses
}

// MapExerciseToResponse converts a domain.Exercise to ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	return ExerciseResponse{
		ID:               ex.ID,
		Name:             ex.Name,
		Target:           ex.Target,
		Equipment:        ex.Equipment,
		BodyPart:         ex.BodyPart,
		GifURL:           ex.GifURL,
		Instructions:     nonNil(ex.Instructions),
		SecondaryMuscles: nonNil(ex.SecondaryMuscles),
		Type:             ex.Type,
		Difficulty:       ex.Difficulty,
		Animation:        animationURL(ex.AnimationName()),
	}
}

// MapExercisesToResponse converts a slice of domain.Exercise to a slice of ExerciseResponse DTO.
func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = MapExerciseToResponse(&exercises[i])
	}
	return responses
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// --- Handler Methods ---

// ListCategories handles GET /api/v1/categories/:kind
func (h *ExerciseHandler) ListCategories(c *gin.Context) {
	kind, ok := domain.ParseCategoryKind(c.Param("kind"))
	if !ok {
		abortWithError(c, http.StatusBadRequest, "Unknown category kind.")
		return
	}

	categories, err := h.exerciseService.ListCategories(c.Request.Context(), kind)
	if err != nil {
		log.Printf("ERROR: [%s] list %s categories: %v", getRequestIDFromContext(c), kind, err)
		abortWithError(c, http.StatusInternalServerError, "Failed to list categories.")
		return
	}

	c.JSON(http.StatusOK, MapCategoriesToResponse(categories, h.resolver))
}

// GetReferenceData handles GET /api/v1/reference/:kind
func (h *ExerciseHandler) GetReferenceData(c *gin.Context) {
	kind, ok := domain.ParseCategoryKind(c.Param("kind"))
	if !ok {
		abortWithError(c, http.StatusBadRequest, "Unknown category kind.")
		return
	}

	categories, err := h.exerciseService.ReferenceData(c.Request.Context(), kind)
	if err != nil {
		log.Printf("WARN: [%s] reference %s: %v", getRequestIDFromContext(c), kind, err)
		message := view.MsgBodyPartsFailed
		if kind == domain.KindEquipment {
			message = view.MsgEquipmentFailed
		}
		abortWithError(c, http.StatusBadGateway, message)
		return
	}

	if categories == nil {
		categories = []domain.Category{}
	}
	c.JSON(http.StatusOK, categories)
}

// GetExercisesByCategory handles GET /api/v1/exercises/:type/:category?filter=
func (h *ExerciseHandler) GetExercisesByCategory(c *gin.Context) {
	kind := domain.KindFromTab(c.Param("type"))
	mode := domain.ParseFilterMode(c.Query("filter"))

	exercises, err := h.exerciseService.ExercisesByCategory(c.Request.Context(), kind, c.Param("category"), mode)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "Category is required.")
			return
		}
		log.Printf("WARN: [%s] exercises for %s %q: %v", getRequestIDFromContext(c), kind, c.Param("category"), err)
		abortWithError(c, http.StatusBadGateway, view.MsgExercisesFailed)
		return
	}

	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

// GetExerciseByID handles GET /api/v1/exercise/:id
func (h *ExerciseHandler) GetExerciseByID(c *gin.Context) {
	exercise, err := h.exerciseService.ExerciseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, "Exercise ID is required.")
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, view.MsgNotFound)
		default:
			log.Printf("WARN: [%s] exercise %s: %v", getRequestIDFromContext(c), c.Param("id"), err)
			abortWithError(c, http.StatusBadGateway, "Failed to fetch exercise. Please try again later.")
		}
		return
	}

	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}
