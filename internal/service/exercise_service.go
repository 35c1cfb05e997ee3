package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"alcyxob/fitlife/internal/domain"
	"alcyxob/fitlife/internal/gateway"
	"alcyxob/fitlife/internal/repository"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound     = errors.New("exercise not found")
	ErrExercisesUnavailable = errors.New("failed to fetch exercises")
	ErrReferenceUnavailable = errors.New("failed to load reference data")
	ErrUnknownCategoryKind  = errors.New("unknown category kind")
	ErrValidationFailed     = errors.New("validation failed")
)

// ReferenceSource is the reference API as seen by the service.
type ReferenceSource interface {
	Fetch(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error)
}

// ExerciseSource is the exercise API as seen by the service.
type ExerciseSource interface {
	FetchByCategory(ctx context.Context, kind domain.CategoryKind, value string) ([]domain.Exercise, error)
	FetchByID(ctx context.Context, id string) (*domain.Exercise, error)
}

// --- Service Interface ---
type ExerciseService interface {
	ListCategories(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error)
	ReferenceData(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error)
	ExercisesByCategory(ctx context.Context, kind domain.CategoryKind, value string, mode domain.FilterMode) ([]domain.Exercise, error)
	ExerciseByID(ctx context.Context, id string) (*domain.Exercise, error)
}

// --- Service Implementation ---

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	categoryRepo repository.CategoryRepository
	reference    ReferenceSource
	exercises    ExerciseSource
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(categoryRepo repository.CategoryRepository, reference ReferenceSource, exercises ExerciseSource) ExerciseService {
	return &exerciseService{
		categoryRepo: categoryRepo,
		reference:    reference,
		exercises:    exercises,
	}
}

// ListCategories returns the configured browse categories of one kind.
func (s *exerciseService) ListCategories(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListByKind(ctx, kind)
	if err != nil {
		if errors.Is(err, repository.ErrUnknownKind) {
			return nil, ErrUnknownCategoryKind
		}
		return nil, err
	}
	return categories, nil
}

// ReferenceData fetches the reference API's taxonomy. Every failure is the
// same to callers.
func (s *exerciseService) ReferenceData(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error) {
	categories, err := s.reference.Fetch(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReferenceUnavailable, err)
	}
	return categories, nil
}

// ExercisesByCategory fetches the exercises for a category and applies mode.
func (s *exerciseService) ExercisesByCategory(ctx context.Context, kind domain.CategoryKind, value string, mode domain.FilterMode) ([]domain.Exercise, error) {
	if strings.TrimSpace(value) == "" {
		return nil, ErrValidationFailed
	}
	exercises, err := s.exercises.FetchByCategory(ctx, kind, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExercisesUnavailable, err)
	}
	return FilterExercises(exercises, mode), nil
}

// ExerciseByID fetches one exercise. Gateway errors pass through wrapped, so
// callers can still tell ErrNotFound from ErrNetworkFailure.
func (s *exerciseService) ExerciseByID(ctx context.Context, id string) (*domain.Exercise, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrValidationFailed
	}
	exercise, err := s.exercises.FetchByID(ctx, id)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrExerciseNotFound, id)
		}
		return nil, fmt.Errorf("%w: %w", ErrExercisesUnavailable, err)
	}
	return exercise, nil
}
