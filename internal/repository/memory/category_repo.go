// Package memory holds the category catalog in process memory. Categories
// are fixed at start-up and never change afterwards.
package memory

import (
	"context"

	"alcyxob/fitlife/internal/config"
	"alcyxob/fitlife/internal/domain"
	"alcyxob/fitlife/internal/repository"
)

type categoryRepository struct {
	byKind map[domain.CategoryKind][]domain.Category
}

// NewCategoryRepository snapshots both lists.
func NewCategoryRepository(bodyParts, equipment []domain.Category) repository.CategoryRepository {
	return &categoryRepository{
		byKind: map[domain.CategoryKind][]domain.Category{
			domain.KindBodyPart:  append([]domain.Category(nil), bodyParts...),
			domain.KindEquipment: append([]domain.Category(nil), equipment...),
		},
	}
}

// NewCategoryRepositoryFromConfig builds the catalog from configured lists.
func NewCategoryRepositoryFromConfig(cfg config.CatalogConfig) repository.CategoryRepository {
	return NewCategoryRepository(fromConfig(cfg.BodyParts), fromConfig(cfg.Equipment))
}

// Snapshot reads both kinds from src once and keeps them in memory.
func Snapshot(ctx context.Context, src repository.CategoryRepository) (repository.CategoryRepository, error) {
	bodyParts, err := src.ListByKind(ctx, domain.KindBodyPart)
	if err != nil {
		return nil, err
	}
	equipment, err := src.ListByKind(ctx, domain.KindEquipment)
	if err != nil {
		return nil, err
	}
	return NewCategoryRepository(bodyParts, equipment), nil
}

// ListByKind returns a copy so callers cannot alter the catalog.
func (r *categoryRepository) ListByKind(_ context.Context, kind domain.CategoryKind) ([]domain.Category, error) {
	list, ok := r.byKind[kind]
	if !ok {
		return nil, repository.ErrUnknownKind
	}
	return append([]domain.Category(nil), list...), nil
}

func fromConfig(list []config.CategoryConfig) []domain.Category {
	out := make([]domain.Category, len(list))
	for i, c := range list {
		out[i] = domain.Category{ID: c.ID, Name: c.Name}
	}
	return out
}
