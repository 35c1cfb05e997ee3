package repository

import (
	"context"

	"alcyxob/fitlife/internal/domain"
)

// Error constants for repository layer
var (
	ErrUnknownKind = RepositoryError("unknown category kind")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// CategoryRepository lists the browse categories of one kind, in display order.
type CategoryRepository interface {
	ListByKind(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error)
}
