// Package category provides use cases for managing categories.
package category

import (
	"context"
	"fmt"

	"mini-blog/internal/domain/entity"
	"mini-blog/internal/observability/metrics"
	"mini-blog/internal/repository"
)

// ErrCategoryNotFound indicates that the requested category was not found.
var ErrCategoryNotFound = &entity.NotFoundError{Entity: "category"}

// Service provides category management use cases.
type Service struct {
	Store repository.Store
}

// Create stores a new category and returns it with its generated ID.
func (s *Service) Create(ctx context.Context, name string) (*entity.Category, error) {
	cat := &entity.Category{Name: name}

	err := repository.WithSession(ctx, s.Store, func(sess repository.Session) error {
		id, err := sess.Categories().Insert(ctx, cat)
		if err != nil {
			return err
		}
		cat.ID = id
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	metrics.RecordDocumentWritten(repository.CategoriesCollection, "create")
	return cat, nil
}

// Get retrieves a category by its ID.
func (s *Service) Get(ctx context.Context, id entity.ID) (*entity.Category, error) {
	var cat *entity.Category

	err := repository.WithSession(ctx, s.Store, func(sess repository.Session) error {
		found, err := sess.Categories().Get(ctx, id)
		if err != nil {
			return err
		}
		if found == nil {
			return ErrCategoryNotFound
		}
		cat = found
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	cat.ID = id
	return cat, nil
}
