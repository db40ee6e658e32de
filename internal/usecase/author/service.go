// Package author provides use cases for managing authors.
package author

import (
	"context"
	"fmt"

	"mini-blog/internal/domain/entity"
	"mini-blog/internal/observability/metrics"
	"mini-blog/internal/repository"
)

// ErrAuthorNotFound indicates that the requested author was not found.
var ErrAuthorNotFound = &entity.NotFoundError{Entity: "author"}

// Service provides author management use cases.
type Service struct {
	Store repository.Store
}

// Create stores a new author and returns it with its generated ID.
func (s *Service) Create(ctx context.Context, name string) (*entity.Author, error) {
	author := &entity.Author{Name: name}

	err := repository.WithSession(ctx, s.Store, func(sess repository.Session) error {
		id, err := sess.Authors().Insert(ctx, author)
		if err != nil {
			return err
		}
		author.ID = id
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}

	metrics.RecordDocumentWritten(repository.AuthorsCollection, "create")
	return author, nil
}

// Get retrieves an author by its ID.
func (s *Service) Get(ctx context.Context, id entity.ID) (*entity.Author, error) {
	var author *entity.Author

	err := repository.WithSession(ctx, s.Store, func(sess repository.Session) error {
		found, err := sess.Authors().Get(ctx, id)
		if err != nil {
			return err
		}
		if found == nil {
			return ErrAuthorNotFound
		}
		author = found
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}

	author.ID = id
	return author, nil
}
