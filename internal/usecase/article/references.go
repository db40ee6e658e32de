package article

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"mini-blog/internal/domain/entity"
	"mini-blog/internal/repository"
)

// checkReferences looks up the category and the author concurrently within
// sess. It returns ErrReferenceNotFound when either is missing; a lookup
// failure takes precedence over a missing document.
func checkReferences(ctx context.Context, sess repository.Session, categoryID, authorID entity.ID) error {
	var (
		category *entity.Category
		author   *entity.Author
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := sess.Categories().Get(gctx, categoryID)
		if err != nil {
			return fmt.Errorf("lookup category: %w", err)
		}
		category = c
		return nil
	})
	g.Go(func() error {
		a, err := sess.Authors().Get(gctx, authorID)
		if err != nil {
			return fmt.Errorf("lookup author: %w", err)
		}
		author = a
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	if category == nil || author == nil {
		return ErrReferenceNotFound
	}
	return nil
}
