package article

import (
	"context"
	"errors"
	"fmt"

	"mini-blog/internal/domain/entity"
	"mini-blog/internal/observability/logging"
	"mini-blog/internal/observability/metrics"
	"mini-blog/internal/repository"
)

// Input carries the client supplied fields of an article.
type Input struct {
	Title      string
	Text       string
	CategoryID entity.ID
	AuthorID   entity.ID
	Tags       []string
}

func (in Input) article(id entity.ID) *entity.Article {
	a := &entity.Article{
		ID:         id,
		Title:      in.Title,
		Text:       in.Text,
		CategoryID: in.CategoryID,
		AuthorID:   in.AuthorID,
		Tags:       in.Tags,
	}
	a.NormalizeTags()
	return a
}

// Service provides article management use cases.
type Service struct {
	Store repository.Store
}

// Create verifies the category and author, then stores a new article.
// Returns ErrReferenceNotFound if either reference is missing.
func (s *Service) Create(ctx context.Context, in Input) (*entity.Article, error) {
	art := in.article("")

	err := repository.WithSession(ctx, s.Store, func(sess repository.Session) error {
		if err := checkReferences(ctx, sess, art.CategoryID, art.AuthorID); err != nil {
			return err
		}
		id, err := sess.Articles().Insert(ctx, art)
		if err != nil {
			return err
		}
		art.ID = id
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrReferenceNotFound) {
			metrics.RecordReferenceCheckFailure("create")
		}
		return nil, fmt.Errorf("create article: %w", err)
	}

	metrics.RecordDocumentWritten(repository.ArticlesCollection, "create")
	return art, nil
}

// Get retrieves a single article by its ID.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id entity.ID) (*entity.Article, error) {
	var art *entity.Article

	err := repository.WithSession(ctx, s.Store, func(sess repository.Session) error {
		found, err := sess.Articles().Get(ctx, id)
		if err != nil {
			return err
		}
		if found == nil {
			return ErrArticleNotFound
		}
		art = found
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}

	art.ID = id
	art.NormalizeTags()
	return art, nil
}

// Update verifies the category and author, then merges the submitted fields
// into the article stored under id and returns them with that id.
//
// The article itself is not required to exist: when nothing matches, the
// store is left unchanged and the submitted article is still returned.
func (s *Service) Update(ctx context.Context, id entity.ID, in Input) (*entity.Article, error) {
	art := in.article(id)

	err := repository.WithSession(ctx, s.Store, func(sess repository.Session) error {
		if err := checkReferences(ctx, sess, art.CategoryID, art.AuthorID); err != nil {
			return err
		}
		matched, err := sess.Articles().Update(ctx, id, art)
		if err != nil {
			return err
		}
		if !matched {
			metrics.RecordUnmatchedUpdate()
			logging.FromContext(ctx).Debug("article update matched no document",
				"article_id", id.String())
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrReferenceNotFound) {
			metrics.RecordReferenceCheckFailure("update")
		}
		return nil, fmt.Errorf("update article: %w", err)
	}

	metrics.RecordDocumentWritten(repository.ArticlesCollection, "update")
	return art, nil
}

// Delete removes the article stored under id.
// Returns ErrArticleNotFound if nothing was deleted.
func (s *Service) Delete(ctx context.Context, id entity.ID) error {
	err := repository.WithSession(ctx, s.Store, func(sess repository.Session) error {
		deleted, err := sess.Articles().Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrArticleNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	metrics.RecordDocumentWritten(repository.ArticlesCollection, "delete")
	return nil
}
