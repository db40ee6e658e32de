// Package article provides use cases for managing article entities.
// Every operation runs inside its own store session, and writes verify that
// the referenced category and author exist before touching the article.
package article

import "mini-blog/internal/domain/entity"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = &entity.NotFoundError{Entity: "article"}

	// ErrReferenceNotFound indicates that the category or the author an
	// article points at does not exist. Nothing is written in that case.
	ErrReferenceNotFound = &entity.NotFoundError{Entity: "category or author"}
)

// DeletedMessage confirms a successful delete.
const DeletedMessage = "article deleted"
