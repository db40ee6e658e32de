package repository

import (
	"context"
	"errors"

	"mini-blog/internal/domain/entity"
)

// Collection names shared by every persistence adapter.
const (
	CategoriesCollection = "categories"
	AuthorsCollection    = "authors"
	ArticlesCollection   = "articles"
)

// ErrUnavailable marks failures to reach the backend at all, as opposed to
// errors returned by an individual operation.
var ErrUnavailable = errors.New("document store unavailable")

// Document is the set of entity types a Collection can hold.
type Document interface {
	entity.Category | entity.Author | entity.Article
}

// Collection is a keyed set of documents of one type inside a Session.
// Implementations ignore the ID field of the documents they are given; the
// key is always passed separately.
type Collection[T Document] interface {
	// Insert stores doc under a freshly generated key and returns it.
	Insert(ctx context.Context, doc *T) (entity.ID, error)
	// Get returns the document stored under id.
	// Returns (nil, nil) if no such document exists.
	Get(ctx context.Context, id entity.ID) (*T, error)
	// Update merges the fields of doc into the document stored under id.
	// A missing document is not an error; matched reports whether one existed.
	Update(ctx context.Context, id entity.ID, doc *T) (matched bool, err error)
	// Delete removes the document stored under id and reports whether one
	// was removed.
	Delete(ctx context.Context, id entity.ID) (deleted bool, err error)
}

// Session is a store handle owned by a single request. Collections obtained
// from it are only valid until Close.
type Session interface {
	Categories() Collection[entity.Category]
	Authors() Collection[entity.Author]
	Articles() Collection[entity.Article]
	Close(ctx context.Context) error
}

// Store hands out sessions against one backend.
type Store interface {
	// Open acquires a new session. The caller must Close it.
	Open(ctx context.Context) (Session, error)
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}
