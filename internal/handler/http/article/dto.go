// Package article provides HTTP handlers for article endpoints.
// It includes handlers for creating, fetching, updating and deleting articles.
package article

import (
	"net/http"

	"mini-blog/internal/domain/entity"
	artUC "mini-blog/internal/usecase/article"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID         string   `json:"id" example:"1b4e28ba-2fa1-11d2-883f-0016a3c5a8c0"`
	Title      string   `json:"title" example:"Go 1.25 リリース"`
	Text       string   `json:"text" example:"Go 1.25 がリリースされました。"`
	CategoryID string   `json:"category_id" example:"b3kx9q2mlw0r"`
	AuthorID   string   `json:"author_id" example:"q8v1mzt0d4ka"`
	Tags       []string `json:"tags" example:"go,release"`
}

func newDTO(a *entity.Article) DTO {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return DTO{
		ID:         a.ID.String(),
		Title:      a.Title,
		Text:       a.Text,
		CategoryID: a.CategoryID.String(),
		AuthorID:   a.AuthorID.String(),
		Tags:       tags,
	}
}

// Request is the body accepted by create and update.
type Request struct {
	Title      *string  `json:"title" example:"Go 1.25 リリース"`
	Text       *string  `json:"text" example:"Go 1.25 がリリースされました。"`
	CategoryID *string  `json:"category_id" example:"b3kx9q2mlw0r"`
	AuthorID   *string  `json:"author_id" example:"q8v1mzt0d4ka"`
	// Elements are pointers so that a null entry is rejected rather than
	// decoded as "".
	Tags []*string `json:"tags" example:"go,release"`

	input artUC.Input
}

// Bind checks that every required field is present and that the references
// are well-formed identifiers.
func (req *Request) Bind(_ *http.Request) error {
	switch {
	case req.Title == nil:
		return &entity.ValidationError{Field: "title", Message: "is required"}
	case req.Text == nil:
		return &entity.ValidationError{Field: "text", Message: "is required"}
	case req.CategoryID == nil:
		return &entity.ValidationError{Field: "category_id", Message: "is required"}
	case req.AuthorID == nil:
		return &entity.ValidationError{Field: "author_id", Message: "is required"}
	}

	categoryID, err := entity.ParseFieldID("category_id", *req.CategoryID)
	if err != nil {
		return err
	}
	authorID, err := entity.ParseFieldID("author_id", *req.AuthorID)
	if err != nil {
		return err
	}

	var tags []string
	if req.Tags != nil {
		tags = make([]string, 0, len(req.Tags))
		for _, tag := range req.Tags {
			if tag == nil {
				return &entity.ValidationError{Field: "tags", Message: "must be an array of strings"}
			}
			tags = append(tags, *tag)
		}
	}

	req.input = artUC.Input{
		Title:      *req.Title,
		Text:       *req.Text,
		CategoryID: categoryID,
		AuthorID:   authorID,
		Tags:       tags,
	}
	return nil
}

// DeleteResponse confirms a delete.
type DeleteResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"article deleted"`
}
