// Package author provides HTTP handlers for author endpoints.
package author

import (
	"net/http"

	"mini-blog/internal/domain/entity"
)

// DTO represents the JSON structure for author data transfer.
type DTO struct {
	ID   string `json:"id" example:"q8v1mzt0d4ka"`
	Name string `json:"name" example:"山田 花子"`
}

func newDTO(a *entity.Author) DTO {
	return DTO{ID: a.ID.String(), Name: a.Name}
}

// Request is the body accepted by create.
type Request struct {
	Name *string `json:"name" example:"山田 花子"`
}

// Bind checks that name is present.
func (req *Request) Bind(_ *http.Request) error {
	if req.Name == nil {
		return &entity.ValidationError{Field: "name", Message: "is required"}
	}
	return nil
}
