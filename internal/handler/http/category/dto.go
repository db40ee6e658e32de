// Package category provides HTTP handlers for category endpoints.
package category

import (
	"net/http"

	"mini-blog/internal/domain/entity"
)

// DTO represents the JSON structure for category data transfer.
type DTO struct {
	ID   string `json:"id" example:"b3kx9q2mlw0r"`
	Name string `json:"name" example:"プログラミング"`
}

func newDTO(c *entity.Category) DTO {
	return DTO{ID: c.ID.String(), Name: c.Name}
}

// Request is the body accepted by create.
type Request struct {
	Name *string `json:"name" example:"プログラミング"`
}

// Bind checks that name is present.
func (req *Request) Bind(_ *http.Request) error {
	if req.Name == nil {
		return &entity.ValidationError{Field: "name", Message: "is required"}
	}
	return nil
}
