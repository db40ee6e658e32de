package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	catUC "mini-blog/internal/usecase/category"
)

// Register mounts the category routes on r.
func Register(r chi.Router, svc catUC.Service) {
	r.Route("/categories", func(r chi.Router) {
		r.Method(http.MethodPost, "/", CreateHandler{svc})
		r.Method(http.MethodGet, "/{id}", GetHandler{svc})
	})
}
