package author

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	authorUC "mini-blog/internal/usecase/author"
)

// Register mounts the author routes on r.
func Register(r chi.Router, svc authorUC.Service) {
	r.Route("/authors", func(r chi.Router) {
		r.Method(http.MethodPost, "/", CreateHandler{svc})
		r.Method(http.MethodGet, "/{id}", GetHandler{svc})
	})
}
