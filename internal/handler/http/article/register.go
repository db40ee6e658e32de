package article

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	artUC "mini-blog/internal/usecase/article"
)

// Register mounts the article routes on r.
func Register(r chi.Router, svc artUC.Service) {
	r.Route("/articles", func(r chi.Router) {
		r.Method(http.MethodPost, "/", CreateHandler{svc})
		r.Method(http.MethodGet, "/{id}", GetHandler{svc})
		r.Method(http.MethodPut, "/{id}", UpdateHandler{svc})
		r.Method(http.MethodDelete, "/{id}", DeleteHandler{svc})
	})
}
