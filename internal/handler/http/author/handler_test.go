package author_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mini-blog/internal/handler/http/author"
	"mini-blog/internal/infra/adapter/persistence/memory"
	authorUC "mini-blog/internal/usecase/author"
)

func newRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.StripSlashes)
	author.Register(r, authorUC.Service{Store: memory.NewStore()})
	return r
}

func TestCreateHandler_Success(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodPost, "/authors/", strings.NewReader(`{"name":"Ann Lee"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status code = %d, want %d (%s)", rr.Code, http.StatusCreated, rr.Body.String())
	}

	var created author.DTO
	if err := json.NewDecoder(rr.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" {
		t.Error("ID is empty")
	}
	if created.Name != "Ann Lee" {
		t.Errorf("Name = %q, want %q", created.Name, "Ann Lee")
	}

	// 作成したIDで取得できること
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/authors/"+created.ID, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("get status = %d, want %d", rr.Code, http.StatusOK)
	}
	var got author.DTO
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != created {
		t.Errorf("got %+v, want %+v", got, created)
	}
}

func TestCreateHandler_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"missing name", `{}`, "validation error on field 'name': is required"},
		{"name not a string", `{"name":["a"]}`, "validation error on field 'name': must be of type string"},
		{"empty body", ``, "validation error on field 'body': is required"},
	}

	router := newRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/authors", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
			}
			var body map[string]string
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body["error"] != tt.wantMsg {
				t.Errorf("error = %q, want %q", body["error"], tt.wantMsg)
			}
		})
	}
}

func TestGetHandler_NotFound(t *testing.T) {
	rr := httptest.NewRecorder()
	newRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/authors/missing", nil))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), "author not found") {
		t.Errorf("body = %s", rr.Body.String())
	}
}
