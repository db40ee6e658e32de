package author

import (
	"net/http"

	"mini-blog/internal/handler/http/pathutil"
	"mini-blog/internal/handler/http/respond"
	authorUC "mini-blog/internal/usecase/author"
)

type GetHandler struct{ Svc authorUC.Service }

// ServeHTTP 著者取得
// @Summary      著者取得
// @Description  指定されたIDの著者を取得します
// @Tags         authors
// @Produce      json
// @Param        id path string true "著者ID"
// @Success      200 {object} DTO "著者"
// @Failure      400 {object} map[string]string "Bad request - invalid author ID"
// @Failure      404 {object} map[string]string "Not found - author not found"
// @Failure      500 {object} map[string]string "サーバーエラー"
// @Router       /authors/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/authors/")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	author, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, newDTO(author))
}
