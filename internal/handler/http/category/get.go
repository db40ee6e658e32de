package category

import (
	"net/http"

	"mini-blog/internal/handler/http/pathutil"
	"mini-blog/internal/handler/http/respond"
	catUC "mini-blog/internal/usecase/category"
)

type GetHandler struct{ Svc catUC.Service }

// ServeHTTP カテゴリ取得
// @Summary      カテゴリ取得
// @Description  指定されたIDのカテゴリを取得します
// @Tags         categories
// @Produce      json
// @Param        id path string true "カテゴリID"
// @Success      200 {object} DTO "カテゴリ"
// @Failure      400 {object} map[string]string "Bad request - invalid category ID"
// @Failure      404 {object} map[string]string "Not found - category not found"
// @Failure      500 {object} map[string]string "サーバーエラー"
// @Router       /categories/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/categories/")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	category, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, newDTO(category))
}
