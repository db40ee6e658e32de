package category

import (
	"net/http"

	"mini-blog/internal/handler/http/respond"
	catUC "mini-blog/internal/usecase/category"
)

type CreateHandler struct{ Svc catUC.Service }

// ServeHTTP カテゴリ作成
// @Summary      カテゴリ作成
// @Description  新しいカテゴリを作成します
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        category body Request true "カテゴリ情報"
// @Success      201 {object} DTO "作成されたカテゴリ"
// @Failure      400 {object} map[string]string "Bad request - invalid input"
// @Failure      500 {object} map[string]string "サーバーエラー"
// @Router       /categories/ [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := respond.Bind(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	category, err := h.Svc.Create(r.Context(), *req.Name)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, newDTO(category))
}
