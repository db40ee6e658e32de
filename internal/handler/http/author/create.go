package author

import (
	"net/http"

	"mini-blog/internal/handler/http/respond"
	authorUC "mini-blog/internal/usecase/author"
)

type CreateHandler struct{ Svc authorUC.Service }

// ServeHTTP 著者作成
// @Summary      著者作成
// @Description  新しい著者を作成します
// @Tags         authors
// @Accept       json
// @Produce      json
// @Param        author body Request true "著者情報"
// @Success      201 {object} DTO "作成された著者"
// @Failure      400 {object} map[string]string "Bad request - invalid input"
// @Failure      500 {object} map[string]string "サーバーエラー"
// @Router       /authors/ [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := respond.Bind(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	author, err := h.Svc.Create(r.Context(), *req.Name)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, newDTO(author))
}
