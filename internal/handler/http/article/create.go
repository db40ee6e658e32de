package article

import (
	"net/http"

	"mini-blog/internal/handler/http/respond"
	artUC "mini-blog/internal/usecase/article"
)

type CreateHandler struct{ Svc artUC.Service }

// ServeHTTP 記事作成
// @Summary      記事作成
// @Description  カテゴリと著者の存在を確認してから新しい記事を作成します
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        article body Request true "記事情報"
// @Success      201 {object} DTO "作成された記事"
// @Failure      400 {object} map[string]string "Bad request - invalid input"
// @Failure      404 {object} map[string]string "Not found - category or author not found"
// @Failure      500 {object} map[string]string "サーバーエラー"
// @Failure      503 {object} map[string]string "Store unavailable"
// @Router       /articles/ [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := respond.Bind(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	article, err := h.Svc.Create(r.Context(), req.input)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, newDTO(article))
}
