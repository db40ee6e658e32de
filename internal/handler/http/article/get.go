package article

import (
	"net/http"

	"mini-blog/internal/handler/http/pathutil"
	"mini-blog/internal/handler/http/respond"
	artUC "mini-blog/internal/usecase/article"
)

type GetHandler struct{ Svc artUC.Service }

// ServeHTTP 記事取得
// @Summary      記事取得
// @Description  指定されたIDの記事を取得します
// @Tags         articles
// @Produce      json
// @Param        id path string true "記事ID"
// @Success      200 {object} DTO "記事"
// @Failure      400 {object} map[string]string "Bad request - invalid article ID"
// @Failure      404 {object} map[string]string "Not found - article not found"
// @Failure      500 {object} map[string]string "サーバーエラー"
// @Router       /articles/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	article, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, newDTO(article))
}
