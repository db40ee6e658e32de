package article

import (
	"net/http"

	"mini-blog/internal/handler/http/pathutil"
	"mini-blog/internal/handler/http/respond"
	artUC "mini-blog/internal/usecase/article"
)

type UpdateHandler struct{ Svc artUC.Service }

// ServeHTTP 記事更新
// @Summary      記事更新
// @Description  カテゴリと著者の存在を確認してから記事の全フィールドを置き換えます。
// @Description  対象の記事が存在しない場合も送信内容をそのまま返します
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        id path string true "記事ID"
// @Param        article body Request true "更新内容"
// @Success      200 {object} DTO "更新後の記事"
// @Failure      400 {object} map[string]string "Bad request - invalid input"
// @Failure      404 {object} map[string]string "Not found - category or author not found"
// @Failure      500 {object} map[string]string "サーバーエラー"
// @Router       /articles/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req Request
	if err := respond.Bind(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	article, err := h.Svc.Update(r.Context(), id, req.input)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, newDTO(article))
}
