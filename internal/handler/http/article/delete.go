package article

import (
	"net/http"

	"mini-blog/internal/handler/http/pathutil"
	"mini-blog/internal/handler/http/respond"
	artUC "mini-blog/internal/usecase/article"
)

type DeleteHandler struct{ Svc artUC.Service }

// ServeHTTP 記事削除
// @Summary      記事削除
// @Description  記事を削除します
// @Tags         articles
// @Produce      json
// @Param        id path string true "記事ID"
// @Success      200 {object} DeleteResponse "削除完了"
// @Failure      400 {object} map[string]string "Bad request - invalid ID"
// @Failure      404 {object} map[string]string "Not found - article not found"
// @Failure      500 {object} map[string]string "サーバーエラー"
// @Router       /articles/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, DeleteResponse{
		Status:  "success",
		Message: artUC.DeletedMessage,
	})
}
