package cleanup

import (
	"terminal-terrace/mp-article/internal/dto"

	"github.com/gin-gonic/gin"
)

// CleanResult 清理接口的返回数据
type CleanResult struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deleted_count"`
}

type CleanupHandler struct {
	orphans    OrphanCleaner
	duplicates DuplicateCleaner
}

func NewCleanupHandler(orphans OrphanCleaner, duplicates DuplicateCleaner) *CleanupHandler {
	return &CleanupHandler{orphans: orphans, duplicates: duplicates}
}

// CleanOrphanArticles 清理无效文章
// @Summary 清理无效文章
// @Description 删除 mp_id 不存在于公众号表中的文章
// @Tags 文章管理
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=CleanResult}
// @Failure 500 {object} response.Response
// @Router /wx/articles/clean [delete]
func (h *CleanupHandler) CleanOrphanArticles(c *gin.Context) {
	deleted, err := h.orphans.CleanOrphanArticles(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	dto.SuccessResponse(c, CleanResult{Message: OrphanCleanedMessage, DeletedCount: deleted})
}

// CleanDuplicateArticles 清理重复文章
// @Summary 清理重复文章
// @Description 同一公众号下 url（为空时为标题）相同的文章只保留最早的一篇
// @Tags 文章管理
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=CleanResult}
// @Failure 500 {object} response.Response
// @Router /wx/articles/clean_duplicate_articles [delete]
func (h *CleanupHandler) CleanDuplicateArticles(c *gin.Context) {
	msg, deleted, err := h.duplicates.CleanDuplicateArticles(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	dto.SuccessResponse(c, CleanResult{Message: msg, DeletedCount: deleted})
}
