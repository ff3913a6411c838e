package article

import (
	"terminal-terrace/mp-article/internal/dto"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService *ArticleService
}

func NewArticleHandler(articleService *ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// ListArticles 获取文章列表
// @Summary 获取文章列表
// @Description 支持按状态、公众号、关键词过滤，按发布时间倒序分页
// @Tags 文章管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param offset query int false "偏移量" default(0)
// @Param limit query int false "每页数量(1-100)" default(5)
// @Param status query int false "文章状态，为空时排除已删除"
// @Param search query string false "关键词，空格分隔多个词"
// @Param mp_id query string false "公众号ID"
// @Param has_content query bool false "是否返回正文" default(false)
// @Success 200 {object} response.Response{data=ArticleListResponse}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /wx/articles [get]
// @Router /wx/articles [post]
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	// GET 与 POST 都只从 query string 读取参数
	q := ListQuery{Limit: DefaultLimit}
	if err := c.ShouldBindQuery(&q); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, err := h.articleService.ListArticles(c.Request.Context(), q)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	dto.SuccessResponse(c, result)
}

// GetArticle 获取文章详情
// @Summary 获取文章详情
// @Tags 文章管理
// @Produce json
// @Param id path string true "文章ID"
// @Param content query bool false "是否返回正文" default(false)
// @Success 200 {object} response.Response{data=ArticleItem}
// @Failure 404 {object} response.Response
// @Router /wx/articles/{id} [get]
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	var q DetailQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	item, err := h.articleService.GetArticle(c.Request.Context(), c.Param("id"), q.Content)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	dto.SuccessResponse(c, item)
}

// DeleteArticle 删除文章
// @Summary 删除文章
// @Description 标记为删除，开启 article.true_delete 时物理删除
// @Tags 文章管理
// @Produce json
// @Security BearerAuth
// @Param id path string true "文章ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /wx/articles/{id} [delete]
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	if err := h.articleService.DeleteArticle(c.Request.Context(), c.Param("id")); err != nil {
		dto.HandleError(c, err)
		return
	}

	dto.SuccessWithMessage(c, "文章已标记为删除", nil)
}

// NextArticle 获取下一篇文章
// @Summary 获取下一篇文章
// @Tags 文章管理
// @Produce json
// @Security BearerAuth
// @Param id path string true "当前文章ID"
// @Success 200 {object} response.Response{data=ArticleItem}
// @Failure 404 {object} response.Response
// @Router /wx/articles/{id}/next [get]
func (h *ArticleHandler) NextArticle(c *gin.Context) {
	item, err := h.articleService.NextArticle(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	dto.SuccessResponse(c, item)
}

// PrevArticle 获取上一篇文章
// @Summary 获取上一篇文章
// @Tags 文章管理
// @Produce json
// @Security BearerAuth
// @Param id path string true "当前文章ID"
// @Success 200 {object} response.Response{data=ArticleItem}
// @Failure 404 {object} response.Response
// @Router /wx/articles/{id}/prev [get]
func (h *ArticleHandler) PrevArticle(c *gin.Context) {
	item, err := h.articleService.PrevArticle(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	dto.SuccessResponse(c, item)
}
