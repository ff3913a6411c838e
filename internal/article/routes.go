package article

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes r 为 /articles 分组
func RegisterRoutes(r *gin.RouterGroup, h *ArticleHandler, auth gin.HandlerFunc) {
	// 详情无需认证
	r.GET("/:id", h.GetArticle)

	authRequired := r.Group("")
	authRequired.Use(auth)
	{
		authRequired.GET("", h.ListArticles)
		authRequired.POST("", h.ListArticles)
		authRequired.DELETE("/:id", h.DeleteArticle)
		authRequired.GET("/:id/next", h.NextArticle)
		authRequired.GET("/:id/prev", h.PrevArticle)
	}
}
