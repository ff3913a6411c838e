package cleanup

import "github.com/gin-gonic/gin"

// RegisterRoutes r 为 /articles 分组
func RegisterRoutes(r *gin.RouterGroup, h *CleanupHandler, auth gin.HandlerFunc) {
	authRequired := r.Group("")
	authRequired.Use(auth)
	{
		authRequired.DELETE("/clean", h.CleanOrphanArticles)
		authRequired.DELETE("/clean_duplicate_articles", h.CleanDuplicateArticles)
	}
}
