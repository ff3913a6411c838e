package event

import "github.com/gin-gonic/gin"

// RegisterRoutes r 为 /articles 分组
func RegisterRoutes(r *gin.RouterGroup, h *EventHandler, auth gin.HandlerFunc) {
	r.GET("/:id/event", auth, h.GetEvent)
}
