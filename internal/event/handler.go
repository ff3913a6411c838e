package event

import (
	"terminal-terrace/mp-article/internal/dto"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventService *EventService
}

func NewEventHandler(eventService *EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// GetEvent 获取文章的活动信息
// @Summary 获取文章活动信息
// @Tags 文章管理
// @Produce json
// @Security BearerAuth
// @Param id path string true "文章ID"
// @Success 200 {object} response.Response{data=eventModel.Event}
// @Failure 404 {object} response.Response
// @Router /wx/articles/{id}/event [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	e, err := h.eventService.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	dto.SuccessResponse(c, e)
}
