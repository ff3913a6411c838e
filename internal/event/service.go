package event

import (
	"context"
	"errors"
	"log"

	eventModel "terminal-terrace/mp-article/internal/model/event"
	"terminal-terrace/mp-article/pkg/response"

	"gorm.io/gorm"
)

type EventService struct {
	eventRepo *EventRepository
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{eventRepo: NewEventRepository(db)}
}

// SaveEvent 供抽取任务写入活动信息
func (s *EventService) SaveEvent(ctx context.Context, e *eventModel.Event) error {
	if e.ArticleID == "" {
		return response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("article_id 不能为空"),
		)
	}
	if err := s.eventRepo.Upsert(ctx, e); err != nil {
		log.Printf("[SaveEvent] 保存文章 %s 的活动信息失败: %v", e.ArticleID, err)
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("保存活动信息失败"),
			response.WithError(err),
		)
	}
	return nil
}

// GetEvent 获取文章的活动信息
func (s *EventService) GetEvent(ctx context.Context, articleID string) (*eventModel.Event, error) {
	e, err := s.eventRepo.GetByArticleID(ctx, articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.EventNotFound),
				response.WithErrorMessage("活动信息不存在"),
			)
		}
		log.Printf("[GetEvent] 查询文章 %s 的活动信息失败: %v", articleID, err)
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取活动信息失败"),
			response.WithError(err),
		)
	}
	return e, nil
}
