package event

import (
	"context"

	eventModel "terminal-terrace/mp-article/internal/model/event"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// upsertColumns 冲突时覆盖的字段
var upsertColumns = []string{
	"article_url",
	"registration_title",
	"registration_time",
	"registration_method",
	"event_time",
	"event_fee",
	"audience",
	"extra",
	"updated_at",
}

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Upsert 写入活动信息，同一 article_id 已存在时更新原记录
func (r *EventRepository) Upsert(ctx context.Context, e *eventModel.Event) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "article_id"}},
		DoUpdates: clause.AssignmentColumns(upsertColumns),
	}).Create(e).Error
}

// GetByArticleID 查询文章对应的活动信息
func (r *EventRepository) GetByArticleID(ctx context.Context, articleID string) (*eventModel.Event, error) {
	var e eventModel.Event
	err := r.db.WithContext(ctx).Where("article_id = ?", articleID).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}
