// Package event 文章活动信息模型
package event

import (
	"time"

	"gorm.io/datatypes"
)

// Event 从文章中抽取出的活动信息，每篇文章至多一条
type Event struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ArticleID  string `gorm:"type:varchar(255);not null;uniqueIndex" json:"article_id"`
	ArticleURL string `gorm:"type:varchar(500)" json:"article_url"`

	RegistrationTitle  string `gorm:"type:varchar(255);default:'无'" json:"registration_title"`
	RegistrationTime   string `gorm:"type:varchar(255);default:'即时'" json:"registration_time"`
	RegistrationMethod string `gorm:"type:varchar(255)" json:"registration_method"`
	EventTime          string `gorm:"type:varchar(255);default:'无'" json:"event_time"`
	EventFee           string `gorm:"type:varchar(255);default:'无'" json:"event_fee"`
	Audience           string `gorm:"type:varchar(255);default:'无'" json:"audience"`

	// 抽取任务的原始输出
	Extra datatypes.JSON `json:"extra,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}
