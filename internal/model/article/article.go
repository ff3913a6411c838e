// Package article 公众号文章模型
package article

import "time"

// Status 文章状态
type Status int

const (
	StatusNormal   Status = 1
	StatusInactive Status = 2
	// 软删除标记，列表默认不可见
	StatusDeleted Status = 1000
)

// Article 公众号文章表，由采集任务写入
type Article struct {
	ID string `gorm:"type:varchar(255);primaryKey" json:"id"`
	// 所属公众号ID，对应 feeds.id，不做外键约束
	MpID        string `gorm:"type:varchar(255);index" json:"mp_id"`
	Title       string `gorm:"type:varchar(1000)" json:"title"`
	PicURL      string `gorm:"type:varchar(500)" json:"pic_url"`
	URL         string `gorm:"type:varchar(500)" json:"url"`
	Description string `gorm:"type:text" json:"description"`
	// 正文HTML，列表默认不查询
	Content string `gorm:"type:text" json:"content,omitempty"`
	Status  Status `gorm:"default:1;index" json:"status"`
	// 旧版发布时间（unix 秒），publish_at 为空时作为排序依据
	PublishTime int64      `gorm:"index" json:"publish_time"`
	PublishAt   *time.Time `gorm:"index" json:"publish_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Article) TableName() string {
	return "articles"
}
