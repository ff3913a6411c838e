package model

import (
	"gorm.io/gorm"
	"terminal-terrace/mp-article/internal/model/article"
	"terminal-terrace/mp-article/internal/model/event"
	"terminal-terrace/mp-article/internal/model/feed"
)

func InitTable(db *gorm.DB) error {
	// 自动迁移数据库表结构
	err := db.AutoMigrate(
		// 公众号
		&feed.Feed{},
		// 文章
		&article.Article{},
		// 文章活动信息
		&event.Event{},
	)
	if err != nil {
		return err
	}
	return nil
}
