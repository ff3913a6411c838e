package feed

import (
	"context"
	"errors"

	feedModel "terminal-terrace/mp-article/internal/model/feed"

	"gorm.io/gorm"
)

type FeedRepository struct {
	db *gorm.DB
}

func NewFeedRepository(db *gorm.DB) *FeedRepository {
	return &FeedRepository{db: db}
}

// GetFeedName 查询单个公众号名称，不存在时 ok 为 false
func (r *FeedRepository) GetFeedName(ctx context.Context, mpID string) (name string, ok bool, err error) {
	var f feedModel.Feed
	err = r.db.WithContext(ctx).Select("id", "mp_name").Where("id = ?", mpID).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return f.MpName, true, nil
}

// NamesByIDs 批量查询公众号名称，结果中不包含不存在的ID
func (r *FeedRepository) NamesByIDs(ctx context.Context, mpIDs []string) (map[string]string, error) {
	names := make(map[string]string, len(mpIDs))
	if len(mpIDs) == 0 {
		return names, nil
	}

	var feeds []feedModel.Feed
	err := r.db.WithContext(ctx).
		Select("id", "mp_name").
		Where("id IN ?", mpIDs).
		Find(&feeds).Error
	if err != nil {
		return nil, err
	}

	for _, f := range feeds {
		names[f.ID] = f.MpName
	}
	return names, nil
}
