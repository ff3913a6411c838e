package cleanup

import (
	"context"

	articleModel "terminal-terrace/mp-article/internal/model/article"
	feedModel "terminal-terrace/mp-article/internal/model/feed"

	"gorm.io/gorm"
)

// deleteDuplicatesSQL 按 mp_id + 去重键分组，每组保留一篇
// 去重键: url 非空时取 url，否则取 title
// 保留顺序: 未删除优先，其次 created_at 最早，最后 id 最小
const deleteDuplicatesSQL = `
	DELETE FROM articles WHERE id IN (
		SELECT id FROM (
			SELECT id, ROW_NUMBER() OVER (
				PARTITION BY mp_id, COALESCE(NULLIF(url, ''), NULLIF(title, ''))
				ORDER BY CASE WHEN status = ? THEN 1 ELSE 0 END, created_at ASC, id ASC
			) AS rn
			FROM articles
			WHERE COALESCE(NULLIF(url, ''), NULLIF(title, '')) IS NOT NULL
		) ranked
		WHERE ranked.rn > 1
	)
`

type CleanupRepository struct {
	db *gorm.DB
}

func NewCleanupRepository(db *gorm.DB) *CleanupRepository {
	return &CleanupRepository{db: db}
}

// DeleteOrphans 删除 mp_id 不在 feeds 表中的文章，返回删除数量
func (r *CleanupRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		feedIDs := tx.Model(&feedModel.Feed{}).Select("id")
		result := tx.Where("mp_id NOT IN (?)", feedIDs).Delete(&articleModel.Article{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// DeleteDuplicates 删除重复文章，返回删除数量
func (r *CleanupRepository) DeleteDuplicates(ctx context.Context) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Exec(deleteDuplicatesSQL, articleModel.StatusDeleted)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
