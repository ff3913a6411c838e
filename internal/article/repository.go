package article

import (
	"context"

	articleModel "terminal-terrace/mp-article/internal/model/article"

	"gorm.io/gorm"
)

type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// filterScope 列表的过滤条件，计数与分页共用
func filterScope(q ListQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		// status=0 与未传相同
		if q.Status != nil && *q.Status != 0 {
			db = db.Where("status = ?", *q.Status)
		} else {
			db = db.Where("status <> ?", articleModel.StatusDeleted)
		}
		if q.MpID != "" {
			db = db.Where("mp_id = ?", q.MpID)
		}
		if predicate, args := BuildSearchPredicate(q.Search); predicate != "" {
			db = db.Where(predicate, args...)
		}
		return db
	}
}

// List 返回当前页和过滤后的总数
// 排序: publish_at 为空的排最后，再按 publish_at、publish_time、id 倒序
func (r *ArticleRepository) List(ctx context.Context, q ListQuery) ([]articleModel.Article, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&articleModel.Article{}).
		Scopes(filterScope(q)).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).Scopes(filterScope(q))
	if !q.HasContent {
		query = query.Omit("content")
	}

	var articles []articleModel.Article
	err = query.
		Order("publish_at IS NULL ASC").
		Order("publish_at DESC").
		Order("publish_time DESC").
		Order("id DESC").
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

// GetByID 按ID查询文章，不过滤状态
func (r *ArticleRepository) GetByID(ctx context.Context, id string) (*articleModel.Article, error) {
	var a articleModel.Article
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetVisibleByID 按ID查询未删除的文章
func (r *ArticleRepository) GetVisibleByID(ctx context.Context, id string, withContent bool) (*articleModel.Article, error) {
	query := r.db.WithContext(ctx).Where("id = ? AND status <> ?", id, articleModel.StatusDeleted)
	if !withContent {
		query = query.Omit("content")
	}

	var a articleModel.Article
	if err := query.First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// Neighbor 同一公众号内相邻的未删除文章
// 当前文章有 publish_at 时只比较 publish_at，否则比较 publish_time
func (r *ArticleRepository) Neighbor(ctx context.Context, current *articleModel.Article, next bool) (*articleModel.Article, error) {
	op, dir := "<", "DESC"
	if next {
		op, dir = ">", "ASC"
	}

	query := r.db.WithContext(ctx).
		Where("mp_id = ? AND status <> ?", current.MpID, articleModel.StatusDeleted)
	if current.PublishAt != nil {
		query = query.Where("publish_at "+op+" ?", *current.PublishAt).Order("publish_at " + dir)
	} else {
		query = query.Where("publish_time "+op+" ?", current.PublishTime).Order("publish_time " + dir)
	}

	var a articleModel.Article
	if err := query.Order("id " + dir).Take(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// SoftDelete 在事务中将文章标记为删除，hard 为 true 时随后物理删除
// 任一步骤失败整体回滚
func (r *ArticleRepository) SoftDelete(ctx context.Context, id string, hard bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a articleModel.Article
		if err := tx.Select("id", "status").Where("id = ?", id).First(&a).Error; err != nil {
			return err
		}

		if err := tx.Model(&articleModel.Article{}).
			Where("id = ?", id).
			Update("status", articleModel.StatusDeleted).Error; err != nil {
			return err
		}

		if hard {
			if err := tx.Where("id = ?", id).Delete(&articleModel.Article{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
