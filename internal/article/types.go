package article

import (
	"time"

	articleModel "terminal-terrace/mp-article/internal/model/article"

	"github.com/samber/lo"
)

// DefaultLimit 未指定 limit 时的分页大小
const DefaultLimit = 5

// ListQuery 文章列表查询参数，GET 与 POST 共用
type ListQuery struct {
	Offset int `form:"offset" json:"offset" binding:"min=0"`
	Limit  int `form:"limit" json:"limit" binding:"min=1,max=100"`
	// 为空或为 0 时返回除已删除外的所有文章
	Status     *articleModel.Status `form:"status" json:"status"`
	Search     string               `form:"search" json:"search"`
	MpID       string               `form:"mp_id" json:"mp_id"`
	HasContent bool                 `form:"has_content" json:"has_content"`
}

// ArticleItem 返回给前端的文章
type ArticleItem struct {
	ID          string              `json:"id"`
	MpID        string              `json:"mp_id"`
	MpName      string              `json:"mp_name"`
	Title       string              `json:"title"`
	PicURL      string              `json:"pic_url"`
	URL         string              `json:"url"`
	Description string              `json:"description"`
	Content     *string             `json:"content,omitempty"`
	Status      articleModel.Status `json:"status"`
	PublishTime int64               `json:"publish_time"`
	PublishAt   *time.Time          `json:"publish_at"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type ArticleListResponse struct {
	List  []ArticleItem `json:"list"`
	Total int64         `json:"total"`
}

// NewArticleItem withContent 为 false 时不返回正文
func NewArticleItem(a *articleModel.Article, mpName string, withContent bool) ArticleItem {
	item := ArticleItem{
		ID:          a.ID,
		MpID:        a.MpID,
		MpName:      mpName,
		Title:       a.Title,
		PicURL:      a.PicURL,
		URL:         a.URL,
		Description: a.Description,
		Status:      a.Status,
		PublishTime: a.PublishTime,
		PublishAt:   a.PublishAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if withContent {
		content := a.Content
		item.Content = &content
	}
	return item
}

// toArticleItems nameOf 提供 mp_id 对应的公众号名称
func toArticleItems(articles []articleModel.Article, nameOf func(string) string, withContent bool) []ArticleItem {
	return lo.Map(articles, func(a articleModel.Article, _ int) ArticleItem {
		return NewArticleItem(&a, nameOf(a.MpID), withContent)
	})
}

// DetailQuery 文章详情查询参数
type DetailQuery struct {
	Content bool `form:"content"`
}
