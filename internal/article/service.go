package article

import (
	"context"
	"errors"
	"log"

	"terminal-terrace/mp-article/internal/feed"
	articleModel "terminal-terrace/mp-article/internal/model/article"
	"terminal-terrace/mp-article/pkg/response"

	"gorm.io/gorm"
)

// ServiceOptions 构造时确定的配置快照
type ServiceOptions struct {
	// 删除时是否物理删除，对应 article.true_delete
	HardDelete bool
}

type ArticleService struct {
	articleRepo *ArticleRepository
	feedRepo    feed.NameSource
	opts        ServiceOptions
}

func NewArticleService(db *gorm.DB, opts ServiceOptions) *ArticleService {
	return &ArticleService{
		articleRepo: NewArticleRepository(db),
		feedRepo:    feed.NewFeedRepository(db),
		opts:        opts,
	}
}

func internalError(msg string, err error) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Fail),
		response.WithErrorMessage(msg),
		response.WithError(err),
	)
}

func notFoundError(msg string) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.NotFound),
		response.WithErrorMessage(msg),
	)
}

// ListArticles 获取文章列表
func (s *ArticleService) ListArticles(ctx context.Context, q ListQuery) (*ArticleListResponse, error) {
	if q.Offset < 0 || q.Limit < 1 || q.Limit > 100 {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("分页参数无效"),
		)
	}

	articles, total, err := s.articleRepo.List(ctx, q)
	if err != nil {
		log.Printf("[ListArticles] 查询文章列表失败: %v", err)
		return nil, internalError("获取文章列表失败", err)
	}

	// 一次请求内的公众号名称缓存
	names := feed.NewNameResolver(s.feedRepo)
	mpIDs := make([]string, 0, len(articles))
	for _, a := range articles {
		if a.MpID != "" {
			mpIDs = append(mpIDs, a.MpID)
		}
	}
	if err := names.Load(ctx, mpIDs); err != nil {
		log.Printf("[ListArticles] 查询公众号名称失败: %v", err)
		return nil, internalError("获取文章列表失败", err)
	}

	return &ArticleListResponse{
		List:  toArticleItems(articles, names.Name, q.HasContent),
		Total: total,
	}, nil
}

// GetArticle 获取文章详情，已删除的文章视为不存在
func (s *ArticleService) GetArticle(ctx context.Context, id string, withContent bool) (*ArticleItem, error) {
	a, err := s.articleRepo.GetVisibleByID(ctx, id, withContent)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("文章不存在")
		}
		log.Printf("[GetArticle] 查询文章 %s 失败: %v", id, err)
		return nil, internalError("获取文章详情失败", err)
	}

	return s.withFeedName(ctx, "GetArticle", a, withContent)
}

// DeleteArticle 标记删除文章，开启 HardDelete 时同时物理删除
func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	err := s.articleRepo.SoftDelete(ctx, id, s.opts.HardDelete)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundError("文章不存在")
		}
		log.Printf("[DeleteArticle] 删除文章 %s 失败: %v", id, err)
		return internalError("删除文章失败", err)
	}

	log.Printf("[DeleteArticle] 文章 %s 已删除 (hard=%v)", id, s.opts.HardDelete)
	return nil
}

// NextArticle 获取同一公众号中发布时间更晚的第一篇文章
func (s *ArticleService) NextArticle(ctx context.Context, id string) (*ArticleItem, error) {
	return s.neighbor(ctx, id, true)
}

// PrevArticle 获取同一公众号中发布时间更早的第一篇文章
func (s *ArticleService) PrevArticle(ctx context.Context, id string) (*ArticleItem, error) {
	return s.neighbor(ctx, id, false)
}

func (s *ArticleService) neighbor(ctx context.Context, id string, next bool) (*ArticleItem, error) {
	op, code, emptyMsg := "PrevArticle", response.NoPrevArticle, "没有上一篇文章"
	if next {
		op, code, emptyMsg = "NextArticle", response.NoNextArticle, "没有下一篇文章"
	}

	// 当前文章不过滤状态
	current, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("当前文章不存在")
		}
		log.Printf("[%s] 查询文章 %s 失败: %v", op, id, err)
		return nil, internalError("获取相邻文章失败", err)
	}

	a, err := s.articleRepo.Neighbor(ctx, current, next)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(code),
				response.WithErrorMessage(emptyMsg),
			)
		}
		log.Printf("[%s] 查询相邻文章失败: %v", op, err)
		return nil, internalError("获取相邻文章失败", err)
	}

	return s.withFeedName(ctx, op, a, true)
}

func (s *ArticleService) withFeedName(ctx context.Context, op string, a *articleModel.Article, withContent bool) (*ArticleItem, error) {
	name, err := feed.NewNameResolver(s.feedRepo).Resolve(ctx, a.MpID)
	if err != nil {
		log.Printf("[%s] 查询公众号名称失败: %v", op, err)
		return nil, internalError("查询公众号名称失败", err)
	}
	item := NewArticleItem(a, name, withContent)
	return &item, nil
}
