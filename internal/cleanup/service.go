package cleanup

import (
	"context"
	"fmt"
	"log"

	"terminal-terrace/mp-article/pkg/response"

	"gorm.io/gorm"
)

// OrphanCleaner 清理 mp_id 失效的文章
type OrphanCleaner interface {
	CleanOrphanArticles(ctx context.Context) (int64, error)
}

// DuplicateCleaner 清理重复文章，返回提示信息和删除数量
type DuplicateCleaner interface {
	CleanDuplicateArticles(ctx context.Context) (string, int64, error)
}

const OrphanCleanedMessage = "清理无效文章成功"

type CleanupService struct {
	cleanupRepo *CleanupRepository
}

func NewCleanupService(db *gorm.DB) *CleanupService {
	return &CleanupService{cleanupRepo: NewCleanupRepository(db)}
}

// CleanOrphanArticles 删除所属公众号已不存在的文章
func (s *CleanupService) CleanOrphanArticles(ctx context.Context) (int64, error) {
	deleted, err := s.cleanupRepo.DeleteOrphans(ctx)
	if err != nil {
		log.Printf("[CleanOrphanArticles] 清理无效文章错误: %v", err)
		return 0, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("清理无效文章失败"),
			response.WithError(err),
		)
	}

	log.Printf("[CleanOrphanArticles] 删除 %d 篇无效文章", deleted)
	return deleted, nil
}

// CleanDuplicateArticles 删除同一公众号下的重复文章
func (s *CleanupService) CleanDuplicateArticles(ctx context.Context) (string, int64, error) {
	deleted, err := s.cleanupRepo.DeleteDuplicates(ctx)
	if err != nil {
		log.Printf("[CleanDuplicateArticles] 清理重复文章错误: %v", err)
		return "", 0, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("清理重复文章失败"),
			response.WithError(err),
		)
	}

	log.Printf("[CleanDuplicateArticles] 删除 %d 篇重复文章", deleted)
	if deleted == 0 {
		return "没有发现重复文章", 0, nil
	}
	return fmt.Sprintf("清理重复文章成功，共删除 %d 篇", deleted), deleted, nil
}
