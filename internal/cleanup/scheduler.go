package cleanup

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron       *cron.Cron
	orphans    OrphanCleaner
	duplicates DuplicateCleaner
	lock       JobLock
	schedule   string
	timeout    time.Duration
	entryID    cron.EntryID
}

// NewScheduler timeout 为单次清理的最长执行时间
func NewScheduler(orphans OrphanCleaner, duplicates DuplicateCleaner, lock JobLock, schedule string, timeout time.Duration) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		orphans:    orphans,
		duplicates: duplicates,
		lock:       lock,
		schedule:   schedule,
		timeout:    timeout,
	}
}

func (s *Scheduler) Start() error {
	id, err := s.cron.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		s.RunOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("无效的清理计划 %q: %w", s.schedule, err)
	}
	s.entryID = id

	s.cron.Start()
	log.Printf("[Cron] Cleanup scheduler started (schedule: %s)", s.schedule)
	return nil
}

// RunOnce 执行一次清理，锁被占用时跳过
// 返回是否实际执行
func (s *Scheduler) RunOnce(ctx context.Context) bool {
	release, ok, err := s.lock.TryAcquire(ctx)
	if err != nil {
		log.Printf("[Cron] 获取清理锁失败，跳过本次清理: %v", err)
		return false
	}
	if !ok {
		log.Println("[Cron] 清理任务正在其他实例执行，跳过")
		return false
	}
	defer release()

	log.Println("[Cron] Cleaning articles...")
	if _, err := s.orphans.CleanOrphanArticles(ctx); err != nil {
		log.Printf("[Cron] 清理无效文章失败: %v", err)
	}
	if msg, _, err := s.duplicates.CleanDuplicateArticles(ctx); err != nil {
		log.Printf("[Cron] 清理重复文章失败: %v", err)
	} else {
		log.Printf("[Cron] %s", msg)
	}
	return true
}

// NextRun 下次执行时间
func (s *Scheduler) NextRun() time.Time {
	return s.cron.Entry(s.entryID).Next
}

func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
