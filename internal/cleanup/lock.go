package cleanup

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgDatabase "terminal-terrace/mp-article/pkg/database"
)

const JobLockKey = "cleanup:job_lock"

// releaseScript 只删除自己持有的锁
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// JobLock 定时任务的互斥锁，保证多副本下同一时刻只有一个实例执行
type JobLock interface {
	// TryAcquire 获取失败时 ok 为 false，成功时需调用 release 释放
	TryAcquire(ctx context.Context) (release func(), ok bool, err error)
}

// RedisJobLock 基于 SET NX 的锁，过期时间兜底异常退出的实例
type RedisJobLock struct {
	redis *pkgDatabase.RedisClient
	key   string
	ttl   time.Duration
}

func NewRedisJobLock(redis *pkgDatabase.RedisClient, ttl time.Duration) *RedisJobLock {
	return &RedisJobLock{redis: redis, key: JobLockKey, ttl: ttl}
}

func (l *RedisJobLock) TryAcquire(ctx context.Context) (func(), bool, error) {
	token := uuid.NewString()
	ok, err := l.redis.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil || !ok {
		return nil, false, err
	}

	return func() { l.release(token) }, true, nil
}

// release 失败时锁会保留到 TTL 过期
func (l *RedisJobLock) release(token string) {
	// 任务的 ctx 可能已取消，释放锁单独设置超时
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := releaseScript.Run(ctx, l.redis, []string{l.key}, token).Err(); err != nil {
		log.Printf("[Cron] 释放任务锁 %s 失败，将在 %s 后过期: %v", l.key, l.ttl, err)
	}
}

// noopLock 未配置 Redis 时使用，总是获取成功
type noopLock struct{}

func (noopLock) TryAcquire(context.Context) (func(), bool, error) {
	return func() {}, true, nil
}

// NewJobLock redis 为空时返回不加锁的实现
func NewJobLock(redis *pkgDatabase.RedisClient, ttl time.Duration) JobLock {
	if redis == nil {
		return noopLock{}
	}
	return NewRedisJobLock(redis, ttl)
}
