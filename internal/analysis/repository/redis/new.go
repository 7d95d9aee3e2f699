package redis

import (
	"time"

	"review-insight-srv/internal/analysis"
	"review-insight-srv/internal/analysis/repository"
	"review-insight-srv/pkg/log"
	pkgRedis "review-insight-srv/pkg/redis"
)

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
	ttl   time.Duration
}

// New creates a redis-backed analysis cache repository.
func New(redisClient pkgRedis.IRedis, l log.Logger, ttl time.Duration) repository.Repository {
	if ttl <= 0 {
		ttl = analysis.DefaultCacheTTL
	}
	return &implRepository{
		redis: redisClient,
		l:     l,
		ttl:   ttl,
	}
}
