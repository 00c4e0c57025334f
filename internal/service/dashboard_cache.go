package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/painel-adm/revendas-api/internal/models"
	appErrors "github.com/painel-adm/revendas-api/pkg/errors"
)

// CacheRepository abstracts persistence for cached payloads.
type CacheRepository interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const dashboardCachePattern = "dash:*"

// DashboardCache holds the composed panel summary. The panel caches a single
// payload, so the surface is typed around it instead of exposing generic keys.
// Every method is best effort and tolerates a nil receiver, so services can
// call through without guarding for Redis-less deployments.
type DashboardCache struct {
	repo    CacheRepository
	metrics *MetricsService
	ttl     time.Duration
	logger  *zap.Logger
}

// NewDashboardCache constructs the summary cache with the configured TTL.
func NewDashboardCache(repo CacheRepository, metrics *MetricsService, ttl time.Duration, logger *zap.Logger) *DashboardCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardCache{repo: repo, metrics: metrics, ttl: ttl, logger: logger}
}

// GetResumo returns the cached summary when present. Repository errors count
// as misses so the dashboard degrades to direct reads.
func (c *DashboardCache) GetResumo(ctx context.Context) (*models.DashboardResumo, bool) {
	if c == nil || c.repo == nil {
		return nil, false
	}
	start := time.Now()
	var resumo models.DashboardResumo
	err := c.repo.Get(ctx, dashboardCacheKey, &resumo)
	duration := time.Since(start)
	if err != nil {
		if c.metrics != nil {
			c.metrics.RecordCacheOperation(false, duration)
		}
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			c.logger.Warn("dashboard cache read failed", zap.Error(err))
		}
		return nil, false
	}
	if c.metrics != nil {
		c.metrics.RecordCacheOperation(true, duration)
	}
	return &resumo, true
}

// SetResumo stores the composed summary for the configured TTL.
func (c *DashboardCache) SetResumo(ctx context.Context, resumo *models.DashboardResumo) {
	if c == nil || c.repo == nil || resumo == nil {
		return
	}
	start := time.Now()
	err := c.repo.Set(ctx, dashboardCacheKey, resumo, c.ttl)
	if c.metrics != nil {
		c.metrics.ObserveCacheWrite(time.Since(start))
	}
	if err != nil {
		c.logger.Warn("dashboard cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached summary. Revenda and admin mutations call this
// so the next dashboard read recomposes from the database.
func (c *DashboardCache) Invalidate(ctx context.Context) {
	if c == nil || c.repo == nil {
		return
	}
	if err := c.repo.DeleteByPattern(ctx, dashboardCachePattern); err != nil {
		c.logger.Warn("dashboard cache invalidate failed", zap.Error(err))
	}
}
