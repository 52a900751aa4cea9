package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"pos-service/internal/models"
	"pos-service/internal/repository"
)

// CachedReportRepository fronts the reporting queries with redis. Only the
// fixed-key reads are cached (today's summary, the trailing series, store
// stats); range-parameterised queries would grow an unbounded key space for
// nothing on a single-user store. Redis being down never fails a read, the
// call just falls through to Postgres.
type CachedReportRepository struct {
	realRepo repository.ReportRepository
	redis    *redis.Client
	ttl      time.Duration
}

func NewCachedReportRepository(realRepo repository.ReportRepository, redis *redis.Client) *CachedReportRepository {
	return &CachedReportRepository{
		realRepo: realRepo,
		redis:    redis,
		ttl:      1 * time.Minute,
	}
}

const (
	keyTodaySummary = "reports:today"
	keySeriesPrefix = "reports:series:"
	keyStoreStats   = "reports:stats"
)

func seriesKey(days int) string {
	if days <= 0 {
		days = 7
	}
	return keySeriesPrefix + strconv.Itoa(days)
}

func (c *CachedReportRepository) TodaySummary(ctx context.Context) (*models.SalesSummary, error) {
	var cached models.SalesSummary
	if c.lookup(ctx, keyTodaySummary, &cached) {
		return &cached, nil
	}

	summary, err := c.realRepo.TodaySummary(ctx)
	if err != nil {
		return nil, err
	}

	c.store(ctx, keyTodaySummary, summary)
	return summary, nil
}

func (c *CachedReportRepository) PeriodSummary(ctx context.Context, start, end time.Time) (*models.SalesSummary, error) {
	return c.realRepo.PeriodSummary(ctx, start, end)
}

func (c *CachedReportRepository) TopProducts(ctx context.Context, start, end *time.Time, limit int) ([]models.ProductRanking, error) {
	return c.realRepo.TopProducts(ctx, start, end, limit)
}

func (c *CachedReportRepository) DailyRevenueSeries(ctx context.Context, days int) ([]models.DailyRevenue, error) {
	key := seriesKey(days)

	var cached []models.DailyRevenue
	if c.lookup(ctx, key, &cached) {
		return cached, nil
	}

	series, err := c.realRepo.DailyRevenueSeries(ctx, days)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, series)
	return series, nil
}

func (c *CachedReportRepository) StoreStats(ctx context.Context) (*models.StoreStats, error) {
	var cached models.StoreStats
	if c.lookup(ctx, keyStoreStats, &cached) {
		return &cached, nil
	}

	stats, err := c.realRepo.StoreStats(ctx)
	if err != nil {
		return nil, err
	}

	c.store(ctx, keyStoreStats, stats)
	return stats, nil
}

// InvalidateReports drops every fixed report key. Callers invoke it after
// any mutation of the sales table.
func (c *CachedReportRepository) InvalidateReports(ctx context.Context) {
	keys := []string{keyTodaySummary, keyStoreStats}

	iter := c.redis.Scan(ctx, 0, keySeriesPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Printf("Failed to scan report cache keys: %v", err)
	}

	if err := c.redis.Del(ctx, keys...).Err(); err != nil {
		log.Printf("Failed to invalidate report cache: %v", err)
	}
}

func (c *CachedReportRepository) lookup(ctx context.Context, key string, dst any) bool {
	data, err := c.redis.Get(ctx, key).Bytes()

	switch {
	case err == nil:
		if err := json.Unmarshal(data, dst); err != nil {
			log.Printf("Failed to unmarshal cached report (continuing with DB): %v", err)
			return false
		}
		return true

	case errors.Is(err, redis.Nil):
		return false

	default:
		log.Printf("Redis error (continuing with DB): %v", err)
		return false
	}
}

func (c *CachedReportRepository) store(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Failed to marshal report for cache: %v", err)
		return
	}

	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Printf("Failed to cache report %s: %v", key, err)
	}
}
