package warehouse

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"airsense/backend/services/dashboard-service/internal/cache"
	"airsense/backend/services/dashboard-service/internal/models"
)

// CachedRepository memoizes warehouse queries for a bounded time so dashboard
// refreshes do not hammer the warehouse. Only successful results are cached;
// any cache failure falls through to the underlying repository.
type CachedRepository struct {
	repo  Repository
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedRepository wraps repo with a ttl-bounded cache.
func NewCachedRepository(repo Repository, c cache.Cache, ttl time.Duration) *CachedRepository {
	return &CachedRepository{
		repo:  repo,
		cache: c,
		ttl:   ttl,
	}
}

// Latest returns the newest reading, served from cache when fresh.
func (r *CachedRepository) Latest(ctx context.Context) (*models.StoredReading, error) {
	if value, ok := r.lookup(ctx, "latest"); ok {
		var reading models.StoredReading
		if err := json.Unmarshal(value, &reading); err == nil {
			return &reading, nil
		}
	}

	reading, err := r.repo.Latest(ctx)
	if err != nil {
		return nil, err
	}
	r.store(ctx, "latest", reading)
	return reading, nil
}

// Since returns readings newer than cutoff, oldest first. Cutoffs are grouped
// to the minute when keying the cache; a sliding cutoff would otherwise
// produce a fresh key on every request and never hit.
func (r *CachedRepository) Since(ctx context.Context, cutoff time.Time) ([]models.StoredReading, error) {
	key := "since:" + strconv.FormatInt(cutoff.Truncate(time.Minute).UnixMilli(), 10)
	if value, ok := r.lookup(ctx, key); ok {
		var readings []models.StoredReading
		if err := json.Unmarshal(value, &readings); err == nil {
			return readings, nil
		}
	}

	readings, err := r.repo.Since(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, readings)
	return readings, nil
}

// Recent returns the newest limit readings, newest first.
func (r *CachedRepository) Recent(ctx context.Context, limit int) ([]models.StoredReading, error) {
	key := "recent:" + strconv.Itoa(limit)
	if value, ok := r.lookup(ctx, key); ok {
		var readings []models.StoredReading
		if err := json.Unmarshal(value, &readings); err == nil {
			return readings, nil
		}
	}

	readings, err := r.repo.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, readings)
	return readings, nil
}

func (r *CachedRepository) lookup(ctx context.Context, key string) ([]byte, bool) {
	value, ok, err := r.cache.Get(ctx, key)
	if err != nil || !ok {
		return nil, false
	}
	return value, true
}

func (r *CachedRepository) store(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = r.cache.Set(ctx, key, data, r.ttl)
}
