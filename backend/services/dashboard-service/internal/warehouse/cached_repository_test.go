package warehouse

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"airsense/backend/services/dashboard-service/internal/models"
)

type countingRepo struct {
	mu      sync.Mutex
	latest  *models.StoredReading
	rows    []models.StoredReading
	calls   int
	nextErr error
}

func (f *countingRepo) Latest(_ context.Context) (*models.StoredReading, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.nextErr != nil {
		return nil, f.nextErr
	}
	return f.latest, nil
}

func (f *countingRepo) Since(_ context.Context, _ time.Time) ([]models.StoredReading, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.rows, f.nextErr
}

func (f *countingRepo) Recent(_ context.Context, _ int) ([]models.StoredReading, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.rows, f.nextErr
}

func (f *countingRepo) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type recordingCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	keys    []string
	getErr  error
	missAll bool
}

func newRecordingCache() *recordingCache {
	return &recordingCache{entries: make(map[string][]byte)}
}

func (c *recordingCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keys = append(c.keys, key)
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	if c.missAll {
		return nil, false, nil
	}
	value, ok := c.entries[key]
	return value, ok, nil
}

func (c *recordingCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *recordingCache) requestedKeys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

func TestCachedLatestServesFromCache(t *testing.T) {
	device := "esp32-1"
	repo := &countingRepo{latest: &models.StoredReading{DeviceID: &device}}
	cache := newRecordingCache()
	cached := NewCachedRepository(repo, cache, time.Minute)

	first, err := cached.Latest(context.Background())
	if err != nil {
		t.Fatalf("first Latest() error = %v", err)
	}
	second, err := cached.Latest(context.Background())
	if err != nil {
		t.Fatalf("second Latest() error = %v", err)
	}

	if repo.callCount() != 1 {
		t.Errorf("repo called %d times, want 1", repo.callCount())
	}
	if *first.DeviceID != *second.DeviceID {
		t.Errorf("cached reading differs: %v vs %v", *first.DeviceID, *second.DeviceID)
	}
}

func TestCachedLatestRefetchesOnMiss(t *testing.T) {
	device := "esp32-1"
	repo := &countingRepo{latest: &models.StoredReading{DeviceID: &device}}
	cache := newRecordingCache()
	cache.missAll = true
	cached := NewCachedRepository(repo, cache, time.Minute)

	if _, err := cached.Latest(context.Background()); err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if _, err := cached.Latest(context.Background()); err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if repo.callCount() != 2 {
		t.Errorf("repo called %d times, want 2 when cache always misses", repo.callCount())
	}
}

func TestCachedFallsThroughOnCacheFailure(t *testing.T) {
	device := "esp32-1"
	repo := &countingRepo{latest: &models.StoredReading{DeviceID: &device}}
	cache := newRecordingCache()
	cache.getErr = errors.New("redis down")
	cached := NewCachedRepository(repo, cache, time.Minute)

	reading, err := cached.Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if reading == nil || *reading.DeviceID != device {
		t.Errorf("reading = %v, want device %s", reading, device)
	}
}

func TestCachedDoesNotCacheErrors(t *testing.T) {
	repo := &countingRepo{nextErr: ErrNoData}
	cache := newRecordingCache()
	cached := NewCachedRepository(repo, cache, time.Minute)

	if _, err := cached.Latest(context.Background()); !errors.Is(err, ErrNoData) {
		t.Fatalf("Latest() error = %v, want ErrNoData", err)
	}
	if _, err := cached.Latest(context.Background()); !errors.Is(err, ErrNoData) {
		t.Fatalf("Latest() error = %v, want ErrNoData", err)
	}
	if repo.callCount() != 2 {
		t.Errorf("repo called %d times, want 2; errors must not be cached", repo.callCount())
	}
}

func TestCachedRecentKeysByLimit(t *testing.T) {
	repo := &countingRepo{rows: []models.StoredReading{}}
	cache := newRecordingCache()
	cached := NewCachedRepository(repo, cache, time.Minute)

	if _, err := cached.Recent(context.Background(), 10); err != nil {
		t.Fatalf("Recent(10) error = %v", err)
	}
	if _, err := cached.Recent(context.Background(), 50); err != nil {
		t.Fatalf("Recent(50) error = %v", err)
	}

	keys := cache.requestedKeys()
	if len(keys) != 2 || keys[0] == keys[1] {
		t.Errorf("expected distinct keys per limit, got %v", keys)
	}
	if repo.callCount() != 2 {
		t.Errorf("repo called %d times, want 2 for distinct limits", repo.callCount())
	}
}

func TestCachedSinceGroupsCutoffsByMinute(t *testing.T) {
	repo := &countingRepo{rows: []models.StoredReading{}}
	cache := newRecordingCache()
	cached := NewCachedRepository(repo, cache, time.Minute)

	base := time.Date(2025, 6, 1, 12, 0, 10, 0, time.UTC)
	if _, err := cached.Since(context.Background(), base); err != nil {
		t.Fatalf("Since() error = %v", err)
	}
	if _, err := cached.Since(context.Background(), base.Add(20*time.Second)); err != nil {
		t.Fatalf("Since() error = %v", err)
	}

	keys := cache.requestedKeys()
	if len(keys) != 2 || keys[0] != keys[1] {
		t.Fatalf("cutoffs within a minute should share a key, got %v", keys)
	}
	if repo.callCount() != 1 {
		t.Errorf("repo called %d times, want 1 for grouped cutoffs", repo.callCount())
	}

	if _, err := cached.Since(context.Background(), base.Add(2*time.Minute)); err != nil {
		t.Fatalf("Since() error = %v", err)
	}
	keys = cache.requestedKeys()
	if keys[2] == keys[0] {
		t.Errorf("cutoffs in different minutes should not share a key, got %v", keys)
	}
}
