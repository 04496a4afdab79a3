package cache

import (
	"context"
	"encoding/json"
	"time"

	"activevacancy/internal/domain"

	"github.com/redis/go-redis/v9"
)

const visaJobsKey = "activevacancy:visa_jobs:all"

// NewClient creates a Redis client with conservative timeouts.
func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
}

// VisaJobs caches the full visa-job listing under a fixed TTL. Any Redis
// failure is treated as a cache miss so the listing falls through to the
// repository.
type VisaJobs struct {
	client *redis.Client
	ttl    time.Duration
}

func NewVisaJobs(client *redis.Client, ttl time.Duration) *VisaJobs {
	return &VisaJobs{client: client, ttl: ttl}
}

func (c *VisaJobs) Get(ctx context.Context) ([]domain.VisaJob, bool) {
	raw, err := c.client.Get(ctx, visaJobsKey).Result()
	if err != nil {
		return nil, false
	}
	var jobs []domain.VisaJob
	if err := json.Unmarshal([]byte(raw), &jobs); err != nil {
		return nil, false
	}
	return jobs, true
}

func (c *VisaJobs) Set(ctx context.Context, jobs []domain.VisaJob) {
	raw, err := json.Marshal(jobs)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, visaJobsKey, raw, c.ttl).Err()
}

// Invalidate drops the cached listing. Called after every admin mutation.
func (c *VisaJobs) Invalidate(ctx context.Context) {
	_ = c.client.Del(ctx, visaJobsKey).Err()
}
