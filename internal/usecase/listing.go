package usecase

import (
	"context"
	"strings"

	"activevacancy/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VisaJobsRepo is the storage surface the listing and submission flows need.
type VisaJobsRepo interface {
	List(ctx context.Context) ([]domain.VisaJob, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.VisaJob, error)
}

// VisaJobsCache holds the full listing for a fixed TTL. Implementations
// treat any backend failure as a miss.
type VisaJobsCache interface {
	Get(ctx context.Context) ([]domain.VisaJob, bool)
	Set(ctx context.Context, jobs []domain.VisaJob)
	Invalidate(ctx context.Context)
}

// Listing serves the public visa-job board: cached fetch plus the two
// free-text filters.
type Listing struct {
	repo  VisaJobsRepo
	cache VisaJobsCache
	log   *zap.Logger
}

func NewListing(repo VisaJobsRepo, cache VisaJobsCache, log *zap.Logger) *Listing {
	return &Listing{repo: repo, cache: cache, log: log}
}

// VisaJobs returns the filtered listing. Within the cache TTL the cached set
// is served; forceRefresh bypasses the cache and repopulates it.
func (l *Listing) VisaJobs(ctx context.Context, location, search string, forceRefresh bool) ([]domain.VisaJob, error) {
	var jobs []domain.VisaJob
	if !forceRefresh && l.cache != nil {
		if cached, ok := l.cache.Get(ctx); ok {
			jobs = cached
		}
	}
	if jobs == nil {
		fresh, err := l.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		jobs = fresh
		if l.cache != nil {
			l.cache.Set(ctx, jobs)
		}
	}
	return FilterVisaJobs(jobs, location, search), nil
}

// VisaJob loads a single posting, bypassing the cache.
func (l *Listing) VisaJob(ctx context.Context, id uuid.UUID) (*domain.VisaJob, error) {
	return l.repo.Get(ctx, id)
}

// FilterVisaJobs applies the location filter (against country) and the title
// search, combined with AND. Matching is case-insensitive substring; an
// empty term matches everything.
func FilterVisaJobs(jobs []domain.VisaJob, location, search string) []domain.VisaJob {
	location = strings.ToLower(strings.TrimSpace(location))
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]domain.VisaJob, 0, len(jobs))
	for _, j := range jobs {
		if location != "" && !strings.Contains(strings.ToLower(j.Country), location) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(j.Title), search) {
			continue
		}
		out = append(out, j)
	}
	return out
}

// FilterJobs is the general-board counterpart: location matches the posting
// location, search matches the title. Same AND semantics.
func FilterJobs(jobs []domain.Job, location, search string) []domain.Job {
	location = strings.ToLower(strings.TrimSpace(location))
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if location != "" && !strings.Contains(strings.ToLower(j.Location), location) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(j.Title), search) {
			continue
		}
		out = append(out, j)
	}
	return out
}
