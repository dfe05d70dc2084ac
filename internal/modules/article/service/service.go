package service

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/rtcl/newsdesk/internal/modules/article/domain"
	"github.com/rtcl/newsdesk/internal/modules/article/normalizer"
	catalogDomain "github.com/rtcl/newsdesk/internal/modules/catalog/domain"
	catalogService "github.com/rtcl/newsdesk/internal/modules/catalog/service"
	cacheService "github.com/rtcl/newsdesk/internal/modules/cache/service"
	"github.com/rtcl/newsdesk/internal/shared/config"
	"github.com/samber/lo"
)

// Fetcher fetches one feed's raw articles. A failed fetch contributes zero
// articles to the aggregate and never aborts it.
type Fetcher interface {
	Fetch(ctx context.Context, source catalogDomain.Source) ([]domain.RawArticle, error)
}

// Service runs the aggregation pipeline and publishes its results through
// the session cache to the presentation boundary.
type Service struct {
	cfg     *config.Config
	catalog *catalogService.Service
	fetcher Fetcher
	norm    *normalizer.Normalizer
	cache   *cacheService.Service
	sampler Sampler
	now     func() time.Time

	mu        sync.RWMutex
	gen       uint64
	items     []domain.NormalizedArticle
	loading   bool
	updatedAt time.Time
}

// New creates a new article service
func New(cfg *config.Config, catalog *catalogService.Service, fetcher Fetcher, norm *normalizer.Normalizer, cache *cacheService.Service, sampler Sampler) *Service {
	return &Service{
		cfg:     cfg,
		catalog: catalog,
		fetcher: fetcher,
		norm:    norm,
		cache:   cache,
		sampler: sampler,
		now:     time.Now,
	}
}

// SetNow overrides the clock, for tests
func (s *Service) SetNow(now func() time.Time) {
	s.now = now
}

// Load answers a language selection through the session cache: a fresh
// cached aggregate is returned as-is, otherwise exactly one aggregation per
// key runs and is written through. Load never fails; an unreachable world
// is an empty result.
func (s *Service) Load(ctx context.Context, langs []catalogDomain.Language) []domain.NormalizedArticle {
	langs = s.catalog.Normalize(langs)
	key := cacheService.Key(langs)
	s.cache.Hydrate()

	if payload, ok := s.cache.Get(key, s.cfg.CacheTTL()); ok {
		gen := s.begin()
		s.publish(gen, payload)
		return payload
	}

	gen := s.begin()
	payload, _ := s.cache.WithDedup(key, func() ([]domain.NormalizedArticle, error) {
		items := s.Aggregate(ctx, langs)
		s.cache.Set(key, items)
		return items, nil
	})
	s.publish(gen, payload)
	return payload
}

// Aggregate fetches a sampled subset of the selected languages' feeds,
// deduplicates by link, normalizes, filters to the rolling recent window
// and sorts by publish date descending.
func (s *Service) Aggregate(ctx context.Context, langs []catalogDomain.Language) []domain.NormalizedArticle {
	sources := s.catalog.SourcesFor(langs)
	sampled := s.sampler.Sample(sources, s.cfg.SampleSize)

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	raw := make([]domain.RawArticle, 0)

	for i, src := range sampled {
		wg.Add(1)
		go func(idx int, source catalogDomain.Source) {
			defer wg.Done()

			// Stagger launches so a burst of feeds does not trip the
			// conversion endpoint's rate limit
			select {
			case <-time.After(time.Duration(idx) * s.cfg.Stagger()):
			case <-ctx.Done():
				return
			}

			items, err := s.fetcher.Fetch(ctx, source)
			if err != nil {
				slog.Warn("Feed fetch failed", "feed", source.Name, "error", err)
				return
			}

			mu.Lock()
			raw = append(raw, items...)
			mu.Unlock()
		}(i, src)
	}
	wg.Wait()

	// Dedup by link, first occurrence wins. The dedup mark is only placed
	// once an article survives normalization, so a duplicate of a rejected
	// item still gets its chance.
	seen := make(map[string]struct{}, len(raw))
	normalized := make([]domain.NormalizedArticle, 0, len(raw))
	for _, item := range raw {
		if item.Link == "" {
			continue
		}
		if _, dup := seen[item.Link]; dup {
			continue
		}
		article, err := s.norm.Normalize(item)
		if err != nil {
			continue
		}
		seen[item.Link] = struct{}{}
		normalized = append(normalized, article)
	}

	// Keep only the trailing window: [today-(windowDays-1) at local
	// midnight, now]. Unparsable dates are dropped.
	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -(s.cfg.WindowDays - 1))

	fresh := lo.Filter(normalized, func(article domain.NormalizedArticle, _ int) bool {
		published, err := article.PublishedAt()
		if err != nil {
			return false
		}
		return !published.Before(start) && !published.After(now)
	})

	sort.SliceStable(fresh, func(i, j int) bool {
		di, _ := fresh[i].PublishedAt()
		dj, _ := fresh[j].PublishedAt()
		return dj.Before(di)
	})

	slog.Info("Aggregation complete",
		"languages", langs,
		"feeds_sampled", len(sampled),
		"raw_items", len(raw),
		"kept", len(fresh))

	return fresh
}

// Status describes the published reader state for the consumer boundary
type Status struct {
	Loading   bool      `json:"loading"`
	Total     int       `json:"total"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Status reports the current loading flag and result size
func (s *Service) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Status{Loading: s.loading, Total: len(s.items), UpdatedAt: s.updatedAt}
}

// Top returns the first n of the most recently published aggregate, the
// hero/recommendation slice.
func (s *Service) Top(n int) []domain.NormalizedArticle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n > len(s.items) {
		n = len(s.items)
	}
	return s.items[:n]
}

// begin opens a new invocation generation and raises the loading flag.
// Every Load supersedes whatever was in flight before it.
func (s *Service) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.loading = true
	return s.gen
}

// publish installs a result unless a newer invocation superseded this one,
// in which case the stale result is discarded.
func (s *Service) publish(gen uint64, items []domain.NormalizedArticle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	s.items = items
	s.loading = false
	s.updatedAt = s.now()
}
