package service

import (
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	articleDomain "github.com/rtcl/newsdesk/internal/modules/article/domain"
	"github.com/rtcl/newsdesk/internal/modules/cache/domain"
	"github.com/rtcl/newsdesk/internal/modules/cache/repository"
	catalogDomain "github.com/rtcl/newsdesk/internal/modules/catalog/domain"
	"github.com/samber/lo"
)

// Service is the session cache: an in-memory key to entry map mirrored to a
// durable store on every write, with lazy TTL expiry and in-flight request
// coalescing. The in-memory map is authoritative; the durable mirror is
// best-effort only.
type Service struct {
	repo repository.Repository
	now  func() time.Time

	mu       sync.Mutex
	entries  map[string]domain.Entry
	pending  map[string]*inflight
	hydrated bool
}

// inflight is one shared producer call joined by every concurrent caller
// for the same key.
type inflight struct {
	done    chan struct{}
	payload []articleDomain.NormalizedArticle
	err     error
}

// New creates a new session cache service
func New(repo repository.Repository) *Service {
	return &Service{
		repo:    repo,
		now:     time.Now,
		entries: make(map[string]domain.Entry),
		pending: make(map[string]*inflight),
	}
}

// SetNow overrides the clock, for tests
func (s *Service) SetNow(now func() time.Time) {
	s.now = now
}

// Key derives the canonical cache key for a language selection: sorted,
// deduplicated codes, so the same effective request always maps to the same
// key regardless of input ordering.
func Key(langs []catalogDomain.Language) string {
	codes := lo.Map(langs, func(lang catalogDomain.Language, _ int) string {
		return string(lang)
	})
	sort.Strings(codes)
	return strings.Join(lo.Uniq(codes), ",")
}

// Hydrate merges the durable store into memory. Lazy and idempotent: only
// the first call per process lifetime reads the store, and malformed or
// absent durable data means nothing to hydrate, never an error.
func (s *Service) Hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return
	}
	s.hydrated = true

	entries, err := s.repo.Load()
	if err != nil {
		slog.Debug("Session cache hydration skipped", "error", err)
		return
	}
	for key, entry := range entries {
		s.entries[key] = entry
	}
}

// Get returns the cached payload for key if it is younger than ttl. A stale
// entry is evicted from memory and the durable store, and reported absent.
func (s *Service) Get(key string, ttl time.Duration) ([]articleDomain.NormalizedArticle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if s.now().Sub(entry.Timestamp) > ttl {
		delete(s.entries, key)
		s.persistLocked()
		return nil, false
	}
	return entry.Payload, true
}

// Set upserts an entry stamped with the current time and re-serializes the
// whole map to the durable store.
func (s *Service) Set(key string, payload []articleDomain.NormalizedArticle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = domain.Entry{Timestamp: s.now(), Payload: payload}
	s.persistLocked()
}

// WithDedup guarantees at most one outstanding producer per key. Callers
// arriving while a producer for the same key is in flight join it and
// observe the same result or error; the marker is cleared when the shared
// call settles.
func (s *Service) WithDedup(key string, producer func() ([]articleDomain.NormalizedArticle, error)) ([]articleDomain.NormalizedArticle, error) {
	s.mu.Lock()
	if fl, ok := s.pending[key]; ok {
		s.mu.Unlock()
		<-fl.done
		return fl.payload, fl.err
	}

	fl := &inflight{done: make(chan struct{})}
	s.pending[key] = fl
	s.mu.Unlock()

	payload, err := producer()

	s.mu.Lock()
	fl.payload, fl.err = payload, err
	delete(s.pending, key)
	s.mu.Unlock()
	close(fl.done)

	return payload, err
}

// Clear wipes the cache from memory and the durable store
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]domain.Entry)
	if err := s.repo.Clear(); err != nil {
		slog.Warn("Failed to clear durable cache store", "error", err)
	}
}

// persistLocked mirrors the in-memory map to the durable store. Write
// failures are swallowed: the in-memory cache stays authoritative for the
// rest of the process lifetime.
func (s *Service) persistLocked() {
	snapshot := make(map[string]domain.Entry, len(s.entries))
	for key, entry := range s.entries {
		snapshot[key] = entry
	}
	if err := s.repo.Store(snapshot); err != nil {
		slog.Warn("Failed to persist session cache", "error", err)
	}
}
