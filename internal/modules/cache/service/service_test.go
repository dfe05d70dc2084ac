package service_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	articleDomain "github.com/rtcl/newsdesk/internal/modules/article/domain"
	"github.com/rtcl/newsdesk/internal/modules/cache/domain"
	"github.com/rtcl/newsdesk/internal/modules/cache/repository"
	"github.com/rtcl/newsdesk/internal/modules/cache/service"
	catalogDomain "github.com/rtcl/newsdesk/internal/modules/catalog/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRepo is an in-memory Repository with injectable failures
type stubRepo struct {
	mu       sync.Mutex
	entries  map[string]domain.Entry
	loadErr  error
	storeErr error
	loads    int
}

func newStubRepo() *stubRepo {
	return &stubRepo{entries: map[string]domain.Entry{}}
}

func (r *stubRepo) Load() (map[string]domain.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loads++
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	out := make(map[string]domain.Entry, len(r.entries))
	for k, v := range r.entries {
		out[k] = v
	}
	return out, nil
}

func (r *stubRepo) Store(entries map[string]domain.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.storeErr != nil {
		return r.storeErr
	}
	r.entries = entries
	return nil
}

func (r *stubRepo) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = map[string]domain.Entry{}
	return nil
}

func payload(titles ...string) []articleDomain.NormalizedArticle {
	out := make([]articleDomain.NormalizedArticle, 0, len(titles))
	for _, title := range titles {
		out = append(out, articleDomain.NormalizedArticle{
			RawArticle: articleDomain.RawArticle{Title: title, Link: "https://example.com/" + title},
			Image:      "https://example.com/img.jpg",
		})
	}
	return out
}

func TestKeyCanonicalization(t *testing.T) {
	assert.Equal(t,
		service.Key([]catalogDomain.Language{"en", "ko"}),
		service.Key([]catalogDomain.Language{"ko", "en"}))

	assert.Equal(t, "en,ko",
		service.Key([]catalogDomain.Language{"ko", "en", "ko"}))

	assert.Equal(t, "en", service.Key([]catalogDomain.Language{"en"}))
}

func TestGetSetWithTTL(t *testing.T) {
	repo := newStubRepo()
	svc := service.New(repo)

	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	svc.SetNow(func() time.Time { return now })

	svc.Set("en", payload("fresh"))

	got, ok := svc.Get("en", time.Second)
	require.True(t, ok)
	assert.Equal(t, "fresh", got[0].Title)

	// Advance past the TTL: the entry is evicted, not served
	now = now.Add(1001 * time.Millisecond)
	_, ok = svc.Get("en", time.Second)
	assert.False(t, ok)

	// Eviction is durable: the entry does not resurrect on the next read
	_, ok = svc.Get("en", time.Second)
	assert.False(t, ok)
	assert.NotContains(t, repo.entries, "en")
}

func TestSetSupersedesWhole(t *testing.T) {
	repo := newStubRepo()
	svc := service.New(repo)

	svc.Set("en", payload("old"))
	svc.Set("en", payload("new", "newer"))

	got, ok := svc.Get("en", time.Hour)
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].Title)
}

func TestHydrate(t *testing.T) {
	repo := newStubRepo()
	repo.entries["ja"] = domain.Entry{Timestamp: time.Now(), Payload: payload("hydrated")}

	svc := service.New(repo)
	svc.Hydrate()

	got, ok := svc.Get("ja", time.Hour)
	require.True(t, ok)
	assert.Equal(t, "hydrated", got[0].Title)

	// Idempotent: the durable store is read exactly once per process
	svc.Hydrate()
	svc.Hydrate()
	assert.Equal(t, 1, repo.loads)
}

func TestHydrateToleratesBrokenStore(t *testing.T) {
	repo := newStubRepo()
	repo.loadErr = errors.New("corrupt store")

	svc := service.New(repo)
	svc.Hydrate()

	_, ok := svc.Get("en", time.Hour)
	assert.False(t, ok)
}

func TestStoreFailureKeepsMemoryAuthoritative(t *testing.T) {
	repo := newStubRepo()
	repo.storeErr = errors.New("quota exceeded")

	svc := service.New(repo)
	svc.Set("fr", payload("kept"))

	got, ok := svc.Get("fr", time.Hour)
	require.True(t, ok)
	assert.Equal(t, "kept", got[0].Title)
}

func TestWithDedupCoalescesConcurrentCalls(t *testing.T) {
	svc := service.New(newStubRepo())

	var calls atomic.Int32
	release := make(chan struct{})
	producer := func() ([]articleDomain.NormalizedArticle, error) {
		calls.Add(1)
		<-release
		return payload("shared"), nil
	}

	const callers = 5
	results := make(chan []articleDomain.NormalizedArticle, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := svc.WithDedup("k", producer)
			assert.NoError(t, err)
			results <- got
		}()
	}

	// Let every caller reach the join point before the producer settles
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	close(results)

	assert.Equal(t, int32(1), calls.Load())
	for got := range results {
		require.Len(t, got, 1)
		assert.Equal(t, "shared", got[0].Title)
	}
}

func TestWithDedupClearsMarkerAfterSettle(t *testing.T) {
	svc := service.New(newStubRepo())

	var calls atomic.Int32
	producer := func() ([]articleDomain.NormalizedArticle, error) {
		calls.Add(1)
		return nil, errors.New("boom")
	}

	_, err := svc.WithDedup("k", producer)
	assert.Error(t, err)

	// The failed flight is settled: a later call produces again
	_, err = svc.WithDedup("k", producer)
	assert.Error(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClear(t *testing.T) {
	repo := newStubRepo()
	svc := service.New(repo)

	svc.Set("en", payload("gone"))
	svc.Clear()

	_, ok := svc.Get("en", time.Hour)
	assert.False(t, ok)
	assert.Empty(t, repo.entries)
}

var _ repository.Repository = (*stubRepo)(nil)
