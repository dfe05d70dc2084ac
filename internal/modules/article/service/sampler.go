package service

import (
	"math/rand"
	"sync"

	catalogDomain "github.com/rtcl/newsdesk/internal/modules/catalog/domain"
)

// Sampler selects the bounded subset of candidate feeds fetched in one
// aggregation pass. The subset is a deliberate load-shedding policy against
// the rate-limited conversion endpoint: one pass may not cover every source.
type Sampler interface {
	Sample(sources []catalogDomain.Source, limit int) []catalogDomain.Source
}

// randSampler shuffles with its own seeded source so the selection is
// reproducible when the seed is fixed.
type randSampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampler creates a shuffling sampler from the given seed
func NewSampler(seed int64) Sampler {
	return &randSampler{rng: rand.New(rand.NewSource(seed))}
}

func (r *randSampler) Sample(sources []catalogDomain.Source, limit int) []catalogDomain.Source {
	shuffled := make([]catalogDomain.Source, len(sources))
	copy(shuffled, sources)

	r.mu.Lock()
	r.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	r.mu.Unlock()

	if limit > 0 && len(shuffled) > limit {
		shuffled = shuffled[:limit]
	}
	return shuffled
}
