package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/rtcl/newsdesk/internal/modules/article/domain"
	"github.com/rtcl/newsdesk/internal/modules/article/normalizer"
)

const (
	labelShort  = "Short (<200w)"
	labelMedium = "Medium (200–600w)"
	labelLong   = "Long (>600w)"
)

// Service partitions an aggregation result into labeled groups for one of
// the sort modes. Pure and synchronous: the view is always recomputed from
// its inputs, never persisted.
type Service struct {
	windowDays int
	now        func() time.Time
}

// New creates a new grouping service
func New(windowDays int) *Service {
	return &Service{windowDays: windowDays, now: time.Now}
}

// SetNow overrides the clock, for tests
func (s *Service) SetNow(now func() time.Time) {
	s.now = now
}

// Group partitions items according to mode
func (s *Service) Group(items []domain.NormalizedArticle, mode domain.SortMode) []domain.Group {
	switch mode {
	case domain.SortModeTopic:
		return s.groupByTopic(items)
	case domain.SortModeDifficulty:
		return s.groupByDifficulty(items)
	default:
		return s.groupByDate(items)
	}
}

// dayKeys returns the local calendar days of the window, today first
func (s *Service) dayKeys() []string {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	keys := make([]string, 0, s.windowDays)
	for i := 0; i < s.windowDays; i++ {
		keys = append(keys, today.AddDate(0, 0, -i).Format("2006-01-02"))
	}
	return keys
}

// dayKey is the calendar day an article was published, in loc. Feed dates
// carry their own zone offsets, so the day must be read in the clock's zone
// to line up with the window's buckets.
func dayKey(article domain.NormalizedArticle, loc *time.Location) (string, bool) {
	published, err := article.PublishedAt()
	if err != nil {
		return "", false
	}
	return published.In(loc).Format("2006-01-02"), true
}

// groupByDate yields one bucket per window day, today first, empty buckets
// included. Items outside the window are excluded defensively: the pipeline
// already filtered them, but grouped input is not required to come from it.
func (s *Service) groupByDate(items []domain.NormalizedArticle) []domain.Group {
	keys := s.dayKeys()
	loc := s.now().Location()

	buckets := make(map[string][]domain.NormalizedArticle, len(keys))
	for _, key := range keys {
		buckets[key] = []domain.NormalizedArticle{}
	}
	for _, item := range items {
		key, ok := dayKey(item, loc)
		if !ok {
			continue
		}
		if _, inWindow := buckets[key]; !inWindow {
			continue
		}
		buckets[key] = append(buckets[key], item)
	}

	groups := make([]domain.Group, 0, len(keys))
	for i, key := range keys {
		var label string
		switch i {
		case 0:
			label = "Today"
		case 1:
			label = "Yesterday"
		default:
			label = fmt.Sprintf("%d days ago", i)
		}
		groups = append(groups, domain.Group{Label: label, Items: buckets[key]})
	}
	return groups
}

// groupByTopic buckets by each item's first category, "General" when it has
// none. Only non-empty buckets exist, sorted lexicographically by label.
func (s *Service) groupByTopic(items []domain.NormalizedArticle) []domain.Group {
	keys := s.dayKeys()
	loc := s.now().Location()
	window := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		window[key] = struct{}{}
	}

	buckets := make(map[string][]domain.NormalizedArticle)
	for _, item := range items {
		key, ok := dayKey(item, loc)
		if !ok {
			continue
		}
		if _, inWindow := window[key]; !inWindow {
			continue
		}
		topic := item.FirstCategory()
		if topic == "" {
			topic = "General"
		}
		buckets[topic] = append(buckets[topic], item)
	}

	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	groups := make([]domain.Group, 0, len(labels))
	for _, label := range labels {
		groups = append(groups, domain.Group{Label: label, Items: buckets[label]})
	}
	return groups
}

// groupByDifficulty yields the three fixed word-count buckets in fixed
// order, empty buckets included. 200 and 600 words both land in Medium.
func (s *Service) groupByDifficulty(items []domain.NormalizedArticle) []domain.Group {
	keys := s.dayKeys()
	loc := s.now().Location()
	window := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		window[key] = struct{}{}
	}

	buckets := map[string][]domain.NormalizedArticle{
		labelShort:  {},
		labelMedium: {},
		labelLong:   {},
	}
	for _, item := range items {
		key, ok := dayKey(item, loc)
		if !ok {
			continue
		}
		if _, inWindow := window[key]; !inWindow {
			continue
		}
		wc := normalizer.WordCount(item.RawArticle)
		switch {
		case wc < 200:
			buckets[labelShort] = append(buckets[labelShort], item)
		case wc <= 600:
			buckets[labelMedium] = append(buckets[labelMedium], item)
		default:
			buckets[labelLong] = append(buckets[labelLong], item)
		}
	}

	return []domain.Group{
		{Label: labelShort, Items: buckets[labelShort]},
		{Label: labelMedium, Items: buckets[labelMedium]},
		{Label: labelLong, Items: buckets[labelLong]},
	}
}
