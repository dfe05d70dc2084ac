package service_test

import (
	"testing"
	"time"

	"github.com/rtcl/newsdesk/internal/modules/article/domain"
	"github.com/rtcl/newsdesk/internal/modules/grouping/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)

func newService() *service.Service {
	svc := service.New(7)
	svc.SetNow(func() time.Time { return fixedNow })
	return svc
}

func article(link, pubDate string, categories ...string) domain.NormalizedArticle {
	return domain.NormalizedArticle{
		RawArticle: domain.RawArticle{
			Title:      link,
			Link:       link,
			PubDate:    pubDate,
			Categories: categories,
		},
		Image: "https://cdn.example/img.jpg",
	}
}

func wordy(link, pubDate string, words int) domain.NormalizedArticle {
	a := article(link, pubDate)
	body := ""
	for i := 0; i < words; i++ {
		body += "word "
	}
	a.Description = body
	return a
}

func TestGroupByDate(t *testing.T) {
	svc := newService()

	items := []domain.NormalizedArticle{
		article("today", "2024-06-10 09:00:00"),
		article("three-days-ago", "2024-06-07 09:00:00"),
		article("outside-window", "2024-05-01 09:00:00"),
	}

	groups := svc.Group(items, domain.SortModeDate)

	// Exactly 7 buckets, today first, empty ones included
	require.Len(t, groups, 7)
	assert.Equal(t, "Today", groups[0].Label)
	assert.Equal(t, "Yesterday", groups[1].Label)
	assert.Equal(t, "3 days ago", groups[3].Label)
	assert.Equal(t, "6 days ago", groups[6].Label)

	require.Len(t, groups[0].Items, 1)
	assert.Equal(t, "today", groups[0].Items[0].Link)
	require.Len(t, groups[3].Items, 1)
	assert.Equal(t, "three-days-ago", groups[3].Items[0].Link)

	assert.Empty(t, groups[1].Items)

	// The out-of-window item appears nowhere
	total := 0
	for _, g := range groups {
		total += len(g.Items)
	}
	assert.Equal(t, 2, total)
}

func TestGroupByDateBucketsInClockZone(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	svc := service.New(7)
	svc.SetNow(func() time.Time { return time.Date(2024, 6, 10, 14, 0, 0, 0, loc) })

	// 22:30 -0500 on the 9th is already 12:30 on the 10th in the clock's
	// zone, so the item belongs to Today, not Yesterday
	items := []domain.NormalizedArticle{
		article("offset-zone", "Sun, 09 Jun 2024 22:30:00 -0500"),
	}

	groups := svc.Group(items, domain.SortModeDate)

	require.Len(t, groups, 7)
	require.Len(t, groups[0].Items, 1)
	assert.Equal(t, "offset-zone", groups[0].Items[0].Link)
	assert.Empty(t, groups[1].Items)
}

func TestGroupByTopic(t *testing.T) {
	svc := newService()

	items := []domain.NormalizedArticle{
		article("w1", "2024-06-10 09:00:00", "World"),
		article("b1", "2024-06-09 09:00:00", "Business", "Economy"),
		article("uncategorized", "2024-06-09 10:00:00"),
		article("w2", "2024-06-08 09:00:00", "World"),
	}

	groups := svc.Group(items, domain.SortModeTopic)

	// Only non-empty buckets, sorted lexicographically by label
	require.Len(t, groups, 3)
	assert.Equal(t, "Business", groups[0].Label)
	assert.Equal(t, "General", groups[1].Label)
	assert.Equal(t, "World", groups[2].Label)

	assert.Len(t, groups[2].Items, 2)
	require.Len(t, groups[1].Items, 1)
	assert.Equal(t, "uncategorized", groups[1].Items[0].Link)

	// Only the first category counts
	require.Len(t, groups[0].Items, 1)
	assert.Equal(t, "b1", groups[0].Items[0].Link)
}

func TestGroupByDifficulty(t *testing.T) {
	svc := newService()

	items := []domain.NormalizedArticle{
		wordy("short", "2024-06-10 09:00:00", 150),
		wordy("medium", "2024-06-10 09:00:00", 400),
		wordy("long", "2024-06-10 09:00:00", 900),
		wordy("exactly-200", "2024-06-09 09:00:00", 200),
		wordy("exactly-600", "2024-06-09 09:00:00", 600),
	}

	groups := svc.Group(items, domain.SortModeDifficulty)

	require.Len(t, groups, 3)
	assert.Equal(t, "Short (<200w)", groups[0].Label)
	assert.Equal(t, "Medium (200–600w)", groups[1].Label)
	assert.Equal(t, "Long (>600w)", groups[2].Label)

	shortLinks := links(groups[0].Items)
	mediumLinks := links(groups[1].Items)
	longLinks := links(groups[2].Items)

	assert.Equal(t, []string{"short"}, shortLinks)
	// Both boundaries land in Medium
	assert.ElementsMatch(t, []string{"medium", "exactly-200", "exactly-600"}, mediumLinks)
	assert.Equal(t, []string{"long"}, longLinks)
}

func TestGroupByDifficultyKeepsEmptyBuckets(t *testing.T) {
	svc := newService()

	groups := svc.Group(nil, domain.SortModeDifficulty)

	require.Len(t, groups, 3)
	for _, g := range groups {
		assert.Empty(t, g.Items)
	}
}

func links(items []domain.NormalizedArticle) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Link)
	}
	return out
}
