package domain

import (
	"time"

	"github.com/rtcl/newsdesk/internal/shared/errors"
	"github.com/samber/lo"
)

// Enclosure is an RSS enclosure as returned by the feed conversion endpoint
type Enclosure struct {
	Link      string `json:"link"`
	Thumbnail string `json:"thumbnail"`
	Type      string `json:"type"`
}

// RawArticle is one unprocessed item as returned by the feed conversion
// endpoint. The shape is loose: converters disagree on which field carries
// the publish date, so all known candidates are kept and resolved in order.
type RawArticle struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	GUID        string    `json:"guid"`
	PubDate     string    `json:"pubDate"`
	ISODate     string    `json:"isoDate"`
	Date        string    `json:"date"`
	Author      string    `json:"author"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Thumbnail   string    `json:"thumbnail"`
	Enclosure   Enclosure `json:"enclosure"`
	Categories  []string  `json:"categories"`
}

// dateLayouts are tried in order when parsing a publish date candidate.
/// rss2json emits "2006-01-02 15:04:05"; raw RSS pass-throughs use RFC1123.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02",
}

// Body returns the article's HTML body, preferring full content over the
// shorter description.
func (a RawArticle) Body() string {
	if a.Content != "" {
		return a.Content
	}
	return a.Description
}

// PublishedAt resolves the publish date from the ordered candidate fields,
// first present and parsable wins.
func (a RawArticle) PublishedAt() (time.Time, error) {
	candidates := []string{a.PubDate, a.ISODate, a.Date}
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		for _, layout := range dateLayouts {
			if t, err := time.ParseInLocation(layout, candidate, time.Local); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, errors.ErrNoPublishDate
}

// FirstCategory returns the article's leading category, or empty.
func (a RawArticle) FirstCategory() string {
	return lo.FirstOr(a.Categories, "")
}

// NormalizedArticle is a raw article augmented with the display fields the
// reader requires. It is only constructed by the normalizer: an article
// without a resolvable image never becomes a NormalizedArticle.
type NormalizedArticle struct {
	RawArticle
	Image   string `json:"image"`
	Favicon string `json:"favicon"`
}

// Group is one labeled partition of a grouped article view
type Group struct {
	Label string              `json:"label"`
	Items []NormalizedArticle `json:"items"`
}
