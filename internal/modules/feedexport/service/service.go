package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"github.com/rtcl/newsdesk/internal/modules/article/domain"
	catalogDomain "github.com/rtcl/newsdesk/internal/modules/catalog/domain"
	"github.com/samber/lo"
)

// Service re-exports an aggregation result as a single combined RSS feed,
// so feed readers can consume the same aggregate the browser frontend does.
type Service struct{}

// New creates a new feed export service
func New() *Service {
	return &Service{}
}

// Generate builds the combined feed for a language selection
func (s *Service) Generate(items []domain.NormalizedArticle, langs []catalogDomain.Language, baseURL string) *feeds.Feed {
	labels := lo.FilterMap(langs, func(lang catalogDomain.Language, _ int) (string, bool) {
		label, ok := catalogDomain.Labels[lang]
		return label, ok
	})

	codes := lo.Map(langs, func(lang catalogDomain.Language, _ int) string {
		return string(lang)
	})

	feed := &feeds.Feed{
		Title:       fmt.Sprintf("newsdesk - %s", strings.Join(labels, ", ")),
		Link:        &feeds.Link{Href: fmt.Sprintf("%s/rss/%s", baseURL, strings.Join(codes, ","))},
		Description: "Aggregated news from the selected languages",
		Created:     time.Now(),
	}

	feed.Items = lo.Map(items, func(article domain.NormalizedArticle, _ int) *feeds.Item {
		return s.articleToFeedItem(article)
	})

	if len(items) > 0 {
		if published, err := items[0].PublishedAt(); err == nil {
			feed.Updated = published
		}
	}

	return feed
}

func (s *Service) articleToFeedItem(article domain.NormalizedArticle) *feeds.Item {
	item := &feeds.Item{
		Title:       article.Title,
		Link:        &feeds.Link{Href: article.Link},
		Description: article.Description,
		Content:     article.Content,
		Id:          article.Link,
		Enclosure: &feeds.Enclosure{
			Url:    article.Image,
			Type:   "image/jpeg",
			Length: "0",
		},
	}

	if article.Author != "" {
		item.Author = &feeds.Author{Name: article.Author}
	}
	if published, err := article.PublishedAt(); err == nil {
		item.Created = published
	}

	return item
}
