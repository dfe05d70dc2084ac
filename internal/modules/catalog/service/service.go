package service

import (
	"github.com/rtcl/newsdesk/internal/modules/catalog/domain"
	"github.com/samber/lo"
)

// Service exposes the static feed catalog
type Service struct{}

// New creates a new catalog service
func New() *Service {
	return &Service{}
}

// LanguageInfo pairs a language code with its display label
type LanguageInfo struct {
	Code  domain.Language `json:"code"`
	Label string          `json:"label"`
}

// Languages returns the supported languages in display order
func (s *Service) Languages() []LanguageInfo {
	return lo.Map(domain.Order, func(lang domain.Language, _ int) LanguageInfo {
		return LanguageInfo{Code: lang, Label: domain.Labels[lang]}
	})
}

// SourcesFor returns the union of feed sources for the given languages.
// Unknown language codes contribute nothing.
func (s *Service) SourcesFor(langs []domain.Language) []domain.Source {
	return lo.FlatMap(langs, func(lang domain.Language, _ int) []domain.Source {
		return domain.Feeds[lang]
	})
}

// Normalize drops unknown codes, deduplicates and falls back to English
// when nothing valid is left.
func (s *Service) Normalize(langs []domain.Language) []domain.Language {
	valid := lo.Filter(lo.Uniq(langs), func(lang domain.Language, _ int) bool {
		_, ok := domain.Feeds[lang]
		return ok
	})
	if len(valid) == 0 {
		return []domain.Language{"en"}
	}
	return valid
}
