package service_test

import (
	"testing"

	"github.com/rtcl/newsdesk/internal/modules/catalog/domain"
	"github.com/rtcl/newsdesk/internal/modules/catalog/service"
	"github.com/stretchr/testify/assert"
)

func TestLanguages(t *testing.T) {
	svc := service.New()

	langs := svc.Languages()

	assert.Len(t, langs, 4)
	assert.Equal(t, domain.Language("en"), langs[0].Code)
	assert.Equal(t, "English", langs[0].Label)
	assert.Equal(t, domain.Language("ko"), langs[1].Code)
}

func TestSourcesFor(t *testing.T) {
	svc := service.New()

	tests := []struct {
		name     string
		langs    []domain.Language
		expected int
	}{
		{
			name:     "single language",
			langs:    []domain.Language{"ja"},
			expected: len(domain.Feeds["ja"]),
		},
		{
			name:     "union of two languages",
			langs:    []domain.Language{"en", "ko"},
			expected: len(domain.Feeds["en"]) + len(domain.Feeds["ko"]),
		},
		{
			name:     "unknown language contributes nothing",
			langs:    []domain.Language{"xx"},
			expected: 0,
		},
		{
			name:     "unknown mixed with known",
			langs:    []domain.Language{"fr", "xx"},
			expected: len(domain.Feeds["fr"]),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, svc.SourcesFor(tt.langs), tt.expected)
		})
	}
}

func TestNormalize(t *testing.T) {
	svc := service.New()

	tests := []struct {
		name     string
		langs    []domain.Language
		expected []domain.Language
	}{
		{
			name:     "valid languages pass through",
			langs:    []domain.Language{"en", "ko"},
			expected: []domain.Language{"en", "ko"},
		},
		{
			name:     "duplicates removed",
			langs:    []domain.Language{"en", "en", "fr"},
			expected: []domain.Language{"en", "fr"},
		},
		{
			name:     "unknown dropped",
			langs:    []domain.Language{"en", "xx"},
			expected: []domain.Language{"en"},
		},
		{
			name:     "empty selection falls back to english",
			langs:    nil,
			expected: []domain.Language{"en"},
		},
		{
			name:     "all-unknown selection falls back to english",
			langs:    []domain.Language{"xx", "yy"},
			expected: []domain.Language{"en"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, svc.Normalize(tt.langs))
		})
	}
}
