package repository_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	articleDomain "github.com/rtcl/newsdesk/internal/modules/article/domain"
	"github.com/rtcl/newsdesk/internal/modules/cache/domain"
	"github.com/rtcl/newsdesk/internal/modules/cache/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStorage(t *testing.T) (repository.Repository, string) {
	t.Helper()
	dir := t.TempDir()
	repo, err := repository.NewFileStorage(dir)
	require.NoError(t, err)
	return repo, dir
}

func sampleEntries() map[string]domain.Entry {
	return map[string]domain.Entry{
		"en": {
			Timestamp: time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC),
			Payload: []articleDomain.NormalizedArticle{
				{
					RawArticle: articleDomain.RawArticle{Title: "A", Link: "https://example.com/a"},
					Image:      "https://example.com/a.jpg",
					Favicon:    "https://favicon.example/example.com",
				},
			},
		},
	}
}

func TestStoreAndLoadRoundTrip(t *testing.T) {
	repo, _ := testStorage(t)

	require.NoError(t, repo.Store(sampleEntries()))

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.Contains(t, loaded, "en")
	assert.Equal(t, "A", loaded["en"].Payload[0].Title)
	assert.Equal(t, "https://example.com/a.jpg", loaded["en"].Payload[0].Image)
}

func TestLoadMissingFile(t *testing.T) {
	repo, _ := testStorage(t)

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadMalformedFile(t *testing.T) {
	repo, dir := testStorage(t)

	path := filepath.Join(dir, "cache", "articles.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := repo.Load()
	assert.Error(t, err)
}

func TestClear(t *testing.T) {
	repo, _ := testStorage(t)

	require.NoError(t, repo.Store(sampleEntries()))
	require.NoError(t, repo.Clear())

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)

	// Clearing an already-empty store is not an error
	assert.NoError(t, repo.Clear())
}
