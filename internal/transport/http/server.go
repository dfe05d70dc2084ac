package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	articleDomain "github.com/rtcl/newsdesk/internal/modules/article/domain"
	articleService "github.com/rtcl/newsdesk/internal/modules/article/service"
	catalogDomain "github.com/rtcl/newsdesk/internal/modules/catalog/domain"
	catalogService "github.com/rtcl/newsdesk/internal/modules/catalog/service"
	cacheService "github.com/rtcl/newsdesk/internal/modules/cache/service"
	feedexportService "github.com/rtcl/newsdesk/internal/modules/feedexport/service"
	groupingService "github.com/rtcl/newsdesk/internal/modules/grouping/service"
	"github.com/rtcl/newsdesk/internal/shared/config"
	sloghttp "github.com/samber/slog-http"
)

// Server is the presentation boundary: it hands the grouped aggregate and a
// loading status to whatever renders it.
type Server struct {
	cfg      *config.Config
	articles *articleService.Service
	grouping *groupingService.Service
	catalog  *catalogService.Service
	export   *feedexportService.Service
	cache    *cacheService.Service
	logger   *slog.Logger
}

// New creates a new HTTP server
func New(cfg *config.Config, articles *articleService.Service, grouping *groupingService.Service, catalog *catalogService.Service, export *feedexportService.Service, cache *cacheService.Service) *Server {
	return &Server{
		cfg:      cfg,
		articles: articles,
		grouping: grouping,
		catalog:  catalog,
		export:   export,
		cache:    cache,
		logger:   slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Start starts the HTTP server
func (s *Server) Start() error {
	mux := http.NewServeMux()

	// Reader API
	mux.HandleFunc("GET /api/articles", s.handleArticles)
	mux.HandleFunc("GET /api/languages", s.handleLanguages)
	mux.HandleFunc("DELETE /api/cache", s.handleClearCache)

	// Combined RSS re-export
	mux.HandleFunc("GET /rss/{langs}", s.handleRSSFeed)

	// Health check endpoint
	mux.HandleFunc("GET /health", s.handleHealth)

	// Root endpoint with instructions
	mux.HandleFunc("GET /", s.handleRoot)

	addr := fmt.Sprintf(":%s", s.cfg.HTTPPort)
	s.logger.Info("News server starting", "addr", addr)

	// Use slog-http middleware with recovery
	handler := sloghttp.Recovery(mux)
	handler = sloghttp.New(s.logger)(handler)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server.ListenAndServe()
}

// articlesResponse is the contract toward the reader frontend
type articlesResponse struct {
	Groups    []articleDomain.Group             `json:"groups"`
	Top       []articleDomain.NormalizedArticle `json:"top"`
	Status    articleService.Status             `json:"status"`
	Languages []catalogDomain.Language          `json:"languages"`
	Sort      articleDomain.SortMode            `json:"sort"`
}

func (s *Server) handleArticles(w http.ResponseWriter, r *http.Request) {
	langs := parseLangs(r.URL.Query().Get("langs"))

	mode := articleDomain.SortModeDate
	if raw := r.URL.Query().Get("sort"); raw != "" {
		parsed, err := articleDomain.ParseSortMode(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		mode = parsed
	}

	items := s.articles.Load(r.Context(), langs)
	groups := s.grouping.Group(items, mode)

	s.writeJSON(w, articlesResponse{
		Groups:    groups,
		Top:       s.articles.Top(3),
		Status:    s.articles.Status(),
		Languages: langs,
		Sort:      mode,
	})
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.catalog.Languages())
}

func (s *Server) handleClearCache(w http.ResponseWriter, r *http.Request) {
	s.cache.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRSSFeed(w http.ResponseWriter, r *http.Request) {
	langs := parseLangs(r.PathValue("langs"))

	// Get base URL from request
	baseURL := fmt.Sprintf("%s://%s", getScheme(r), r.Host)

	items := s.articles.Load(r.Context(), langs)
	feed := s.export.Generate(items, langs, baseURL)

	rss, err := feed.ToRss()
	if err != nil {
		s.logger.Error("Error converting feed to RSS", "error", err)
		http.Error(w, "Failed to generate RSS", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(s.cfg.CacheTTL().Seconds())))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(rss))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>newsdesk</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; }
        h1 { color: #333; }
        .info { background: #f5f5f5; padding: 15px; border-radius: 5px; margin: 20px 0; }
        code { background: #e8e8e8; padding: 2px 6px; border-radius: 3px; }
    </style>
</head>
<body>
    <h1>newsdesk</h1>
    <div class="info">
        <p>Aggregated multi-language news with card grouping.</p>
        <p>Articles: <code>/api/articles?langs=en,ko&amp;sort=date</code> (sort: date, topic, difficulty)</p>
        <p>Languages: <code>/api/languages</code></p>
        <p>RSS re-export: <code>/rss/en,fr</code></p>
    </div>
    <p><a href="/health">Health Check</a></p>
</body>
</html>`
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Error encoding response", "error", err)
	}
}

// parseLangs splits a comma-separated language list; blanks are dropped.
// Validation and the English fallback happen in the article service.
func parseLangs(raw string) []catalogDomain.Language {
	parts := strings.Split(raw, ",")
	langs := make([]catalogDomain.Language, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		langs = append(langs, catalogDomain.Language(part))
	}
	return langs
}

func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
