package di

import (
	"log/slog"
	"time"

	"github.com/rtcl/newsdesk/internal/modules/article/fetch"
	"github.com/rtcl/newsdesk/internal/modules/article/normalizer"
	articleService "github.com/rtcl/newsdesk/internal/modules/article/service"
	cacheRepo "github.com/rtcl/newsdesk/internal/modules/cache/repository"
	cacheService "github.com/rtcl/newsdesk/internal/modules/cache/service"
	catalogService "github.com/rtcl/newsdesk/internal/modules/catalog/service"
	feedexportService "github.com/rtcl/newsdesk/internal/modules/feedexport/service"
	groupingService "github.com/rtcl/newsdesk/internal/modules/grouping/service"
	"github.com/rtcl/newsdesk/internal/shared/config"
	httpServer "github.com/rtcl/newsdesk/internal/transport/http"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Setup initializes the dependency injection container
func Setup() (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register Cache Repository
	do.Provide(injector, func(i do.Injector) (cacheRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := cacheRepo.NewFileStorage(cfg.StoragePath)
		if err != nil {
			return nil, oops.With("storage_path", cfg.StoragePath, "context", "failed to initialize cache repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Cache Service
	do.Provide(injector, func(i do.Injector) (*cacheService.Service, error) {
		repo := do.MustInvoke[cacheRepo.Repository](i)
		return cacheService.New(repo), nil
	})

	// Register Catalog Service
	do.Provide(injector, func(i do.Injector) (*catalogService.Service, error) {
		return catalogService.New(), nil
	})

	// Register Fetch Client
	do.Provide(injector, func(i do.Injector) (*fetch.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return fetch.New(cfg.ConvertURL, cfg.FetchTimeout()), nil
	})

	// Register Normalizer
	do.Provide(injector, func(i do.Injector) (*normalizer.Normalizer, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return normalizer.New(cfg.FaviconURL), nil
	})

	// Register Feed Sampler
	do.Provide(injector, func(i do.Injector) (articleService.Sampler, error) {
		return articleService.NewSampler(time.Now().UnixNano()), nil
	})

	// Register Article Service
	do.Provide(injector, func(i do.Injector) (*articleService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		catalog := do.MustInvoke[*catalogService.Service](i)
		fetcher := do.MustInvoke[*fetch.Client](i)
		norm := do.MustInvoke[*normalizer.Normalizer](i)
		cache := do.MustInvoke[*cacheService.Service](i)
		sampler := do.MustInvoke[articleService.Sampler](i)
		return articleService.New(cfg, catalog, fetcher, norm, cache, sampler), nil
	})

	// Register Grouping Service
	do.Provide(injector, func(i do.Injector) (*groupingService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return groupingService.New(cfg.WindowDays), nil
	})

	// Register Feed Export Service
	do.Provide(injector, func(i do.Injector) (*feedexportService.Service, error) {
		return feedexportService.New(), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		articles := do.MustInvoke[*articleService.Service](i)
		grouping := do.MustInvoke[*groupingService.Service](i)
		catalog := do.MustInvoke[*catalogService.Service](i)
		export := do.MustInvoke[*feedexportService.Service](i)
		cache := do.MustInvoke[*cacheService.Service](i)
		server := httpServer.New(cfg, articles, grouping, catalog, export, cache)
		server.SetLogger(slog.Default())
		return server, nil
	})

	return injector, nil
}

// Shutdown gracefully shuts down all services
func Shutdown(injector do.Injector) error {
	// The session cache mirrors to durable storage on every write and the
	// pipeline holds no background workers, so there is nothing to flush.
	return nil
}
