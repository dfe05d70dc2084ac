package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

type Config struct {
	HTTPPort            string `koanf:"http_port"`
	StoragePath         string `koanf:"storage_path"`
	ConvertURL          string `koanf:"convert_url"`
	FaviconURL          string `koanf:"favicon_url"`
	SampleSize          int    `koanf:"sample_size"`
	StaggerMs           int    `koanf:"stagger_ms"`
	FetchTimeoutSeconds int    `koanf:"fetch_timeout_seconds"`
	CacheTTLMinutes     int    `koanf:"cache_ttl_minutes"`
	WindowDays          int    `koanf:"window_days"`
	AppEnv              AppEnv `koanf:"app_env"`
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try to load config file from various formats
	configFiles := []string{
		"config.yaml",
		"config.yml",
		"config.json",
		"config.toml",
	}

	// Use lo.Find to find the first existing config file
	configFile, found := lo.Find(configFiles, func(file string) bool {
		_, err := os.Stat(file)
		return err == nil
	})

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Load environment variables (they override config file values)
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	// Set defaults
	if !k.Exists("http_port") {
		k.Set("http_port", "8080")
	}
	if !k.Exists("storage_path") {
		k.Set("storage_path", "./data")
	}
	if !k.Exists("convert_url") {
		k.Set("convert_url", "https://api.rss2json.com/v1/api.json")
	}
	if !k.Exists("favicon_url") {
		k.Set("favicon_url", "https://www.google.com/s2/favicons?domain=%s&sz=64")
	}
	if !k.Exists("sample_size") {
		k.Set("sample_size", 18)
	}
	if !k.Exists("stagger_ms") {
		k.Set("stagger_ms", 180)
	}
	if !k.Exists("fetch_timeout_seconds") {
		k.Set("fetch_timeout_seconds", 10)
	}
	if !k.Exists("cache_ttl_minutes") {
		k.Set("cache_ttl_minutes", 5)
	}
	if !k.Exists("window_days") {
		k.Set("window_days", 7)
	}
	if !k.Exists("app_env") {
		k.Set("app_env", "production")
	}

	// Unmarshal into struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	// Parse AppEnv from string if needed
	if appEnvStr := k.String("app_env"); appEnvStr != "" {
		if env, err := ParseAppEnv(appEnvStr); err == nil {
			cfg.AppEnv = env
		} else {
			cfg.AppEnv = AppEnvProduction
		}
	} else {
		cfg.AppEnv = AppEnvProduction
	}

	return &cfg, nil
}

// FetchTimeout returns the per-feed fetch timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// Stagger returns the per-feed launch stagger as a duration.
func (c *Config) Stagger() time.Duration {
	return time.Duration(c.StaggerMs) * time.Millisecond
}

// CacheTTL returns the session cache time-to-live as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}
