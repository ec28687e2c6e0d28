package cli

import (
	"context"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/geosvg/pkg/buildinfo"
	"github.com/matzehuels/geosvg/pkg/cache"
	"github.com/matzehuels/geosvg/pkg/config"
	errs "github.com/matzehuels/geosvg/pkg/errors"
	"github.com/matzehuels/geosvg/pkg/observability"
	"github.com/matzehuels/geosvg/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "geosvg"

	// envCacheURL names the environment variable that defaults --cache-url.
	envCacheURL = "GEOSVG_CACHE_URL"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cacheURL   string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetVerbose switches to debug logging and routes the pipeline, cache and
// server hooks to the logger.
func (c *CLI) SetVerbose(verbose bool) {
	if !verbose {
		c.SetLogLevel(LogInfo)
		observability.Reset()
		return
	}
	c.SetLogLevel(LogDebug)
	observability.NewLogHooks(c.Logger).Register()
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. Cache keys are scoped by
// the build version so an upgrade never serves documents rendered by an
// older release.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":")
	return pipeline.NewRunner(cc, keyer, c.Logger), nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if c.cacheURL != "" {
		if err := errs.ValidateCacheURL(c.cacheURL); err != nil {
			return nil, err
		}
		rc, err := cache.NewRedisCache(ctx, c.cacheURL, cache.WithPrefix(appName+":"))
		if err != nil {
			return nil, err
		}
		c.Logger.Debug("using redis cache", "url", redactURL(c.cacheURL))
		return rc, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// loadConfig finds and loads the configuration named by --config or the
// default location.
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg, path, err := config.Find(c.configPath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		c.Logger.Debug("loaded config", "path", path, "profiles", len(cfg.Profiles))
	}
	return cfg, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/geosvg/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// redactURL hides the password of a cache URL for logging.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid>"
	}
	return u.Redacted()
}
