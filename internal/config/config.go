package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/gridmenu/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envDB              = "GRIDMENU_DB"
	envSeed            = "GRIDMENU_SEED"
	envWidth           = "GRIDMENU_WIDTH"
	envHeight          = "GRIDMENU_HEIGHT"
	envOverscan        = "GRIDMENU_OVERSCAN"
	envPageSize        = "GRIDMENU_PAGE_SIZE"
	envViewsDir        = "GRIDMENU_VIEWS_DIR"
	envExportDir       = "GRIDMENU_EXPORT_DIR"
	envShowFooter      = "GRIDMENU_FOOTER"
	envVerbose         = "GRIDMENU_VERBOSE"
	envTrace           = "GRIDMENU_TRACE"
	envLogFile         = "GRIDMENU_LOG_FILE"
	envRefreshInterval = "GRIDMENU_REFRESH_INTERVAL"
	envView            = "GRIDMENU_VIEW"
)

const (
	defaultOverscan        = 10
	defaultPageSize        = 25
	defaultRefreshInterval = 2 * time.Second
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	dataDir := defaultDataDir(env)

	fs := flag.NewFlagSet("gridmenu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	db := fs.String("db", envOrDefault(env, envDB, filepath.Join(dataDir, "orders.db")), "path to the SQLite database (\":memory:\" for a throwaway one)")
	seed := fs.Int("seed", envOrInt(env, envSeed, 0), "generate this many synthetic orders when the database is empty (0 seeds the demo orders)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	overscan := fs.Int("overscan", envOrInt(env, envOverscan, defaultOverscan), "rows rendered beyond each edge of the viewport")
	pageSize := fs.Int("page-size", envOrInt(env, envPageSize, defaultPageSize), "rows per page when pagination is on")
	viewsDir := fs.String("views-dir", envOrDefault(env, envViewsDir, filepath.Join(dataDir, "views")), "directory holding saved views")
	exportDir := fs.String("export-dir", envOrDefault(env, envExportDir, "."), "directory exports are written to")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show the last action and its undo state in the status line")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	refresh := fs.Duration("refresh-interval", envOrDuration(env, envRefreshInterval, defaultRefreshInterval), "how often the database is polled for changes (0 disables polling)")
	view := fs.String("view", envOrDefault(env, envView, ""), "saved view to restore on startup")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			DBPath:          *db,
			Seed:            *seed,
			Width:           *width,
			Height:          *height,
			Overscan:        *overscan,
			PageSize:        *pageSize,
			ViewsDir:        *viewsDir,
			ExportDir:       *exportDir,
			ShowFooter:      *footer,
			Verbose:         *verbose,
			RefreshInterval: *refresh,
			View:            *view,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"db":              *db,
			"seed":            strconv.Itoa(*seed),
			"width":           strconv.Itoa(*width),
			"height":          strconv.Itoa(*height),
			"overscan":        strconv.Itoa(*overscan),
			"pageSize":        strconv.Itoa(*pageSize),
			"viewsDir":        *viewsDir,
			"exportDir":       *exportDir,
			"footer":          strconv.FormatBool(*footer),
			"trace":           strconv.FormatBool(*trace),
			"verbose":         strconv.FormatBool(*verbose),
			"logFile":         *logFile,
			"refreshInterval": refresh.String(),
			"view":            *view,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// defaultDataDir places the database and views under the user config dir,
// falling back to the working directory.
func defaultDataDir(env map[string]string) string {
	if xdg := strings.TrimSpace(env["XDG_CONFIG_HOME"]); xdg != "" {
		return filepath.Join(xdg, "gridmenu")
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "gridmenu")
	}
	return ".gridmenu"
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks the values flag parsing cannot.
func Validate(cfg Config) error {
	var errs []error
	if strings.TrimSpace(cfg.App.DBPath) == "" {
		errs = append(errs, errors.New("db path is required"))
	}
	if cfg.App.Seed < 0 {
		errs = append(errs, fmt.Errorf("seed must be >= 0 (got %d)", cfg.App.Seed))
	}
	if cfg.App.Overscan < 0 {
		errs = append(errs, fmt.Errorf("overscan must be >= 0 (got %d)", cfg.App.Overscan))
	}
	if cfg.App.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("page-size must be > 0 (got %d)", cfg.App.PageSize))
	}
	if cfg.App.RefreshInterval < 0 {
		errs = append(errs, fmt.Errorf("refresh-interval must be >= 0 (got %s)", cfg.App.RefreshInterval))
	}
	return errors.Join(errs...)
}
