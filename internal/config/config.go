package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/grid-menu/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envLayout  = "GRID_MENU_LAYOUT"
	envMenu    = "GRID_MENU_MENU"
	envUser    = "GRID_MENU_USER"
	envWidth   = "GRID_MENU_WIDTH"
	envHeight  = "GRID_MENU_HEIGHT"
	envRefresh = "GRID_MENU_REFRESH"
	envFooter  = "GRID_MENU_FOOTER"
	envTrace   = "GRID_MENU_TRACE"
	envLogFile = "GRID_MENU_LOG_FILE"

	defaultRefresh = time.Second
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("grid-menu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	layoutPath := fs.String("layout", envOrDefault(env, envLayout, ""), "path to a TOML menu layout (built-in layout when empty)")
	menuName := fs.String("menu", envOrDefault(env, envMenu, ""), "menu to open first, fuzzy matched against names and titles")
	user := fs.String("user", envOrDefault(env, envUser, defaultUser(env)), "name of the user the menu is opened for")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	refresh := fs.Duration("refresh", envOrDuration(env, envRefresh, defaultRefresh), "refresh interval for dynamic icons (0 disables)")
	footer := fs.Bool("footer", envOrBool(env, envFooter, false), "enable footer key help (disabled by default)")
	list := fs.Bool("list", false, "print the menus of the layout and exit")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			LayoutPath: *layoutPath,
			Menu:       *menuName,
			User:       *user,
			Width:      *width,
			Height:     *height,
			Refresh:    *refresh,
			ShowFooter: *footer,
			List:       *list,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"layout":  *layoutPath,
			"menu":    *menuName,
			"user":    *user,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"refresh": refresh.String(),
			"footer":  strconv.FormatBool(*footer),
			"list":    strconv.FormatBool(*list),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
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

func defaultUser(env map[string]string) string {
	if v := strings.TrimSpace(env["USER"]); v != "" {
		return v
	}
	return "player"
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

// Validate rejects values the application cannot run with.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.Refresh < 0 {
		return fmt.Errorf("refresh must be >= 0 (got %s)", cfg.App.Refresh)
	}
	if strings.TrimSpace(cfg.App.User) == "" {
		return fmt.Errorf("user must not be empty")
	}
	return nil
}
