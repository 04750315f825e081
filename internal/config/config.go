package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/menustack/internal/app"
	"github.com/spf13/pflag"
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
	envTick       = "MENUSTACK_TICK"
	envWidth      = "MENUSTACK_WIDTH"
	envHeight     = "MENUSTACK_HEIGHT"
	envShowFooter = "MENUSTACK_FOOTER"
	envScript     = "MENUSTACK_SCRIPT"
	envNoInput    = "MENUSTACK_NO_INPUT"
	envTrace      = "MENUSTACK_TRACE"
	envLogFile    = "MENUSTACK_LOG_FILE"
)

const defaultTick = 100 * time.Millisecond

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := pflag.NewFlagSet("menustack", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	tick := fs.Duration("tick", envOrDuration(env, envTick, defaultTick), "interval between synchronization passes")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	script := fs.String("script", envOrDefault(env, envScript, ""), "replay a scenario file headlessly instead of starting the UI")
	noInput := fs.Bool("no-input", envOrBool(env, envNoInput, false), "disable input ownership tracking")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *tick <= 0 {
		return Config{}, fmt.Errorf("tick must be > 0 (got %s)", *tick)
	}
	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Tick:       *tick,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			ScriptPath: *script,
			NoInput:    *noInput,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"tick":    tick.String(),
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"script":  *script,
			"noInput": strconv.FormatBool(*noInput),
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

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if path := strings.TrimSpace(cfg.App.ScriptPath); path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("script: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("script %s is a directory", path)
		}
	}
	return nil
}
