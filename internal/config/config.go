package config

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/composite-widgets/internal/app"
	"github.com/atomicstack/composite-widgets/internal/overlay"
	"github.com/atomicstack/composite-widgets/internal/typeahead"
	"github.com/spf13/viper"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	// File is the config file that was read, if any.
	File  string
	Flags map[string]string
	Args  []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfig           = "COMPOSITE_WIDGETS_CONFIG"
	envWidth            = "COMPOSITE_WIDGETS_WIDTH"
	envHeight           = "COMPOSITE_WIDGETS_HEIGHT"
	envShowFooter       = "COMPOSITE_WIDGETS_FOOTER"
	envRTL              = "COMPOSITE_WIDGETS_RTL"
	envTypeaheadWindow  = "COMPOSITE_WIDGETS_TYPEAHEAD_WINDOW"
	envSnackbarDuration = "COMPOSITE_WIDGETS_SNACKBAR_DURATION"
	envTooltipDelay     = "COMPOSITE_WIDGETS_TOOLTIP_DELAY"
	envTrace            = "COMPOSITE_WIDGETS_TRACE"
	envLogFile          = "COMPOSITE_WIDGETS_LOG_FILE"
)

// LoadArgs allows tests to supply specific args/environment. Values come
// from, in increasing precedence: built-in defaults, the TOML config file,
// the environment and the command line.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	path := configPath(args, env)
	file, err := readFile(path)
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("composite-widgets", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", path, "path to a TOML config file")
	width := fs.Int("width", envOrInt(env, envWidth, file.GetInt("width")), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, file.GetInt("height")), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, file.GetBool("footer")), "enable footer hint row")
	rtl := fs.Bool("rtl", envOrBool(env, envRTL, file.GetBool("rtl")), "lay out submenus right to left")
	typeaheadWindow := fs.Duration("typeahead-window", envOrDuration(env, envTypeaheadWindow, file.GetDuration("typeahead_window")), "typeahead buffer reset window")
	snackbar := fs.Duration("snackbar-duration", envOrDuration(env, envSnackbarDuration, file.GetDuration("snackbar_duration")), "snackbar auto-dismiss duration")
	tooltip := fs.Duration("tooltip-delay", envOrDuration(env, envTooltipDelay, file.GetDuration("tooltip_delay")), "tooltip open delay")
	trace := fs.Bool("trace", envOrBool(env, envTrace, file.GetBool("trace")), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, file.GetString("log_file")), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Width:            *width,
			Height:           *height,
			ShowFooter:       *footer,
			RTL:              *rtl,
			TypeaheadWindow:  *typeaheadWindow,
			SnackbarDuration: *snackbar,
			TooltipDelay:     *tooltip,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: path,
		Flags: map[string]string{
			"width":            strconv.Itoa(*width),
			"height":           strconv.Itoa(*height),
			"footer":           strconv.FormatBool(*footer),
			"rtl":              strconv.FormatBool(*rtl),
			"typeaheadWindow":  typeaheadWindow.String(),
			"snackbarDuration": snackbar.String(),
			"tooltipDelay":     tooltip.String(),
			"trace":            strconv.FormatBool(*trace),
			"logFile":          *logFile,
		},
		Args: append([]string(nil), args...),
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// readFile loads the optional config file into a viper instance carrying
// the built-in defaults. An empty path yields the defaults alone.
func readFile(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault("width", 0)
	v.SetDefault("height", 0)
	v.SetDefault("footer", false)
	v.SetDefault("rtl", false)
	v.SetDefault("typeahead_window", typeahead.DefaultResetWindow)
	v.SetDefault("snackbar_duration", overlay.DefaultSnackbarDuration)
	v.SetDefault("tooltip_delay", overlay.DefaultOpenDelay)
	v.SetDefault("trace", false)
	v.SetDefault("log_file", "")

	if strings.TrimSpace(path) == "" {
		return v, nil
	}
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return v, nil
}

// configPath finds -config ahead of flag parsing, since the file supplies
// the defaults of every other flag.
func configPath(args []string, env map[string]string) string {
	path := envOrDefault(env, envConfig, "")
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		switch {
		case name == "config" && i+1 < len(args):
			path = args[i+1]
			i++
		case strings.HasPrefix(name, "config="):
			path = strings.TrimPrefix(name, "config=")
		}
	}
	return path
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
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

// Validate rejects negative sizes and non-positive durations.
func Validate(cfg Config) error {
	var errs []error
	if cfg.App.Width < 0 {
		errs = append(errs, fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width))
	}
	if cfg.App.Height < 0 {
		errs = append(errs, fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height))
	}
	durations := []struct {
		name  string
		value time.Duration
	}{
		{"typeahead-window", cfg.App.TypeaheadWindow},
		{"snackbar-duration", cfg.App.SnackbarDuration},
		{"tooltip-delay", cfg.App.TooltipDelay},
	}
	for _, d := range durations {
		if d.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0 (got %s)", d.name, d.value))
		}
	}
	return errors.Join(errs...)
}
