package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/karpador/trombone/internal/app"
	"github.com/karpador/trombone/internal/backend"
	"github.com/karpador/trombone/internal/place"
	"github.com/karpador/trombone/internal/sidebar"
	"github.com/karpador/trombone/internal/state"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	File     string
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose     bool
	ListActions bool
}

const (
	envConfig       = "TROMBONE_CONFIG"
	envStartPlace   = "TROMBONE_START_PLACE"
	envWidth        = "TROMBONE_WIDTH"
	envHeight       = "TROMBONE_HEIGHT"
	envSidebarWidth = "TROMBONE_SIDEBAR_WIDTH"
	envFeed         = "TROMBONE_FEED"
	envPollInterval = "TROMBONE_POLL_INTERVAL"
	envShowFooter   = "TROMBONE_FOOTER"
	envVerbose      = "TROMBONE_VERBOSE"
	envTrace        = "TROMBONE_TRACE"
	envLogFile      = "TROMBONE_LOG_FILE"
)

const (
	defaultStartPlace   = "home"
	defaultSidebarWidth = 28
	defaultPollInterval = 30 * time.Second
	minSidebarWidth     = 12
)

// fileConfig is the TOML config file layout.
type fileConfig struct {
	StartPlace   string            `toml:"start_place"`
	SidebarWidth int               `toml:"sidebar_width"`
	PollInterval string            `toml:"poll_interval"`
	Feed         string            `toml:"feed"`
	Lists        []fileList        `toml:"lists"`
	Accounts     []fileAccount     `toml:"accounts"`
	Badges       map[string]uint64 `toml:"badges"`
}

type fileList struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

type fileAccount struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

// Load parses configuration from CLI arguments, environment variables and
// the optional config file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Precedence is
// flags, then environment, then the config file, then defaults.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := pflag.NewFlagSet("trombone", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	configPath := fs.String("config", envOrDefault(env, envConfig, ""), "path to a TOML config file")
	startPlace := fs.String("start-place", envOrDefault(env, envStartPlace, ""), "place highlighted at startup (home, notifications, ...)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	sidebarWidth := fs.Int("sidebar-width", envOrInt(env, envSidebarWidth, 0), "sidebar column width in cells")
	feed := fs.String("feed", envOrDefault(env, envFeed, ""), "path to a TOML feed file with lists and unread counts")
	pollInterval := fs.Duration("poll-interval", envOrDuration(env, envPollInterval, 0), "how often lists and unread counts are refreshed")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "report unimplemented commands in the status line")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	listActions := fs.Bool("list-actions", false, "print the application actions and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	file, err := readFile(*configPath)
	if err != nil {
		return Config{}, err
	}

	if *startPlace == "" {
		*startPlace = firstNonEmpty(file.StartPlace, defaultStartPlace)
	}
	kind, err := place.ParseStaticKind(*startPlace)
	if err != nil {
		return Config{}, fmt.Errorf("start place: %w", err)
	}
	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *sidebarWidth == 0 {
		*sidebarWidth = file.SidebarWidth
	}
	if *sidebarWidth == 0 {
		*sidebarWidth = defaultSidebarWidth
	}
	if *sidebarWidth < minSidebarWidth {
		return Config{}, fmt.Errorf("sidebar width must be >= %d (got %d)", minSidebarWidth, *sidebarWidth)
	}
	if *pollInterval == 0 && file.PollInterval != "" {
		parsed, err := time.ParseDuration(file.PollInterval)
		if err != nil {
			return Config{}, fmt.Errorf("config %s: poll_interval: %w", *configPath, err)
		}
		*pollInterval = parsed
	}
	if *pollInterval == 0 {
		*pollInterval = defaultPollInterval
	}
	if *pollInterval < 0 {
		return Config{}, fmt.Errorf("poll interval must be > 0 (got %s)", *pollInterval)
	}
	if *feed == "" {
		*feed = file.Feed
	}

	lists, err := file.lists()
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", *configPath, err)
	}
	badges, err := file.badges()
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", *configPath, err)
	}

	cfg := Config{
		App: app.Config{
			StartPlace:   kind,
			Width:        *width,
			Height:       *height,
			SidebarWidth: *sidebarWidth,
			FeedPath:     *feed,
			PollInterval: *pollInterval,
			ShowFooter:   *footer,
			Verbose:      *verbose,
			Lists:        lists,
			Accounts:     file.accounts(),
			Badges:       badges,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose:     *verbose,
			ListActions: *listActions,
		},
		File: *configPath,
		Flags: map[string]string{
			"config":       *configPath,
			"startPlace":   *startPlace,
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"sidebarWidth": strconv.Itoa(*sidebarWidth),
			"feed":         *feed,
			"pollInterval": pollInterval.String(),
			"footer":       strconv.FormatBool(*footer),
			"trace":        strconv.FormatBool(*trace),
			"verbose":      strconv.FormatBool(*verbose),
			"logFile":      *logFile,
			"listActions":  strconv.FormatBool(*listActions),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func readFile(path string) (fileConfig, error) {
	var file fileConfig
	if strings.TrimSpace(path) == "" {
		return file, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return file, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &file); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return file, fmt.Errorf("parse config %s:%d:%d: %w", path, row, col, err)
		}
		return file, fmt.Errorf("parse config %s: %w", path, err)
	}
	return file, nil
}

// lists returns the configured lists, or the placeholder list when none are
// configured. Duplicate ids are rejected.
func (f fileConfig) lists() ([]sidebar.ListEntry, error) {
	if len(f.Lists) == 0 {
		return sidebar.PlaceholderLists(), nil
	}
	seen := make(map[string]struct{}, len(f.Lists))
	lists := make([]sidebar.ListEntry, 0, len(f.Lists))
	for _, entry := range f.Lists {
		if _, dup := seen[entry.ID]; dup {
			return nil, fmt.Errorf("duplicate list id %q", entry.ID)
		}
		seen[entry.ID] = struct{}{}
		if strings.TrimSpace(entry.Name) == "" {
			return nil, fmt.Errorf("list %q has no name", entry.ID)
		}
		lists = append(lists, sidebar.ListEntry{ID: place.ListID(entry.ID), Name: entry.Name})
	}
	return lists, nil
}

func (f fileConfig) accounts() []state.Account {
	accounts := make([]state.Account, 0, len(f.Accounts))
	for _, entry := range f.Accounts {
		if strings.TrimSpace(entry.ID) == "" {
			continue
		}
		accounts = append(accounts, state.Account{ID: entry.ID, Name: entry.Name})
	}
	return accounts
}

func (f fileConfig) badges() (map[string]uint64, error) {
	badges := make(map[string]uint64, len(f.Badges))
	for key, count := range f.Badges {
		if key == backend.FollowRequestsKey {
			badges[key] = count
			continue
		}
		p, err := place.ParseKey(key)
		if err != nil {
			return nil, fmt.Errorf("badge %q: %w", key, err)
		}
		badges[p.Key()] = count
	}
	return badges, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
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

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
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
	if !cfg.App.StartPlace.Valid() {
		return fmt.Errorf("start place %d out of range", int(cfg.App.StartPlace))
	}
	if cfg.App.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be > 0")
	}
	seen := make(map[string]struct{}, len(cfg.App.Accounts))
	for _, acct := range cfg.App.Accounts {
		if _, dup := seen[acct.ID]; dup {
			return fmt.Errorf("duplicate account id %q", acct.ID)
		}
		seen[acct.ID] = struct{}{}
	}
	return nil
}
