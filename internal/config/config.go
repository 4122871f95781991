package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"wikiturtles/internal/meter"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains state and output locations.
type Paths struct {
	StateDir string `toml:"state_dir"`
	LogDir   string `toml:"log_dir"`
	LogoPath string `toml:"logo_path"`
}

// Dictionary points at an optional full CMU pronouncing dictionary merged
// over the compiled-in seed.
type Dictionary struct {
	Path string `toml:"path"`
}

// Meter holds the classifier rule tables.
type Meter struct {
	BannedWords     []string         `toml:"banned_words"`
	BannedPhrases   []string         `toml:"banned_phrases"`
	AcceptedPattern string           `toml:"accepted_pattern"`
	Overrides       []meter.Override `toml:"overrides"`
}

// Search paces the random-title search loop.
type Search struct {
	MaxAttempts           int `toml:"max_attempts"`
	BatchSize             int `toml:"batch_size"`
	BackoffSeconds        int `toml:"backoff_seconds"`
	TimeoutBackoffSeconds int `toml:"timeout_backoff_seconds"`
}

// Wikipedia configures the title source and article links.
type Wikipedia struct {
	APIURL         string `toml:"api_url"`
	ArticleBaseURL string `toml:"article_base_url"`
	UserAgent      string `toml:"user_agent"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Render configures the headless-browser logo screenshot.
type Render struct {
	Enabled        bool   `toml:"enabled"`
	ChromePath     string `toml:"chrome_path"`
	LogoURL        string `toml:"logo_url"`
	WindowWidth    int    `toml:"window_width"`
	WindowHeight   int    `toml:"window_height"`
	CropTop        int    `toml:"crop_top"`
	CropBottom     int    `toml:"crop_bottom"`
	TrimThreshold  int    `toml:"trim_threshold"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Mastodon contains posting credentials.
type Mastodon struct {
	Enabled        bool   `toml:"enabled"`
	BaseURL        string `toml:"base_url"`
	AccessToken    string `toml:"access_token"`
	Visibility     string `toml:"visibility"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Posting shapes the published status.
type Posting struct {
	MaxStatusLen int  `toml:"max_status_len"`
	SkipPosted   bool `toml:"skip_posted"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for wikiturtles.
type Config struct {
	Paths      Paths      `toml:"paths"`
	Dictionary Dictionary `toml:"dictionary"`
	Meter      Meter      `toml:"meter"`
	Search     Search     `toml:"search"`
	Wikipedia  Wikipedia  `toml:"wikipedia"`
	Render     Render     `toml:"render"`
	Mastodon   Mastodon   `toml:"mastodon"`
	Posting    Posting    `toml:"posting"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath is ~/.config/wikiturtles/config.toml, expanded.
func DefaultConfigPath() (string, error) {
	return ExpandPath(defaultConfigPath)
}

// Load reads the config at path, or the first of the default and project
// locations that exists, over Default(). It returns the config, the path it
// settled on, and whether that file existed. Unknown keys are errors.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		// Array tables append to an existing slice; start overrides empty
		// and restore the defaults only when the file has none.
		defaultOverrides := cfg.Meter.Overrides
		cfg.Meter.Overrides = nil

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			var strict *toml.StrictMissingError
			if errors.As(err, &strict) {
				return nil, "", false, fmt.Errorf("parse config: %s", strict.String())
			}
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
		if cfg.Meter.Overrides == nil {
			cfg.Meter.Overrides = defaultOverrides
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		switch _, err := os.Stat(expanded); {
		case err == nil:
			return expanded, true, nil
		case errors.Is(err, fs.ErrNotExist):
			return expanded, false, nil
		default:
			return "", false, fmt.Errorf("stat config: %w", err)
		}
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}
	for _, candidate := range []string{defaultPath, projectPath} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true, nil
		}
	}
	return defaultPath, false, nil
}

// EnsureDirectories creates the state and log directories plus the parent
// of the logo file.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.StateDir, c.Paths.LogDir}
	if c.Paths.LogoPath != "" {
		dirs = append(dirs, filepath.Dir(c.Paths.LogoPath))
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// HistoryPath is the SQLite database recording runs and posts.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.Paths.StateDir, "history.db")
}

// LockPath is the file locked for the duration of a bot run.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.StateDir, "wikiturtles.lock")
}

// RuleSet converts the [meter] section for meter.NewRules.
func (c *Config) RuleSet() meter.RuleSet {
	return meter.RuleSet{
		BannedWords:     append([]string(nil), c.Meter.BannedWords...),
		BannedPhrases:   append([]string(nil), c.Meter.BannedPhrases...),
		Overrides:       append([]meter.Override(nil), c.Meter.Overrides...),
		AcceptedPattern: c.Meter.AcceptedPattern,
	}
}

// SearchBackoff is the pause between batches.
func (c *Config) SearchBackoff() time.Duration {
	return time.Duration(c.Search.BackoffSeconds) * time.Second
}

// SearchTimeoutBackoff is the pause after the title source times out.
func (c *Config) SearchTimeoutBackoff() time.Duration {
	return time.Duration(c.Search.TimeoutBackoffSeconds) * time.Second
}

// ExpandPath resolves a leading ~ to the home directory and returns an
// absolute, cleaned path. The empty string is returned unchanged.
func ExpandPath(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		p = filepath.Join(home, strings.TrimPrefix(p[1:], "/"))
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", p, err)
	}
	return abs, nil
}

// CreateSample writes the commented sample config to path, creating its
// directory.
func CreateSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
