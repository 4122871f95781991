package testsupport

import (
	"path/filepath"
	"testing"

	"wikiturtles/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Rendering and posting are off; options switch them on.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.LogoPath = filepath.Join(base, "out", "logo.png")
	cfgVal.Render.Enabled = false
	cfgVal.Search.BackoffSeconds = 0
	cfgVal.Search.TimeoutBackoffSeconds = 0

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithWikipediaAPI points the title source at url (usually an httptest server).
func WithWikipediaAPI(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Wikipedia.APIURL = url
	}
}

// WithMastodon enables posting against baseURL with token.
func WithMastodon(baseURL, token string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Mastodon.Enabled = true
		b.cfg.Mastodon.BaseURL = baseURL
		b.cfg.Mastodon.AccessToken = token
	}
}

// WithSearch overrides the attempt budget and batch size.
func WithSearch(maxAttempts, batchSize int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Search.MaxAttempts = maxAttempts
		b.cfg.Search.BatchSize = batchSize
	}
}

// WithDictionaryLines writes a CMU-format dictionary and points the config at it.
func WithDictionaryLines(lines ...string) ConfigOption {
	return func(b *configBuilder) {
		path := filepath.Join(b.baseDir, "extra.dict")
		WriteDictionary(b.t, path, lines...)
		b.cfg.Dictionary.Path = path
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StateDir)
}
