package config

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"wikiturtles/internal/meter"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMeter(); err != nil {
		return err
	}
	if err := c.validateSearch(); err != nil {
		return err
	}
	if err := c.validateWikipedia(); err != nil {
		return err
	}
	if err := c.validateRender(); err != nil {
		return err
	}
	if err := c.validateMastodon(); err != nil {
		return err
	}
	if err := c.validatePosting(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateMeter() error {
	if _, err := meter.NewRules(c.RuleSet()); err != nil {
		return fmt.Errorf("meter: %w", err)
	}
	return nil
}

func (c *Config) validateSearch() error {
	if err := ensurePositiveMap(map[string]int{
		"search.max_attempts": c.Search.MaxAttempts,
		"search.batch_size":   c.Search.BatchSize,
	}); err != nil {
		return err
	}
	if c.Search.BackoffSeconds < 0 {
		return errors.New("search.backoff_seconds must be >= 0")
	}
	if c.Search.TimeoutBackoffSeconds < 0 {
		return errors.New("search.timeout_backoff_seconds must be >= 0")
	}
	return nil
}

func (c *Config) validateWikipedia() error {
	if err := validateHTTPURL("wikipedia.api_url", c.Wikipedia.APIURL); err != nil {
		return err
	}
	if err := validateHTTPURL("wikipedia.article_base_url", c.Wikipedia.ArticleBaseURL); err != nil {
		return err
	}
	if c.Wikipedia.TimeoutSeconds <= 0 {
		return errors.New("wikipedia.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateRender() error {
	if !c.Render.Enabled {
		return nil
	}
	if err := validateHTTPURL("render.logo_url", c.Render.LogoURL); err != nil {
		return err
	}
	if err := ensurePositiveMap(map[string]int{
		"render.window_width":    c.Render.WindowWidth,
		"render.window_height":   c.Render.WindowHeight,
		"render.timeout_seconds": c.Render.TimeoutSeconds,
	}); err != nil {
		return err
	}
	if c.Render.CropTop < 0 || c.Render.CropBottom < 0 {
		return errors.New("render.crop_top and render.crop_bottom must be >= 0")
	}
	if c.Render.CropTop+c.Render.CropBottom >= c.Render.WindowHeight {
		return errors.New("render.crop_top + render.crop_bottom must be less than render.window_height")
	}
	if c.Render.TrimThreshold < 0 || c.Render.TrimThreshold > 255 {
		return errors.New("render.trim_threshold must be between 0 and 255")
	}
	return nil
}

func (c *Config) validateMastodon() error {
	switch c.Mastodon.Visibility {
	case "public", "unlisted", "private", "direct":
	default:
		return fmt.Errorf("mastodon.visibility %q must be one of public, unlisted, private, direct", c.Mastodon.Visibility)
	}
	if !c.Mastodon.Enabled {
		return nil
	}
	if err := validateHTTPURL("mastodon.base_url", c.Mastodon.BaseURL); err != nil {
		return err
	}
	if c.Mastodon.AccessToken == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = defaultConfigPath
		}
		return fmt.Errorf("mastodon.access_token is required when mastodon.enabled is true. Set MASTODON_ACCESS_TOKEN env var or edit %s (create with 'wikiturtles config init')", defaultPath)
	}
	if c.Mastodon.TimeoutSeconds <= 0 {
		return errors.New("mastodon.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validatePosting() error {
	if c.Posting.MaxStatusLen <= 0 {
		return errors.New("posting.max_status_len must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}
}

func validateHTTPURL(key, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s must be set", key)
	}
	parsed, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%s must be an http(s) URL, got %q", key, value)
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if values[key] <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
