package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeDictionary(); err != nil {
		return err
	}
	c.normalizeMeter()
	c.normalizeWikipedia()
	c.normalizeRender()
	c.normalizeMastodon()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = ExpandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogoPath) == "" {
		c.Paths.LogoPath = defaultLogoPath
	}
	if c.Paths.LogoPath, err = ExpandPath(c.Paths.LogoPath); err != nil {
		return fmt.Errorf("paths.logo_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeDictionary() error {
	c.Dictionary.Path = strings.TrimSpace(c.Dictionary.Path)
	if c.Dictionary.Path == "" {
		if value, ok := os.LookupEnv("WIKITURTLES_DICTIONARY"); ok {
			c.Dictionary.Path = strings.TrimSpace(value)
		}
	}
	var err error
	if c.Dictionary.Path, err = ExpandPath(c.Dictionary.Path); err != nil {
		return fmt.Errorf("dictionary.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeMeter() {
	c.Meter.BannedWords = trimList(c.Meter.BannedWords)
	c.Meter.BannedPhrases = trimList(c.Meter.BannedPhrases)
	c.Meter.AcceptedPattern = strings.TrimSpace(c.Meter.AcceptedPattern)
	for i := range c.Meter.Overrides {
		c.Meter.Overrides[i].Word = strings.TrimSpace(c.Meter.Overrides[i].Word)
		c.Meter.Overrides[i].Stresses = strings.TrimSpace(c.Meter.Overrides[i].Stresses)
	}
}

func (c *Config) normalizeWikipedia() {
	c.Wikipedia.APIURL = strings.TrimSpace(c.Wikipedia.APIURL)
	if c.Wikipedia.APIURL == "" {
		c.Wikipedia.APIURL = defaultWikipediaAPIURL
	}
	c.Wikipedia.ArticleBaseURL = strings.TrimSpace(c.Wikipedia.ArticleBaseURL)
	if c.Wikipedia.ArticleBaseURL == "" {
		c.Wikipedia.ArticleBaseURL = defaultArticleBaseURL
	}
	c.Wikipedia.UserAgent = strings.TrimSpace(c.Wikipedia.UserAgent)
	if c.Wikipedia.UserAgent == "" {
		c.Wikipedia.UserAgent = defaultUserAgent
	}
}

func (c *Config) normalizeRender() {
	c.Render.ChromePath = strings.TrimSpace(c.Render.ChromePath)
	c.Render.LogoURL = strings.TrimSpace(c.Render.LogoURL)
	if c.Render.LogoURL == "" {
		c.Render.LogoURL = defaultLogoURL
	}
}

func (c *Config) normalizeMastodon() {
	if strings.TrimSpace(c.Mastodon.AccessToken) == "" {
		if value, ok := os.LookupEnv("MASTODON_ACCESS_TOKEN"); ok {
			c.Mastodon.AccessToken = value
		}
	}
	c.Mastodon.AccessToken = strings.TrimSpace(c.Mastodon.AccessToken)
	c.Mastodon.BaseURL = strings.TrimRight(strings.TrimSpace(c.Mastodon.BaseURL), "/")
	if c.Mastodon.BaseURL == "" {
		c.Mastodon.BaseURL = defaultMastodonBaseURL
	}
	c.Mastodon.Visibility = strings.ToLower(strings.TrimSpace(c.Mastodon.Visibility))
	if c.Mastodon.Visibility == "" {
		c.Mastodon.Visibility = defaultMastodonVisibility
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func trimList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			out = append(out, value)
		}
	}
	return out
}
