package config

import "wikiturtles/internal/meter"

// DictionaryHint tells the operator how to replace the embedded seed
// dictionary with a full one.
const DictionaryHint = "set dictionary.path or WIKITURTLES_DICTIONARY to a full CMU dictionary (cmudict.dict)"

const (
	defaultConfigPath         = "~/.config/wikiturtles/config.toml"
	projectConfigName         = "wikiturtles.toml"
	defaultStateDir           = "~/.local/share/wikiturtles"
	defaultLogDir             = "~/.local/share/wikiturtles/logs"
	defaultLogoPath           = "/tmp/logo.png"
	defaultMaxAttempts        = 1000
	defaultBatchSize          = 10
	defaultBackoffSeconds     = 1
	defaultTimeoutBackoff     = 240
	defaultWikipediaAPIURL    = "https://en.wikipedia.org/w/api.php"
	defaultArticleBaseURL     = "https://en.wikipedia.org/wiki/"
	defaultUserAgent          = "wikiturtles/dev (https://github.com/wikiturtles/wikiturtles)"
	defaultWikipediaTimeout   = 30
	defaultLogoURL            = "http://glench.com/tmnt/"
	defaultWindowWidth        = 1280
	defaultWindowHeight       = 600
	defaultCropTop            = 175
	defaultCropBottom         = 100
	defaultTrimThreshold      = 100
	defaultRenderTimeout      = 60
	defaultMastodonBaseURL    = "https://botsin.space"
	defaultMastodonVisibility = "public"
	defaultMastodonTimeout    = 30
	defaultMaxStatusLen       = 280
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	rules := meter.DefaultRuleSet()
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
			LogoPath: defaultLogoPath,
		},
		Meter: Meter{
			BannedWords:     rules.BannedWords,
			BannedPhrases:   rules.BannedPhrases,
			AcceptedPattern: rules.AcceptedPattern,
			Overrides:       rules.Overrides,
		},
		Search: Search{
			MaxAttempts:           defaultMaxAttempts,
			BatchSize:             defaultBatchSize,
			BackoffSeconds:        defaultBackoffSeconds,
			TimeoutBackoffSeconds: defaultTimeoutBackoff,
		},
		Wikipedia: Wikipedia{
			APIURL:         defaultWikipediaAPIURL,
			ArticleBaseURL: defaultArticleBaseURL,
			UserAgent:      defaultUserAgent,
			TimeoutSeconds: defaultWikipediaTimeout,
		},
		Render: Render{
			Enabled:        true,
			LogoURL:        defaultLogoURL,
			WindowWidth:    defaultWindowWidth,
			WindowHeight:   defaultWindowHeight,
			CropTop:        defaultCropTop,
			CropBottom:     defaultCropBottom,
			TrimThreshold:  defaultTrimThreshold,
			TimeoutSeconds: defaultRenderTimeout,
		},
		Mastodon: Mastodon{
			BaseURL:        defaultMastodonBaseURL,
			Visibility:     defaultMastodonVisibility,
			TimeoutSeconds: defaultMastodonTimeout,
		},
		Posting: Posting{
			MaxStatusLen: defaultMaxStatusLen,
			SkipPosted:   true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
