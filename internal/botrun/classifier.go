package botrun

import (
	"fmt"
	"log/slog"

	"wikiturtles/internal/config"
	"wikiturtles/internal/logging"
	"wikiturtles/internal/meter"
	"wikiturtles/internal/phonetic"
)

// NewClassifier builds the classifier described by cfg: the configured
// rules over the seed dictionary, refined by the dictionary file if set.
func NewClassifier(cfg *config.Config) (*meter.Classifier, error) {
	rules, err := meter.NewRules(cfg.RuleSet())
	if err != nil {
		return nil, fmt.Errorf("meter rules: %w", err)
	}
	dict, err := LoadDictionary(cfg)
	if err != nil {
		return nil, err
	}
	return meter.NewClassifier(rules, dict), nil
}

// LoadDictionary returns the seed dictionary merged with cfg's dictionary
// file.
func LoadDictionary(cfg *config.Config) (*phonetic.Dictionary, error) {
	dict, err := phonetic.Embedded()
	if err != nil {
		return nil, err
	}
	if cfg.Dictionary.Path == "" {
		return dict, nil
	}
	extra, err := phonetic.LoadFile(cfg.Dictionary.Path)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	dict.Merge(extra)
	return dict, nil
}

// WarnSeedOnly logs a warning and returns true when cfg names no dictionary
// file. The seed covers a few hundred common words, so most random titles
// will be unresolvable.
func WarnSeedOnly(cfg *config.Config, logger *slog.Logger) bool {
	if cfg.Dictionary.Path != "" {
		return false
	}
	logging.WarnWithContext(logger, "no dictionary file configured; using the embedded seed only", "seed_dictionary_only",
		logging.String(logging.FieldErrorHint, config.DictionaryHint),
	)
	return true
}
