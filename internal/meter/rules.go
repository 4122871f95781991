package meter

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// DefaultAcceptedPattern accepts four trochees. The weak syllable of the
// first foot may carry secondary stress, as in "TEEN-age".
const DefaultAcceptedPattern = `^[12][02][12]0[12]0[12]0$`

// PatternLength is the syllable count of an accepted title.
const PatternLength = 8

// Override pins the stress pattern of a token the dictionary gets wrong or
// does not know, such as an abbreviation.
type Override struct {
	Word     string `toml:"word"`
	Stresses string `toml:"stresses"`
}

// RuleSet is the editable description of Rules.
type RuleSet struct {
	BannedWords     []string
	BannedPhrases   []string
	Overrides       []Override
	AcceptedPattern string
}

// DefaultRuleSet returns the tables the bot ships with.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		BannedWords:   []string{"nazi", "rape", "victim"},
		BannedPhrases: []string{"rugby union", "rugby player", "historic district"},
		Overrides: []Override{
			{Word: "HD", Stresses: "10"},
			{Word: "U.S.", Stresses: "10"},
		},
		AcceptedPattern: DefaultAcceptedPattern,
	}
}

// Rules holds the classifier's read-only configuration.
type Rules struct {
	bannedWords   map[string]struct{}
	bannedPhrases []string
	overrides     map[string]string
	overrideOrder []Override
	accepted      *regexp.Regexp
}

// NewRules validates set and freezes it.
func NewRules(set RuleSet) (*Rules, error) {
	fold := cases.Fold()
	rules := &Rules{
		bannedWords: make(map[string]struct{}, len(set.BannedWords)),
		overrides:   make(map[string]string, len(set.Overrides)),
	}

	for _, word := range set.BannedWords {
		key := fold.String(lettersOnly(word))
		if key == "" {
			return nil, fmt.Errorf("banned word %q has no letters", word)
		}
		rules.bannedWords[key] = struct{}{}
	}

	for _, phrase := range set.BannedPhrases {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" {
			return nil, errors.New("banned phrase must not be empty")
		}
		rules.bannedPhrases = append(rules.bannedPhrases, fold.String(phrase))
	}

	for _, o := range set.Overrides {
		word := strings.TrimSpace(o.Word)
		if word == "" {
			return nil, fmt.Errorf("override with stresses %q has no word", o.Stresses)
		}
		if !isStressString(o.Stresses) {
			return nil, fmt.Errorf("override %q: stresses %q must be a non-empty string of 0, 1 and 2", word, o.Stresses)
		}
		key := fold.String(word)
		if _, dup := rules.overrides[key]; dup {
			continue
		}
		rules.overrides[key] = o.Stresses
		rules.overrideOrder = append(rules.overrideOrder, Override{Word: word, Stresses: o.Stresses})
	}

	pattern := strings.TrimSpace(set.AcceptedPattern)
	if pattern == "" {
		pattern = DefaultAcceptedPattern
	}
	accepted, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("accepted pattern: %w", err)
	}
	rules.accepted = accepted

	return rules, nil
}

// MustDefaultRules returns Rules built from DefaultRuleSet.
func MustDefaultRules() *Rules {
	rules, err := NewRules(DefaultRuleSet())
	if err != nil {
		panic(err)
	}
	return rules
}

// Accepts reports whether an eight-symbol stress string scans as accepted.
func (r *Rules) Accepts(stresses string) bool {
	if len(stresses) != PatternLength {
		return false
	}
	return r.accepted.MatchString(stresses)
}

// AcceptedPattern returns the source of the accepted-pattern expression.
func (r *Rules) AcceptedPattern() string {
	return r.accepted.String()
}

// Overrides returns a copy of the override table in declaration order.
func (r *Rules) Overrides() []Override {
	return append([]Override(nil), r.overrideOrder...)
}

func (r *Rules) override(word string) (string, bool) {
	stresses, ok := r.overrides[cases.Fold().String(word)]
	return stresses, ok
}

func isStressString(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '2' {
			return false
		}
	}
	return true
}
