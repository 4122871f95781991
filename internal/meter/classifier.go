package meter

import (
	"strings"

	"wikiturtles/internal/textnorm"
)

// Classifier scores titles against the accepted meter.
type Classifier struct {
	rules *Rules
	dict  Dictionary
}

// NewClassifier pairs rules with a pronouncing dictionary. A nil rules value
// selects the defaults.
func NewClassifier(rules *Rules, dict Dictionary) *Classifier {
	if rules == nil {
		rules = MustDefaultRules()
	}
	return &Classifier{rules: rules, dict: dict}
}

// Rules exposes the classifier's configuration.
func (c *Classifier) Rules() *Rules {
	return c.rules
}

// IsTMNT reports whether title passes the content filter and its stresses
// form an accepted eight-syllable pattern.
func (c *Classifier) IsTMNT(title string) bool {
	return c.Analyze(title).Accepted
}

// TitleStresses concatenates the stresses of every token in an already
// cleaned title. ok is false when a token cannot be pronounced or when eight
// syllables are reached while tokens remain. A shorter-than-eight result is
// returned as is.
func (c *Classifier) TitleStresses(title string) (stresses string, ok bool) {
	stresses, outcome := c.walk(title, nil)
	if outcome != walkComplete {
		return "", false
	}
	return stresses, true
}

type walkOutcome int

const (
	walkComplete walkOutcome = iota
	walkTooLong
	walkUnresolvable
)

// walk drives the token queue. observe, when set, sees every token and its
// resolution in processing order.
func (c *Classifier) walk(title string, observe func(token string, res Resolution)) (string, walkOutcome) {
	queue := newTokenQueue(strings.Fields(title))
	var acc strings.Builder

	for queue.Len() > 0 {
		if acc.Len() >= PatternLength {
			return "", walkTooLong
		}
		token, _ := queue.PopFront()
		res := c.WordStresses(token)
		if observe != nil {
			observe(token, res)
		}
		switch res.Kind {
		case Expanded:
			queue.PushFront(res.Expansion...)
		case Unresolvable:
			return "", walkUnresolvable
		default:
			acc.WriteString(res.Stresses)
		}
	}
	return acc.String(), walkComplete
}

// Verdict explains why a title was accepted or rejected.
type Verdict string

const (
	VerdictAccepted        Verdict = "accepted"
	VerdictBanned          Verdict = "banned"
	VerdictUnresolvable    Verdict = "unresolvable"
	VerdictTooLong         Verdict = "too_long"
	VerdictTooShort        Verdict = "too_short"
	VerdictPatternMismatch Verdict = "pattern_mismatch"
)

// Step records one token taken off the queue.
type Step struct {
	Token      string
	Resolution Resolution
}

// Analysis is the full trace of classifying one title.
type Analysis struct {
	Title    string
	Cleaned  string
	Steps    []Step
	Stresses string
	Verdict  Verdict
	Accepted bool
}

// Analyze classifies title and records every step. Its Accepted field is
// what IsTMNT returns.
func (c *Classifier) Analyze(title string) Analysis {
	analysis := Analysis{Title: title}
	if c.rules.ContainsBanned(title) {
		analysis.Verdict = VerdictBanned
		return analysis
	}

	analysis.Cleaned = textnorm.CleanStr(title)
	stresses, outcome := c.walk(analysis.Cleaned, func(token string, res Resolution) {
		analysis.Steps = append(analysis.Steps, Step{Token: token, Resolution: res})
	})

	switch outcome {
	case walkTooLong:
		analysis.Verdict = VerdictTooLong
	case walkUnresolvable:
		analysis.Verdict = VerdictUnresolvable
	default:
		analysis.Stresses = stresses
		switch {
		case len(stresses) > PatternLength:
			analysis.Verdict = VerdictTooLong
		case len(stresses) < PatternLength:
			analysis.Verdict = VerdictTooShort
		case !c.rules.Accepts(stresses):
			analysis.Verdict = VerdictPatternMismatch
		default:
			analysis.Verdict = VerdictAccepted
			analysis.Accepted = true
		}
	}
	return analysis
}
