package meter

import (
	"strings"

	"wikiturtles/internal/phonetic"
	"wikiturtles/internal/textnorm"
)

// Dictionary is the pronouncing dictionary the resolver consults. An
// unknown word returns no variants.
type Dictionary interface {
	PhonesForWord(word string) []phonetic.Pronunciation
}

// ResolutionKind distinguishes the outcomes of resolving one token.
type ResolutionKind int

const (
	// Resolved carries the token's stress string.
	Resolved ResolutionKind = iota
	// Expanded replaces the token with several words to resolve in its place.
	Expanded
	// Unresolvable marks a token that cannot be pronounced; the enclosing
	// title is rejected.
	Unresolvable
)

func (k ResolutionKind) String() string {
	switch k {
	case Resolved:
		return "resolved"
	case Expanded:
		return "expanded"
	case Unresolvable:
		return "unresolvable"
	default:
		return "unknown"
	}
}

// Source names where a resolution came from.
type Source string

const (
	SourceOverride   Source = "override"
	SourceDictionary Source = "dictionary"
	SourceNumeral    Source = "numeral"
	SourceNone       Source = "none"
)

// Resolution is the outcome of resolving a single token.
type Resolution struct {
	Kind      ResolutionKind
	Word      string
	Stresses  string
	Expansion []string
	Source    Source
}

// StressString returns the stresses of a resolved token, or
// textnorm.InvalidStresses for an unresolvable one. Expanded resolutions
// have no stresses of their own.
func (r Resolution) StressString() string {
	switch r.Kind {
	case Resolved:
		return r.Stresses
	case Unresolvable:
		return textnorm.InvalidStresses
	default:
		return ""
	}
}

// WordStresses resolves one normalized token. Numerals are converted first;
// a multi-word conversion comes back as Expanded. Overrides win over the
// dictionary, whose first pronunciation variant is used.
func (c *Classifier) WordStresses(word string) Resolution {
	converted, numeric, err := textnorm.ExpandNumeral(word)
	if err != nil {
		return Resolution{Kind: Unresolvable, Word: word, Source: SourceNumeral}
	}
	if numeric {
		if parts := strings.Fields(converted); len(parts) > 1 {
			return Resolution{Kind: Expanded, Word: converted, Expansion: parts, Source: SourceNumeral}
		}
	}

	if stresses, ok := c.rules.override(converted); ok {
		return Resolution{Kind: Resolved, Word: converted, Stresses: stresses, Source: SourceOverride}
	}

	if c.dict != nil {
		if variants := c.dict.PhonesForWord(converted); len(variants) > 0 {
			return Resolution{Kind: Resolved, Word: converted, Stresses: variants[0].Stresses(), Source: SourceDictionary}
		}
	}
	return Resolution{Kind: Unresolvable, Word: converted, Source: SourceNone}
}
