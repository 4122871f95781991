package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"wikiturtles/internal/numwords"
)

// InvalidStresses is the stress string reported for tokens that cannot be
// pronounced. Its length (10) exceeds every accepted meter pattern.
const InvalidStresses = "1111111111"

var deleteReplacer = strings.NewReplacer(
	"(", "",
	")", "",
	"[", "",
	"]", "",
	"{", "",
	"}", "",
	",", "",
	":", "",
	";", "",
	".", "",
)

var ordinalSuffixes = []string{"nd", "rd", "st", "th"}

// CleanStr removes brackets and separators the pronouncing dictionary does
// not know, then turns hyphens into spaces. Deletion runs before the hyphen
// swap.
func CleanStr(s string) string {
	s = deleteReplacer.Replace(s)
	return strings.ReplaceAll(s, "-", " ")
}

// NumbersToWords converts a digit token to words. Four-digit tokens are read
// as years, other digit tokens as cardinals, and digits followed by an
// ordinal suffix as ordinals. Non-numeric tokens come back unchanged and
// failed conversions return InvalidStresses.
func NumbersToWords(token string) string {
	words, _, err := ExpandNumeral(token)
	if err != nil {
		return InvalidStresses
	}
	return words
}

// ExpandNumeral is NumbersToWords with the failure kept explicit. numeric
// reports whether token was treated as a number at all.
func ExpandNumeral(token string) (words string, numeric bool, err error) {
	if isDigits(token) {
		if utf8.RuneCountInString(token) == 4 {
			words, err = numwords.Year(token)
		} else {
			words, err = numwords.Cardinal(token)
		}
		if err != nil {
			return "", true, err
		}
		return words, true, nil
	}
	if digits, ok := trimOrdinalSuffix(token); ok {
		words, err = numwords.Ordinal(digits)
		if err != nil {
			return "", true, err
		}
		return words, true, nil
	}
	return token, false, nil
}

func trimOrdinalSuffix(token string) (string, bool) {
	for _, suffix := range ordinalSuffixes {
		digits, found := strings.CutSuffix(token, suffix)
		if found && isDigits(digits) {
			return digits, true
		}
	}
	return "", false
}

// isDigits follows the broad notion of a digit (any Unicode Nd rune), so
// tokens such as "٣" are routed to the converter and rejected there.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
