package numwords

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrMalformed reports input that is not a plain decimal digit string.
	ErrMalformed = errors.New("numwords: malformed number")
	// ErrOutOfRange reports a number too large to spell.
	ErrOutOfRange = errors.New("numwords: number out of range")
)

var ones = []string{
	"zero", "one", "two", "three", "four", "five",
	"six", "seven", "eight", "nine",
}

var teens = []string{
	"ten", "eleven", "twelve", "thirteen", "fourteen",
	"fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
}

var tens = []string{
	"", "", "twenty", "thirty", "forty", "fifty",
	"sixty", "seventy", "eighty", "ninety",
}

type scale struct {
	value uint64
	name  string
}

var scales = []scale{
	{1_000_000_000_000_000_000, "quintillion"},
	{1_000_000_000_000_000, "quadrillion"},
	{1_000_000_000_000, "trillion"},
	{1_000_000_000, "billion"},
	{1_000_000, "million"},
	{1_000, "thousand"},
}

var irregularOrdinals = map[string]string{
	"one":    "first",
	"two":    "second",
	"three":  "third",
	"five":   "fifth",
	"eight":  "eighth",
	"nine":   "ninth",
	"twelve": "twelfth",
}

// Cardinal spells digits as a counting number.
func Cardinal(digits string) (string, error) {
	n, err := parse(digits)
	if err != nil {
		return "", err
	}
	return spell(n), nil
}

// Ordinal spells digits as a ranking number ("twenty first").
func Ordinal(digits string) (string, error) {
	n, err := parse(digits)
	if err != nil {
		return "", err
	}
	words := strings.Fields(spell(n))
	last := len(words) - 1
	words[last] = ordinalWord(words[last])
	return strings.Join(words, " "), nil
}

// Year spells digits the way a year is read aloud ("nineteen oh five").
// Years whose century is zero, years like 2005 or 1000, and years past 9999
// fall back to the cardinal reading.
func Year(digits string) (string, error) {
	n, err := parse(digits)
	if err != nil {
		return "", err
	}
	high, low := n/100, n%100
	if high == 0 || (high%10 == 0 && low < 10) || high >= 100 {
		return spell(n), nil
	}
	var lowText string
	switch {
	case low == 0:
		lowText = "hundred"
	case low < 10:
		lowText = "oh " + ones[low]
	default:
		lowText = spell(low)
	}
	return spell(high) + " " + lowText, nil
}

func parse(digits string) (uint64, error) {
	if digits == "" {
		return 0, ErrMalformed
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, ErrMalformed
		}
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrOutOfRange
		}
		return 0, ErrMalformed
	}
	return n, nil
}

// spell joins scale groups with spaces and puts "and" before a trailing
// part under one hundred whenever something larger precedes it, so 2005
// reads "two thousand and five".
func spell(n uint64) string {
	if n == 0 {
		return ones[0]
	}
	parts := make([]string, 0, 8)
	rest := n
	for _, s := range scales {
		if rest >= s.value {
			parts = append(parts, spellUnderThousand(rest/s.value), s.name)
			rest %= s.value
		}
	}
	switch {
	case rest >= 100:
		parts = append(parts, spellUnderThousand(rest))
	case rest > 0 && n >= 100:
		parts = append(parts, "and", spellUnderHundred(rest))
	case rest > 0:
		parts = append(parts, spellUnderHundred(rest))
	}
	return strings.Join(parts, " ")
}

func spellUnderThousand(n uint64) string {
	if n >= 100 {
		head := ones[n/100] + " hundred"
		if rest := n % 100; rest > 0 {
			return head + " and " + spellUnderHundred(rest)
		}
		return head
	}
	return spellUnderHundred(n)
}

func spellUnderHundred(n uint64) string {
	switch {
	case n < 10:
		return ones[n]
	case n < 20:
		return teens[n-10]
	}
	word := tens[n/10]
	if n%10 > 0 {
		word += " " + ones[n%10]
	}
	return word
}

func ordinalWord(word string) string {
	if irregular, ok := irregularOrdinals[word]; ok {
		return irregular
	}
	if strings.HasSuffix(word, "y") {
		return strings.TrimSuffix(word, "y") + "ieth"
	}
	return word + "th"
}
