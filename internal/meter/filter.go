package meter

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// ContainsBanned reports whether the raw title holds a banned word or
// phrase. Words match whole tokens only (letters kept, case folded) so a
// banned word inside an unrelated word does not fire; phrases match as
// case-insensitive substrings of the whole title.
func (r *Rules) ContainsBanned(title string) bool {
	fold := cases.Fold()

	if len(r.bannedWords) > 0 {
		for _, token := range strings.Fields(title) {
			key := fold.String(lettersOnly(token))
			if key == "" {
				continue
			}
			if _, banned := r.bannedWords[key]; banned {
				return true
			}
		}
	}

	if len(r.bannedPhrases) > 0 {
		folded := fold.String(title)
		for _, phrase := range r.bannedPhrases {
			if strings.Contains(folded, phrase) {
				return true
			}
		}
	}
	return false
}

func lettersOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, s)
}
