package title

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// DefaultArticleBase is the article path WikiURL links against.
const DefaultArticleBase = "https://en.wikipedia.org/wiki/"

// DefaultMaxStatusLen is the longest status body StatusText allows.
const DefaultMaxStatusLen = 280

// ErrStatusTooLong reports a status body over the configured limit.
var ErrStatusTooLong = errors.New("status text too long")

// AddPadding spaces short titles so their last word lands in the fourth
// slot of the logo generator. Hyphens count as word breaks. Titles with
// fewer than two or more than three words come back unchanged.
func AddPadding(title string) string {
	words := strings.Fields(strings.ReplaceAll(title, "-", " "))
	switch len(words) {
	case 3:
		return words[0] + "  " + words[1] + " " + words[2]
	case 2:
		return "  " + words[0] + "  " + words[1]
	default:
		return title
	}
}

// WikiURL links title under DefaultArticleBase.
func WikiURL(title string) string {
	return WikiURLWithBase(DefaultArticleBase, title)
}

// WikiURLWithBase replaces spaces with underscores, query-escapes the result
// and appends it to base. An empty base selects DefaultArticleBase.
func WikiURLWithBase(base, title string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		base = DefaultArticleBase
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + url.QueryEscape(strings.ReplaceAll(title, " ", "_"))
}

// LogoFragment turns a (padded) title into the URL fragment the logo
// generator reads, including the leading '#'.
func LogoFragment(title string) string {
	return "#" + strings.ReplaceAll(title, " ", "_")
}

// StatusText composes the post body. maxLen <= 0 selects
// DefaultMaxStatusLen; the limit counts runes.
func StatusText(title, link string, maxLen int) (string, error) {
	if maxLen <= 0 {
		maxLen = DefaultMaxStatusLen
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return "", errors.New("status text: empty title")
	}
	body := title
	if link = strings.TrimSpace(link); link != "" {
		body += "\n" + link
	}
	if n := utf8.RuneCountInString(body); n > maxLen {
		return "", fmt.Errorf("%w: %d > %d", ErrStatusTooLong, n, maxLen)
	}
	return body, nil
}
