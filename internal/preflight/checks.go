package preflight

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"wikiturtles/internal/config"
	"wikiturtles/internal/phonetic"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckDictionary loads the configured pronouncing dictionary. Without a
// file only the embedded seed is available, which leaves most titles
// unresolvable, so an empty path fails.
func CheckDictionary(path string) Result {
	const name = "Dictionary"

	path = strings.TrimSpace(path)
	if path == "" {
		seed, err := phonetic.Embedded()
		if err != nil {
			return Result{Name: name, Detail: err.Error()}
		}
		return Result{Name: name, Detail: fmt.Sprintf("seed only (%d words); %s", seed.Len(), config.DictionaryHint)}
	}
	dict, err := phonetic.LoadFile(path)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	if dict.Len() == 0 {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: no entries)", path)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d words)", path, dict.Len())}
}

// CheckWikipedia verifies the MediaWiki API answers a siteinfo query.
func CheckWikipedia(ctx context.Context, apiURL, userAgent string) Result {
	const name = "Wikipedia"

	endpoint, err := url.Parse(strings.TrimSpace(apiURL))
	if err != nil || endpoint.Host == "" {
		return Result{Name: name, Detail: fmt.Sprintf("invalid api url %q", apiURL)}
	}
	params := url.Values{}
	params.Set("action", "query")
	params.Set("meta", "siteinfo")
	params.Set("format", "json")
	endpoint.RawQuery = params.Encode()

	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(checkCtx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("request failed (%v)", err)}
	}
	req.Header.Set("User-Agent", userAgent)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return Result{Name: name, Detail: summarizeError(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{Name: name, Detail: fmt.Sprintf("api returned %d", resp.StatusCode)}
	}
	return Result{Name: name, Passed: true, Detail: "Reachable"}
}

// CheckMastodon verifies the access token against verify_credentials.
func CheckMastodon(ctx context.Context, baseURL, token string, timeout time.Duration) Result {
	const name = "Mastodon"

	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return Result{Name: name, Detail: "missing base url"}
	}
	if strings.TrimSpace(token) == "" {
		return Result{Name: name, Detail: "missing access token"}
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	checkCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(checkCtx, http.MethodGet, base+"/api/v1/accounts/verify_credentials", nil)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("auth check failed (%v)", err)}
	}
	req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(token))

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return Result{Name: name, Detail: summarizeError(err)}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return Result{Name: name, Passed: true, Detail: "Authenticated"}
	case http.StatusUnauthorized, http.StatusForbidden:
		return Result{Name: name, Detail: "auth failed (invalid access token)"}
	default:
		return Result{Name: name, Detail: fmt.Sprintf("auth check failed (%d)", resp.StatusCode)}
	}
}

func summarizeError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "check timed out"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "check timed out (unreachable)"
	}
	return err.Error()
}
