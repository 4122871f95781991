package deps

import (
	"strings"

	"github.com/go-rod/rod/lib/launcher"
)

// ResolveChromePath returns the browser the renderer will launch: the
// configured binary when set, otherwise the first Chrome or Chromium found
// in the usual install locations. An empty result means rod would have to
// download a browser on first use.
func ResolveChromePath(configured string) string {
	if trimmed := strings.TrimSpace(configured); trimmed != "" {
		return trimmed
	}
	if found, ok := launcher.LookPath(); ok {
		return found
	}
	return ""
}

// CheckChrome reports whether a browser for logo rendering is available.
func CheckChrome(configured string) Status {
	status := Requirement{Name: "Chrome", Command: ResolveChromePath(configured)}.Check()
	if status.Command == "" {
		status.Detail = "no Chrome or Chromium found; set render.chrome_path"
	}
	return status
}
