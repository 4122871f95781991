package preflight

import (
	"context"
	"time"

	"wikiturtles/internal/config"
	"wikiturtles/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	results = append(results, CheckDirectoryAccess("State directory", cfg.Paths.StateDir))
	results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))

	results = append(results, CheckDictionary(cfg.Dictionary.Path))

	results = append(results, CheckWikipedia(ctx, cfg.Wikipedia.APIURL, cfg.Wikipedia.UserAgent))

	if cfg.Render.Enabled {
		results = append(results, fromStatus(deps.CheckChrome(cfg.Render.ChromePath)))
	}

	if cfg.Mastodon.Enabled {
		results = append(results, CheckMastodon(ctx, cfg.Mastodon.BaseURL, cfg.Mastodon.AccessToken,
			time.Duration(cfg.Mastodon.TimeoutSeconds)*time.Second))
	}

	return results
}

func fromStatus(status deps.Status) Result {
	detail := status.Detail
	if status.Available {
		detail = status.Command
	}
	return Result{Name: status.Name, Passed: status.Available, Detail: detail}
}
