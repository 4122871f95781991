package social

import (
	"context"
	"log/slog"

	"wikiturtles/internal/logging"
)

// Status is one post. MediaPath may be empty for a text-only post.
type Status struct {
	Text      string
	MediaPath string
	AltText   string
}

// Receipt identifies a published status.
type Receipt struct {
	ID  string
	URL string
}

// Poster publishes statuses.
type Poster interface {
	Post(ctx context.Context, status Status) (Receipt, error)
}

// DryRun logs statuses instead of posting them.
type DryRun struct {
	logger *slog.Logger
}

var _ Poster = (*DryRun)(nil)

// NewDryRun returns a poster that only logs.
func NewDryRun(logger *slog.Logger) *DryRun {
	return &DryRun{logger: logging.NewComponentLogger(logger, "social")}
}

// Post logs status and returns an empty receipt.
func (d *DryRun) Post(_ context.Context, status Status) (Receipt, error) {
	d.logger.Info("dry run: status not posted",
		logging.String(logging.FieldEventType, "status_dry_run"),
		logging.String("text", status.Text),
		logging.String("media", status.MediaPath),
	)
	return Receipt{}, nil
}
