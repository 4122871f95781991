package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"wikiturtles/internal/logging"
	"wikiturtles/internal/meter"
	"wikiturtles/internal/wikipedia"
)

// ErrNoMatch reports that every attempt came back without an accepted title.
var ErrNoMatch = errors.New("no matching title found")

// Classifier judges one title.
type Classifier interface {
	Analyze(title string) meter.Analysis
}

// SeenChecker reports titles that must not be picked again.
type SeenChecker interface {
	HasPosted(ctx context.Context, title string) (bool, error)
}

// Options paces the search.
type Options struct {
	MaxAttempts    int
	BatchSize      int
	Backoff        time.Duration
	TimeoutBackoff time.Duration
	Seen           SeenChecker
	Logger         *slog.Logger
	// Sleep replaces the context-aware pause between batches.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Match is an accepted title, unmodified, with search statistics.
type Match struct {
	Title         string
	Stresses      string
	Attempts      int
	TitlesChecked int
}

// Stats describes a search that ended without a match.
type Stats struct {
	Attempts      int
	TitlesChecked int
	Timeouts      int
	Skipped       int
}

// Searcher pulls titles from a source until one scans.
type Searcher struct {
	source     wikipedia.TitleSource
	classifier Classifier
	opts       Options
	logger     *slog.Logger
}

// New builds a Searcher. Zero MaxAttempts or BatchSize fall back to 1000
// and 10.
func New(source wikipedia.TitleSource, classifier Classifier, opts Options) (*Searcher, error) {
	if source == nil {
		return nil, errors.New("search: title source required")
	}
	if classifier == nil {
		return nil, errors.New("search: classifier required")
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 1000
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 10
	}
	if opts.Sleep == nil {
		opts.Sleep = sleepContext
	}
	return &Searcher{
		source:     source,
		classifier: classifier,
		opts:       opts,
		logger:     logging.NewComponentLogger(opts.Logger, "search"),
	}, nil
}

// Find returns the first accepted title. When attempts run out the error
// wraps ErrNoMatch and Stats reports the work done.
func (s *Searcher) Find(ctx context.Context) (Match, Stats, error) {
	var stats Stats

	for attempt := 1; attempt <= s.opts.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return Match{}, stats, err
		}
		stats.Attempts = attempt

		titles, err := s.source.RandomTitles(ctx, s.opts.BatchSize)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return Match{}, stats, ctxErr
			}
			if !errors.Is(err, wikipedia.ErrTimeout) {
				return Match{}, stats, fmt.Errorf("fetch random titles: %w", err)
			}
			stats.Timeouts++
			logging.WarnWithContext(s.logger, "title source timed out; backing off", "source_timeout",
				logging.Int("attempt", attempt),
				logging.Duration("backoff", s.opts.TimeoutBackoff),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "wikipedia is slow or unreachable"),
			)
			if err := s.opts.Sleep(ctx, s.opts.TimeoutBackoff); err != nil {
				return Match{}, stats, err
			}
			continue
		}

		for _, title := range titles {
			stats.TitlesChecked++
			analysis := s.classifier.Analyze(title)
			s.logger.Debug("title classified",
				logging.String(logging.FieldTitle, title),
				logging.String(logging.FieldEventType, "title_classified"),
				logging.String("verdict", string(analysis.Verdict)),
				logging.String("stresses", analysis.Stresses),
			)
			if !analysis.Accepted {
				continue
			}
			if s.opts.Seen != nil {
				seen, err := s.opts.Seen.HasPosted(ctx, title)
				if err != nil {
					return Match{}, stats, fmt.Errorf("check history: %w", err)
				}
				if seen {
					stats.Skipped++
					s.logger.Info("skipping title already posted",
						logging.String(logging.FieldTitle, title),
						logging.String(logging.FieldEventType, "title_skipped"),
					)
					continue
				}
			}
			s.logger.Info("title accepted",
				logging.String(logging.FieldTitle, title),
				logging.String(logging.FieldEventType, "title_accepted"),
				logging.String("stresses", analysis.Stresses),
				logging.Int("attempt", attempt),
				logging.Int("titles_checked", stats.TitlesChecked),
			)
			return Match{
				Title:         title,
				Stresses:      analysis.Stresses,
				Attempts:      attempt,
				TitlesChecked: stats.TitlesChecked,
			}, stats, nil
		}

		if attempt < s.opts.MaxAttempts {
			if err := s.opts.Sleep(ctx, s.opts.Backoff); err != nil {
				return Match{}, stats, err
			}
		}
	}

	return Match{}, stats, fmt.Errorf("%w after %d attempts (%d titles)", ErrNoMatch, stats.Attempts, stats.TitlesChecked)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
