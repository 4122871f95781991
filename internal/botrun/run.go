package botrun

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"wikiturtles/internal/config"
	"wikiturtles/internal/history"
	"wikiturtles/internal/logging"
	"wikiturtles/internal/render"
	"wikiturtles/internal/search"
	"wikiturtles/internal/social"
	"wikiturtles/internal/title"
	"wikiturtles/internal/wikipedia"
)

// ErrLocked reports that another run holds the lock.
var ErrLocked = errors.New("another wikiturtles run is in progress")

// Options adjusts a run. Source, Renderer and Poster replace the
// collaborators built from config when set.
type Options struct {
	DryRun   bool
	NoRender bool
	Logger   *slog.Logger
	Source   wikipedia.TitleSource
	Renderer render.Renderer
	Poster   social.Poster
	Sleep    func(ctx context.Context, d time.Duration) error
}

// Result summarizes a run.
type Result struct {
	RunID         string
	Outcome       history.Outcome
	Title         string
	Stresses      string
	WikiURL       string
	Status        string
	LogoPath      string
	Receipt       social.Receipt
	Attempts      int
	TitlesChecked int
}

// Run performs one bot run under the state directory lock.
func Run(ctx context.Context, cfg *config.Config, opts Options) (Result, error) {
	if cfg == nil {
		return Result{}, errors.New("botrun: config required")
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return Result{}, err
	}

	lock := flock.New(cfg.LockPath())
	ok, err := lock.TryLock()
	if err != nil {
		return Result{}, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return Result{}, ErrLocked
	}
	defer func() { _ = lock.Unlock() }()

	runID := uuid.NewString()
	logger := logging.WithRunID(logging.NewComponentLogger(opts.Logger, "botrun"), runID)

	store, err := history.Open(cfg)
	if err != nil {
		return Result{}, fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	if err := store.BeginRun(ctx, runID, time.Now()); err != nil {
		return Result{}, err
	}
	logger.Info("run started",
		logging.String(logging.FieldEventType, "run_started"),
		logging.Bool("dry_run", opts.DryRun),
	)

	result := Result{RunID: runID}
	runErr := execute(ctx, cfg, opts, store, logger, &result)
	switch {
	case runErr == nil:
	case errors.Is(runErr, search.ErrNoMatch):
		result.Outcome = history.OutcomeNoMatch
	case errors.Is(runErr, context.Canceled), errors.Is(runErr, context.DeadlineExceeded):
		result.Outcome = history.OutcomeCanceled
	default:
		result.Outcome = history.OutcomeFailed
	}

	// Record the outcome even when ctx was canceled.
	finishCtx := context.WithoutCancel(ctx)
	if err := store.FinishRun(finishCtx, runID, history.RunResult{
		Outcome:       result.Outcome,
		Attempts:      result.Attempts,
		TitlesChecked: result.TitlesChecked,
		Title:         result.Title,
		Err:           runErr,
	}); err != nil {
		logging.WarnWithContext(logger, "failed to record run outcome", "history_write_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check the state directory is writable"),
		)
	}

	if runErr != nil {
		logger.Info("run finished without a post",
			logging.String(logging.FieldEventType, "run_finished"),
			logging.String("outcome", string(result.Outcome)),
			logging.Error(runErr),
		)
		return result, runErr
	}
	logger.Info("run finished",
		logging.String(logging.FieldEventType, "run_finished"),
		logging.String("outcome", string(result.Outcome)),
		logging.String(logging.FieldTitle, result.Title),
	)
	return result, nil
}

func execute(ctx context.Context, cfg *config.Config, opts Options, store *history.Store, logger *slog.Logger, result *Result) error {
	classifier, err := NewClassifier(cfg)
	if err != nil {
		return err
	}
	WarnSeedOnly(cfg, logger)
	source, err := titleSource(cfg, opts)
	if err != nil {
		return err
	}
	dryRun := opts.DryRun || !cfg.Mastodon.Enabled
	poster, err := newPoster(cfg, opts, dryRun, logger)
	if err != nil {
		return err
	}

	searchOpts := search.Options{
		MaxAttempts:    cfg.Search.MaxAttempts,
		BatchSize:      cfg.Search.BatchSize,
		Backoff:        cfg.SearchBackoff(),
		TimeoutBackoff: cfg.SearchTimeoutBackoff(),
		Logger:         logger,
		Sleep:          opts.Sleep,
	}
	if cfg.Posting.SkipPosted {
		searchOpts.Seen = store
	}
	searcher, err := search.New(source, classifier, searchOpts)
	if err != nil {
		return err
	}

	match, stats, err := searcher.Find(ctx)
	result.Attempts = stats.Attempts
	result.TitlesChecked = stats.TitlesChecked
	if err != nil {
		return err
	}
	result.Title = match.Title
	result.Stresses = match.Stresses
	result.WikiURL = title.WikiURLWithBase(cfg.Wikipedia.ArticleBaseURL, match.Title)

	status, err := title.StatusText(match.Title, result.WikiURL, cfg.Posting.MaxStatusLen)
	if err != nil {
		return err
	}
	result.Status = status

	if cfg.Render.Enabled && !opts.NoRender {
		renderer := opts.Renderer
		if renderer == nil {
			renderer, err = NewRenderer(cfg, logger)
			if err != nil {
				return err
			}
		}
		path, err := renderer.Render(ctx, match.Title)
		if err != nil {
			return fmt.Errorf("render logo: %w", err)
		}
		result.LogoPath = path
	}

	receipt, err := poster.Post(ctx, social.Status{
		Text:      status,
		MediaPath: result.LogoPath,
		AltText:   match.Title,
	})
	if err != nil {
		return fmt.Errorf("post status: %w", err)
	}
	result.Receipt = receipt

	if dryRun {
		result.Outcome = history.OutcomeDryRun
		return nil
	}
	result.Outcome = history.OutcomePosted

	if _, err := store.RecordPost(context.WithoutCancel(ctx), history.Post{
		Title:     match.Title,
		Stresses:  match.Stresses,
		WikiURL:   result.WikiURL,
		StatusURL: receipt.URL,
		LogoPath:  result.LogoPath,
		RunID:     result.RunID,
	}); err != nil {
		if !errors.Is(err, history.ErrAlreadyPosted) {
			return fmt.Errorf("record post: %w", err)
		}
		logging.WarnWithContext(logger, "title was already in history", "duplicate_post",
			logging.String(logging.FieldTitle, match.Title),
			logging.String(logging.FieldErrorHint, "enable posting.skip_posted to avoid reposts"),
		)
	}
	return nil
}

func titleSource(cfg *config.Config, opts Options) (wikipedia.TitleSource, error) {
	if opts.Source != nil {
		return opts.Source, nil
	}
	return wikipedia.New(cfg.Wikipedia.APIURL, cfg.Wikipedia.UserAgent,
		wikipedia.WithTimeout(time.Duration(cfg.Wikipedia.TimeoutSeconds)*time.Second))
}

func newPoster(cfg *config.Config, opts Options, dryRun bool, logger *slog.Logger) (social.Poster, error) {
	if dryRun {
		return social.NewDryRun(logger), nil
	}
	if opts.Poster != nil {
		return opts.Poster, nil
	}
	return social.NewMastodon(cfg.Mastodon.BaseURL, cfg.Mastodon.AccessToken,
		social.WithVisibility(cfg.Mastodon.Visibility),
		social.WithTimeout(time.Duration(cfg.Mastodon.TimeoutSeconds)*time.Second),
	)
}

// NewRenderer builds the headless Chrome renderer described by cfg.
func NewRenderer(cfg *config.Config, logger *slog.Logger) (*render.ChromeRenderer, error) {
	return render.NewChromeRenderer(render.Options{
		ChromePath: cfg.Render.ChromePath,
		LogoURL:    cfg.Render.LogoURL,
		Width:      cfg.Render.WindowWidth,
		Height:     cfg.Render.WindowHeight,
		Crop: render.CropOptions{
			Top:       cfg.Render.CropTop,
			Bottom:    cfg.Render.CropBottom,
			Threshold: cfg.Render.TrimThreshold,
		},
		Timeout:    time.Duration(cfg.Render.TimeoutSeconds) * time.Second,
		Settle:     time.Second,
		OutputPath: cfg.Paths.LogoPath,
		Logger:     logger,
	}, nil)
}
