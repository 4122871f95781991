package botrun_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/go-cmp/cmp"

	"wikiturtles/internal/botrun"
	"wikiturtles/internal/history"
	"wikiturtles/internal/logging"
	"wikiturtles/internal/search"
	"wikiturtles/internal/social"
	"wikiturtles/internal/testsupport"
)

type batchSource struct {
	mu      sync.Mutex
	batches [][]string
	calls   int
}

func (s *batchSource) RandomTitles(_ context.Context, n int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.batches) == 0 {
		return nil, errors.New("no batches")
	}
	idx := s.calls
	if idx >= len(s.batches) {
		idx = len(s.batches) - 1
	}
	s.calls++
	return s.batches[idx], nil
}

type fakeRenderer struct {
	path   string
	titles []string
}

func (r *fakeRenderer) Render(_ context.Context, title string) (string, error) {
	r.titles = append(r.titles, title)
	if err := os.WriteFile(r.path, []byte("logo"), 0o644); err != nil {
		return "", err
	}
	return r.path, nil
}

type recordingPoster struct {
	statuses []social.Status
	err      error
}

func (p *recordingPoster) Post(_ context.Context, status social.Status) (social.Receipt, error) {
	p.statuses = append(p.statuses, status)
	if p.err != nil {
		return social.Receipt{}, p.err
	}
	return social.Receipt{ID: "42", URL: "https://example.social/@turtles/42"}, nil
}

func noSleep(context.Context, time.Duration) error { return nil }

func TestRunPostsAcceptedTitle(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithMastodon("https://example.social", "token"))
	cfg.Render.Enabled = true

	source := &batchSource{batches: [][]string{
		{"Ninja Turtles", "Teenage Mutant Nazi Turtles"},
		{"Teenage Mutant Ninja Turtles"},
	}}
	renderer := &fakeRenderer{path: cfg.Paths.LogoPath}
	poster := &recordingPoster{}

	result, err := botrun.Run(context.Background(), cfg, botrun.Options{
		Source:   source,
		Renderer: renderer,
		Poster:   poster,
		Sleep:    noSleep,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Outcome != history.OutcomePosted || result.Title != "Teenage Mutant Ninja Turtles" {
		t.Fatalf("unexpected result %+v", result)
	}
	if result.Attempts != 2 || result.TitlesChecked != 3 || result.Stresses != "12101010" {
		t.Fatalf("unexpected search stats %+v", result)
	}

	wantStatus := []social.Status{{
		Text:      "Teenage Mutant Ninja Turtles\nhttps://en.wikipedia.org/wiki/Teenage_Mutant_Ninja_Turtles",
		MediaPath: cfg.Paths.LogoPath,
		AltText:   "Teenage Mutant Ninja Turtles",
	}}
	if diff := cmp.Diff(wantStatus, poster.statuses); diff != "" {
		t.Fatalf("posted status mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Teenage Mutant Ninja Turtles"}, renderer.titles); diff != "" {
		t.Fatalf("rendered titles mismatch (-want +got):\n%s", diff)
	}

	store := testsupport.MustOpenStore(t, cfg)
	posts, err := store.RecentPosts(context.Background(), 10)
	if err != nil {
		t.Fatalf("RecentPosts failed: %v", err)
	}
	if len(posts) != 1 || posts[0].StatusURL != "https://example.social/@turtles/42" || posts[0].RunID != result.RunID {
		t.Fatalf("unexpected posts %+v", posts)
	}
	run, err := store.GetRun(context.Background(), result.RunID)
	if err != nil || run == nil {
		t.Fatalf("GetRun: %v, %v", run, err)
	}
	if run.Outcome != history.OutcomePosted || run.Title != "Teenage Mutant Ninja Turtles" || run.Attempts != 2 {
		t.Fatalf("unexpected run row %+v", run)
	}
}

func TestRunDryRunDoesNotRecordPost(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithMastodon("https://example.social", "token"))
	poster := &recordingPoster{}

	result, err := botrun.Run(context.Background(), cfg, botrun.Options{
		DryRun: true,
		Source: &batchSource{batches: [][]string{{"Single Payer Health Insurance"}}},
		Poster: poster,
		Sleep:  noSleep,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Outcome != history.OutcomeDryRun || result.LogoPath != "" {
		t.Fatalf("unexpected result %+v", result)
	}
	if len(poster.statuses) != 0 {
		t.Fatal("dry run must not reach the configured poster")
	}

	store := testsupport.MustOpenStore(t, cfg)
	count, err := store.CountPosts(context.Background())
	if err != nil || count != 0 {
		t.Fatalf("expected no posts, got %d (%v)", count, err)
	}
}

func TestRunWithoutMastodonIsDryRun(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	result, err := botrun.Run(context.Background(), cfg, botrun.Options{
		Source: &batchSource{batches: [][]string{{"Teenage Mutant Ninja Turtles"}}},
		Sleep:  noSleep,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Outcome != history.OutcomeDryRun {
		t.Fatalf("expected dry run outcome, got %s", result.Outcome)
	}
}

func TestRunNoMatchRecordsOutcome(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithSearch(3, 2))
	result, err := botrun.Run(context.Background(), cfg, botrun.Options{
		Source: &batchSource{batches: [][]string{{"Ninja Turtles", "Xyzzyq"}}},
		Sleep:  noSleep,
	})
	if !errors.Is(err, search.ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
	if result.Outcome != history.OutcomeNoMatch || result.Attempts != 3 || result.TitlesChecked != 6 {
		t.Fatalf("unexpected result %+v", result)
	}

	store := testsupport.MustOpenStore(t, cfg)
	run, err := store.GetRun(context.Background(), result.RunID)
	if err != nil || run == nil {
		t.Fatalf("GetRun: %v, %v", run, err)
	}
	if run.Outcome != history.OutcomeNoMatch || run.ErrorMessage == "" {
		t.Fatalf("unexpected run row %+v", run)
	}
}

func TestRunSkipsPostedTitles(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithMastodon("https://example.social", "token"))
	cfg.Posting.SkipPosted = true

	store := testsupport.MustOpenStore(t, cfg)
	if _, err := store.RecordPost(context.Background(), history.Post{
		Title:    "Teenage Mutant Ninja Turtles",
		Stresses: "12101010",
		WikiURL:  "https://en.wikipedia.org/wiki/Teenage_Mutant_Ninja_Turtles",
	}); err != nil {
		t.Fatalf("RecordPost failed: %v", err)
	}

	result, err := botrun.Run(context.Background(), cfg, botrun.Options{
		Source: &batchSource{batches: [][]string{{"Teenage Mutant Ninja Turtles", "Single Payer Health Insurance"}}},
		Poster: &recordingPoster{},
		Sleep:  noSleep,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Title != "Single Payer Health Insurance" {
		t.Fatalf("expected posted title to be skipped, got %q", result.Title)
	}
	count, err := store.CountPosts(context.Background())
	if err != nil || count != 2 {
		t.Fatalf("expected 2 posts, got %d (%v)", count, err)
	}
}

func TestRunPosterFailureMarksRunFailed(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithMastodon("https://example.social", "token"))
	boom := errors.New("instance unavailable")

	result, err := botrun.Run(context.Background(), cfg, botrun.Options{
		Source: &batchSource{batches: [][]string{{"Teenage Mutant Ninja Turtles"}}},
		Poster: &recordingPoster{err: boom},
		Sleep:  noSleep,
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected poster error, got %v", err)
	}
	if result.Outcome != history.OutcomeFailed {
		t.Fatalf("expected failed outcome, got %s", result.Outcome)
	}
	store := testsupport.MustOpenStore(t, cfg)
	if count, _ := store.CountPosts(context.Background()); count != 0 {
		t.Fatalf("failed post must not be recorded, got %d", count)
	}
}

func TestRunRefusesConcurrentRun(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	held := flock.New(cfg.LockPath())
	if ok, err := held.TryLock(); err != nil || !ok {
		t.Fatalf("TryLock: %v, %v", ok, err)
	}
	defer held.Unlock()

	_, err := botrun.Run(context.Background(), cfg, botrun.Options{
		Source: &batchSource{batches: [][]string{{"Teenage Mutant Ninja Turtles"}}},
	})
	if !errors.Is(err, botrun.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
}

func TestNewClassifierMergesDictionaryFile(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithDictionaryLines(
		"COWABUNGA  K AW2 AH0 B AH1 NG G AH0",
	))
	classifier, err := botrun.NewClassifier(cfg)
	if err != nil {
		t.Fatalf("NewClassifier failed: %v", err)
	}
	if got, ok := classifier.TitleStresses("Cowabunga Ninja"); !ok || got != "201010" {
		t.Fatalf("TitleStresses = %q, %v", got, ok)
	}

	cfg.Dictionary.Path = filepath.Join(testsupport.BaseDir(cfg), "missing.dict")
	if _, err := botrun.NewClassifier(cfg); err == nil {
		t.Fatal("expected missing dictionary error")
	}
}

func TestRunWarnsWhenOnlySeedDictionaryIsAvailable(t *testing.T) {
	run := func(t *testing.T, opts ...testsupport.ConfigOption) string {
		t.Helper()
		var buf bytes.Buffer
		logger, err := logging.New(logging.Options{Format: "json", Level: "warn", Writer: &buf})
		if err != nil {
			t.Fatalf("logging.New: %v", err)
		}
		cfg := testsupport.NewConfig(t, opts...)
		if _, err := botrun.Run(context.Background(), cfg, botrun.Options{
			Logger: logger,
			Source: &batchSource{batches: [][]string{{"Teenage Mutant Ninja Turtles"}}},
			Sleep:  noSleep,
		}); err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		return buf.String()
	}

	out := run(t)
	if !strings.Contains(out, `"event_type":"seed_dictionary_only"`) || !strings.Contains(out, "WIKITURTLES_DICTIONARY") {
		t.Fatalf("expected seed dictionary warning, got %q", out)
	}

	out = run(t, testsupport.WithDictionaryLines("COWABUNGA  K AW2 AH0 B AH1 NG G AH0"))
	if strings.Contains(out, "seed_dictionary_only") {
		t.Fatalf("unexpected warning with a dictionary file: %q", out)
	}
}
