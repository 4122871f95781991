package history

import "time"

// Outcome is the terminal state of a run.
type Outcome string

const (
	OutcomeRunning  Outcome = "running"
	OutcomePosted   Outcome = "posted"
	OutcomeDryRun   Outcome = "dry_run"
	OutcomeNoMatch  Outcome = "no_match"
	OutcomeFailed   Outcome = "failed"
	OutcomeCanceled Outcome = "canceled"
)

// Run is one invocation of the bot.
type Run struct {
	ID            string
	StartedAt     time.Time
	FinishedAt    time.Time
	Outcome       Outcome
	Attempts      int
	TitlesChecked int
	Title         string
	ErrorMessage  string
}

// RunResult is what FinishRun records.
type RunResult struct {
	Outcome       Outcome
	Attempts      int
	TitlesChecked int
	Title         string
	Err           error
}

// Post is a published title.
type Post struct {
	ID        int64
	Title     string
	Stresses  string
	WikiURL   string
	StatusURL string
	LogoPath  string
	RunID     string
	PostedAt  time.Time
}
