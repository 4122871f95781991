// Package history persists bot runs and published posts in SQLite.
//
// A run row is opened when the bot starts and finished with its outcome;
// a post row records every title that went out, so later runs can skip
// titles already posted. Connections run in WAL mode and statements retry
// on SQLITE_BUSY. The schema version lives in PRAGMA user_version; a file at
// any other version is refused with ErrSchemaMismatch.
package history
