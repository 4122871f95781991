// Package logging builds the slog loggers used by wikiturtles.
//
// Console output reads "TIME LEVEL component: message key=value"; JSON output
// uses ts, level and msg keys. Field keys shared across packages live in
// attrs.go.
package logging
