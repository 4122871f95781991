// Package preflight provides readiness checks for the paths and services a
// bot run depends on.
//
// The CLI "wikiturtles doctor" command runs RunAll and prints the results.
// Each check is gated by its config toggle; disabled features are skipped.
package preflight
