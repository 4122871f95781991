// Package botrun performs one complete bot run: find a title that scans,
// draw its logo, post it, and record the result.
//
// Runs are serialized with a file lock in the state directory and every
// run, successful or not, leaves a row in the history database.
package botrun
