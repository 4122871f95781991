// Package meter decides whether a title scans like "Teenage Mutant Ninja
// Turtles": eight syllables of trochaic tetrameter (STRESS-unstress, four
// times).
//
// Rules bundles the immutable tables (banned words and phrases,
// pronunciation overrides, the accepted stress pattern). A Classifier pairs
// Rules with a pronouncing dictionary and runs the pipeline: content filter
// on the raw title, punctuation cleanup, a front-popping token queue that
// re-inserts numeral expansions ahead of the remaining tokens, and an early
// exit once eight syllables are reached with tokens still pending.
//
// Nothing in this package performs I/O or returns errors. Words that cannot
// be pronounced resolve to the Unresolvable variant and reject the title.
// Rules and Classifier are immutable once built and may be shared freely
// across goroutines.
package meter
