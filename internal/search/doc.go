// Package search drives the random-title hunt: fetch a batch from the title
// source, classify each title, and stop at the first accepted one.
//
// Between batches the loop pauses for a short backoff; after a source
// timeout it pauses for a much longer one. Titles already posted can be
// skipped through a SeenChecker.
package search
