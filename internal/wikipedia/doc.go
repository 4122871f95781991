// Package wikipedia fetches random article titles from the MediaWiki API.
//
// Only the main (article) namespace is queried. Network timeouts are
// reported as ErrTimeout so callers can back off longer than for ordinary
// failures.
package wikipedia
