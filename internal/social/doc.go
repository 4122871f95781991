// Package social publishes statuses with an attached logo.
//
// Mastodon posts the media upload first and then references the returned
// attachment id from the status. DryRun logs what would be posted.
package social
