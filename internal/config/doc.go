// Package config loads, normalizes, and validates wikiturtles configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// MASTODON_ACCESS_TOKEN and WIKITURTLES_DICTIONARY. The Config type gathers
// every knob the bot and CLI need: meter rules, search pacing, the title
// source, logo rendering, and posting.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
