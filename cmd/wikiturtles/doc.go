// Package main hosts the wikiturtles CLI entrypoint and command graph.
//
// The Cobra command tree exposes the meter classifier directly (check,
// stresses, pad, url) and drives the bot: searching Wikipedia for a title
// that scans like "Teenage Mutant Ninja Turtles", rendering its logo, and
// posting it. Configuration resolution and logger setup are centralized in
// commandContext so subcommands only describe their own flags and output.
package main
