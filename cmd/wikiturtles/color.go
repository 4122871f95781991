package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"wikiturtles/internal/meter"
)

const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
)

func shouldColorize(writer io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func colorize(value, color string, enabled bool) string {
	if !enabled || value == "" {
		return value
	}
	return color + value + ansiReset
}

func verdictColor(v meter.Verdict) string {
	switch v {
	case meter.VerdictAccepted:
		return ansiGreen
	case meter.VerdictBanned, meter.VerdictUnresolvable:
		return ansiRed
	default:
		return ansiYellow
	}
}
