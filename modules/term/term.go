// Package term detects terminal capabilities: whether a stream is a TTY,
// how many color levels it supports, and how wide it is. It backs the
// CLI's decision to colorize diff output and to size side-by-side views.
package term

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ColorLevel is how much color a stream supports.
type ColorLevel int

const (
	NoColor ColorLevel = iota
	Color256
	ColorTrueColor
)

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// DetectColorLevel inspects the environment the way NO_COLOR/COLORTERM/TERM
// conventions dictate, ignoring the stream's TTY-ness (callers combine this
// with IsTerminal).
func DetectColorLevel() ColorLevel {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return NoColor
	}
	colorTerm := os.Getenv("COLORTERM")
	termEnv := os.Getenv("TERM")
	if strings.Contains(colorTerm, "truecolor") || strings.Contains(colorTerm, "24bit") {
		return ColorTrueColor
	}
	if strings.Contains(termEnv, "256color") {
		return Color256
	}
	if termEnv == "" || termEnv == "dumb" {
		return NoColor
	}
	return Color256
}

// StreamColorLevel is DetectColorLevel gated on fd actually being a terminal.
func StreamColorLevel(fd uintptr) ColorLevel {
	if !IsTerminal(fd) {
		return NoColor
	}
	return DetectColorLevel()
}

// Width returns the terminal width for fd, or fallback if it can't be
// determined (fd isn't a terminal, or the ioctl fails).
func Width(fd uintptr, fallback int) int {
	w, _, err := term.GetSize(int(fd))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
