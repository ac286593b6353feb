// Package cliui renders colored status output and progress indicators for
// the utokenize/detokenize command-line tools.
package cliui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/utoken-go/utoken/internal/resource"
)

// ErrorLevel controls the symbol and color FormatError uses.
type ErrorLevel int

const (
	LevelError ErrorLevel = iota
	LevelWarning
	LevelInfo
)

// ErrorOptions configures FormatError's rendering of a single diagnostic.
type ErrorOptions struct {
	Level      ErrorLevel
	Message    string
	Suggestion string
	NoColor    bool
}

// FormatError renders a single diagnostic line, with an optional indented
// suggestion underneath.
func FormatError(opts ErrorOptions) string {
	var symbol string
	var c *color.Color
	switch opts.Level {
	case LevelWarning:
		symbol = "⚠️ "
		c = color.New(color.FgYellow, color.Bold)
	case LevelInfo:
		symbol = "ℹ️ "
		c = color.New(color.FgCyan, color.Bold)
	default:
		symbol = "❌"
		c = color.New(color.FgRed, color.Bold)
	}
	if opts.NoColor {
		c.DisableColor()
	}

	var b strings.Builder
	b.WriteString(c.Sprintf("%s %s", symbol, opts.Message))
	if opts.Suggestion != "" {
		b.WriteString("\n")
		gray := color.New(color.FgHiBlack)
		if opts.NoColor {
			gray.DisableColor()
		}
		b.WriteString(gray.Sprintf("   %s", opts.Suggestion))
	}
	return b.String()
}

// FormatLoadError renders a resource.LoadError with its file:line:column
// context and, when the rule name is known, a pointer at the offending
// rule so a data-file author can find the line without reopening the file.
func FormatLoadError(err *resource.LoadError, noColor bool) string {
	msg := fmt.Sprintf("%s:%d:%d: %s", err.File, err.Line, err.Column, err.Msg)
	suggestion := ""
	if err.Rule != "" {
		suggestion = fmt.Sprintf("while parsing rule %q", err.Rule)
	}
	return FormatError(ErrorOptions{
		Level:      LevelError,
		Message:    msg,
		Suggestion: suggestion,
		NoColor:    noColor,
	})
}

// FormatLoadWarning renders a non-fatal resource.LoadWarning the same way
// FormatLoadError renders a fatal one, at LevelWarning.
func FormatLoadWarning(w *resource.LoadWarning, noColor bool) string {
	msg := fmt.Sprintf("%s:%d: %s", w.File, w.Line, w.Msg)
	suggestion := ""
	if w.Rule != "" {
		suggestion = fmt.Sprintf("rule %q", w.Rule)
	}
	return FormatError(ErrorOptions{
		Level:      LevelWarning,
		Message:    msg,
		Suggestion: suggestion,
		NoColor:    noColor,
	})
}

// FormatSuccess renders a green checkmark line.
func FormatSuccess(message string, noColor bool) string {
	green := color.New(color.FgGreen, color.Bold)
	if noColor {
		green.DisableColor()
	}
	return green.Sprintf("✓ %s", message)
}
