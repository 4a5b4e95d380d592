// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

// Package console provides the user-facing status output of the interactive screens.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Tone selects the color of a screen title.
type Tone int

// Title tones used by the screens.
const (
	ToneInfo Tone = iota
	ToneDanger
	ToneSuccess
	ToneNotice
)

// itemIndent prefixes the per-item lines printed under a step.
const itemIndent = "  "

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\033[H\033[2J"

// OutputState holds output configuration and the destination writer.
type OutputState struct {
	Out     io.Writer
	Verbose bool
	Plain   bool
}

// DefaultOutput writes to stdout.
var DefaultOutput = New(os.Stdout) //nolint:gochecknoglobals

// New creates an OutputState writing to w.
func New(w io.Writer) *OutputState {
	return &OutputState{Out: w}
}

// SetMode configures output mode.
func (o *OutputState) SetMode(verbose, plain bool) {
	o.Verbose = verbose
	o.Plain = plain
}

// IsTTY checks if fd is a terminal (not piped/redirected).
func (o *OutputState) IsTTY(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// Clear erases the terminal when writing to one.
func (o *OutputState) Clear() {
	if o.Plain {
		return
	}

	if f, ok := o.Out.(*os.File); ok && o.IsTTY(f.Fd()) {
		_, _ = io.WriteString(o.Out, clearScreen)
	}
}

// Headerf writes the bold welcome line.
func (o *OutputState) Headerf(format string, args ...any) {
	o.styled(color.New(color.FgCyan, color.Bold), "", format, args...)
}

// Titlef writes a bold screen title in the given tone.
func (o *OutputState) Titlef(tone Tone, format string, args ...any) {
	attrs := map[Tone]color.Attribute{
		ToneInfo:    color.FgCyan,
		ToneDanger:  color.FgRed,
		ToneSuccess: color.FgGreen,
		ToneNotice:  color.FgYellow,
	}

	o.styled(color.New(attrs[tone], color.Bold), "", format, args...)
}

// Mutedf writes secondary text in gray.
func (o *OutputState) Mutedf(format string, args ...any) {
	o.styled(color.New(color.FgHiBlack), "", format, args...)
}

// Noticef writes an informational message that needs attention.
func (o *OutputState) Noticef(format string, args ...any) {
	o.styled(color.New(color.FgYellow), "", format, args...)
}

// Stepf announces the item about to be processed.
func (o *OutputState) Stepf(format string, args ...any) {
	o.styled(color.New(color.Underline), "→ ", format, args...)
}

// Commandf shows the command line about to run.
func (o *OutputState) Commandf(exe, args string) {
	line := strings.TrimSpace(exe + " " + args)

	if o.Plain {
		o.printf("%sRunning: %s\n", itemIndent, line)

		return
	}

	o.printf("%s%s %s\n", itemIndent, color.New(color.FgHiBlack).Sprint("Running:"), line)
}

// Progressf writes progress messages only in verbose mode.
func (o *OutputState) Progressf(format string, args ...any) {
	if o.Verbose {
		o.printf(format+"\n", args...)
	}
}

// Successf writes an item success line.
func (o *OutputState) Successf(format string, args ...any) {
	o.item(color.New(color.FgGreen), "✓ ", "ok: ", format, args...)
}

// Warningf writes an item warning line.
func (o *OutputState) Warningf(format string, args ...any) {
	o.item(color.New(color.FgRed), "✗ ", "warning: ", format, args...)
}

// Errorf writes an item error line.
func (o *OutputState) Errorf(format string, args ...any) {
	o.item(color.New(color.FgRed), "Error: ", "error: ", format, args...)
}

// Skippedf writes an item skipped line.
func (o *OutputState) Skippedf(format string, args ...any) {
	o.item(color.New(color.FgHiYellow), "", "skipped: ", format, args...)
}

// Println writes a raw line.
func (o *OutputState) Println(text string) {
	o.printf("%s\n", text)
}

// PlainList outputs a simple list of items, one per line.
func (o *OutputState) PlainList(items []string) {
	for _, item := range items {
		o.printf("%s\n", item)
	}
}

func (o *OutputState) item(style *color.Color, symbol, plainPrefix, format string, args ...any) {
	if o.Plain {
		o.printf(itemIndent+plainPrefix+format+"\n", args...)

		return
	}

	o.printf("%s%s\n", itemIndent, style.Sprintf(symbol+format, args...))
}

func (o *OutputState) styled(style *color.Color, symbol, format string, args ...any) {
	if o.Plain {
		o.printf(format+"\n", args...)

		return
	}

	o.printf("%s\n", style.Sprintf(symbol+format, args...))
}

func (o *OutputState) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.Out, format, args...)
}
