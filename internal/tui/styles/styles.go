// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

// Package styles defines consistent visual styling for TUI components.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the styles used in the TUI.
type Styles struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Cell          lipgloss.Style
	Highlight     lipgloss.Style
	Checked       lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Footer        lipgloss.Style
}

// New creates a new Styles instance with default Tokyo Night theme.
func New() *Styles {
	// Tokyo Night color palette
	primary := lipgloss.Color("#7aa2f7")   // Blue
	secondary := lipgloss.Color("#bb9af7") // Purple
	success := lipgloss.Color("#9ece6a")   // Green
	muted := lipgloss.Color("#565f89")     // Gray

	background := lipgloss.Color("#1a1b26") // Dark background
	foreground := lipgloss.Color("#c0caf5") // Light foreground

	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(secondary).
			Italic(true),

		Cell: lipgloss.NewStyle().
			Foreground(foreground),

		Highlight: lipgloss.NewStyle().
			Background(primary).
			Foreground(background),

		Checked: lipgloss.NewStyle().
			Foreground(success).
			Bold(true),

		Button: lipgloss.NewStyle().
			Foreground(foreground).
			MarginTop(1),

		ButtonFocused: lipgloss.NewStyle().
			Foreground(background).
			Background(success).
			Bold(true).
			MarginTop(1),

		Footer: lipgloss.NewStyle().
			Foreground(muted).
			MarginTop(1),
	}
}

// Checkbox returns the toggle glyph for a grid cell.
func (s *Styles) Checkbox(checked bool) string {
	if checked {
		return s.Checked.Render("[x]")
	}

	return "[ ]"
}

// Keybinding renders a key hint as "[key] desc".
func (s *Styles) Keybinding(key, desc string) string {
	return s.Title.UnsetMarginBottom().Render("["+key+"]") + " " + s.Footer.UnsetMarginTop().Render(desc)
}

// HelpLine joins keybinding hints into one footer line.
func (s *Styles) HelpLine(hints ...string) string {
	return s.Footer.Render(strings.Join(hints, "  "))
}
