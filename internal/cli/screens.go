// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/janderssonse/freshstart/internal/console"
	"github.com/janderssonse/freshstart/internal/domain"
	"github.com/janderssonse/freshstart/internal/tui/picker"
)

func (m *Menu) removalScreen(ctx context.Context) error {
	out := m.cfg.Output

	out.Clear()
	out.Titlef(console.ToneDanger, "Remove Installed Apps")
	out.Mutedf("Scanning installed applications...")

	apps := m.cfg.Inventory.Installed(ctx)
	if len(apps) == 0 {
		out.Noticef("No apps found.")

		return nil
	}

	items := make([]picker.Item[domain.InstalledApp], 0, len(apps))
	for _, app := range apps {
		items = append(items, picker.Item[domain.InstalledApp]{Label: app.DisplayName, Value: app})
	}

	selected, err := m.cfg.PickApps(ctx, "Select apps to uninstall", items, m.cfg.Columns)
	if err != nil {
		return err
	}

	if len(selected) == 0 {
		out.Noticef("No apps selected.")

		return nil
	}

	rows := make([][]string, 0, len(selected))
	for _, app := range selected {
		command := app.UninstallCommand
		if command == "" {
			command = "(none, will be skipped)"
		}

		rows = append(rows, []string{app.DisplayName, command})
	}

	m.showListing("Please confirm uninstall", []string{"Application", "Uninstall command"}, rows)

	confirmed, err := m.cfg.Prompter.Confirm(ctx, "Uninstall these applications?")
	if err != nil {
		return err
	}

	if !confirmed {
		out.Noticef("Operation cancelled.")

		return nil
	}

	out.Titlef(console.ToneDanger, "Starting uninstalls...")
	m.cfg.Runner.Run(ctx, m.cfg.Uninstall.PlanAll(selected))

	return nil
}

func (m *Menu) installScreen(ctx context.Context) error {
	out := m.cfg.Output

	out.Clear()
	out.Titlef(console.ToneSuccess, "Install Apps")

	options := m.cfg.Catalog.Options

	items := make([]picker.Item[domain.InstallOption], 0, len(options))
	for _, opt := range options {
		items = append(items, picker.Item[domain.InstallOption]{Label: opt.Name, Value: opt})
	}

	selected, err := m.cfg.PickOptions(ctx, "Select apps to install", items, m.cfg.Columns)
	if err != nil {
		return err
	}

	if len(selected) == 0 {
		out.Noticef("No apps selected.")

		return nil
	}

	expanded := m.cfg.Catalog.Expand(selected)

	rows := make([][]string, 0, len(expanded))
	for _, opt := range expanded {
		rows = append(rows, []string{opt.Name, opt.ID, GroupLabel(opt.Group)})
	}

	m.showListing("Please confirm install", []string{"Application", "Package", "Group"}, rows)

	confirmed, err := m.cfg.Prompter.Confirm(ctx, "Install these applications?")
	if err != nil {
		return err
	}

	if !confirmed {
		out.Noticef("Operation cancelled.")

		return nil
	}

	out.Titlef(console.ToneSuccess, "Starting installations...")
	m.cfg.Runner.Run(ctx, m.cfg.Install.PlanAll(expanded))

	return nil
}

// showListing prints the confirmation table, rendered as markdown unless
// the output is plain.
func (m *Menu) showListing(title string, headers []string, rows [][]string) {
	out := m.cfg.Output

	out.Titlef(console.ToneNotice, title)

	if !out.Plain {
		if rendered, err := RenderMarkdown(MarkdownTable(headers, rows)); err == nil {
			out.Println(strings.TrimRight(rendered, "\n"))

			return
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, "- "+strings.Join(nonEmpty(row), "  "))
	}

	out.PlainList(lines)
}

// MarkdownTable builds a GitHub-flavoured markdown table.
func MarkdownTable(headers []string, rows [][]string) string {
	var b strings.Builder

	writeRow := func(cells []string) {
		b.WriteString("|")

		for _, cell := range cells {
			b.WriteString(" ")
			b.WriteString(escapeCell(cell))
			b.WriteString(" |")
		}

		b.WriteString("\n")
	}

	writeRow(headers)

	separator := make([]string, len(headers))
	for i := range separator {
		separator[i] = "---"
	}

	writeRow(separator)

	for _, row := range rows {
		writeRow(row)
	}

	return b.String()
}

// RenderMarkdown renders markdown for the terminal.
func RenderMarkdown(markdown string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}

	return renderer.Render(markdown)
}

// GroupLabel returns the display form of a group tag.
func GroupLabel(group string) string {
	if group == "" {
		return ""
	}

	return cases.Title(language.Und).String(strings.ReplaceAll(group, "-", " "))
}

func escapeCell(cell string) string {
	cell = strings.ReplaceAll(cell, `\`, `\\`)

	return strings.ReplaceAll(cell, "|", `\|`)
}

func nonEmpty(cells []string) []string {
	kept := make([]string, 0, len(cells))

	for _, cell := range cells {
		if cell != "" {
			kept = append(kept, cell)
		}
	}

	return kept
}
