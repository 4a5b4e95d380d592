// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/janderssonse/freshstart/internal/tui/styles"
)

// Item is one selectable grid entry.
type Item[T any] struct {
	Label string
	Value T
}

// Default terminal size used until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// chromeHeight is the number of lines around the grid: title with margin,
// subtitle, OK button with margin and the help footer with margin.
const chromeHeight = 8

const confirmLabel = "[ OK ]"

// cellGap is the blank space written after each cell; it is part of CellPadding.
const cellGap = 2

type focus int

const (
	focusGrid focus = iota
	focusConfirm
)

// Model is the bubbletea model of one picker session.
type Model[T any] struct {
	title     string
	items     []Item[T]
	checked   []bool
	columns   int
	cellWidth int
	cursor    int
	focus     focus
	xOffset   int

	viewport viewport.Model
	keys     KeyMap
	styles   *styles.Styles

	done      bool
	cancelled bool
}

// NewModel creates a picker over items laid out in columns.
func NewModel[T any](title string, items []Item[T], columns int, styleConfig *styles.Styles) *Model[T] {
	labels := make([]string, 0, len(items))
	for _, item := range items {
		labels = append(labels, item.Label)
	}

	m := &Model[T]{
		title:     title,
		items:     items,
		checked:   make([]bool, len(items)),
		columns:   normalizeColumns(columns),
		cellWidth: CellWidth(labels),
		keys:      DefaultKeyMap(),
		styles:    styleConfig,
		viewport:  viewport.New(defaultWidth, defaultHeight-chromeHeight),
	}

	if len(items) == 0 {
		m.focus = focusConfirm
	}

	m.viewport.SetContent(m.renderGrid())

	return m
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-chromeHeight)
		m.ensureCursorVisible()

		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *Model[T]) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.cancelled = true

		return m, tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		m.done = true

		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		if m.focus == focusConfirm {
			m.done = true

			return m, tea.Quit
		}

		m.checked[m.cursor] = !m.checked[m.cursor]

	case key.Matches(msg, m.keys.Focus):
		m.toggleFocus()

	case key.Matches(msg, m.keys.Up):
		m.moveUp()

	case key.Matches(msg, m.keys.Down):
		m.moveDown()

	case key.Matches(msg, m.keys.Left):
		if m.focus == focusGrid && m.cursor%m.columns > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Right):
		if m.focus == focusGrid && m.cursor%m.columns < m.columns-1 && m.cursor+1 < len(m.items) {
			m.cursor++
		}
	}

	m.ensureCursorVisible()

	return m, nil
}

func (m *Model[T]) toggleFocus() {
	if m.focus == focusConfirm && len(m.items) > 0 {
		m.focus = focusGrid

		return
	}

	m.focus = focusConfirm
}

func (m *Model[T]) moveUp() {
	if m.focus == focusConfirm {
		if len(m.items) > 0 {
			m.focus = focusGrid
		}

		return
	}

	if m.cursor-m.columns >= 0 {
		m.cursor -= m.columns
	}
}

func (m *Model[T]) moveDown() {
	if m.focus == focusConfirm {
		return
	}

	row, _ := Position(m.cursor, m.columns)

	switch {
	case m.cursor+m.columns < len(m.items):
		m.cursor += m.columns
	case row < Rows(len(m.items), m.columns)-1:
		// The cell below is empty on a short last row.
		m.cursor = len(m.items) - 1
	default:
		m.focus = focusConfirm
	}
}

// ensureCursorVisible scrolls the viewport so the highlighted cell is shown.
func (m *Model[T]) ensureCursorVisible() {
	row, col := Position(m.cursor, m.columns)

	top := m.viewport.YOffset
	bottom := top + m.viewport.Height - 1

	switch {
	case row < top:
		m.viewport.SetYOffset(row)
	case row > bottom:
		m.viewport.SetYOffset(row - m.viewport.Height + 1)
	}

	m.ensureColumnVisible(col)
}

// ensureColumnVisible scrolls horizontally so column col fits the viewport.
// A cell wider than the viewport is shown from its left edge.
func (m *Model[T]) ensureColumnVisible(col int) {
	width := max(1, m.viewport.Width)
	left := col * m.cellWidth
	right := left + m.cellWidth - cellGap

	switch {
	case left < m.xOffset:
		m.xOffset = left
	case right > m.xOffset+width:
		m.xOffset = min(left, right-width)
	}

	m.xOffset = max(0, min(m.xOffset, m.gridWidth()-width))
	m.viewport.SetXOffset(m.xOffset)
}

// gridWidth is the display width of the widest grid line, which is also
// the content width the viewport clamps its horizontal offset to.
func (m *Model[T]) gridWidth() int {
	cells := min(m.columns, len(m.items))
	if cells == 0 {
		return 0
	}

	return cells*m.cellWidth - cellGap
}

// View renders the title, the scrollable grid and the fixed OK control.
func (m *Model[T]) View() string {
	if m.done || m.cancelled {
		return ""
	}

	m.viewport.SetContent(m.renderGrid())

	button := m.styles.Button.Render(confirmLabel)
	if m.focus == focusConfirm {
		button = m.styles.ButtonFocused.Render(confirmLabel)
	}

	help := m.styles.HelpLine(
		m.styles.Keybinding("↑↓←→", "move"),
		m.styles.Keybinding("space", "toggle"),
		m.styles.Keybinding("tab", "OK"),
		m.styles.Keybinding("enter", "confirm"),
		m.styles.Keybinding("esc", "cancel"),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(m.title),
		m.styles.Subtitle.Render(fmt.Sprintf("%d of %d selected", m.CheckedCount(), len(m.items))),
		m.viewport.View(),
		button,
		help,
	)
}

func (m *Model[T]) renderGrid() string {
	rows := Rows(len(m.items), m.columns)
	lines := make([]string, 0, rows)
	labelWidth := m.cellWidth - CellPadding

	for row := range rows {
		var line strings.Builder

		for col := range m.columns {
			i := row*m.columns + col
			if i >= len(m.items) {
				break
			}

			cell := m.styles.Checkbox(m.checked[i]) + " " + runewidth.FillRight(m.items[i].Label, labelWidth)
			if m.focus == focusGrid && i == m.cursor {
				cell = m.styles.Highlight.Render(cell)
			} else {
				cell = m.styles.Cell.Render(cell)
			}

			if col > 0 {
				line.WriteString(strings.Repeat(" ", cellGap))
			}

			line.WriteString(cell)
		}

		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n")
}

// Selected returns the checked values in list order.
func (m *Model[T]) Selected() []T {
	selected := make([]T, 0, len(m.items))

	for i, item := range m.items {
		if m.checked[i] {
			selected = append(selected, item.Value)
		}
	}

	return selected
}

// CheckedCount returns the number of checked items.
func (m *Model[T]) CheckedCount() int {
	count := 0

	for _, checked := range m.checked {
		if checked {
			count++
		}
	}

	return count
}

// Cursor returns the index of the highlighted item.
func (m *Model[T]) Cursor() int {
	return m.cursor
}

// ConfirmFocused reports whether the OK control has focus.
func (m *Model[T]) ConfirmFocused() bool {
	return m.focus == focusConfirm
}

// Done reports whether the user confirmed the selection.
func (m *Model[T]) Done() bool {
	return m.done
}

// Cancelled reports whether the user left without confirming.
func (m *Model[T]) Cancelled() bool {
	return m.cancelled
}

// ScrollOffset returns the first grid row shown in the viewport.
func (m *Model[T]) ScrollOffset() int {
	return m.viewport.YOffset
}

// ColumnOffset returns the first display column shown in the viewport.
func (m *Model[T]) ColumnOffset() int {
	return m.xOffset
}
