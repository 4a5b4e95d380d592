// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

// Package picker implements the full-screen multi-column checkbox grid.
package picker

import (
	"github.com/mattn/go-runewidth"
)

// CellPadding is the room a cell needs beside its label: the "[x] " toggle
// plus a two column gap to the next cell.
const CellPadding = 6

// Position returns the grid cell of item i. Items fill rows left to right.
func Position(i, columns int) (row, col int) {
	columns = normalizeColumns(columns)

	return i / columns, i % columns
}

// Rows returns the number of grid rows needed for count items.
func Rows(count, columns int) int {
	columns = normalizeColumns(columns)

	return (count + columns - 1) / columns
}

// CellWidth returns the display width of one grid cell for the given labels.
func CellWidth(labels []string) int {
	widest := 0

	for _, label := range labels {
		widest = max(widest, runewidth.StringWidth(label))
	}

	return widest + CellPadding
}

func normalizeColumns(columns int) int {
	if columns < 1 {
		return 1
	}

	return columns
}
