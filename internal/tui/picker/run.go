// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

package picker

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/janderssonse/freshstart/internal/tui/styles"
)

// ErrUnexpectedModel is returned when the program ends with a foreign model.
var ErrUnexpectedModel = errors.New("picker ended with unexpected model")

// PickFunc runs one picker session and returns the chosen values.
type PickFunc[T any] func(ctx context.Context, title string, items []Item[T], columns int) ([]T, error)

// Run shows the grid full-screen until the user confirms or cancels.
// A cancelled session returns an empty selection. The alternate screen is
// released before Run returns.
func Run[T any](ctx context.Context, title string, items []Item[T], columns int) ([]T, error) {
	if len(items) == 0 {
		return []T{}, nil
	}

	model := NewModel(title, items, columns, styles.New())

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),  // Use alternate screen buffer
		tea.WithContext(ctx), // Use the provided context
	)

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("picker failed: %w", err)
	}

	result, ok := final.(*Model[T])
	if !ok {
		return nil, ErrUnexpectedModel
	}

	if result.Cancelled() {
		return []T{}, nil
	}

	return result.Selected(), nil
}
