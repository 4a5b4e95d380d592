// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Prompter asks the user the questions of the menu loop.
type Prompter interface {
	// Choose shows the main menu and returns the picked state.
	Choose(ctx context.Context) (State, error)
	// Confirm asks a yes/no question; aborting counts as no.
	Confirm(ctx context.Context, title string) (bool, error)
	// Pause waits for a single keypress.
	Pause(ctx context.Context) error
}

// huhPrompter implements Prompter with huh forms on the terminal.
type huhPrompter struct {
	in *os.File
}

// NewPrompter creates the terminal prompter reading from stdin.
func NewPrompter() Prompter {
	return &huhPrompter{in: os.Stdin}
}

func (p *huhPrompter) Choose(ctx context.Context) (State, error) {
	choice := StateInstall

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[State]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("Install Apps", StateInstall),
					huh.NewOption("Remove Installed Apps", StateRemoval),
					huh.NewOption("Quit", StateQuit),
				).
				Value(&choice),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return StateQuit, nil
		}

		return StateQuit, fmt.Errorf("menu prompt failed: %w", err)
	}

	return choice, nil
}

func (p *huhPrompter) Confirm(ctx context.Context, title string) (bool, error) {
	confirmed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}

		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}

	return confirmed, nil
}

const keyBufferSize = 16

// Pause reads one key in raw mode. Without a terminal it consumes whatever
// input is pending, up to one key sequence.
func (p *huhPrompter) Pause(_ context.Context) error {
	fd := int(p.in.Fd())

	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("failed to enter raw mode: %w", err)
		}

		defer func() { _ = term.Restore(fd, state) }()
	}

	// Arrow and function keys arrive as one multi-byte escape sequence.
	buf := make([]byte, keyBufferSize)
	if _, err := p.in.Read(buf); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read key: %w", err)
	}

	return nil
}
