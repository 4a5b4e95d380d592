// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"

	"github.com/janderssonse/freshstart/internal/catalog"
	"github.com/janderssonse/freshstart/internal/console"
	"github.com/janderssonse/freshstart/internal/domain"
	"github.com/janderssonse/freshstart/internal/runner"
	"github.com/janderssonse/freshstart/internal/tui/picker"
)

// State is a position in the menu loop.
type State int

// Menu loop states.
const (
	StateMainMenu State = iota
	StateRemoval
	StateInstall
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main menu"
	case StateRemoval:
		return "removal"
	case StateInstall:
		return "install"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

const (
	welcomeHeader = "Welcome to the Fresh Start Helper!"
	pausePrompt   = "Press any key to return to the main menu..."
	defaultCols   = 3
)

// InstalledLister lists the applications installed on the host.
type InstalledLister interface {
	Installed(ctx context.Context) []domain.InstalledApp
}

// BatchRunner executes a confirmed list of actions.
type BatchRunner interface {
	Run(ctx context.Context, actions []runner.Action) runner.Summary
}

// MenuConfig wires the collaborators of the menu loop.
type MenuConfig struct {
	Output      *console.OutputState
	Prompter    Prompter
	Inventory   InstalledLister
	Catalog     *catalog.Catalog
	PickApps    picker.PickFunc[domain.InstalledApp]
	PickOptions picker.PickFunc[domain.InstallOption]
	Runner      BatchRunner
	Uninstall   runner.UninstallStrategy
	Install     runner.InstallStrategy
	Columns     int
}

// Menu is the main request/response loop.
type Menu struct {
	cfg MenuConfig
}

// NewMenu creates the menu loop, filling unset collaborators with defaults.
func NewMenu(cfg MenuConfig) *Menu {
	if cfg.Output == nil {
		cfg.Output = console.DefaultOutput
	}

	if cfg.Catalog == nil {
		cfg.Catalog = catalog.Default()
	}

	if cfg.PickApps == nil {
		cfg.PickApps = picker.Run[domain.InstalledApp]
	}

	if cfg.PickOptions == nil {
		cfg.PickOptions = picker.Run[domain.InstallOption]
	}

	if len(cfg.Uninstall.InstallerServices) == 0 {
		cfg.Uninstall = runner.NewUninstallStrategy()
	}

	if cfg.Install.PackageManager == "" {
		cfg.Install = runner.NewInstallStrategy("")
	}

	if cfg.Columns < 1 {
		cfg.Columns = defaultCols
	}

	return &Menu{cfg: cfg}
}

// Run loops until the user quits. Screen failures are reported and the
// loop goes back to the main menu; only a failing menu prompt ends it early.
func (m *Menu) Run(ctx context.Context) error {
	state := StateMainMenu

	for {
		if ctx.Err() != nil {
			return nil
		}

		switch state {
		case StateMainMenu:
			next, err := m.mainMenu(ctx)
			if err != nil {
				return err
			}

			state = next

		case StateRemoval, StateInstall:
			m.runScreen(ctx, state)

			state = StateMainMenu

		case StateQuit:
			return nil
		}
	}
}

func (m *Menu) mainMenu(ctx context.Context) (State, error) {
	out := m.cfg.Output

	out.Clear()
	out.Headerf(welcomeHeader)
	out.Println("")

	return m.cfg.Prompter.Choose(ctx)
}

func (m *Menu) runScreen(ctx context.Context, state State) {
	var err error

	switch state {
	case StateRemoval:
		err = m.removalScreen(ctx)
	case StateInstall:
		err = m.installScreen(ctx)
	}

	if err != nil && ctx.Err() == nil {
		m.cfg.Output.Errorf("%v", err)
	}

	if ctx.Err() != nil {
		return
	}

	m.cfg.Output.Println("")
	m.cfg.Output.Mutedf(pausePrompt)

	if err := m.cfg.Prompter.Pause(ctx); err != nil {
		m.cfg.Output.Errorf("%v", err)
	}
}
