// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides the command-line interface and the interactive menu loop.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/janderssonse/freshstart/internal/adapters/platform"
	"github.com/janderssonse/freshstart/internal/catalog"
	"github.com/janderssonse/freshstart/internal/console"
	"github.com/janderssonse/freshstart/internal/domain"
	"github.com/janderssonse/freshstart/internal/inventory"
	"github.com/janderssonse/freshstart/internal/runner"
)

// Exit codes follow standard Unix conventions for better scripting support.
const (
	ExitSuccess      = 0  // Operation completed successfully
	ExitGeneralError = 1  // Generic failure (catch-all)
	ExitUsageError   = 2  // Invalid command line usage
	ExitConfigError  = 3  // Catalog file error
	ExitSystemError  = 12 // System call failed
)

// Version is set at build time.
var Version = "dev" //nolint:gochecknoglobals

var (
	// ErrUnexpectedArgs is returned when the root command gets positional arguments.
	ErrUnexpectedArgs = errors.New("unexpected arguments")
	// ErrInvalidColumns is returned for a column count below one.
	ErrInvalidColumns = errors.New("columns must be at least 1")
	// ErrInvalidColor is returned for an unknown --color value.
	ErrInvalidColor = errors.New("invalid --color value: must be auto, always, or never")
)

// CLI holds the root command and the parsed global flags.
type CLI struct {
	app *cli.Command
	out *console.OutputState

	verbose        bool
	plain          bool
	dryRun         bool
	color          string // "auto", "always", "never"
	columns        int
	catalogPath    string
	packageManager string

	catalog    *catalog.Catalog
	source     inventory.Source
	prompter   Prompter
	isTerminal func() bool
}

// Option customizes a CLI.
type Option func(*CLI)

// WithOutput writes all user-facing output to w.
func WithOutput(w io.Writer) Option {
	return func(app *CLI) { app.out = console.New(w) }
}

// WithInventorySource replaces the host installed-software source.
func WithInventorySource(source inventory.Source) Option {
	return func(app *CLI) { app.source = source }
}

// WithPrompter replaces the terminal prompter.
func WithPrompter(prompter Prompter) Option {
	return func(app *CLI) { app.prompter = prompter }
}

// WithTerminalCheck replaces the check that stdin and stdout are a terminal.
func WithTerminalCheck(check func() bool) Option {
	return func(app *CLI) { app.isTerminal = check }
}

// NewCLI creates the freshstart command.
func NewCLI(opts ...Option) *CLI {
	app := &CLI{
		out:        console.DefaultOutput,
		isTerminal: stdioIsTerminal,
	}

	for _, opt := range opts {
		opt(app)
	}

	app.app = &cli.Command{
		Name:    "freshstart",
		Usage:   "Remove installed apps and install a curated set on a fresh machine",
		Version: Version,
		Suggest: true,
		Writer:  app.out.Out,
		Description: `Shows a menu to uninstall applications found on this machine or to
install a curated catalog through the package manager.

EXAMPLES:
  freshstart                          # Interactive menu
  freshstart --dry-run                # Show the commands without running them
  freshstart --catalog apps.yaml      # Use your own install catalog
  freshstart installed                # List installed applications
  freshstart catalog                  # List the install catalog`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "columns",
				Aliases:     []string{"c"},
				Usage:       "number of columns in the selection grid",
				Value:       defaultCols,
				Destination: &app.columns,
			},
			&cli.StringFlag{
				Name:        "catalog",
				Usage:       "install catalog file (.toml, .yaml) replacing the built-in list",
				Destination: &app.catalogPath,
			},
			&cli.StringFlag{
				Name:        "package-manager",
				Usage:       "package manager used for installs",
				Value:       runner.DefaultPackageManager,
				Destination: &app.packageManager,
			},
			&cli.BoolFlag{
				Name:        "dry-run",
				Aliases:     []string{"n"},
				Usage:       "print the commands instead of running them",
				Destination: &app.dryRun,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "show progress messages and error details",
				Destination: &app.verbose,
			},
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "output plain text without formatting for scripts",
				Destination: &app.plain,
			},
			&cli.StringFlag{
				Name:        "color",
				Usage:       "color output mode: auto, always, never",
				Value:       "auto",
				Destination: &app.color,
			},
		},
		Before:       app.initConfig,
		Action:       app.defaultAction,
		OnUsageError: usageError,
		Commands: []*cli.Command{
			{
				Name:   "installed",
				Usage:  "List installed applications",
				Action: app.runInstalled,
			},
			{
				Name:   "catalog",
				Usage:  "List the install catalog",
				Action: app.runCatalog,
			},
		},
	}

	return app
}

// Run executes the CLI application.
func (app *CLI) Run(ctx context.Context, args []string) error {
	return app.app.Run(ctx, args)
}

// initConfig validates flags and configures output.
func (app *CLI) initConfig(ctx context.Context, _ *cli.Command) (context.Context, error) {
	if app.columns < 1 {
		return ctx, domain.NewExitError(ExitUsageError, ErrInvalidColumns.Error(), nil)
	}

	switch app.color {
	case "auto":
		// Default TTY and NO_COLOR detection
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		return ctx, domain.NewExitError(ExitUsageError, ErrInvalidColor.Error(), nil)
	}

	app.out.SetMode(app.verbose, app.plain)

	app.catalog = catalog.Default()

	if app.catalogPath != "" {
		loaded, err := catalog.Load(app.catalogPath)
		if err != nil {
			return ctx, domain.NewExitError(ExitConfigError, "Failed to load catalog "+app.catalogPath, err)
		}

		app.catalog = loaded
	}

	return ctx, nil
}

func usageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return domain.NewExitError(ExitUsageError, err.Error(), err)
}

func (app *CLI) defaultAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 0 {
		return domain.NewExitError(ExitUsageError,
			fmt.Sprintf("'%s' is not a command. Run 'freshstart --help' to see available commands.", cmd.Args().First()),
			ErrUnexpectedArgs)
	}

	if !app.isTerminal() {
		return domain.NewExitError(ExitUsageError, "Interactive mode requires a terminal", domain.ErrTerminalRequired)
	}

	prompter := app.prompter
	if prompter == nil {
		prompter = NewPrompter()
	}

	menu := NewMenu(MenuConfig{
		Output:    app.out,
		Prompter:  prompter,
		Inventory: inventory.NewReader(app.inventorySource()),
		Catalog:   app.catalog,
		Runner:    runner.New(platform.NewLauncher(app.dryRun, app.out), app.out),
		Uninstall: runner.NewUninstallStrategy(),
		Install:   runner.NewInstallStrategy(app.packageManager),
		Columns:   app.columns,
	})

	if err := menu.Run(ctx); err != nil {
		if app.verbose {
			return domain.NewExitError(ExitGeneralError, fmt.Sprintf("Interactive menu failed: %v", err), err)
		}

		return domain.NewExitError(ExitGeneralError, "Interactive menu failed (terminal required)", err)
	}

	return nil
}

// runInstalled prints the installed applications, one per line.
func (app *CLI) runInstalled(ctx context.Context, _ *cli.Command) error {
	apps := inventory.NewReader(app.inventorySource()).Installed(ctx)

	if len(apps) == 0 {
		app.out.Noticef("No apps found.")

		return nil
	}

	width := 0
	for _, a := range apps {
		width = max(width, runewidth.StringWidth(a.DisplayName))
	}

	lines := make([]string, 0, len(apps))

	for _, a := range apps {
		if !app.verbose {
			lines = append(lines, a.DisplayName)

			continue
		}

		lines = append(lines, strings.TrimRight(runewidth.FillRight(a.DisplayName, width)+"  "+a.UninstallCommand, " "))
	}

	app.out.PlainList(lines)

	return nil
}

// runCatalog prints the install options with their package ids and groups.
func (app *CLI) runCatalog(_ context.Context, _ *cli.Command) error {
	options := app.catalog.Options

	nameWidth, idWidth := 0, 0
	for _, opt := range options {
		nameWidth = max(nameWidth, runewidth.StringWidth(opt.Name))
		idWidth = max(idWidth, runewidth.StringWidth(opt.ID))
	}

	lines := make([]string, 0, len(options))

	for _, opt := range options {
		group := GroupLabel(opt.Group)
		if app.catalog.IsMeta(opt) {
			group += " bundle: " + strings.Join(app.catalog.Groups[opt.ID], ", ")
		}

		line := runewidth.FillRight(opt.Name, nameWidth) + "  " + runewidth.FillRight(opt.ID, idWidth) + "  " + group
		lines = append(lines, strings.TrimRight(line, " "))
	}

	app.out.PlainList(lines)

	return nil
}

func (app *CLI) inventorySource() inventory.Source {
	if app.source != nil {
		return app.source
	}

	return inventory.NewSystemSource(platform.NewCommandRunner(app.out))
}

func stdioIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
