// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

package runner

import (
	"strings"

	"github.com/janderssonse/freshstart/internal/domain"
)

// Defaults for the built-in strategies.
const (
	DefaultInstallerService = "msiexec"
	DefaultPackageManager   = "winget"
)

const (
	removalFlag      = "/X"
	silentFlag       = "/qn"
	silentFlagSuffix = "/qn /norestart"
)

// Action is one external command the runner executes.
type Action struct {
	Label       string
	Executable  string
	Args        string
	SuccessText string
	// NoCommand marks an app without a stored uninstall command.
	NoCommand bool
}

// Skipped reports whether the action has nothing to run. An action whose
// command splits to an empty executable is still launched and fails there.
func (a Action) Skipped() bool {
	return a.NoCommand
}

// UninstallStrategy derives actions from the stored uninstall commands.
type UninstallStrategy struct {
	// InstallerServices are the installer binaries whose arguments get normalized.
	InstallerServices []string
}

// NewUninstallStrategy creates the strategy with the default installer service.
func NewUninstallStrategy() UninstallStrategy {
	return UninstallStrategy{InstallerServices: []string{DefaultInstallerService}}
}

// Plan returns the action removing app.
func (s UninstallStrategy) Plan(app domain.InstalledApp) Action {
	action := Action{Label: app.DisplayName, SuccessText: "Uninstall succeeded."}

	if !app.HasUninstallCommand() {
		action.NoCommand = true

		return action
	}

	exe, args := SplitCommand(app.UninstallCommand)
	if s.isInstallerService(exe) {
		args = NormalizeInstallerArgs(args)
	}

	action.Executable = exe
	action.Args = args

	return action
}

// PlanAll returns one action per app, in order.
func (s UninstallStrategy) PlanAll(apps []domain.InstalledApp) []Action {
	actions := make([]Action, 0, len(apps))
	for _, app := range apps {
		actions = append(actions, s.Plan(app))
	}

	return actions
}

func (s UninstallStrategy) isInstallerService(exe string) bool {
	name := baseName(exe)

	for _, service := range s.InstallerServices {
		if strings.EqualFold(name, baseName(service)) {
			return true
		}
	}

	return false
}

// NormalizeInstallerArgs lowers the removal flag and makes the run silent.
func NormalizeInstallerArgs(args string) string {
	args = strings.ReplaceAll(args, removalFlag, strings.ToLower(removalFlag))

	if strings.Contains(strings.ToLower(args), silentFlag) {
		return args
	}

	if args == "" {
		return silentFlagSuffix
	}

	return args + " " + silentFlagSuffix
}

// InstallStrategy derives package-manager install actions.
type InstallStrategy struct {
	PackageManager string
}

// NewInstallStrategy creates the strategy for the given package manager,
// falling back to the default one.
func NewInstallStrategy(packageManager string) InstallStrategy {
	if strings.TrimSpace(packageManager) == "" {
		packageManager = DefaultPackageManager
	}

	return InstallStrategy{PackageManager: packageManager}
}

// InstallArgs returns the package-manager arguments installing id.
func InstallArgs(id string) string {
	return "install --id " + id + " --accept-package-agreements --accept-source-agreements"
}

// Plan returns the action installing opt.
func (s InstallStrategy) Plan(opt domain.InstallOption) Action {
	return Action{
		Label:       opt.Name,
		Executable:  s.PackageManager,
		Args:        InstallArgs(opt.ID),
		SuccessText: "Installed successfully.",
	}
}

// PlanAll returns one action per option, in order.
func (s InstallStrategy) PlanAll(options []domain.InstallOption) []Action {
	actions := make([]Action, 0, len(options))
	for _, opt := range options {
		actions = append(actions, s.Plan(opt))
	}

	return actions
}
