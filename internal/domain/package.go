// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"strings"
)

// InstalledApp is one application found in the host's installed-software inventory.
type InstalledApp struct {
	DisplayName      string `json:"display_name"`
	UninstallCommand string `json:"uninstall_command,omitempty"`
}

// IsValid reports whether the app has a usable display name.
func (a InstalledApp) IsValid() bool {
	return strings.TrimSpace(a.DisplayName) != ""
}

// HasUninstallCommand reports whether the app can be removed by its own uninstaller.
func (a InstalledApp) HasUninstallCommand() bool {
	return strings.TrimSpace(a.UninstallCommand) != ""
}

// InstallOption is an entry of the install catalog.
// Group is empty for ungrouped options.
type InstallOption struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Group string `json:"group,omitempty"`
}

// IsValid validates the option has required fields.
func (o InstallOption) IsValid() bool {
	return strings.TrimSpace(o.ID) != "" && strings.TrimSpace(o.Name) != ""
}

// IsGrouped reports whether the option carries a group tag.
func (o InstallOption) IsGrouped() bool {
	return o.Group != ""
}
