// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/janderssonse/freshstart/internal/domain"
)

func TestInstalledApp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		app          domain.InstalledApp
		valid        bool
		hasUninstall bool
	}{
		{"complete", domain.InstalledApp{DisplayName: "Steam", UninstallCommand: `"C:\Steam\uninstall.exe"`}, true, true},
		{"no command", domain.InstalledApp{DisplayName: "Ghost"}, true, false},
		{"blank command", domain.InstalledApp{DisplayName: "Ghost", UninstallCommand: "   "}, true, false},
		{"blank name", domain.InstalledApp{DisplayName: " ", UninstallCommand: "x"}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.valid, tt.app.IsValid())
			assert.Equal(t, tt.hasUninstall, tt.app.HasUninstallCommand())
		})
	}
}

func TestInstallOption(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opt     domain.InstallOption
		valid   bool
		grouped bool
	}{
		{"grouped", domain.InstallOption{ID: "7zip.7zip", Name: "7-Zip", Group: "baseline"}, true, true},
		{"ungrouped", domain.InstallOption{ID: "Valve.Steam", Name: "Steam"}, true, false},
		{"missing id", domain.InstallOption{Name: "Steam"}, false, false},
		{"missing name", domain.InstallOption{ID: "Valve.Steam", Name: " "}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.valid, tt.opt.IsValid())
			assert.Equal(t, tt.grouped, tt.opt.IsGrouped())
		})
	}
}
