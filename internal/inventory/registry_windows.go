// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

//go:build windows

package inventory

import (
	"context"
	"fmt"

	"golang.org/x/sys/windows/registry"

	"github.com/janderssonse/freshstart/internal/domain"
)

const uninstallPath = `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`

type registryRoot struct {
	name string
	hive registry.Key
	path string
}

const wowUninstallPath = `SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`

// Scan order matters: the first root holding a name wins on duplicates.
var registryRoots = []registryRoot{ //nolint:gochecknoglobals
	{name: `HKLM\` + uninstallPath, hive: registry.LOCAL_MACHINE, path: uninstallPath},
	{name: `HKCU\` + uninstallPath, hive: registry.CURRENT_USER, path: uninstallPath},
	{name: `HKLM\` + wowUninstallPath, hive: registry.LOCAL_MACHINE, path: wowUninstallPath},
}

// registrySource reads the Windows uninstall-information trees.
type registrySource struct{}

// NewSystemSource returns the installed-software source of this platform.
func NewSystemSource(_ domain.CommandRunner) Source {
	return registrySource{}
}

func (registrySource) Roots() []string {
	names := make([]string, 0, len(registryRoots))
	for _, root := range registryRoots {
		names = append(names, root.name)
	}

	return names
}

func lookupRoot(name string) (registryRoot, bool) {
	for _, root := range registryRoots {
		if root.name == name {
			return root, true
		}
	}

	return registryRoot{}, false
}

func (registrySource) Entries(ctx context.Context, root string) ([]Entry, error) {
	loc, ok := lookupRoot(root)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownInventoryRoot, root)
	}

	key, err := registry.OpenKey(loc.hive, loc.path, registry.ENUMERATE_SUB_KEYS|registry.READ)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}
	defer key.Close()

	subkeys, err := key.ReadSubKeyNames(-1)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}

	entries := make([]Entry, 0, len(subkeys))

	for _, name := range subkeys {
		if ctx.Err() != nil {
			break
		}

		record, ok := readRecord(loc.hive, loc.path+`\`+name)
		if !ok {
			continue
		}

		entries = append(entries, Entry{Key: root + `\` + name, Record: record})
	}

	return entries, nil
}

func readRecord(hive registry.Key, path string) (Record, bool) {
	sk, err := registry.OpenKey(hive, path, registry.READ)
	if err != nil {
		return Record{}, false
	}
	defer sk.Close()

	name, _, err := sk.GetStringValue("DisplayName")
	if err != nil || name == "" {
		return Record{}, false
	}

	command, _, _ := sk.GetStringValue("UninstallString")

	return Record{Name: name, UninstallCommand: command}, true
}
