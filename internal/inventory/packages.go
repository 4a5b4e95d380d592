// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

package inventory

import (
	"bufio"
	"strings"
)

// Root names of the package-manager inventory.
const (
	RootDpkg    = "dpkg"
	RootFlatpak = "flatpak"
)

const dpkgInstalled = "ii"

// ParseDpkg parses `dpkg-query -W -f '${Package}\t${db:Status-Abbrev}\n'` output.
// Only fully installed packages are returned.
func ParseDpkg(output string) []Entry {
	var entries []Entry

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) < 2 {
			continue
		}

		pkg := strings.TrimSpace(fields[0])
		if pkg == "" || strings.TrimSpace(fields[1]) != dpkgInstalled {
			continue
		}

		entries = append(entries, Entry{
			Key: RootDpkg + "/" + pkg,
			Record: Record{
				Name:             pkg,
				UninstallCommand: "apt-get remove -y " + pkg,
			},
		})
	}

	return entries
}

// ParseFlatpak parses `flatpak list --app --columns=name,application` output.
func ParseFlatpak(output string) []Entry {
	var entries []Entry

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) < 2 {
			continue
		}

		name := strings.TrimSpace(fields[0])
		appID := strings.TrimSpace(fields[1])

		if appID == "" {
			continue
		}

		entries = append(entries, Entry{
			Key: RootFlatpak + "/" + appID,
			Record: Record{
				Name:             name,
				UninstallCommand: "flatpak uninstall --user -y " + appID,
			},
		})
	}

	return entries
}
