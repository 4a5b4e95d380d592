// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/janderssonse/freshstart/internal/domain"
)

// Catalog file errors.
var (
	ErrInvalidCatalog    = errors.New("invalid catalog")
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// fileOption is one option as written in a catalog file.
type fileOption struct {
	ID    string `toml:"id"    yaml:"id"`
	Name  string `toml:"name"  yaml:"name"`
	Group string `toml:"group" yaml:"group"`
}

// fileCatalog is the on-disk catalog layout.
type fileCatalog struct {
	Options []fileOption `toml:"options" yaml:"options"`
}

// Load reads a catalog file replacing the built-in list.
// The format follows the extension: .toml, .yaml or .yml.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	return Parse(data, filepath.Ext(path))
}

// Parse decodes catalog data in the format named by ext.
func Parse(data []byte, ext string) (*Catalog, error) {
	var file fileCatalog

	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	options, err := validate(file.Options)
	if err != nil {
		return nil, err
	}

	return New(options), nil
}

func validate(entries []fileOption) ([]domain.InstallOption, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no options defined", ErrInvalidCatalog)
	}

	options := make([]domain.InstallOption, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))

	for i, entry := range entries {
		opt := domain.InstallOption{
			ID:    strings.TrimSpace(entry.ID),
			Name:  strings.TrimSpace(entry.Name),
			Group: strings.TrimSpace(entry.Group),
		}

		if !opt.IsValid() {
			return nil, fmt.Errorf("%w: option %d needs an id and a name", ErrInvalidCatalog, i+1)
		}

		key := strings.ToLower(opt.ID)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalog, opt.ID)
		}

		seen[key] = struct{}{}

		options = append(options, opt)
	}

	return options, nil
}
