// FidgetApps Core
// Copyright (c) 2026 The FidgetApps Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of FidgetApps Core.
//
// FidgetApps Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// FidgetApps Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with FidgetApps Core.  If not, see <http://www.gnu.org/licenses/>.

// Package appsconfig stores the launcher's app tile list. The file content is
// owned by the UI and is passed through untouched: the store never parses,
// reformats or validates what it reads or writes.
package appsconfig

import (
	"fmt"
	"path/filepath"

	"github.com/FidgetApps/fidgetapps-core/pkg/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// DefaultPayload is written to disk the first time the config is read and
// no file exists yet.
const DefaultPayload = `[
  { "id": 1, "name": "Text Editor", "icon": "Code", "color": "bg-blue-500", "iconColor": "text-gray-600", "command": "xed" },
  { "id": 2, "name": "File Manager", "icon": "Folder", "color": "bg-yellow-500", "iconColor": "text-gray-600", "command": "nautilus" }
]`

type Store struct {
	fs  afero.Fs
	dir string
}

func NewStore(fs afero.Fs, dir string) *Store {
	return &Store{fs: fs, dir: dir}
}

// Path returns the full path of the apps config file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, config.AppsCfgFile)
}

// Get returns the stored payload. On first use, when no file exists, the
// default payload is written to disk and returned.
func (s *Store) Get() (string, error) {
	path := s.Path()

	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to stat apps config: %w", err)
	}

	if !exists {
		log.Info().Str("path", path).Msg("writing default apps config")
		if err := s.write(DefaultPayload); err != nil {
			return "", err
		}
		return DefaultPayload, nil
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read apps config: %w", err)
	}

	return string(data), nil
}

// Save replaces the whole file with payload. The payload is not checked.
func (s *Store) Save(payload string) error {
	log.Debug().Int("bytes", len(payload)).Msg("saving apps config")
	return s.write(payload)
}

func (s *Store) write(payload string) error {
	if err := s.fs.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	err := afero.WriteFile(s.fs, s.Path(), []byte(payload), 0o600)
	if err != nil {
		return fmt.Errorf("failed to write apps config: %w", err)
	}

	return nil
}
