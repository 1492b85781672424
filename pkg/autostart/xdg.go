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

package autostart

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

const desktopSection = "Desktop Entry"

func init() {
	// desktop entries use Key=Value without padding
	ini.PrettyFormat = false
}

// XDGManager manages a desktop entry in the freedesktop autostart directory.
type XDGManager struct {
	fs    afero.Fs
	dir   string
	entry Entry
}

// NewXDGManager uses dir as the autostart directory, or
// $XDG_CONFIG_HOME/autostart when dir is empty.
func NewXDGManager(fs afero.Fs, dir string, entry Entry) *XDGManager {
	if dir == "" {
		dir = filepath.Join(xdg.ConfigHome, "autostart")
	}
	return &XDGManager{
		fs:    fs,
		dir:   dir,
		entry: entry,
	}
}

func (m *XDGManager) Path() string {
	return filepath.Join(m.dir, m.entry.Name+".desktop")
}

// IsEnabled is true when the entry exists and has not been switched off with
// Hidden=true or X-GNOME-Autostart-enabled=false.
func (m *XDGManager) IsEnabled() (bool, error) {
	data, err := afero.ReadFile(m.fs, m.Path())
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to read autostart entry: %w", err)
	}

	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment: true,
		AllowShadows:        true,
	}, data)
	if err != nil {
		return false, fmt.Errorf("failed to parse autostart entry: %w", err)
	}

	sec, err := cfg.GetSection(desktopSection)
	if err != nil {
		return false, fmt.Errorf("autostart entry has no [%s] group: %w", desktopSection, err)
	}

	if sec.Key("Hidden").MustBool(false) {
		return false, nil
	}
	return sec.Key("X-GNOME-Autostart-enabled").MustBool(true), nil
}

func (m *XDGManager) SetEnabled(enabled bool) error {
	if !enabled {
		err := m.fs.Remove(m.Path())
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove autostart entry: %w", err)
		}
		return nil
	}

	data, err := m.render()
	if err != nil {
		return err
	}

	if err := m.fs.MkdirAll(m.dir, 0o750); err != nil {
		return fmt.Errorf("failed to create autostart directory: %w", err)
	}
	if err := afero.WriteFile(m.fs, m.Path(), data, 0o644); err != nil { //nolint:gosec // read by the session
		return fmt.Errorf("failed to write autostart entry: %w", err)
	}
	return nil
}

func (m *XDGManager) render() ([]byte, error) {
	cfg := ini.Empty()
	sec, err := cfg.NewSection(desktopSection)
	if err != nil {
		return nil, fmt.Errorf("failed to create desktop section: %w", err)
	}

	keys := [][2]string{
		{"Type", "Application"},
		{"Name", m.entry.DisplayName},
		{"Comment", m.entry.Comment},
		{"Exec", m.entry.CommandLine()},
		{"Icon", m.entry.Icon},
		{"Terminal", "false"},
		{"X-GNOME-Autostart-enabled", "true"},
	}
	for _, kv := range keys {
		if kv[1] == "" {
			continue
		}
		if _, err := sec.NewKey(kv[0], kv[1]); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", kv[0], err)
		}
	}

	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to render autostart entry: %w", err)
	}
	return buf.Bytes(), nil
}
