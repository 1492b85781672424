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
	"text/template"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
)

var plistTemplate = template.Must(template.New("plist").Parse(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>{{html .Label}}</string>
	<key>ProgramArguments</key>
	<array>
{{- range .Args}}
		<string>{{html .}}</string>
{{- end}}
	</array>
	<key>RunAtLoad</key>
	<true/>
	<key>ProcessType</key>
	<string>Interactive</string>
</dict>
</plist>
`))

// LaunchAgentManager manages a per-user launchd agent on macOS. The agent
// is loaded by launchd at the next login; it is not started immediately.
type LaunchAgentManager struct {
	fs    afero.Fs
	dir   string
	label string
	entry Entry
}

// NewLaunchAgentManager uses dir as the LaunchAgents directory, or
// ~/Library/LaunchAgents when dir is empty. label is the reverse-DNS agent
// label and file name.
func NewLaunchAgentManager(fs afero.Fs, dir, label string, entry Entry) *LaunchAgentManager {
	if dir == "" {
		dir = filepath.Join(xdg.Home, "Library", "LaunchAgents")
	}
	return &LaunchAgentManager{
		fs:    fs,
		dir:   dir,
		label: label,
		entry: entry,
	}
}

func (m *LaunchAgentManager) Path() string {
	return filepath.Join(m.dir, m.label+".plist")
}

func (m *LaunchAgentManager) IsEnabled() (bool, error) {
	exists, err := afero.Exists(m.fs, m.Path())
	if err != nil {
		return false, fmt.Errorf("failed to stat launch agent: %w", err)
	}
	return exists, nil
}

func (m *LaunchAgentManager) SetEnabled(enabled bool) error {
	if !enabled {
		err := m.fs.Remove(m.Path())
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove launch agent: %w", err)
		}
		return nil
	}

	if len(m.entry.Exec) == 0 {
		return fmt.Errorf("launch agent %s has no program", m.label)
	}

	var buf bytes.Buffer
	err := plistTemplate.Execute(&buf, struct {
		Label string
		Args  []string
	}{
		Label: m.label,
		Args:  m.entry.Exec,
	})
	if err != nil {
		return fmt.Errorf("failed to render launch agent: %w", err)
	}

	if err := m.fs.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create LaunchAgents directory: %w", err)
	}
	if err := afero.WriteFile(m.fs, m.Path(), buf.Bytes(), 0o644); err != nil { //nolint:gosec // read by launchd
		return fmt.Errorf("failed to write launch agent: %w", err)
	}
	return nil
}
