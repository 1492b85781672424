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

// Package autostart registers the launcher to start at user login.
//
// The OS registration itself is done by a Manager. Toggle wraps a Manager
// with the behavior the UI expects: queries that fail read as disabled and
// updates only report whether they worked.
package autostart

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// Manager is an OS specific autostart registration.
type Manager interface {
	IsEnabled() (bool, error)
	SetEnabled(enabled bool) error
}

// Entry describes the program registered for autostart.
type Entry struct {
	// Name is the file or registry value name, without extension.
	Name        string
	DisplayName string
	Comment     string
	Icon        string
	// Exec is the program path followed by its arguments.
	Exec []string
}

// CommandLine joins Exec into a single command line, quoting arguments that
// contain spaces.
func (e Entry) CommandLine() string {
	parts := make([]string, 0, len(e.Exec))
	for _, arg := range e.Exec {
		if strings.ContainsAny(arg, " \t") {
			arg = `"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}

type Toggle struct {
	manager Manager
}

func NewToggle(m Manager) *Toggle {
	return &Toggle{manager: m}
}

// IsAutostartEnabled reports the current registration. Any failure to query
// it, including having no manager, reads as false.
func (t *Toggle) IsAutostartEnabled() bool {
	if t.manager == nil {
		return false
	}

	enabled, err := t.manager.IsEnabled()
	if err != nil {
		log.Warn().Err(err).Msg("querying autostart")
		return false
	}
	return enabled
}

// SetAutostartEnabled enables or disables autostart and reports whether the
// change was applied.
func (t *Toggle) SetAutostartEnabled(enabled bool) bool {
	if t.manager == nil {
		log.Warn().Msg("autostart is not supported on this platform")
		return false
	}

	if err := t.manager.SetEnabled(enabled); err != nil {
		log.Warn().Err(err).Bool("enabled", enabled).Msg("updating autostart")
		return false
	}

	log.Info().Bool("enabled", enabled).Msg("autostart updated")
	return true
}
