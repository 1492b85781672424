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

// Package platforms defines what the service needs from the host OS: where
// files live and how autostart is registered.
package platforms

import (
	"fmt"
	"os"

	"github.com/FidgetApps/fidgetapps-core/pkg/autostart"
	"github.com/FidgetApps/fidgetapps-core/pkg/config"
)

// Settings holds the per-user paths of a platform.
type Settings struct {
	// DataDir holds anything the service writes that is not config.
	DataDir string
	// ConfigDir holds config.toml and the apps config file.
	ConfigDir string
	// LogDir holds the rotating log files.
	LogDir string
}

// Platform is the interface the service uses to talk to the host OS.
type Platform interface {
	// ID returns the unique ID of this platform.
	ID() string
	// Settings returns the platform's per-user paths.
	Settings() Settings
	// Autostart returns the login registration for entry, or nil if the
	// platform has none.
	Autostart(entry autostart.Entry) autostart.Manager
}

// AutostartEntry describes the running executable for autostart
// registration.
func AutostartEntry() (autostart.Entry, error) {
	exe, err := os.Executable()
	if err != nil {
		return autostart.Entry{}, fmt.Errorf("failed to get executable path: %w", err)
	}

	return autostart.Entry{
		Name:        config.AppName,
		DisplayName: config.AppDisplayName,
		Comment:     "Launch your favourite apps from a single screen",
		Icon:        config.AppName,
		Exec:        []string{exe},
	}, nil
}
