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

//go:build windows

package windows

import (
	"path/filepath"

	"github.com/FidgetApps/fidgetapps-core/pkg/autostart"
	"github.com/FidgetApps/fidgetapps-core/pkg/config"
	"github.com/FidgetApps/fidgetapps-core/pkg/platforms"
	"github.com/FidgetApps/fidgetapps-core/pkg/platforms/ids"
	"github.com/adrg/xdg"
)

type Platform struct{}

func (*Platform) ID() string {
	return ids.Windows
}

// Settings keeps everything under the roaming app data folder so the tile
// list follows the user between machines.
func (*Platform) Settings() platforms.Settings {
	root := filepath.Join(xdg.ConfigHome, config.AppDisplayName)
	return platforms.Settings{
		DataDir:   root,
		ConfigDir: root,
		LogDir:    filepath.Join(xdg.DataHome, config.AppDisplayName, config.LogsDir),
	}
}

func (*Platform) Autostart(entry autostart.Entry) autostart.Manager {
	return autostart.NewRegistryManager(entry)
}
