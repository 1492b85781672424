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

package linux

import (
	"path/filepath"

	"github.com/FidgetApps/fidgetapps-core/pkg/autostart"
	"github.com/FidgetApps/fidgetapps-core/pkg/config"
	"github.com/FidgetApps/fidgetapps-core/pkg/platforms"
	"github.com/FidgetApps/fidgetapps-core/pkg/platforms/ids"
	"github.com/adrg/xdg"
	"github.com/spf13/afero"
)

type Platform struct {
	// Fs is used for autostart entries. Defaults to the OS filesystem.
	Fs afero.Fs
}

func (*Platform) ID() string {
	return ids.Linux
}

func (*Platform) Settings() platforms.Settings {
	dataDir := filepath.Join(xdg.DataHome, config.AppName)
	return platforms.Settings{
		DataDir:   dataDir,
		ConfigDir: filepath.Join(xdg.ConfigHome, config.AppName),
		LogDir:    filepath.Join(dataDir, config.LogsDir),
	}
}

func (p *Platform) Autostart(entry autostart.Entry) autostart.Manager {
	fs := p.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return autostart.NewXDGManager(fs, "", entry)
}
