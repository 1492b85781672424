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
	"strings"
	"testing"

	"github.com/FidgetApps/fidgetapps-core/pkg/autostart"
	"github.com/FidgetApps/fidgetapps-core/pkg/config"
	"github.com/FidgetApps/fidgetapps-core/pkg/platforms"
	"github.com/FidgetApps/fidgetapps-core/pkg/platforms/ids"
	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatform_ID(t *testing.T) {
	t.Parallel()

	var pl platforms.Platform = &Platform{}
	assert.Equal(t, ids.Linux, pl.ID())
}

func TestPlatform_Settings(t *testing.T) {
	t.Parallel()

	settings := (&Platform{}).Settings()

	assert.Equal(t, filepath.Join(xdg.ConfigHome, config.AppName), settings.ConfigDir)
	assert.Equal(t, filepath.Join(xdg.DataHome, config.AppName), settings.DataDir)
	assert.True(t, strings.HasPrefix(settings.LogDir, settings.DataDir))
	assert.Equal(t, config.LogsDir, filepath.Base(settings.LogDir))
}

func TestPlatform_Autostart(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	pl := &Platform{Fs: fs}
	entry := autostart.Entry{Name: config.AppName, DisplayName: "FidgetApps", Exec: []string{"/usr/bin/fidgetapps"}}

	toggle := autostart.NewToggle(pl.Autostart(entry))
	require.True(t, toggle.SetAutostartEnabled(true))
	assert.True(t, toggle.IsAutostartEnabled())

	exists, err := afero.Exists(fs, filepath.Join(xdg.ConfigHome, "autostart", "fidgetapps.desktop"))
	require.NoError(t, err)
	assert.True(t, exists)
}
