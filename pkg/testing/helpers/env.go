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

package helpers

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/FidgetApps/fidgetapps-core/pkg/api/models/requests"
	"github.com/FidgetApps/fidgetapps-core/pkg/appsconfig"
	"github.com/FidgetApps/fidgetapps-core/pkg/autostart"
	"github.com/FidgetApps/fidgetapps-core/pkg/config"
	"github.com/FidgetApps/fidgetapps-core/pkg/desktopentry"
	"github.com/FidgetApps/fidgetapps-core/pkg/launcher"
	"github.com/FidgetApps/fidgetapps-core/pkg/testing/mocks"
	"github.com/stretchr/testify/require"
)

const (
	TestAppsConfigDir = "/home/user/.config/fidgetapps"
	TestDesktopDir    = "/usr/share/applications"
)

// TestEnv is a RequestEnv backed by an in-memory filesystem and mocks for
// everything that touches the OS.
type TestEnv struct {
	FS        *FSHelper
	Cmd       *mocks.MockCommandExecutor
	Autostart *mocks.MockAutostartManager
	Platform  *mocks.MockPlatform
	Config    *config.Instance
	Env       requests.RequestEnv
}

// NewTestEnv builds a TestEnv for a linux host. Commands start successfully
// unless the Cmd expectations are replaced.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	dir := t.TempDir()
	cfg, err := config.NewConfig(filepath.Join(dir, "config"), config.BaseDefaults)
	require.NoError(t, err)

	fsh := NewMemoryFS()
	cmd := NewMockCommandExecutor()
	am := &mocks.MockAutostartManager{}
	pl := mocks.NewMockPlatform()
	pl.SetupBasicMock(dir)

	te := &TestEnv{
		FS:        fsh,
		Cmd:       cmd,
		Autostart: am,
		Platform:  pl,
		Config:    cfg,
	}
	te.Env = requests.RequestEnv{
		Context:   context.Background(),
		Platform:  pl,
		Config:    cfg,
		Store:     appsconfig.NewStore(fsh.Fs, TestAppsConfigDir),
		Scanner:   desktopentry.NewScanner(fsh.Fs, TestDesktopDir, config.DefaultDesktopGlob),
		Launcher:  launcher.New(cmd, "linux", ""),
		Autostart: autostart.NewToggle(am),
	}
	return te
}
