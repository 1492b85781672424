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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_WritesDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, CfgFile))
	assert.Equal(t, DefaultAPIPort, cfg.APIPort())
	assert.False(t, cfg.APIAllowRemote())
	assert.Equal(t, DefaultDesktopDir, cfg.Apps().DesktopDir)
	assert.Equal(t, DefaultDesktopGlob, cfg.Apps().DesktopGlob)
	assert.Equal(t, "x11", cfg.Render().GDKBackend)
	assert.True(t, cfg.Render().DisableCompositing)
	assert.False(t, cfg.ErrorReporting().Enabled)
}

func TestNewConfig_MergesFileOverDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	data := `config_schema = 1
debug_logging = true

[apps]
launch_helper = "/opt/fidgetapps/launch.sh"

[ui]
command = "fidgetapps-ui"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, CfgFile), []byte(data), 0o600))

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	assert.True(t, cfg.DebugLogging())
	assert.Equal(t, "/opt/fidgetapps/launch.sh", cfg.Apps().LaunchHelper)
	assert.Equal(t, DefaultDesktopDir, cfg.Apps().DesktopDir)
	assert.Equal(t, DefaultAPIPort, cfg.APIPort())
	assert.Equal(t, "fidgetapps-ui", cfg.UICommand())
}

func TestLoad_SchemaMismatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, CfgFile), []byte("config_schema = 99\n"), 0o600))

	_, err := NewConfig(dir, BaseDefaults)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema version mismatch")
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{
			name: "port out of range",
			data: "config_schema = 1\n[api]\nport = 70000\n",
		},
		{
			name: "empty desktop dir",
			data: "config_schema = 1\n[apps]\ndesktop_dir = \"\"\n",
		},
		{
			name: "bad dsn",
			data: "config_schema = 1\n[error_reporting]\ndsn = \"not a url\"\n",
		},
		{
			name: "not toml",
			data: "config_schema = [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, CfgFile), []byte(tt.data), 0o600))

			_, err := NewConfig(dir, BaseDefaults)
			assert.Error(t, err)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	cfg.SetDebugLogging(true)
	require.NoError(t, cfg.Save())

	reloaded, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)
	assert.True(t, reloaded.DebugLogging())
	assert.Equal(t, filepath.Join(dir, CfgFile), reloaded.Path())
}

func TestLoad_PathNotSet(t *testing.T) {
	t.Parallel()

	cfg := &Instance{}
	require.ErrorIs(t, cfg.Load(), ErrConfigPathNotSet)
	require.ErrorIs(t, cfg.Save(), ErrConfigPathNotSet)
}

//nolint:paralleltest // modifies environment
func TestNewConfig_EnvOverride(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "nested", "custom.toml")
	t.Setenv(CfgEnv, custom)

	cfg, err := NewConfig(t.TempDir(), BaseDefaults)
	require.NoError(t, err)

	assert.Equal(t, custom, cfg.Path())
	assert.FileExists(t, custom)
}
