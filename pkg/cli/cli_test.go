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

package cli

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"net"
	"path/filepath"
	"testing"

	"github.com/FidgetApps/fidgetapps-core/pkg/api"
	"github.com/FidgetApps/fidgetapps-core/pkg/api/client"
	"github.com/FidgetApps/fidgetapps-core/pkg/api/models"
	"github.com/FidgetApps/fidgetapps-core/pkg/appsconfig"
	"github.com/FidgetApps/fidgetapps-core/pkg/config"
	"github.com/FidgetApps/fidgetapps-core/pkg/desktopentry"
	"github.com/FidgetApps/fidgetapps-core/pkg/helpers/command"
	"github.com/FidgetApps/fidgetapps-core/pkg/testing/helpers"
	"github.com/FidgetApps/fidgetapps-core/pkg/testing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func parseFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := flag.NewFlagSet("fidgetapps", flag.ContinueOnError)
	f := SetupFlags(fs)
	require.NoError(t, fs.Parse(args))
	return f
}

func TestAction_NoFlags(t *testing.T) {
	t.Parallel()

	te := helpers.NewTestEnv(t)
	var out bytes.Buffer

	handled, err := parseFlags(t, "-daemon", "-ui").Action(context.Background(), &out, mocks.NewMockAPIClient(), te.Env)
	require.NoError(t, err)
	assert.False(t, handled)
	assert.Empty(t, out.String())
}

func TestAction_Apps(t *testing.T) {
	t.Parallel()

	te := helpers.NewTestEnv(t)
	require.NoError(t, te.FS.CreateAppsConfig(
		filepath.Join(helpers.TestAppsConfigDir, config.AppsCfgFile),
		[]appsconfig.Tile{
			{ID: 1, Name: "Files", Command: "nautilus"},
			{ID: 2, Name: "Browser", Command: "firefox --new-window"},
		},
	))

	var out bytes.Buffer
	handled, err := parseFlags(t, "-apps").Action(context.Background(), &out, mocks.NewMockAPIClient(), te.Env)
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, "1\tFiles\tnautilus\n2\tBrowser\tfirefox --new-window\n", out.String())
}

func TestAction_AppsInvalidPayload(t *testing.T) {
	t.Parallel()

	te := helpers.NewTestEnv(t)
	require.NoError(t, te.FS.WriteFile(
		filepath.Join(helpers.TestAppsConfigDir, config.AppsCfgFile),
		[]byte(`{"not":"a list"}`),
	))

	var out bytes.Buffer
	handled, err := parseFlags(t, "-apps").Action(context.Background(), &out, mocks.NewMockAPIClient(), te.Env)
	assert.True(t, handled)
	require.Error(t, err)
}

func TestAction_SystemApps(t *testing.T) {
	t.Parallel()

	te := helpers.NewTestEnv(t)
	require.NoError(t, te.FS.CreateDesktopEntries(helpers.TestDesktopDir, map[string]string{
		"gedit.desktop": "[Desktop Entry]\nName=Text Editor\nExec=gedit %U\n",
	}))

	var out bytes.Buffer
	handled, err := parseFlags(t, "-system-apps").Action(context.Background(), &out, mocks.NewMockAPIClient(), te.Env)
	require.NoError(t, err)
	assert.True(t, handled)

	want, err := desktopentry.MarshalApps([]desktopentry.App{{Name: "Text Editor", Exec: "gedit"}})
	require.NoError(t, err)
	assert.Equal(t, want+"\n", out.String())
}

func TestAction_Launch(t *testing.T) {
	t.Parallel()

	t.Run("starts through the shell", func(t *testing.T) {
		t.Parallel()

		te := helpers.NewTestEnv(t)
		te.Cmd.ExpectedCalls = nil
		te.Cmd.On("Start", mock.Anything, command.StartOptions{Detach: true, NoConsole: true},
			"sh", []string{"-c", "xterm -e top"}).Return(nil).Once()

		handled, err := parseFlags(t, "-launch", "xterm -e top").
			Action(context.Background(), &bytes.Buffer{}, mocks.NewMockAPIClient(), te.Env)
		require.NoError(t, err)
		assert.True(t, handled)
		te.Cmd.AssertExpectations(t)
	})

	t.Run("empty value", func(t *testing.T) {
		t.Parallel()

		te := helpers.NewTestEnv(t)
		handled, err := parseFlags(t, "-launch", " ").
			Action(context.Background(), &bytes.Buffer{}, mocks.NewMockAPIClient(), te.Env)
		assert.True(t, handled)
		require.ErrorIs(t, err, ErrFlagValue)
		te.Cmd.AssertNotCalled(t, "Start")
	})

	t.Run("spawn failure", func(t *testing.T) {
		t.Parallel()

		te := helpers.NewTestEnv(t)
		te.Cmd.ExpectedCalls = nil
		te.Cmd.On("Start", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("no shell"))

		_, err := parseFlags(t, "-launch", "xterm").
			Action(context.Background(), &bytes.Buffer{}, mocks.NewMockAPIClient(), te.Env)
		require.Error(t, err)
	})
}

func TestAction_Autostart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		setup   func(te *helpers.TestEnv)
		wantErr error
		name    string
		value   string
		wantOut string
	}{
		{
			name:  "status enabled",
			value: "status",
			setup: func(te *helpers.TestEnv) {
				te.Autostart.On("IsEnabled").Return(true, nil)
			},
			wantOut: "enabled\n",
		},
		{
			name:  "status disabled",
			value: "status",
			setup: func(te *helpers.TestEnv) {
				te.Autostart.On("IsEnabled").Return(false, nil)
			},
			wantOut: "disabled\n",
		},
		{
			name:  "on",
			value: "on",
			setup: func(te *helpers.TestEnv) {
				te.Autostart.On("SetEnabled", true).Return(nil).Once()
			},
		},
		{
			name:  "off uppercase",
			value: "OFF",
			setup: func(te *helpers.TestEnv) {
				te.Autostart.On("SetEnabled", false).Return(nil).Once()
			},
		},
		{
			name:  "update failure",
			value: "on",
			setup: func(te *helpers.TestEnv) {
				te.Autostart.On("SetEnabled", true).Return(errors.New("access denied")).Once()
			},
			wantErr: ErrAutostartFailed,
		},
		{
			name:    "bad value",
			value:   "maybe",
			setup:   func(*helpers.TestEnv) {},
			wantErr: ErrAutostartValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			te := helpers.NewTestEnv(t)
			tt.setup(te)

			var out bytes.Buffer
			handled, err := parseFlags(t, "-autostart", tt.value).
				Action(context.Background(), &out, mocks.NewMockAPIClient(), te.Env)
			assert.True(t, handled)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, out.String())
			te.Autostart.AssertExpectations(t)
		})
	}
}

func TestAction_API(t *testing.T) {
	t.Parallel()

	te := helpers.NewTestEnv(t)

	var lc net.ListenConfig
	ln, err := lc.Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defaults := config.BaseDefaults
	defaults.API.Port = ln.Addr().(*net.TCPAddr).Port
	cfg, err := config.NewConfig(t.TempDir(), defaults)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	server := api.NewServer(te.Env, api.NewMethodMap(), nil)
	go func() {
		served <- server.Serve(ctx, ln, make(chan models.Notification))
	}()
	t.Cleanup(func() {
		cancel()
		<-served
	})

	var out bytes.Buffer
	handled, err := parseFlags(t, "-api", models.MethodVersion).Action(ctx, &out, client.NewLocalAPIClient(cfg), te.Env)
	require.NoError(t, err)
	assert.True(t, handled)
	assert.JSONEq(t, `{"version":"`+config.AppVersion+`","platform":"mock-platform"}`, out.String())

	out.Reset()
	_, err = parseFlags(t, "-api", models.MethodAppsLaunch+`:{}`).Action(ctx, &out, client.NewLocalAPIClient(cfg), te.Env)
	require.Error(t, err)
}

func TestAction_APIMocked(t *testing.T) {
	t.Parallel()

	t.Run("splits method and params", func(t *testing.T) {
		t.Parallel()

		te := helpers.NewTestEnv(t)
		apiClient := mocks.NewMockAPIClient()
		apiClient.On("Call", mock.Anything, models.MethodAutostartUpdate, `{"enabled":true}`).
			Return("true", nil).Once()

		var out bytes.Buffer
		handled, err := parseFlags(t, "-api", models.MethodAutostartUpdate+`:{"enabled":true}`).
			Action(context.Background(), &out, apiClient, te.Env)
		require.NoError(t, err)
		assert.True(t, handled)
		assert.Equal(t, "true\n", out.String())
		apiClient.AssertExpectations(t)
	})

	t.Run("service not running", func(t *testing.T) {
		t.Parallel()

		te := helpers.NewTestEnv(t)
		apiClient := mocks.NewMockAPIClient()
		apiClient.SetupCallError(models.MethodVersion, errors.New("connection refused"))

		_, err := parseFlags(t, "-api", models.MethodVersion).
			Action(context.Background(), &bytes.Buffer{}, apiClient, te.Env)
		require.ErrorContains(t, err, "connection refused")
	})

	t.Run("empty value", func(t *testing.T) {
		t.Parallel()

		te := helpers.NewTestEnv(t)
		apiClient := mocks.NewMockAPIClient()
		handled, err := parseFlags(t, "-api", "").Action(context.Background(), &bytes.Buffer{}, apiClient, te.Env)
		assert.True(t, handled)
		require.ErrorIs(t, err, ErrFlagValue)
		apiClient.AssertNotCalled(t, "Call")
	})
}

func TestVersionString(t *testing.T) {
	t.Parallel()

	te := helpers.NewTestEnv(t)
	assert.Equal(t, "FidgetApps v"+config.AppVersion+" (mock-platform)", VersionString(te.Platform))
}
