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

package telemetry

import (
	"testing"

	"github.com/FidgetApps/fidgetapps-core/pkg/config"
	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no username in path",
			input:    "/usr/share/applications/firefox.desktop",
			expected: "/usr/share/applications/firefox.desktop",
		},
		{
			name:     "linux home path",
			input:    "/home/sam/.config/fidgetapps/fidgetapps_config.json",
			expected: "/home/<user>/.config/fidgetapps/fidgetapps_config.json",
		},
		{
			name:     "macos users path",
			input:    "/Users/sam/Library/LaunchAgents/com.fidgetapps.launcher.plist",
			expected: "/Users/<user>/Library/LaunchAgents/com.fidgetapps.launcher.plist",
		},
		{
			name:     "windows path lowercase drive",
			input:    "c:\\Users\\JohnDoe\\AppData\\Roaming\\FidgetApps",
			expected: "C:\\Users\\<user>\\AppData\\Roaming\\FidgetApps",
		},
		{
			name:     "multiple paths in message",
			input:    "copying /home/alice/src to /home/bob/dst",
			expected: "copying /home/<user>/src to /home/<user>/dst",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizePath(tt.input))
		})
	}
}

func TestSanitizeEvent(t *testing.T) {
	t.Parallel()

	event := &sentry.Event{
		ServerName: "sams-laptop",
		Message:    "failed to read /home/sam/.config/fidgetapps/fidgetapps_config.json",
		Extra:      map[string]any{"path": "/Users/sam/x", "count": 2},
		Exception: []sentry.Exception{{
			Value: "open /home/sam/y: permission denied",
			Stacktrace: &sentry.Stacktrace{Frames: []sentry.Frame{{
				AbsPath:  "/home/sam/src/fidgetapps-core/pkg/launcher/launcher.go",
				Filename: "launcher.go",
			}}},
		}},
	}

	got := sanitizeEvent(event)
	assert.Empty(t, got.ServerName)
	assert.Equal(t, "failed to read /home/<user>/.config/fidgetapps/fidgetapps_config.json", got.Message)
	assert.Equal(t, "/Users/<user>/x", got.Extra["path"])
	assert.Equal(t, 2, got.Extra["count"])
	assert.Equal(t, "open /home/<user>/y: permission denied", got.Exception[0].Value)
	assert.Equal(t,
		"/home/<user>/src/fidgetapps-core/pkg/launcher/launcher.go",
		got.Exception[0].Stacktrace.Frames[0].AbsPath)
}

func TestInitDisabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts config.ErrorReporting
	}{
		{name: "not enabled", opts: config.ErrorReporting{DSN: "https://key@example.com/1"}},
		{name: "no dsn", opts: config.ErrorReporting{Enabled: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.NoError(t, Init(tt.opts, "1.0.0", "linux"))
			assert.False(t, Enabled())
		})
	}
}

func TestCloseAndFlushWhenDisabled(t *testing.T) {
	t.Parallel()

	Flush()
	Close()
	assert.False(t, Enabled())
}
