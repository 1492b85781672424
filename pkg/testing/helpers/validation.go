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
	"encoding/json"
	"testing"

	"github.com/FidgetApps/fidgetapps-core/pkg/desktopentry"
	"github.com/stretchr/testify/require"
)

// AssertValidSystemApps checks that payload is the JSON array the UI
// expects from a system apps scan and returns the decoded apps. Characters
// like & must be written as-is, not as \u0026 escapes.
func AssertValidSystemApps(t *testing.T, payload string) []desktopentry.App {
	t.Helper()

	require.True(t, json.Valid([]byte(payload)), "system apps payload must be valid JSON: %q", payload)
	require.NotContains(t, payload, `\u0026`, "system apps payload must not be HTML escaped")
	require.NotContains(t, payload, `\u003c`, "system apps payload must not be HTML escaped")

	var apps []desktopentry.App
	require.NoError(t, json.Unmarshal([]byte(payload), &apps), "system apps payload must be an array")
	require.NotNil(t, apps, "system apps payload must be an array, not null")
	return apps
}
