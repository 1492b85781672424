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

package shell

import (
	"context"
	"errors"
	"testing"

	"github.com/FidgetApps/fidgetapps-core/pkg/config"
	"github.com/FidgetApps/fidgetapps-core/pkg/helpers/command"
	"github.com/FidgetApps/fidgetapps-core/pkg/testing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRenderOptions_Env(t *testing.T) {
	t.Parallel()

	opts := RenderOptionsFromConfig(config.BaseDefaults.Render)
	assert.Equal(t, []string{
		"GDK_BACKEND=x11",
		"WEBKIT_DISABLE_COMPOSITING_MODE=1",
	}, opts.Env())

	assert.Empty(t, RenderOptions{}.Env())
	assert.Equal(t, []string{"GDK_BACKEND=wayland"}, RenderOptions{GDKBackend: "wayland"}.Env())
}

func TestStart(t *testing.T) {
	t.Parallel()

	mockCmd := &mocks.MockCommandExecutor{}
	mockCmd.On(
		"Start",
		mock.Anything,
		command.StartOptions{Env: []string{
			"GDK_BACKEND=x11",
			"WEBKIT_DISABLE_COMPOSITING_MODE=1",
			"FIDGETAPPS_API_PORT=7587",
		}},
		"/opt/fidgetapps/ui",
		[]string{"--fullscreen"},
	).Return(nil).Once()

	opts := RenderOptions{GDKBackend: "x11", DisableCompositing: true}
	err := Start(context.Background(), mockCmd, "/opt/fidgetapps/ui --fullscreen", opts, 7587)
	require.NoError(t, err)
	mockCmd.AssertExpectations(t)
}

func TestStart_Errors(t *testing.T) {
	t.Parallel()

	mockCmd := &mocks.MockCommandExecutor{}
	require.ErrorIs(t, Start(context.Background(), mockCmd, "  ", RenderOptions{}, 1), ErrNoUICommand)
	mockCmd.AssertNotCalled(t, "Start")

	mockCmd.On("Start", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("not found"))
	require.Error(t, Start(context.Background(), mockCmd, "missing-ui", RenderOptions{}, 1))
}
