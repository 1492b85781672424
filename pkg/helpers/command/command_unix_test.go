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

//go:build !windows

package command

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealExecutor_Start(t *testing.T) {
	t.Parallel()

	executor := &RealExecutor{}

	t.Run("starts_command_without_waiting", func(t *testing.T) {
		t.Parallel()

		err := executor.Start(context.Background(), StartOptions{}, "true")

		assert.NoError(t, err)
	})

	t.Run("starts_detached_command", func(t *testing.T) {
		t.Parallel()

		err := executor.Start(context.Background(), StartOptions{Detach: true}, "true")

		assert.NoError(t, err)
	})

	t.Run("returns_error_for_nonexistent_command", func(t *testing.T) {
		t.Parallel()

		err := executor.Start(
			context.Background(),
			StartOptions{Detach: true},
			"nonexistent_command_that_should_not_exist_12345",
		)

		require.Error(t, err)
	})
}

func TestRealExecutor_StartPassesEnv(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "env.txt")
	executor := &RealExecutor{}

	err := executor.Start(
		context.Background(),
		StartOptions{Env: []string{"FIDGET_TEST_VALUE=hello"}},
		"sh", "-c", `printf '%s' "$FIDGET_TEST_VALUE" > "$0"`, out,
	)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(out) //nolint:gosec // test file
		return err == nil && strings.TrimSpace(string(data)) == "hello"
	}, 5*time.Second, 20*time.Millisecond)
}

func TestRealExecutor_DetachedOutlivesContext(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "done.txt")
	executor := &RealExecutor{}

	ctx, cancel := context.WithCancel(context.Background())
	err := executor.Start(
		ctx,
		StartOptions{Detach: true},
		"sh", "-c", `sleep 0.2; touch "$0"`, out,
	)
	require.NoError(t, err)
	cancel()

	require.Eventually(t, func() bool {
		_, err := os.Stat(out)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
}

func TestExecutor_Interface(t *testing.T) {
	t.Parallel()

	var _ Executor = (*RealExecutor)(nil)
}
