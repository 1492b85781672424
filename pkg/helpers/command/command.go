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

// Package command wraps process spawning behind an interface so launch code
// can be tested without starting real processes.
package command

import (
	"context"
	"os"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// StartOptions configures how a process is spawned.
type StartOptions struct {
	// Env is appended to the current process environment for the child only.
	Env []string
	// Detach starts the child in its own session (Unix) or process group
	// (Windows) and does not tie it to ctx, so it outlives the caller.
	Detach bool
	// NoConsole stops a console window from being created for the child.
	// Ignored outside Windows.
	NoConsole bool
}

// Executor starts external processes.
type Executor interface {
	// Start spawns a process and returns once it has started. The child is
	// reaped in the background; its exit status is not reported.
	Start(ctx context.Context, opts StartOptions, name string, args ...string) error
}

// RealExecutor spawns real processes with os/exec.
type RealExecutor struct{}

func (*RealExecutor) Start(ctx context.Context, opts StartOptions, name string, args ...string) error {
	var cmd *exec.Cmd
	if opts.Detach {
		cmd = exec.Command(name, args...) //nolint:noctx // detached children must outlive ctx
	} else {
		cmd = exec.CommandContext(ctx, name, args...)
	}

	if len(opts.Env) > 0 {
		cmd.Env = append(os.Environ(), opts.Env...)
	}
	applyOptions(cmd, opts)

	if err := cmd.Start(); err != nil {
		return err //nolint:wrapcheck // callers add context
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			log.Debug().Err(err).Str("name", name).Msg("child process exited")
		}
	}()

	return nil
}
