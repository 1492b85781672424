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

// Package launcher starts app tile commands. Commands are shell command
// lines, not argv lists: the whole string is handed to the platform shell,
// so pipes, ; and && keep their shell meaning.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/FidgetApps/fidgetapps-core/pkg/helpers/command"
	"github.com/rs/zerolog/log"
)

var ErrEmptyCommand = errors.New("empty command")

// ShellCommand returns the program and arguments that run cmdLine through
// the shell of goos. On Linux an optional helper script takes the place of
// "-c" and receives the command line as its first argument.
func ShellCommand(goos, cmdLine, helper string) (string, []string) {
	switch {
	case goos == "windows":
		return "cmd", []string{"/C", cmdLine}
	case goos == "linux" && helper != "":
		return "sh", []string{helper, cmdLine}
	default:
		return "sh", []string{"-c", cmdLine}
	}
}

type Launcher struct {
	exec   command.Executor
	goos   string
	helper string
}

func New(exec command.Executor, goos, helper string) *Launcher {
	return &Launcher{
		exec:   exec,
		goos:   goos,
		helper: helper,
	}
}

// Launch starts cmdLine and returns without waiting. Nothing is reported
// back: a failed spawn is only logged.
func (l *Launcher) Launch(ctx context.Context, cmdLine string) {
	if err := l.Start(ctx, cmdLine); err != nil {
		log.Warn().Err(err).Msg("launch failed")
	}
}

// Start is Launch with the spawn error returned.
func (l *Launcher) Start(ctx context.Context, cmdLine string) error {
	if strings.TrimSpace(cmdLine) == "" {
		return ErrEmptyCommand
	}

	name, args := ShellCommand(l.goos, cmdLine, l.helper)
	log.Info().Str("command", cmdLine).Str("shell", name).Msg("launching application")

	err := l.exec.Start(ctx, command.StartOptions{
		Detach:    true,
		NoConsole: true,
	}, name, args...)
	if err != nil {
		return fmt.Errorf("failed to start %q: %w", cmdLine, err)
	}

	return nil
}
