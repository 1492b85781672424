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

// Package shell starts the graphical launcher shell as a child process.
//
// The webview backend of the shell is configured through environment
// variables. They are passed to the child only and never set on this
// process.
package shell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/FidgetApps/fidgetapps-core/pkg/config"
	"github.com/FidgetApps/fidgetapps-core/pkg/helpers/command"
	"github.com/rs/zerolog/log"
)

const (
	EnvGDKBackend         = "GDK_BACKEND"
	EnvDisableCompositing = "WEBKIT_DISABLE_COMPOSITING_MODE"
	EnvAPIPort            = "FIDGETAPPS_API_PORT"
)

var ErrNoUICommand = errors.New("no UI command configured")

type RenderOptions struct {
	GDKBackend         string
	DisableCompositing bool
}

func RenderOptionsFromConfig(r config.Render) RenderOptions {
	return RenderOptions{
		GDKBackend:         r.GDKBackend,
		DisableCompositing: r.DisableCompositing,
	}
}

// Env returns the render settings as KEY=VALUE pairs.
func (o RenderOptions) Env() []string {
	env := make([]string, 0, 2)
	if o.GDKBackend != "" {
		env = append(env, EnvGDKBackend+"="+o.GDKBackend)
	}
	if o.DisableCompositing {
		env = append(env, EnvDisableCompositing+"=1")
	}
	return env
}

// Start runs the UI shell. uiCommand is a program path optionally followed
// by space separated arguments. The API port is passed so the shell can
// connect back.
func Start(
	ctx context.Context,
	exec command.Executor,
	uiCommand string,
	opts RenderOptions,
	apiPort int,
) error {
	fields := strings.Fields(uiCommand)
	if len(fields) == 0 {
		return ErrNoUICommand
	}

	env := append(opts.Env(), fmt.Sprintf("%s=%d", EnvAPIPort, apiPort))
	log.Info().Str("command", uiCommand).Strs("env", env).Msg("starting UI shell")

	err := exec.Start(ctx, command.StartOptions{Env: env}, fields[0], fields[1:]...)
	if err != nil {
		return fmt.Errorf("failed to start UI shell: %w", err)
	}
	return nil
}
