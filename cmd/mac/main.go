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

//go:build darwin

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/FidgetApps/fidgetapps-core/internal/telemetry"
	"github.com/FidgetApps/fidgetapps-core/pkg/cli"
	"github.com/FidgetApps/fidgetapps-core/pkg/config"
	"github.com/FidgetApps/fidgetapps-core/pkg/platforms/mac"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	pl := &mac.Platform{}
	flags := cli.SetupFlags(flag.CommandLine)

	if err := flags.Pre(pl, os.Args[1:]); err != nil {
		return err
	}

	var logWriters []io.Writer
	if *flags.Daemon {
		logWriters = []io.Writer{os.Stderr}
	}

	cfg, err := cli.Setup(pl, config.BaseDefaults, logWriters)
	if err != nil {
		return err
	}
	defer telemetry.Close()

	defer func() {
		if err := recover(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Panic: %s\n", err)
			log.Fatal().Msgf("panic: %v", err)
		}
	}()

	flags.Post(cfg, pl)

	return flags.Serve(cfg, pl)
}
