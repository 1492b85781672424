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
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/FidgetApps/fidgetapps-core/internal/telemetry"
	"github.com/FidgetApps/fidgetapps-core/pkg/api/client"
	"github.com/FidgetApps/fidgetapps-core/pkg/api/models/requests"
	"github.com/FidgetApps/fidgetapps-core/pkg/appsconfig"
	"github.com/FidgetApps/fidgetapps-core/pkg/config"
	"github.com/FidgetApps/fidgetapps-core/pkg/helpers"
	"github.com/FidgetApps/fidgetapps-core/pkg/helpers/command"
	"github.com/FidgetApps/fidgetapps-core/pkg/platforms"
	"github.com/FidgetApps/fidgetapps-core/pkg/service"
	"github.com/rs/zerolog/log"
)

var (
	ErrFlagValue       = errors.New("flag requires a value")
	ErrAutostartValue  = errors.New("autostart must be one of: on, off, status")
	ErrAutostartFailed = errors.New("failed to update autostart")
)

type Flags struct {
	set        *flag.FlagSet
	Version    *bool
	Apps       *bool
	SystemApps *bool
	Launch     *string
	Autostart  *string
	API        *string
	Daemon     *bool
	UI         *bool
}

// SetupFlags defines all common CLI flags between platforms on fs. Pass
// flag.CommandLine from main.
func SetupFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		set: fs,
		Version: fs.Bool(
			"version",
			false,
			"print version and exit",
		),
		Apps: fs.Bool(
			"apps",
			false,
			"list configured tiles and exit",
		),
		SystemApps: fs.Bool(
			"system-apps",
			false,
			"print installed applications as JSON and exit",
		),
		Launch: fs.String(
			"launch",
			"",
			"run a command through the system shell and exit",
		),
		Autostart: fs.String(
			"autostart",
			"",
			"start at login: on, off or status",
		),
		API: fs.String(
			"api",
			"",
			"send method:params to the running service and print the response",
		),
		Daemon: fs.Bool(
			"daemon",
			false,
			"run the service in the foreground and log to stderr",
		),
		UI: fs.Bool(
			"ui",
			false,
			"start the configured UI shell once the service is running",
		),
	}
}

func (f *Flags) isFlagPassed(name string) bool {
	found := false
	f.set.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			found = true
		}
	})
	return found
}

// VersionString is the text printed by -version.
func VersionString(pl platforms.Platform) string {
	return fmt.Sprintf("%s v%s (%s)", config.AppDisplayName, config.AppVersion, pl.ID())
}

// Pre parses args and actions any flags that don't require environment
// setup. Add any custom flags before running this.
func (f *Flags) Pre(pl platforms.Platform, args []string) error {
	if err := f.set.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	if *f.Version {
		_, _ = fmt.Println(VersionString(pl))
		os.Exit(0)
	}
	return nil
}

// Post actions the one-shot flags that need a config and logging. It exits
// the process when one was given and returns otherwise.
func (f *Flags) Post(cfg *config.Instance, pl platforms.Platform) {
	env := service.NewEnv(pl, cfg, &command.RealExecutor{})
	handled, err := f.Action(context.Background(), os.Stdout, client.NewLocalAPIClient(cfg), env)
	if !handled {
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("command failed")
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		telemetry.Flush()
		os.Exit(1)
	}
	os.Exit(0)
}

// Action runs the one-shot command selected by the flags and writes its
// output to out. -api calls go through api; everything else runs locally
// against env. handled is false when no such flag was given.
//
//nolint:gocritic // single-use parameter
func (f *Flags) Action(
	ctx context.Context,
	out io.Writer,
	api client.APIClient,
	env requests.RequestEnv,
) (handled bool, err error) {
	switch {
	case *f.Apps:
		return true, printTiles(out, env)
	case *f.SystemApps:
		_, _ = fmt.Fprintln(out, env.Scanner.ListSystemApps())
		return true, nil
	case f.isFlagPassed("launch"):
		if strings.TrimSpace(*f.Launch) == "" {
			return true, fmt.Errorf("launch: %w", ErrFlagValue)
		}
		if err := env.Launcher.Start(ctx, *f.Launch); err != nil {
			return true, fmt.Errorf("failed to launch: %w", err)
		}
		return true, nil
	case f.isFlagPassed("autostart"):
		return true, autostartFlag(out, env, *f.Autostart)
	case f.isFlagPassed("api"):
		if *f.API == "" {
			return true, fmt.Errorf("api: %w", ErrFlagValue)
		}

		method, params, _ := strings.Cut(*f.API, ":")
		resp, err := api.Call(ctx, method, params)
		if err != nil {
			return true, fmt.Errorf("error calling API: %w", err)
		}
		_, _ = fmt.Fprintln(out, resp)
		return true, nil
	}
	return false, nil
}

//nolint:gocritic // single-use parameter
func printTiles(out io.Writer, env requests.RequestEnv) error {
	payload, err := env.Store.Get()
	if err != nil {
		return fmt.Errorf("failed to read apps config: %w", err)
	}
	tiles, err := appsconfig.ParseTiles(payload)
	if err != nil {
		return err
	}
	for _, t := range tiles {
		_, _ = fmt.Fprintf(out, "%d\t%s\t%s\n", t.ID, t.Name, t.Command)
	}
	return nil
}

//nolint:gocritic // single-use parameter
func autostartFlag(out io.Writer, env requests.RequestEnv, value string) error {
	var enabled bool
	switch strings.ToLower(value) {
	case "status":
		state := "disabled"
		if env.Autostart.IsAutostartEnabled() {
			state = "enabled"
		}
		_, _ = fmt.Fprintln(out, state)
		return nil
	case "on":
		enabled = true
	case "off":
		enabled = false
	default:
		return ErrAutostartValue
	}

	if !env.Autostart.SetAutostartEnabled(enabled) {
		return ErrAutostartFailed
	}
	return nil
}

// Setup initializes the user config and logging. Returns a user config object.
//
//nolint:gocritic // config struct copied for immutability
func Setup(
	pl platforms.Platform,
	defaultConfig config.Values,
	writers []io.Writer,
) (*config.Instance, error) {
	if err := helpers.EnsureDirectories(pl); err != nil {
		return nil, fmt.Errorf("error creating directories: %w", err)
	}

	if err := helpers.InitLogging(pl, writers); err != nil {
		return nil, fmt.Errorf("error initializing logging: %w", err)
	}

	cfg, err := config.NewConfig(pl.Settings().ConfigDir, defaultConfig)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	helpers.SetLogLevel(cfg.DebugLogging())

	if err := telemetry.Init(cfg.ErrorReporting(), config.AppVersion, pl.ID()); err != nil {
		log.Warn().Err(err).Msg("failed to initialize error reporting")
	}

	return cfg, nil
}
