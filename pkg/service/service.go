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

// Package service wires the launcher components together and runs the API
// server and config watcher for the lifetime of the process.
package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"runtime"

	"github.com/FidgetApps/fidgetapps-core/pkg/api"
	"github.com/FidgetApps/fidgetapps-core/pkg/api/models"
	"github.com/FidgetApps/fidgetapps-core/pkg/api/models/requests"
	"github.com/FidgetApps/fidgetapps-core/pkg/api/notifications"
	"github.com/FidgetApps/fidgetapps-core/pkg/appsconfig"
	"github.com/FidgetApps/fidgetapps-core/pkg/autostart"
	"github.com/FidgetApps/fidgetapps-core/pkg/config"
	"github.com/FidgetApps/fidgetapps-core/pkg/desktopentry"
	"github.com/FidgetApps/fidgetapps-core/pkg/helpers/command"
	"github.com/FidgetApps/fidgetapps-core/pkg/launcher"
	"github.com/FidgetApps/fidgetapps-core/pkg/platforms"
	"github.com/FidgetApps/fidgetapps-core/pkg/service/configwatch"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

func setupEnvironment(pl platforms.Platform) error {
	log.Info().Msg("creating platform directories")
	settings := pl.Settings()
	for _, dir := range []string{settings.ConfigDir, settings.DataDir, settings.LogDir} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// NewEnv builds the components behind the API methods on the real
// filesystem. The CLI uses it directly for one-shot commands.
func NewEnv(pl platforms.Platform, cfg *config.Instance, exec command.Executor) requests.RequestEnv {
	fs := afero.NewOsFs()
	apps := cfg.Apps()

	var manager autostart.Manager
	entry, err := platforms.AutostartEntry()
	if err != nil {
		log.Warn().Err(err).Msg("autostart unavailable")
	} else {
		manager = pl.Autostart(entry)
	}

	return requests.RequestEnv{
		Context:   context.Background(),
		Platform:  pl,
		Config:    cfg,
		Store:     appsconfig.NewStore(fs, pl.Settings().ConfigDir),
		Scanner:   desktopentry.NewScanner(fs, apps.DesktopDir, apps.DesktopGlob),
		Launcher:  launcher.New(exec, runtime.GOOS, apps.LaunchHelper),
		Autostart: autostart.NewToggle(manager),
	}
}

// Start runs the service in the background. stop shuts it down and waits
// for cleanup; done is closed once the service has exited for any reason.
func Start(
	pl platforms.Platform,
	cfg *config.Instance,
) (stop func() error, done <-chan struct{}, err error) {
	log.Info().Msgf("version: %s", config.AppVersion)

	if err := setupEnvironment(pl); err != nil {
		log.Error().Err(err).Msg("error setting up environment")
		return nil, nil, err
	}

	env := NewEnv(pl, cfg, &command.RealExecutor{})
	ns := make(chan models.Notification, notifications.BufferSize)

	log.Info().Msg("starting apps config watcher")
	watcher := configwatch.New(env.Store.Path(), nil, configwatch.DefaultDebounce, func(path string) {
		notifications.AppsConfigChanged(ns, path)
	})
	if watchErr := watcher.Start(); watchErr != nil {
		log.Warn().Err(watchErr).Msg("apps config watcher failed to start (continuing without it)")
	}

	addr := api.ListenAddr(cfg)
	var lc net.ListenConfig
	ln, err := lc.Listen(context.Background(), "tcp", addr)
	if err != nil {
		watcher.Stop()
		return nil, nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	env.Context = ctx
	server := api.NewServer(env, api.NewMethodMap(), nil)

	log.Info().Msg("starting API service")
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Serve(gctx, ln, ns)
	})
	g.Go(func() error {
		<-gctx.Done()
		watcher.Stop()
		return nil
	})

	var runErr error
	doneCh := make(chan struct{})
	go func() {
		runErr = g.Wait()
		if runErr != nil && !errors.Is(runErr, context.Canceled) {
			log.Error().Err(runErr).Msg("service exited with error")
		}
		log.Info().Msg("service cleanup completed")
		close(doneCh)
	}()

	stop = func() error {
		cancel()
		<-doneCh
		return runErr
	}
	return stop, doneCh, nil
}
