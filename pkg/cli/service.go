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
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FidgetApps/fidgetapps-core/pkg/api/client"
	"github.com/FidgetApps/fidgetapps-core/pkg/api/models"
	"github.com/FidgetApps/fidgetapps-core/pkg/config"
	"github.com/FidgetApps/fidgetapps-core/pkg/helpers/command"
	"github.com/FidgetApps/fidgetapps-core/pkg/platforms"
	"github.com/FidgetApps/fidgetapps-core/pkg/service"
	"github.com/FidgetApps/fidgetapps-core/pkg/shell"
	"github.com/rs/zerolog/log"
)

const serviceCheckTimeout = 2 * time.Second

// IsServiceRunning reports whether a service already answers version
// calls made through api.
func IsServiceRunning(ctx context.Context, api client.APIClient) bool {
	ctx, cancel := context.WithTimeout(ctx, serviceCheckTimeout)
	defer cancel()

	_, err := api.Call(ctx, models.MethodVersion, "")
	if err != nil {
		log.Debug().Err(err).Msg("error checking if service running")
		return false
	}
	return true
}

// Serve starts the service unless another instance is already running,
// starts the UI shell when -ui was given, then blocks until the process
// is signalled or the service exits.
func (f *Flags) Serve(cfg *config.Instance, pl platforms.Platform) error {
	ctx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	var done <-chan struct{}
	if IsServiceRunning(ctx, client.NewLocalAPIClient(cfg)) {
		log.Info().Int("port", cfg.APIPort()).Msg("service already running")
		if !*f.UI {
			return nil
		}
	} else {
		stopSvc, svcDone, err := service.Start(pl, cfg)
		if err != nil {
			log.Error().Err(err).Msg("error starting service")
			return fmt.Errorf("error starting service: %w", err)
		}
		done = svcDone

		defer func() {
			if err := stopSvc(); err != nil {
				log.Error().Err(err).Msg("error stopping service")
			}
		}()
	}

	if *f.UI {
		err := shell.Start(
			ctx,
			&command.RealExecutor{},
			cfg.UICommand(),
			shell.RenderOptionsFromConfig(cfg.Render()),
			cfg.APIPort(),
		)
		switch {
		case errors.Is(err, shell.ErrNoUICommand):
			log.Warn().Msg("ui flag given but no ui.command is configured")
		case err != nil:
			return err
		}
		if done == nil {
			return nil
		}
	}

	if *f.Daemon {
		log.Info().Msg("started in daemon mode")
	}

	select {
	case <-ctx.Done():
		log.Info().Msg("received stop signal")
	case <-done:
		log.Info().Msg("service exited")
	}
	return nil
}
