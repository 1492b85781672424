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

package methods

import (
	"errors"
	"fmt"

	"github.com/FidgetApps/fidgetapps-core/pkg/api/models"
	"github.com/FidgetApps/fidgetapps-core/pkg/api/models/requests"
	"github.com/FidgetApps/fidgetapps-core/pkg/api/validation"
	"github.com/FidgetApps/fidgetapps-core/pkg/appsconfig"
	"github.com/rs/zerolog/log"
)

// HandleAppsConfig returns the stored tile list exactly as it is on disk.
func HandleAppsConfig(env requests.RequestEnv) (any, error) { //nolint:gocritic // single-use parameter in API handler
	log.Info().Msg("received apps config request")

	payload, err := env.Store.Get()
	if err != nil {
		log.Error().Err(err).Msg("error reading apps config")
		return nil, errors.New("error reading apps config")
	}
	return payload, nil
}

//nolint:gocritic // single-use parameter in API handler
func HandleAppsConfigSave(env requests.RequestEnv) (any, error) {
	log.Info().Msg("received apps config save request")

	var params models.SaveAppsConfigParams
	if err := validation.ValidateAndUnmarshal(env.Params, &params); err != nil {
		return nil, err
	}

	if err := env.Store.Save(*params.Config); err != nil {
		log.Error().Err(err).Msg("error saving apps config")
		return nil, errors.New("error saving apps config")
	}
	return nil, nil
}

// HandleAppsLaunch starts a command without waiting for it. A command that
// fails to spawn is logged and still reported as success.
func HandleAppsLaunch(env requests.RequestEnv) (any, error) { //nolint:gocritic // single-use parameter in API handler
	var params models.LaunchAppParams
	if err := validation.ValidateAndUnmarshal(env.Params, &params); err != nil {
		return nil, err
	}

	cmdLine, err := resolveLaunchCommand(env, params)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", cmdLine).Msg("received launch request")
	env.Launcher.Launch(env.Context, cmdLine)
	return nil, nil
}

//nolint:gocritic // single-use parameter in API handler
func resolveLaunchCommand(env requests.RequestEnv, params models.LaunchAppParams) (string, error) {
	if params.Command != nil {
		return *params.Command, nil
	}

	payload, err := env.Store.Get()
	if err != nil {
		return "", fmt.Errorf("error reading apps config: %w", err)
	}
	tiles, err := appsconfig.ParseTiles(payload)
	if err != nil {
		return "", err
	}
	tile, err := appsconfig.FindTile(tiles, *params.ID)
	if err != nil {
		return "", err
	}
	return tile.Command, nil
}

// HandleAppsSystem lists applications installed on the host as a JSON
// string. Scan failures give an empty list.
func HandleAppsSystem(env requests.RequestEnv) (any, error) { //nolint:gocritic // single-use parameter in API handler
	log.Info().Msg("received system apps request")
	return env.Scanner.ListSystemApps(), nil
}
