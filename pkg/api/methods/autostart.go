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
	"github.com/FidgetApps/fidgetapps-core/pkg/api/models"
	"github.com/FidgetApps/fidgetapps-core/pkg/api/models/requests"
	"github.com/FidgetApps/fidgetapps-core/pkg/api/validation"
	"github.com/rs/zerolog/log"
)

func HandleAutostart(env requests.RequestEnv) (any, error) { //nolint:gocritic // single-use parameter in API handler
	log.Info().Msg("received autostart request")
	return env.Autostart.IsAutostartEnabled(), nil
}

// HandleAutostartUpdate returns whether the change was applied, not the
// resulting state.
//
//nolint:gocritic // single-use parameter in API handler
func HandleAutostartUpdate(env requests.RequestEnv) (any, error) {
	var params models.UpdateAutostartParams
	if err := validation.ValidateAndUnmarshal(env.Params, &params); err != nil {
		return nil, err
	}

	log.Info().Bool("enabled", *params.Enabled).Msg("received autostart update request")
	return env.Autostart.SetAutostartEnabled(*params.Enabled), nil
}
