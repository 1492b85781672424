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

package requests

import (
	"context"
	"encoding/json"

	"github.com/FidgetApps/fidgetapps-core/pkg/api/models"
	"github.com/FidgetApps/fidgetapps-core/pkg/appsconfig"
	"github.com/FidgetApps/fidgetapps-core/pkg/autostart"
	"github.com/FidgetApps/fidgetapps-core/pkg/config"
	"github.com/FidgetApps/fidgetapps-core/pkg/desktopentry"
	"github.com/FidgetApps/fidgetapps-core/pkg/launcher"
	"github.com/FidgetApps/fidgetapps-core/pkg/platforms"
)

type RequestEnv struct {
	Context   context.Context
	Platform  platforms.Platform
	Config    *config.Instance
	Store     *appsconfig.Store
	Scanner   *desktopentry.Scanner
	Launcher  *launcher.Launcher
	Autostart *autostart.Toggle
	Params    json.RawMessage
	ID        models.RPCID
}
