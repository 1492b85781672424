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

package config

import "time"

var AppVersion = "DEVELOPMENT"

const (
	AppName            = "fidgetapps"
	AppID              = "com.fidgetapps.launcher"
	AppDisplayName     = "FidgetApps"
	LogFile            = "core.log"
	LogsDir            = "logs"
	CfgFile            = "config.toml"
	AppsCfgFile        = "fidgetapps_config.json"
	DefaultAPIPort     = 7587
	APIRequestTimeout  = 30 * time.Second
	DefaultDesktopDir  = "/usr/share/applications"
	DefaultDesktopGlob = "*.desktop"
)
