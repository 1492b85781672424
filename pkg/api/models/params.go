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

package models

type SaveAppsConfigParams struct {
	Config *string `json:"config" validate:"required"`
}

// LaunchAppParams takes either a raw shell command or the id of a tile in
// the stored apps config.
type LaunchAppParams struct {
	Command *string `json:"command" validate:"required_without=ID,excluded_with=ID"`
	ID      *int    `json:"id" validate:"required_without=Command"`
}

type UpdateAutostartParams struct {
	Enabled *bool `json:"enabled" validate:"required"`
}
