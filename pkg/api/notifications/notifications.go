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

// Package notifications queues JSON-RPC notifications for broadcast to
// every connected API client.
package notifications

import (
	"encoding/json"

	"github.com/FidgetApps/fidgetapps-core/pkg/api/models"
	"github.com/rs/zerolog/log"
)

// BufferSize is the capacity used for the service notification channel.
const BufferSize = 32

func sendNotification(ns chan<- models.Notification, method string, payload any) {
	var params json.RawMessage
	if payload != nil {
		var err error
		params, err = json.Marshal(payload)
		if err != nil {
			log.Error().Err(err).Str("method", method).Msg("error marshalling notification params")
			return
		}
	}

	// never block the sender, clients can re-read state
	select {
	case ns <- models.Notification{Method: method, Params: params}:
	default:
		log.Warn().Str("method", method).Msg("notification channel full, dropping notification")
	}
}

type AppsConfigChangedParams struct {
	Path string `json:"path"`
}

// AppsConfigChanged tells clients the apps config file was modified by
// something other than the API.
func AppsConfigChanged(ns chan<- models.Notification, path string) {
	sendNotification(ns, models.NotificationAppsConfigChanged, AppsConfigChangedParams{Path: path})
}
