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

package appsconfig

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrTileNotFound = errors.New("tile not found")

// Tile is the shape of a single entry as written by the UI. It is only used
// for read-only lookups; Get and Save never decode the payload.
type Tile struct {
	Name           string `json:"name"`
	Icon           string `json:"icon"`
	Color          string `json:"color"`
	IconColor      string `json:"iconColor"`
	Command        string `json:"command"`
	CustomIconData string `json:"customIconData,omitempty"`
	ID             int    `json:"id"`
	IsCustomIcon   bool   `json:"isCustomIcon,omitempty"`
}

// ParseTiles decodes a stored payload into tiles.
func ParseTiles(payload string) ([]Tile, error) {
	var tiles []Tile
	if err := json.Unmarshal([]byte(payload), &tiles); err != nil {
		return nil, fmt.Errorf("failed to parse apps config: %w", err)
	}
	return tiles, nil
}

// FindTile returns the first tile with the given id.
func FindTile(tiles []Tile, id int) (Tile, error) {
	for _, t := range tiles {
		if t.ID == id {
			return t, nil
		}
	}
	return Tile{}, fmt.Errorf("%w: %d", ErrTileNotFound, id)
}
