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

package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/FidgetApps/fidgetapps-core/pkg/api/methods"
	"github.com/FidgetApps/fidgetapps-core/pkg/api/models"
	"github.com/FidgetApps/fidgetapps-core/pkg/api/models/requests"
	"github.com/FidgetApps/fidgetapps-core/pkg/helpers/syncutil"
)

type Method func(requests.RequestEnv) (any, error)

var (
	ErrMethodExists    = errors.New("method already exists")
	ErrEmptyMethodName = errors.New("method name is empty")
)

// MethodMap holds the JSON-RPC handlers. Names are case insensitive.
type MethodMap struct {
	methods map[string]Method
	mu      syncutil.RWMutex
}

// NewMethodMap returns a MethodMap with every built-in method registered.
func NewMethodMap() *MethodMap {
	m := &MethodMap{methods: make(map[string]Method)}
	defaults := map[string]Method{
		// apps
		models.MethodAppsConfig:     methods.HandleAppsConfig,
		models.MethodAppsConfigSave: methods.HandleAppsConfigSave,
		models.MethodAppsLaunch:     methods.HandleAppsLaunch,
		models.MethodAppsSystem:     methods.HandleAppsSystem,
		// autostart
		models.MethodAutostart:       methods.HandleAutostart,
		models.MethodAutostartUpdate: methods.HandleAutostartUpdate,
		// utils
		models.MethodVersion: methods.HandleVersion,
	}
	for name, fn := range defaults {
		m.methods[name] = fn
	}
	return m
}

func (m *MethodMap) AddMethod(name string, fn Method) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ErrEmptyMethodName
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.methods[name]; ok {
		return fmt.Errorf("%w: %s", ErrMethodExists, name)
	}
	m.methods[name] = fn
	return nil
}

func (m *MethodMap) GetMethod(name string) (Method, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	fn, ok := m.methods[strings.ToLower(name)]
	return fn, ok
}

// Names lists the registered methods, unordered.
func (m *MethodMap) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.methods))
	for name := range m.methods {
		names = append(names, name)
	}
	return names
}
