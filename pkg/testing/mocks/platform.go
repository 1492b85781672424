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

package mocks

import (
	"github.com/FidgetApps/fidgetapps-core/pkg/autostart"
	"github.com/FidgetApps/fidgetapps-core/pkg/platforms"
	"github.com/stretchr/testify/mock"
)

type MockPlatform struct {
	mock.Mock
}

func NewMockPlatform() *MockPlatform {
	return &MockPlatform{}
}

// SetupBasicMock stubs ID and Settings with values under dir.
func (m *MockPlatform) SetupBasicMock(dir string) {
	m.On("ID").Return("mock-platform").Maybe()
	m.On("Settings").Return(platforms.Settings{
		DataDir:   dir + "/data",
		ConfigDir: dir + "/config",
		LogDir:    dir + "/logs",
	}).Maybe()
}

func (m *MockPlatform) ID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockPlatform) Settings() platforms.Settings {
	args := m.Called()
	if s, ok := args.Get(0).(platforms.Settings); ok {
		return s
	}
	return platforms.Settings{}
}

func (m *MockPlatform) Autostart(entry autostart.Entry) autostart.Manager {
	args := m.Called(entry)
	if am, ok := args.Get(0).(autostart.Manager); ok {
		return am
	}
	return nil
}
