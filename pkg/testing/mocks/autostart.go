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
	"fmt"

	"github.com/stretchr/testify/mock"
)

// MockAutostartManager stands in for the OS login-item registration.
type MockAutostartManager struct {
	mock.Mock
}

func (m *MockAutostartManager) IsEnabled() (bool, error) {
	args := m.Called()
	if err := args.Error(1); err != nil {
		return false, fmt.Errorf("mock autostart query failed: %w", err)
	}
	return args.Bool(0), nil
}

func (m *MockAutostartManager) SetEnabled(enabled bool) error {
	args := m.Called(enabled)
	if err := args.Error(0); err != nil {
		return fmt.Errorf("mock autostart update failed: %w", err)
	}
	return nil
}
