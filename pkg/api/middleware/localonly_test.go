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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRemoteIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		addr string
		want string
	}{
		{addr: "192.168.1.100:12345", want: "192.168.1.100"},
		{addr: "192.168.1.100", want: "192.168.1.100"},
		{addr: "[::1]:7587", want: "::1"},
		{addr: "garbage", want: "<nil>"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRemoteIP(tt.addr).String(), tt.addr)
	}
}

func TestLocalOnlyMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		remoteAddr  string
		allowRemote bool
		wantCode    int
	}{
		{name: "ipv4 loopback", remoteAddr: "127.0.0.1:5000", wantCode: http.StatusOK},
		{name: "ipv6 loopback", remoteAddr: "[::1]:5000", wantCode: http.StatusOK},
		{name: "lan blocked", remoteAddr: "192.168.1.20:5000", wantCode: http.StatusForbidden},
		{name: "unparseable blocked", remoteAddr: "pipe", wantCode: http.StatusForbidden},
		{name: "lan allowed", remoteAddr: "192.168.1.20:5000", allowRemote: true, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := LocalOnlyMiddleware(tt.allowRemote)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			req := httptest.NewRequest(http.MethodGet, "/api", http.NoBody)
			req.RemoteAddr = tt.remoteAddr
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
