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

// Package client talks to a running service over its local WebSocket API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/FidgetApps/fidgetapps-core/pkg/api/models"
	"github.com/FidgetApps/fidgetapps-core/pkg/config"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var (
	ErrRequestTimeout   = errors.New("request timed out")
	ErrInvalidParams    = errors.New("invalid params")
	ErrRequestCancelled = errors.New("request cancelled")
)

func localURL(port int) string {
	u := url.URL{
		Scheme: "ws",
		Host:   net.JoinHostPort("127.0.0.1", strconv.Itoa(port)),
		Path:   "/api",
	}
	return u.String()
}

func dial(ctx context.Context, port int) (*websocket.Conn, error) {
	c, resp, err := websocket.DefaultDialer.DialContext(ctx, localURL(port), nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to API: %w", err)
	}
	return c, nil
}

func closeConn(c *websocket.Conn) {
	if err := c.Close(); err != nil {
		log.Debug().Err(err).Msg("error closing websocket")
	}
}

// waitFor reads messages from c until match returns true, timeout passes
// or ctx is done. A zero timeout means config.APIRequestTimeout and a
// negative one waits forever.
func waitFor(
	ctx context.Context,
	c *websocket.Conn,
	timeout time.Duration,
	match func(msg []byte) bool,
) ([]byte, error) {
	done := make(chan []byte, 1)
	go func() {
		defer close(done)
		for {
			_, msg, err := c.ReadMessage()
			if err != nil {
				log.Debug().Err(err).Msg("websocket read ended")
				return
			}
			if match(msg) {
				done <- msg
				return
			}
		}
	}()

	var timerChan <-chan time.Time
	switch {
	case timeout == 0:
		timer := time.NewTimer(config.APIRequestTimeout)
		defer timer.Stop()
		timerChan = timer.C
	case timeout > 0:
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		timerChan = timer.C
	}

	select {
	case msg, ok := <-done:
		if !ok {
			return nil, ErrRequestTimeout
		}
		return msg, nil
	case <-timerChan:
		return nil, ErrRequestTimeout
	case <-ctx.Done():
		return nil, ErrRequestCancelled
	}
}

// LocalClient sends a single method call to the service on port, waits
// for its response and disconnects. params must be empty or valid JSON.
// The result is returned as raw JSON.
func LocalClient(ctx context.Context, port int, method, params string) (string, error) {
	id := models.NewStringID(uuid.New().String())
	req := models.RequestObject{
		JSONRPC: "2.0",
		ID:      id,
		Method:  method,
	}
	if params != "" {
		if !json.Valid([]byte(params)) {
			return "", ErrInvalidParams
		}
		req.Params = json.RawMessage(params)
	}

	c, err := dial(ctx, port)
	if err != nil {
		return "", err
	}
	defer closeConn(c)

	if err := c.WriteJSON(req); err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}

	var resp models.ResponseObject
	_, err = waitFor(ctx, c, 0, func(msg []byte) bool {
		var m models.ResponseObject
		if json.Unmarshal(msg, &m) != nil || m.JSONRPC != "2.0" {
			return false
		}
		if !id.Equal(m.ID) {
			return false
		}
		resp = m
		return true
	})
	if err != nil {
		return "", err
	}

	if resp.Error != nil {
		return "", errors.New(resp.Error.Message)
	}

	b, err := json.Marshal(resp.Result)
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(b), nil
}

// WaitNotification blocks until the service broadcasts a notification
// with the given method and returns its params.
func WaitNotification(ctx context.Context, timeout time.Duration, port int, method string) (string, error) {
	c, err := dial(ctx, port)
	if err != nil {
		return "", err
	}
	defer closeConn(c)

	var params json.RawMessage
	_, err = waitFor(ctx, c, timeout, func(msg []byte) bool {
		var m models.RequestObject
		if json.Unmarshal(msg, &m) != nil || m.JSONRPC != "2.0" {
			return false
		}
		if !m.ID.IsAbsent() || m.Method != method {
			return false
		}
		params = m.Params
		return true
	})
	if err != nil {
		return "", err
	}
	return string(params), nil
}
