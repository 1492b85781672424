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

// Package api serves the launcher operations to the UI shell as JSON-RPC 2.0
// over WebSocket and HTTP POST.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/FidgetApps/fidgetapps-core/pkg/api/middleware"
	"github.com/FidgetApps/fidgetapps-core/pkg/api/models"
	"github.com/FidgetApps/fidgetapps-core/pkg/api/models/requests"
	"github.com/FidgetApps/fidgetapps-core/pkg/api/validation"
	"github.com/FidgetApps/fidgetapps-core/pkg/config"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/olahol/melody"
	"github.com/rs/zerolog/log"
)

const (
	APIPath         = "/api"
	MaxRequestSize  = 1 << 20
	ShutdownTimeout = 5 * time.Second
)

var (
	JSONRPCErrorParseError = models.ErrorObject{
		Code:    -32700,
		Message: "Parse error",
	}
	JSONRPCErrorInvalidRequest = models.ErrorObject{
		Code:    -32600,
		Message: "Invalid Request",
	}
	JSONRPCErrorMethodNotFound = models.ErrorObject{
		Code:    -32601,
		Message: "Method not found",
	}
	JSONRPCErrorInvalidParams = models.ErrorObject{
		Code:    -32602,
		Message: "Invalid params",
	}
	JSONRPCErrorServerError = models.ErrorObject{
		Code:    -32000,
		Message: "Server error",
	}
)

// Server routes API requests to a MethodMap. Env is copied into every
// request with the params and id filled in.
type Server struct {
	env     requests.RequestEnv
	methods *MethodMap
	melody  *melody.Melody
	limiter *middleware.IPRateLimiter
	router  http.Handler
}

//nolint:gocritic // env is copied per request
func NewServer(env requests.RequestEnv, methods *MethodMap, limiter *middleware.IPRateLimiter) *Server {
	if limiter == nil {
		limiter = middleware.NewIPRateLimiter(nil)
	}
	s := &Server{
		env:     env,
		methods: methods,
		melody:  melody.New(),
		limiter: limiter,
	}
	s.melody.Config.MaxMessageSize = MaxRequestSize
	s.melody.Upgrader.CheckOrigin = func(*http.Request) bool { return true }
	s.melody.HandleMessage(middleware.WebSocketRateLimitHandler(limiter, s.handleWSMessage))
	s.router = s.newRouter()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) newRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.NoCache)
	r.Use(middleware.LocalOnlyMiddleware(s.env.Config.APIAllowRemote()))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://*", "https://*", "tauri://*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get(APIPath, func(w http.ResponseWriter, r *http.Request) {
		if err := s.melody.HandleRequest(w, r); err != nil {
			log.Error().Err(err).Msg("handling websocket request")
		}
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.HTTPRateLimitMiddleware(s.limiter))
		r.Use(chimiddleware.Timeout(config.APIRequestTimeout))
		r.Post(APIPath, s.handlePostRequest)
	})

	return r
}

// ListenAddr is loopback only unless remote access is enabled.
func ListenAddr(cfg *config.Instance) string {
	port := strconv.Itoa(cfg.APIPort())
	if cfg.APIAllowRemote() {
		return ":" + port
	}
	return net.JoinHostPort("127.0.0.1", port)
}

// Serve runs the HTTP server on ln and broadcasts notifications until ctx is
// cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener, notifications <-chan models.Notification) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.limiter.StartCleanup(ctx)
	go s.broadcastNotifications(ctx, notifications)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ln.Addr().String()).Msg("API server listening")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("API server failed: %w", err)
	case <-ctx.Done():
	}

	log.Debug().Msg("shutting down API server")
	if err := s.melody.Close(); err != nil {
		log.Warn().Err(err).Msg("error closing websocket sessions")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("API server shutdown failed: %w", err)
	}
	return nil
}

func (s *Server) broadcastNotifications(ctx context.Context, notifications <-chan models.Notification) {
	for {
		select {
		case <-ctx.Done():
			return
		case notif, ok := <-notifications:
			if !ok {
				return
			}
			if err := s.Broadcast(notif); err != nil {
				log.Error().Err(err).Str("method", notif.Method).Msg("broadcasting notification")
			}
		}
	}
}

// Broadcast sends a notification to every connected WebSocket client.
func (s *Server) Broadcast(notif models.Notification) error {
	data, err := json.Marshal(models.RequestObject{
		JSONRPC: "2.0",
		Method:  notif.Method,
		Params:  notif.Params,
	})
	if err != nil {
		return fmt.Errorf("error marshalling notification: %w", err)
	}
	if err := s.melody.Broadcast(data); err != nil {
		return fmt.Errorf("error broadcasting: %w", err)
	}
	return nil
}

func errorResponse(id models.RPCID, errObj models.ErrorObject) []byte {
	data, err := json.Marshal(models.ResponseErrorObject{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &errObj,
	})
	if err != nil {
		log.Error().Err(err).Msg("error marshalling error response")
		return nil
	}
	return data
}

func handlerError(err error) models.ErrorObject {
	var ve *validation.Error
	switch {
	case errors.As(err, &ve),
		errors.Is(err, validation.ErrMissingParams),
		errors.Is(err, validation.ErrInvalidParams):
		return models.ErrorObject{Code: JSONRPCErrorInvalidParams.Code, Message: err.Error()}
	default:
		return models.ErrorObject{Code: JSONRPCErrorServerError.Code, Message: err.Error()}
	}
}

// processRequest runs one JSON-RPC message and returns the encoded
// response. The second value is false for notifications, which get no
// response.
//
//nolint:gocritic // env is copied per request
func (s *Server) processRequest(env requests.RequestEnv, msg []byte) ([]byte, bool) {
	if !json.Valid(msg) {
		log.Warn().Msg("request is not valid json")
		return errorResponse(models.NullRPCID, JSONRPCErrorParseError), true
	}

	var req models.RequestObject
	if err := json.Unmarshal(msg, &req); err != nil {
		log.Warn().Err(err).Msg("request is not a json-rpc object")
		return errorResponse(models.NullRPCID, JSONRPCErrorInvalidRequest), true
	}

	id := models.NullRPCID
	if !req.ID.IsAbsent() {
		id = req.ID
	}

	if req.JSONRPC != "2.0" || req.Method == "" {
		log.Warn().Str("jsonrpc", req.JSONRPC).Str("method", req.Method).Msg("invalid request")
		return errorResponse(id, JSONRPCErrorInvalidRequest), true
	}

	if req.ID.IsAbsent() {
		log.Debug().Str("method", req.Method).Msg("received notification, ignoring")
		return nil, false
	}

	fn, ok := s.methods.GetMethod(req.Method)
	if !ok {
		log.Warn().Str("method", req.Method).Msg("unknown method")
		return errorResponse(id, JSONRPCErrorMethodNotFound), true
	}

	env.ID = id
	env.Params = req.Params

	result, err := fn(env)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Msg("error handling request")
		return errorResponse(id, handlerError(err)), true
	}

	data, err := json.Marshal(models.ResponseObject{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	})
	if err != nil {
		log.Error().Err(err).Msg("error marshalling response")
		return errorResponse(id, models.ErrorObject{Code: -32603, Message: "Internal error"}), true
	}
	return data, true
}

func (s *Server) handleWSMessage(session *melody.Session, msg []byte) {
	// heartbeat
	if bytes.Equal(msg, []byte("ping")) {
		if err := session.Write([]byte("pong")); err != nil {
			log.Error().Err(err).Msg("sending pong")
		}
		return
	}

	env := s.env
	env.Context = session.Request.Context()

	resp, ok := s.processRequest(env, msg)
	if !ok || resp == nil {
		return
	}
	if err := session.Write(resp); err != nil {
		log.Error().Err(err).Msg("error sending response")
	}
}

func (s *Server) handlePostRequest(w http.ResponseWriter, r *http.Request) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxRequestSize))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, "Request Entity Too Large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	env := s.env
	env.Context = r.Context()

	resp, ok := s.processRequest(env, body)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(resp); err != nil {
		log.Error().Err(err).Msg("error writing response")
	}
}
