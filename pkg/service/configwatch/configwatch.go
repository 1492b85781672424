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

// Package configwatch reports changes to the apps config file made outside
// the API, for example by hand edits or a second UI instance.
package configwatch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// DefaultDebounce collapses the burst of events a single save produces.
const DefaultDebounce = 250 * time.Millisecond

const relevantOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

type Watcher struct {
	clock    clockwork.Clock
	watcher  *fsnotify.Watcher
	onChange func(path string)
	stopChan chan struct{}
	path     string
	debounce time.Duration
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// New watches path and calls onChange once things have been quiet for
// debounce. The parent directory is watched so editors that replace the
// file are seen too.
func New(path string, clock clockwork.Clock, debounce time.Duration, onChange func(path string)) *Watcher {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		clock:    clock,
		onChange: onChange,
		stopChan: make(chan struct{}),
		path:     filepath.Clean(path),
		debounce: debounce,
	}
}

func (w *Watcher) Start() error {
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.watcher = watcher

	w.wg.Add(1)
	go w.loop()

	log.Debug().Str("path", w.path).Msg("watching apps config for changes")
	return nil
}

// Stop ends the watch and waits for the event loop to exit. Safe to call
// more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopChan)
		if w.watcher != nil {
			_ = w.watcher.Close()
		}
		w.wg.Wait()
	})
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	// a stale fire is ignored while nothing is pending
	timer := w.clock.NewTimer(w.debounce)
	timer.Stop()
	pending := false

	for {
		select {
		case <-w.stopChan:
			timer.Stop()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path || !event.Op.Has(relevantOps) {
				continue
			}
			log.Trace().Str("op", event.Op.String()).Msg("apps config event")
			pending = true
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("fsnotify error")

		case <-timer.Chan():
			if !pending {
				continue
			}
			pending = false
			log.Info().Str("path", w.path).Msg("apps config changed on disk")
			w.onChange(w.path)
		}
	}
}
