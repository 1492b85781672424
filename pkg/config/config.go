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

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/FidgetApps/fidgetapps-core/pkg/helpers/syncutil"
	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	SchemaVersion = 1
	CfgEnv        = "FIDGETAPPS_CFG"
)

var ErrConfigPathNotSet = errors.New("config path not set")

type Values struct {
	API            API            `toml:"api"`
	Apps           Apps           `toml:"apps"`
	Render         Render         `toml:"render"`
	UI             UI             `toml:"ui,omitempty"`
	ErrorReporting ErrorReporting `toml:"error_reporting"`
	ConfigSchema   int            `toml:"config_schema"`
	DebugLogging   bool           `toml:"debug_logging"`
}

type API struct {
	Port        int  `toml:"port" validate:"min=1,max=65535"`
	AllowRemote bool `toml:"allow_remote"`
}

type Apps struct {
	DesktopDir  string `toml:"desktop_dir" validate:"required"`
	DesktopGlob string `toml:"desktop_glob" validate:"required"`
	// LaunchHelper is an optional script the packaged app ships to start
	// commands and move their windows. Only used on Linux.
	LaunchHelper string `toml:"launch_helper,omitempty"`
}

// Render holds the environment handed to the UI shell process when it is
// started by the backend. Nothing here is applied to this process.
type Render struct {
	GDKBackend         string `toml:"gdk_backend"`
	DisableCompositing bool   `toml:"disable_compositing"`
}

type UI struct {
	Command string `toml:"command,omitempty"`
}

type ErrorReporting struct {
	DSN     string `toml:"dsn,omitempty" validate:"omitempty,url"`
	Enabled bool   `toml:"enabled"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	API: API{
		Port: DefaultAPIPort,
	},
	Apps: Apps{
		DesktopDir:  DefaultDesktopDir,
		DesktopGlob: DefaultDesktopGlob,
	},
	Render: Render{
		GDKBackend:         "x11",
		DisableCompositing: true,
	},
}

var validate = validator.New(validator.WithRequiredStructEnabled())

type Instance struct {
	cfgPath  string
	vals     Values
	defaults Values
	mu       syncutil.RWMutex
}

// NewConfig loads config.toml from configDir, writing the defaults to disk
// first if it does not exist yet. FIDGETAPPS_CFG overrides the path.
//
//nolint:gocritic // config struct copied for immutability
func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	log.Debug().Msgf("env config path: %s", cfgPath)

	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		err := os.MkdirAll(filepath.Dir(cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		err = cfg.Save()
		if err != nil {
			return nil, err
		}
	}

	err := cfg.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return ErrConfigPathNotSet
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// file values are applied on top of the defaults so missing keys keep
	// their default value
	newVals := c.defaults
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return errors.New("schema version mismatch")
	}

	if err := validate.Struct(&newVals); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	c.vals = newVals

	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return ErrConfigPathNotSet
	}

	c.vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Instance) Path() string {
	return c.cfgPath
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
	if enabled {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func (c *Instance) APIPort() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.API.Port
}

func (c *Instance) APIAllowRemote() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.API.AllowRemote
}

func (c *Instance) Apps() Apps {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Apps
}

func (c *Instance) Render() Render {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Render
}

func (c *Instance) UICommand() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.UI.Command
}

func (c *Instance) ErrorReporting() ErrorReporting {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.ErrorReporting
}
