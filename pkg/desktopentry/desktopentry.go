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

// Package desktopentry lists installed applications by reading the Name and
// Exec keys of freedesktop .desktop files.
//
// Only the first Name= and the first Exec= line of a file are used, wherever
// they appear in the file, so localized keys such as Name[de]= and later
// [Desktop Action] groups are ignored. Exec is reduced to its first token
// with field codes like %U dropped.
package desktopentry

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	namePrefix = "Name="
	execPrefix = "Exec="
	emptyList  = "[]"

	// some entries embed long translated comments or icon data
	maxLineSize = 1024 * 1024
)

// App is an installed application found by a scan.
type App struct {
	Name string `json:"name"`
	Exec string `json:"exec"`
}

// Result is the outcome of a single scan. Err is only set when the file
// pattern itself could not be evaluated.
type Result struct {
	Err     error
	Apps    []App
	Matched int
	Skipped int
}

type Scanner struct {
	fs      afero.Fs
	dir     string
	pattern string
}

func NewScanner(fs afero.Fs, dir, pattern string) *Scanner {
	return &Scanner{
		fs:      fs,
		dir:     dir,
		pattern: pattern,
	}
}

// Scan reads every matching file in the scanner's directory. Nothing is
// cached between calls.
func (s *Scanner) Scan() Result {
	res := Result{Apps: make([]App, 0)}

	matches, err := afero.Glob(s.fs, filepath.Join(s.dir, s.pattern))
	if err != nil {
		res.Err = fmt.Errorf("failed to glob desktop entries: %w", err)
		return res
	}
	res.Matched = len(matches)

	for _, path := range matches {
		app, ok := s.readFile(path)
		if !ok {
			res.Skipped++
			continue
		}
		res.Apps = append(res.Apps, app)
	}

	log.Debug().
		Str("dir", s.dir).
		Int("matched", res.Matched).
		Int("skipped", res.Skipped).
		Msg("scanned desktop entries")

	return res
}

// ListSystemApps returns the scan as a JSON array of {name, exec} objects.
// Any failure, including a bad pattern or missing directory, gives "[]".
func (s *Scanner) ListSystemApps() string {
	res := s.Scan()
	if res.Err != nil {
		log.Warn().Err(res.Err).Msg("listing system apps")
		return emptyList
	}

	out, err := MarshalApps(res.Apps)
	if err != nil {
		log.Warn().Err(err).Msg("encoding system apps")
		return emptyList
	}
	return out
}

func (s *Scanner) readFile(path string) (App, bool) {
	f, err := s.fs.Open(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("skipping unreadable desktop entry")
		return App{}, false
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Debug().Err(err).Str("path", path).Msg("closing desktop entry")
		}
	}()

	return ParseEntry(f)
}

// ParseEntry reads lines from r until both a Name= and an Exec= line have
// been seen. Lines that are not valid UTF-8 are skipped. The bool is false
// when either key is missing.
func ParseEntry(r io.Reader) (App, bool) {
	var app App
	var hasName, hasExec bool

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := scanner.Text()
		if !utf8.ValidString(line) {
			continue
		}

		switch {
		case !hasName && strings.HasPrefix(line, namePrefix):
			app.Name = line[len(namePrefix):]
			hasName = true
		case !hasExec && strings.HasPrefix(line, execPrefix):
			app.Exec = NormalizeExec(line[len(execPrefix):])
			hasExec = true
		}

		if hasName && hasExec {
			return app, true
		}
	}

	if err := scanner.Err(); err != nil {
		log.Debug().Err(err).Msg("reading desktop entry")
	}

	return app, false
}

// NormalizeExec keeps the first whitespace separated token of an Exec value
// and strips one pair of surrounding double quotes from it.
func NormalizeExec(value string) string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return ""
	}

	token := fields[0]
	if len(token) >= 2 && strings.HasPrefix(token, `"`) && strings.HasSuffix(token, `"`) {
		token = token[1 : len(token)-1]
	}
	return token
}

// MarshalApps encodes apps as a JSON array without HTML escaping, so
// commands containing & or < are written as-is.
func MarshalApps(apps []App) (string, error) {
	if len(apps) == 0 {
		return emptyList, nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(apps); err != nil {
		return "", fmt.Errorf("failed to encode apps: %w", err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}
