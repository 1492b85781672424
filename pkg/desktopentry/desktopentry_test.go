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

package desktopentry

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const appsDir = "/usr/share/applications"

func newTestScanner(t *testing.T, files map[string]string) *Scanner {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(appsDir, 0o755))
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(appsDir, name), []byte(content), 0o644))
	}
	return NewScanner(fs, appsDir, "*.desktop")
}

func TestParseEntry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected App
		ok       bool
	}{
		{
			name:     "quoted exec with field code",
			content:  "[Desktop Entry]\nName=Foo Bar\nExec=\"/usr/bin/foo\" %U\n",
			expected: App{Name: "Foo Bar", Exec: "/usr/bin/foo"},
			ok:       true,
		},
		{
			name:     "exec before name",
			content:  "Exec=gedit %F\nName=Text Editor\n",
			expected: App{Name: "Text Editor", Exec: "gedit"},
			ok:       true,
		},
		{
			name:     "first name wins",
			content:  "Name=First\nName=Second\nExec=app\n",
			expected: App{Name: "First", Exec: "app"},
			ok:       true,
		},
		{
			name:     "first exec wins",
			content:  "Name=App\nExec=one\n[Desktop Action new]\nExec=two --new\n",
			expected: App{Name: "App", Exec: "one"},
			ok:       true,
		},
		{
			name:     "localized name is not a name key",
			content:  "Name[de]=Dateien\nName=Files\nExec=nautilus --new-window %U\n",
			expected: App{Name: "Files", Exec: "nautilus"},
			ok:       true,
		},
		{
			name:     "name is not unescaped or trimmed",
			content:  "Name= Spaced \\s Name \nExec=x\n",
			expected: App{Name: " Spaced \\s Name ", Exec: "x"},
			ok:       true,
		},
		{
			name:     "crlf line endings",
			content:  "Name=Windows Style\r\nExec=\"wine\" app.exe\r\n",
			expected: App{Name: "Windows Style", Exec: "wine"},
			ok:       true,
		},
		{
			name:     "empty exec value",
			content:  "Name=Nothing\nExec=\n",
			expected: App{Name: "Nothing", Exec: ""},
			ok:       true,
		},
		{
			name:    "name without exec",
			content: "Name=Only Name\nIcon=foo\n",
			ok:      false,
		},
		{
			name:    "exec without name",
			content: "Exec=foo\n",
			ok:      false,
		},
		{
			name:    "empty file",
			content: "",
			ok:      false,
		},
		{
			name:    "keys must start the line",
			content: " Name=Indented\n#Exec=commented\n",
			ok:      false,
		},
		{
			name:     "invalid utf8 lines are skipped",
			content:  "Name=\xff\xfeBroken\nName=Good\nExec=good\n",
			expected: App{Name: "Good", Exec: "good"},
			ok:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app, ok := ParseEntry(strings.NewReader(tt.content))
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, app)
			}
		})
	}
}

func TestParseEntry_LongLine(t *testing.T) {
	t.Parallel()

	content := "Comment=" + strings.Repeat("a", 200*1024) + "\nName=Long\nExec=long\n"
	app, ok := ParseEntry(strings.NewReader(content))
	require.True(t, ok)
	assert.Equal(t, App{Name: "Long", Exec: "long"}, app)
}

func TestNormalizeExec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "firefox %u", expected: "firefox"},
		{input: `"/opt/app/bin" --flag`, expected: "/opt/app/bin"},
		{input: `"/opt/My App/bin" %F`, expected: `"/opt/My`},
		{input: `""`, expected: ""},
		{input: `"`, expected: `"`},
		{input: `""quoted""`, expected: `"quoted"`},
		{input: "\t  spaced\targs", expected: "spaced"},
		{input: "env FOO=1 app", expected: "env"},
		{input: "", expected: ""},
		{input: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, NormalizeExec(tt.input))
		})
	}
}

func TestListSystemApps(t *testing.T) {
	t.Parallel()

	scanner := newTestScanner(t, map[string]string{
		"foo.desktop":       "[Desktop Entry]\nName=Foo Bar\nExec=\"/usr/bin/foo\" %U\n",
		"noexec.desktop":    "[Desktop Entry]\nName=No Exec\n",
		"ampersand.desktop": "Name=A & B\nExec=ab\n",
		"readme.txt":        "Name=Not Desktop\nExec=nope\n",
	})

	out := scanner.ListSystemApps()
	assert.JSONEq(t, `[{"name":"A & B","exec":"ab"},{"name":"Foo Bar","exec":"/usr/bin/foo"}]`, out)
	assert.Contains(t, out, "A & B")
}

func TestListSystemApps_ExactOutput(t *testing.T) {
	t.Parallel()

	scanner := newTestScanner(t, map[string]string{
		"foo.desktop": "Name=Foo Bar\nExec=\"/usr/bin/foo\" %U\n",
	})

	assert.Equal(t, `[{"name":"Foo Bar","exec":"/usr/bin/foo"}]`, scanner.ListSystemApps())
}

func TestListSystemApps_Empty(t *testing.T) {
	t.Parallel()

	t.Run("empty directory", func(t *testing.T) {
		t.Parallel()
		scanner := newTestScanner(t, nil)
		assert.Equal(t, "[]", scanner.ListSystemApps())
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		scanner := NewScanner(afero.NewMemMapFs(), "/does/not/exist", "*.desktop")
		assert.Equal(t, "[]", scanner.ListSystemApps())
	})

	t.Run("only skipped files", func(t *testing.T) {
		t.Parallel()
		scanner := newTestScanner(t, map[string]string{
			"a.desktop": "Name=A\n",
			"b.desktop": "Exec=b\n",
		})
		assert.Equal(t, "[]", scanner.ListSystemApps())
	})

	t.Run("bad pattern", func(t *testing.T) {
		t.Parallel()
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, filepath.Join(appsDir, "a.desktop"), []byte("Name=A\nExec=a\n"), 0o644))
		scanner := NewScanner(fs, appsDir, "[")
		assert.Equal(t, "[]", scanner.ListSystemApps())

		res := scanner.Scan()
		require.Error(t, res.Err)
		assert.Empty(t, res.Apps)
	})
}

func TestScan_CountsSkipped(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, filepath.Join(appsDir, "good.desktop"), []byte("Name=G\nExec=g\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(appsDir, "bad.desktop"), []byte("Name=B\n"), 0o644))
	// directories matching the pattern fail to read and are skipped
	require.NoError(t, fs.MkdirAll(filepath.Join(appsDir, "dir.desktop"), 0o755))

	res := NewScanner(fs, appsDir, "*.desktop").Scan()
	require.NoError(t, res.Err)
	assert.Equal(t, 3, res.Matched)
	assert.Equal(t, 2, res.Skipped)
	assert.Equal(t, []App{{Name: "G", Exec: "g"}}, res.Apps)
}

func TestScan_NoCaching(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	scanner := NewScanner(fs, appsDir, "*.desktop")
	assert.Equal(t, "[]", scanner.ListSystemApps())

	require.NoError(t, afero.WriteFile(fs, filepath.Join(appsDir, "new.desktop"), []byte("Name=New\nExec=new\n"), 0o644))
	assert.Equal(t, `[{"name":"New","exec":"new"}]`, scanner.ListSystemApps())
}

func TestMarshalApps(t *testing.T) {
	t.Parallel()

	out, err := MarshalApps(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", out)

	out, err = MarshalApps([]App{{Name: "<x>", Exec: "a&&b"}})
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"<x>","exec":"a&&b"}]`, out)
}
