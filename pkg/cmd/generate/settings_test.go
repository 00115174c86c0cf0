// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type changedFlags map[string]bool

func (c changedFlags) Changed(name string) bool { return c[name] }

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadSettings(t *testing.T) {
	path := writeSettings(t, `
output = "build/CMakeLists.txt"
force = true
timestamp = false
`)

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "build/CMakeLists.txt", settings.Output)
	require.NotNil(t, settings.Force)
	assert.True(t, *settings.Force)
	require.NotNil(t, settings.Timestamp)
	assert.False(t, *settings.Timestamp)
	assert.Nil(t, settings.Verbose)
}

func TestLoadSettingsErrors(t *testing.T) {
	t.Run("unknown keys", func(t *testing.T) {
		_, err := LoadSettings(writeSettings(t, "output = \"x\"\noverwrite = true\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unknown keys")
		assert.Contains(t, err.Error(), "overwrite")
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := LoadSettings(writeSettings(t, "output = \n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Decoding settings")
	})

	t.Run("wrong extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yml")
		require.NoError(t, os.WriteFile(path, []byte("output: x\n"), 0600))
		_, err := LoadSettings(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ".toml")
	})
}

func TestApplySettingsRespectsExplicitFlags(t *testing.T) {
	path := writeSettings(t, `
output = "from-settings.txt"
force = true
timestamp = false
verbose = true
`)

	t.Run("settings fill unset flags", func(t *testing.T) {
		o := NewOptions()
		o.SettingsPath = path
		require.NoError(t, o.applySettings(changedFlags{}))

		assert.Equal(t, "from-settings.txt", o.OutputPath)
		assert.True(t, o.Force)
		assert.True(t, o.NoTimestamp)
		assert.True(t, o.Verbose)
	})

	t.Run("explicit flags win", func(t *testing.T) {
		o := NewOptions()
		o.SettingsPath = path
		o.OutputPath = "from-flag.txt"
		require.NoError(t, o.applySettings(changedFlags{outputFlag: true, forceFlag: true, noTimestampFlag: true}))

		assert.Equal(t, "from-flag.txt", o.OutputPath)
		assert.False(t, o.Force)
		assert.False(t, o.NoTimestamp)
		assert.True(t, o.Verbose)
	})
}

func TestApplySettingsWithoutFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd) //nolint:errcheck

	o := NewOptions()
	require.NoError(t, o.applySettings(changedFlags{}))
	assert.Equal(t, DefaultOutputPath, o.OutputPath)

	o.SettingsPath = "missing.toml"
	require.Error(t, o.applySettings(changedFlags{}))
}
