// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package generate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"carvel.dev/cmakegen/pkg/files"
	"github.com/BurntSushi/toml"
)

// DefaultSettingsPath is read when present and --settings is not given.
const DefaultSettingsPath = "cmakegen.toml"

// Settings supplies defaults for flags. Unset fields leave flag defaults alone.
type Settings struct {
	Output    string `toml:"output"`
	Force     *bool  `toml:"force"`
	Timestamp *bool  `toml:"timestamp"`
	Verbose   *bool  `toml:"verbose"`
}

// ChangedFlags reports which flags were explicitly set on the command line.
type ChangedFlags interface {
	Changed(name string) bool
}

// LoadSettings reads a TOML settings file. Unknown keys are rejected.
func LoadSettings(path string) (Settings, error) {
	var settings Settings

	file, err := files.NewFileFromPath(path)
	if err != nil {
		return settings, err
	}
	if file.Type() != files.TypeTOML {
		return settings, fmt.Errorf("Expected settings %s to have a .toml extension", file.Description())
	}

	data, err := file.Bytes()
	if err != nil {
		return settings, fmt.Errorf("Reading settings %s: %s", file.Description(), err)
	}

	md, err := toml.Decode(string(data), &settings)
	if err != nil {
		return settings, fmt.Errorf("Decoding settings %s: %s", file.Description(), err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		var keys []string
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return settings, fmt.Errorf("Unknown keys in settings %s: %s", file.Description(), strings.Join(keys, ", "))
	}

	return settings, nil
}

// applySettings loads the settings file, if any, and copies its values into
// options whose flags were not given explicitly.
func (o *GenerateOptions) applySettings(changed ChangedFlags) error {
	path := o.SettingsPath
	if len(path) == 0 {
		_, err := os.Stat(DefaultSettingsPath)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		path = DefaultSettingsPath
	}

	settings, err := LoadSettings(path)
	if err != nil {
		return err
	}

	if len(settings.Output) > 0 && !changed.Changed(outputFlag) {
		o.OutputPath = settings.Output
	}
	if settings.Force != nil && !changed.Changed(forceFlag) {
		o.Force = *settings.Force
	}
	if settings.Timestamp != nil && !changed.Changed(noTimestampFlag) {
		o.NoTimestamp = !*settings.Timestamp
	}
	if settings.Verbose != nil && !changed.Changed(verboseFlag) {
		o.Verbose = *settings.Verbose
	}
	return nil
}
