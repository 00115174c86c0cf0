// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/renameio/v2"
)

type OutputFile struct {
	path string
	data []byte
}

func NewOutputFile(path string, data []byte) OutputFile {
	return OutputFile{path, data}
}

func (f OutputFile) Path() string  { return f.path }
func (f OutputFile) Bytes() []byte { return f.data }

// Existing returns the current contents at the destination path.
// found is false when nothing is there yet.
func (f OutputFile) Existing() (data []byte, found bool, err error) {
	data, err = os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("Reading existing file '%s': %s", f.path, err)
	}
	return data, true, nil
}

// Create replaces the destination atomically: data lands in a temporary
// file next to the destination which is renamed over it only once fully
// written, so the destination is either untouched or complete.
func (f OutputFile) Create() error {
	pendingFile, err := renameio.NewPendingFile(f.path,
		renameio.WithPermissions(0644), renameio.WithExistingPermissions())
	if err != nil {
		return fmt.Errorf("Creating pending file for '%s': %s", f.path, err)
	}
	defer pendingFile.Cleanup() //nolint:errcheck

	_, err = pendingFile.Write(f.data)
	if err != nil {
		return fmt.Errorf("Writing '%s': %s", f.path, err)
	}

	err = pendingFile.CloseAtomicallyReplace()
	if err != nil {
		return fmt.Errorf("Replacing '%s': %s", f.path, err)
	}

	return nil
}
