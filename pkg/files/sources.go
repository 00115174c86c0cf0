// Copyright 2020 VMware, Inc.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"io/fs"
	"os"
)

type Source interface {
	Description() string
	RelativePath() (string, error)
	Bytes() ([]byte, error)
}

var _ []Source = []Source{LocalSource{}, FSSource{}, &CachedSource{}}

// LocalSource keeps the path as given so that generated output
// refers to the document the same way the user did.
type LocalSource struct {
	path string
}

func NewLocalSource(path string) LocalSource { return LocalSource{path} }

func (s LocalSource) Description() string           { return fmt.Sprintf("file '%s'", s.path) }
func (s LocalSource) RelativePath() (string, error) { return s.path, nil }
func (s LocalSource) Bytes() ([]byte, error)        { return os.ReadFile(s.path) }

// FSSource reads a named entry of an fs.FS (typically an embed.FS
// distributed with the binary).
type FSSource struct {
	fsys fs.FS
	name string
}

func NewFSSource(fsys fs.FS, name string) FSSource { return FSSource{fsys, name} }

func (s FSSource) Description() string           { return fmt.Sprintf("bundled file '%s'", s.name) }
func (s FSSource) RelativePath() (string, error) { return s.name, nil }
func (s FSSource) Bytes() ([]byte, error)        { return fs.ReadFile(s.fsys, s.name) }

type CachedSource struct {
	src Source

	bytesFetched bool
	bytes        []byte
	bytesErr     error
}

func NewCachedSource(src Source) *CachedSource { return &CachedSource{src: src} }

func (s *CachedSource) Description() string           { return s.src.Description() }
func (s *CachedSource) RelativePath() (string, error) { return s.src.RelativePath() }

func (s *CachedSource) Bytes() ([]byte, error) {
	if s.bytesFetched {
		return s.bytes, s.bytesErr
	}

	s.bytesFetched = true
	s.bytes, s.bytesErr = s.src.Bytes()

	return s.bytes, s.bytesErr
}
