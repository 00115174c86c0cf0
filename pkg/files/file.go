// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"carvel.dev/cmakegen/pkg/failure"
)

var (
	xmlExts  = []string{".xml"}
	yamlExts = []string{".yaml", ".yml"}
	tomlExts = []string{".toml"}
)

type Type int

const (
	TypeUnknown Type = iota
	TypeXML
	TypeYAML
	TypeTOML
)

type File struct {
	src     Source
	relPath string
}

// NewFileFromPath returns a File backed by a local, non-directory path.
func NewFileFromPath(path string) (*File, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, failure.Wrap(failure.KindRead, path, err, "Checking file '%s'", path)
	}
	if fileInfo.IsDir() {
		return nil, failure.New(failure.KindRead, path, "Expected file '%s' to not be a directory", path)
	}
	return NewFileFromSource(NewLocalSource(path))
}

func NewFileFromSource(fileSrc Source) (*File, error) {
	relPath, err := fileSrc.RelativePath()
	if err != nil {
		return nil, fmt.Errorf("Calculating relative path for '%s': %s", fileSrc.Description(), err)
	}

	return &File{src: NewCachedSource(fileSrc), relPath: relPath}, nil
}

func (r *File) Description() string    { return r.src.Description() }
func (r *File) RelativePath() string   { return r.relPath }
func (r *File) Bytes() ([]byte, error) { return r.src.Bytes() }

func (r *File) Type() Type {
	switch {
	case r.matchesExt(xmlExts):
		return TypeXML
	case r.matchesExt(yamlExts):
		return TypeYAML
	case r.matchesExt(tomlExts):
		return TypeTOML
	default:
		return TypeUnknown
	}
}

func (r *File) matchesExt(exts []string) bool {
	filename := strings.ToLower(filepath.Base(r.RelativePath()))
	for _, ext := range exts {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}
