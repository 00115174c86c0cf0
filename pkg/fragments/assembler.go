// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package fragments

import (
	"embed"
	"io/fs"
	"strings"

	"carvel.dev/cmakegen/pkg/failure"
	"carvel.dev/cmakegen/pkg/files"
	"carvel.dev/cmakegen/pkg/orderedmap"
)

// Fragment names in the bundled catalog.
const (
	Header             = "CMakeBase.tpl"
	Lapack             = "Lapack.frag"
	LapackTarget       = "LapackTarget.frag"
	OpenMP             = "OpenMP.frag"
	OpenMPTarget       = "OpenMPTarget.frag"
	FFTW               = "FFTW.frag"
	FFTWTarget         = "FFTWTarget.frag"
	SQLite3            = "SQLite3.frag"
	SQLite3Target      = "SQLite3Target.frag"
	MemCheck           = "MemCheck.frag"
	DefaultXMLTestData = "DefaultXMLTestData.frag"
	CompileFeatures    = "CompileFeatures.frag"
)

//go:embed data
var catalog embed.FS

type Assembler struct {
	fsys fs.FS
}

// NewAssembler reads fragments from fsys; names are paths within it.
func NewAssembler(fsys fs.FS) *Assembler {
	return &Assembler{fsys: fsys}
}

// NewDefaultAssembler reads the catalog bundled with the binary.
func NewDefaultAssembler() *Assembler {
	sub, err := fs.Sub(catalog, "data")
	if err != nil {
		panic(err)
	}
	return NewAssembler(sub)
}

func (a *Assembler) Load(name string) (string, error) {
	file, err := files.NewFileFromSource(files.NewFSSource(a.fsys, name))
	if err != nil {
		return "", failure.Wrap(failure.KindRead, name, err, "Loading fragment '%s'", name)
	}
	data, err := file.Bytes()
	if err != nil {
		return "", failure.Wrap(failure.KindRead, name, err, "Reading %s", file.Description())
	}
	return string(data), nil
}

// Substitute replaces every placeholder of the named template with its
// value from ctx in a single pass. Every key of ctx must have a placeholder
// and every placeholder must have a key; both are checked before any
// replacement happens. Values are inserted verbatim and never re-scanned.
func (a *Assembler) Substitute(name, template string, ctx *orderedmap.Map) (string, error) {
	tpl, err := ParseTemplate(template, name)
	if err != nil {
		return "", err
	}

	keys := tpl.Keys()
	if ctx.Len() == 0 && len(keys) == 0 {
		return template, nil
	}

	for _, key := range ctx.Keys() {
		if !tpl.HasKey(key) {
			return "", failure.New(failure.KindTemplate, key,
				"Template variable '%s' is not in fragment '%s'", key, name)
		}
	}

	for _, key := range keys {
		if _, found := ctx.Get(key); !found {
			return "", failure.New(failure.KindTemplate, key,
				"Fragment '%s' expects a value for placeholder '%s'", name, key)
		}
	}

	var result strings.Builder
	for _, seg := range tpl.segments {
		if !seg.isToken {
			result.WriteString(seg.text)
			continue
		}
		val, _ := ctx.Get(seg.key)
		result.WriteString(val)
	}
	return result.String(), nil
}

// Render loads the named fragment and substitutes ctx into it.
func (a *Assembler) Render(name string, ctx *orderedmap.Map) (string, error) {
	template, err := a.Load(name)
	if err != nil {
		return "", err
	}
	return a.Substitute(name, template, ctx)
}
