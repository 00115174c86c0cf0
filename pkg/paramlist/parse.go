// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package paramlist

import (
	"carvel.dev/cmakegen/pkg/failure"
	"carvel.dev/cmakegen/pkg/files"
	"carvel.dev/cmakegen/pkg/paramvalue"
)

// Parse reads file with the parser matching its extension.
func Parse(file *files.File) (*Document, error) {
	data, err := file.Bytes()
	if err != nil {
		return nil, failure.Wrap(failure.KindRead, file.RelativePath(), err,
			"Reading %s", file.Description())
	}

	switch file.Type() {
	case files.TypeXML:
		return ParseXML(data, file.RelativePath())
	case files.TypeYAML:
		return ParseYAML(data, file.RelativePath())
	default:
		return nil, failure.New(failure.KindParse, file.RelativePath(),
			"Unsupported configuration document %s (expected .xml, .yml or .yaml)", file.Description())
	}
}

func (p *Parameter) decode() error {
	val, err := paramvalue.Decode(p.literal, p.tag)
	if err != nil {
		return failure.Wrap(failure.KindTypeCoercion, p.name, err,
			"Parameter '%s' (%s)", p.name, p.position.AsString())
	}
	p.value = val
	return nil
}
