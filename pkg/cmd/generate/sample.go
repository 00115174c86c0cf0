// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package generate

import (
	"embed"

	"carvel.dev/cmakegen/pkg/cmd/ui"
	"carvel.dev/cmakegen/pkg/files"
)

// SamplePath is where sample documents are written.
const SamplePath = "cmakegen-sample.xml"

const (
	annotatedSample = "samples/annotated.xml"
	basicSample     = "samples/basic.xml"
)

//go:embed samples
var samples embed.FS

func writeSample(name string, ui ui.UI) error {
	sample, err := files.NewFileFromSource(files.NewFSSource(samples, name))
	if err != nil {
		return err
	}

	data, err := sample.Bytes()
	if err != nil {
		return err
	}

	err = files.NewOutputFile(SamplePath, data).Create()
	if err != nil {
		return err
	}

	ui.Printf("Sample configuration document written to : %s\n", SamplePath)
	return nil
}
