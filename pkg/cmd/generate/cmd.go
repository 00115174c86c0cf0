// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package generate

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"carvel.dev/cmakegen/pkg/cmd/ui"
	"carvel.dev/cmakegen/pkg/files"
	"carvel.dev/cmakegen/pkg/fragments"
	"carvel.dev/cmakegen/pkg/generator"
	"carvel.dev/cmakegen/pkg/paramlist"
	"github.com/k14s/difflib"
	"github.com/spf13/cobra"
)

// DefaultOutputPath is the conventional location of the generated file.
const DefaultOutputPath = "CMakeLists.txt"

const dateLayout = "2006-01-02 "

type GenerateOptions struct {
	DataFile     string
	Sample       bool
	BasicSample  bool
	Verbose      bool
	Force        bool
	NoTimestamp  bool
	OutputPath   string
	SettingsPath string
	Debug        bool

	now func() time.Time
}

func NewOptions() *GenerateOptions {
	return &GenerateOptions{OutputPath: DefaultOutputPath, now: time.Now}
}

func NewCmd(o *GenerateOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate CMakeLists.txt from a configuration document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := o.applySettings(cmd.Flags())
			if err != nil {
				return err
			}
			return o.Run()
		},
	}
	o.Set(cmd.Flags())
	return cmd
}

func (o *GenerateOptions) Run() error {
	return o.RunWithUI(ui.NewTTY(o.Debug))
}

// RunWithUI writes a sample document when asked to; otherwise it generates
// the output in memory and only then writes it, asking before replacing a
// different existing file unless forced.
func (o *GenerateOptions) RunWithUI(ui ui.UI) error {
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	switch {
	case o.Sample:
		return writeSample(annotatedSample, ui)
	case o.BasicSample:
		return writeSample(basicSample, ui)
	}

	if len(o.DataFile) == 0 {
		return fmt.Errorf("Expected configuration document to be specified via --%s (-x)", dataFileFlag)
	}

	file, err := files.NewFileFromPath(o.DataFile)
	if err != nil {
		return err
	}

	doc, err := paramlist.Parse(file)
	if err != nil {
		return err
	}

	result, err := o.RunWithDocument(doc, ui)
	if err != nil {
		return err
	}

	return o.write(result.Content, ui)
}

// RunWithDocument generates output for doc, reporting warnings and echoing
// the output when verbose. Nothing is written.
func (o *GenerateOptions) RunWithDocument(doc *paramlist.Document, ui ui.UI) (generator.Result, error) {
	var date string
	if !o.NoTimestamp {
		now := o.now
		if now == nil {
			now = time.Now
		}
		date = now().Format(dateLayout)
	}

	logger := ui.Logger()

	result, err := generator.Generate(doc, fragments.NewDefaultAssembler(), generator.Options{
		SourcePath: o.DataFile,
		Date:       date,
		Logger:     &logger,
	})
	if err != nil {
		return generator.Result{}, err
	}

	for _, warning := range result.Warnings {
		ui.Warnf("Warning: %s\n", warning)
	}

	if o.Verbose {
		ui.Printf("%s", result.Content)
	}

	return result, nil
}

func (o *GenerateOptions) write(content []byte, ui ui.UI) error {
	outputFile := files.NewOutputFile(o.OutputPath, content)

	existing, found, err := outputFile.Existing()
	if err != nil {
		return err
	}

	if found {
		if bytes.Equal(existing, content) {
			ui.Printf("File unchanged : %s\n", outputFile.Path())
			return nil
		}

		if !o.Force {
			ui.Printf("%s\n", difflib.PPDiff(strings.Split(string(existing), "\n"), strings.Split(string(content), "\n")))

			confirmed, err := ui.AskForConfirmation(fmt.Sprintf("Overwrite existing %s ? y)es n)o [n]  :  ", outputFile.Path()))
			if err != nil {
				return err
			}
			if !confirmed {
				ui.Printf("Leaving %s unchanged\n", outputFile.Path())
				return nil
			}
		}
	}

	err = outputFile.Create()
	if err != nil {
		return err
	}

	ui.Printf("File created : %s\n", outputFile.Path())
	return nil
}
