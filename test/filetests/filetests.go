// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filetests houses a test harness for generating CMakeLists.txt text
from configuration documents and asserting the expected output.
*/
package filetests

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"carvel.dev/cmakegen/pkg/fragments"
	"carvel.dev/cmakegen/pkg/generator"
	"carvel.dev/cmakegen/pkg/paramlist"
	"github.com/k14s/difflib"
)

// Evaluate is the processing desired from a source document to the final result.
type Evaluate func(src, associatedName string) (generator.Result, *TestErr)

// FileTests contain a suite of test cases, each described in a separate file, verifying generated output.
//
// Test cases:
// - are found within the directory at "PathToTests"
// - use a .xmltest or .yamltest extension naming the document syntax
// - top-half is the document; bottom-half is the expected output; divided by `+++` and a blank line.
//
// Types of expectations:
// - expected output starting with `ERR:` indicates that expected output is an error message
// - expected output starting with `CONTAINS:` lists blocks (separated by `...` lines) that must appear in order
// - otherwise expected output is the complete generated text
//
// For example:
//
//	<CMakeCreator>
//	  <Common><required_cmake value="3.15"/></Common>
//	</CMakeCreator>
//	+++
//
//	ERR: Parameter 'project' not found in parameter list 'Common'
type FileTests struct {
	PathToTests string
	EvalFunc    Evaluate
}

// Run runs each test: enumerates each file within FileTests.PathToTests, splits and evaluates it using
// FileTests.EvalFunc.
func (f FileTests) Run(t *testing.T) {
	var files []string

	err := filepath.Walk(f.PathToTests, func(walkedPath string, fi os.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		files = append(files, walkedPath)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to enumerate filetests: %s", err)
	}

	if f.EvalFunc == nil {
		f.EvalFunc = DefaultEvaluate
	}

	for _, filePath := range files {
		t.Run(filePath, func(t *testing.T) {
			contents, err := os.ReadFile(filePath)
			if err != nil {
				t.Fatal(err)
			}

			pieces := strings.SplitN(string(contents), "\n+++\n\n", 2)

			if len(pieces) != 2 {
				t.Fatalf("expected file %s to include +++ separator", filePath)
			}
			expectedStr := pieces[1]

			result, testErr := f.EvalFunc(pieces[0], filepath.Base(filePath))

			switch {
			case strings.HasPrefix(expectedStr, "ERR:"):
				if testErr == nil {
					err = fmt.Errorf("expected eval error, but did not receive it")
				} else {
					resultStr := TrimTrailingMultilineWhitespace(testErr.UserErr().Error())

					expectedStr = strings.TrimPrefix(expectedStr, "ERR:")
					expectedStr = strings.TrimPrefix(expectedStr, " ")
					expectedStr = TrimTrailingMultilineWhitespace(expectedStr)
					err = f.expectEquals(resultStr, expectedStr)
				}
			case strings.HasPrefix(expectedStr, "CONTAINS:"):
				if testErr == nil {
					expectedStr = strings.TrimPrefix(expectedStr, "CONTAINS:\n")
					err = f.expectContainsInOrder(string(result.Content), strings.Split(expectedStr, "\n...\n"))
				} else {
					err = testErr.TestErr()
				}
			default:
				if testErr == nil {
					err = f.expectEquals(string(result.Content), expectedStr)
				} else {
					err = testErr.TestErr()
				}
			}

			if err != nil {
				t.Fatalf("%s", err)
			}
		})
	}
}

// TestErr captures an error result from a single test.
type TestErr struct {
	realErr error
	testErr error
}

// NewTestErr creates a new TestErr
func NewTestErr(realErr, testErr error) *TestErr {
	return &TestErr{realErr, testErr}
}

// UserErr yields the error returned to the user
func (e TestErr) UserErr() error { return e.realErr }

// TestErr yields the error wrapped with helpful test context
func (e TestErr) TestErr() error { return e.testErr }

func (f FileTests) expectEquals(resultStr, expectedStr string) error {
	if resultStr != expectedStr {
		diff := difflib.PPDiff(strings.Split(expectedStr, "\n"), strings.Split(resultStr, "\n"))
		return fmt.Errorf("not equal; diff expected...result:\n%s\n### result %d chars:\n>>>%s<<<", diff, len(resultStr), resultStr)
	}
	return nil
}

func (f FileTests) expectContainsInOrder(resultStr string, blocks []string) error {
	remaining := resultStr
	for _, block := range blocks {
		block = strings.TrimSuffix(block, "\n")
		idx := strings.Index(remaining, block)
		if idx < 0 {
			return fmt.Errorf("expected result to contain (after previous blocks):\n>>>%s<<<\n### result:\n>>>%s<<<", block, resultStr)
		}
		remaining = remaining[idx+len(block):]
	}
	return nil
}

// DefaultEvaluate parses src by the syntax named in associatedName's extension
// and generates with the bundled fragments and no date.
func DefaultEvaluate(src, associatedName string) (generator.Result, *TestErr) {
	var (
		doc *paramlist.Document
		err error
	)
	if strings.HasSuffix(associatedName, ".yamltest") {
		doc, err = paramlist.ParseYAML([]byte(src), "stdin")
	} else {
		doc, err = paramlist.ParseXML([]byte(src), "stdin")
	}
	if err != nil {
		return generator.Result{}, NewTestErr(err, fmt.Errorf("parse error: %v", err))
	}

	result, err := generator.Generate(doc, fragments.NewDefaultAssembler(), generator.Options{SourcePath: "stdin"})
	if err != nil {
		return generator.Result{}, NewTestErr(err, fmt.Errorf("generate error: %v", err))
	}
	return result, nil
}

// TrimTrailingMultilineWhitespace returns a string with trailing whitespace trimmed from every line as well
// as trimmed trailing empty lines
func TrimTrailingMultilineWhitespace(s string) string {
	var trimmedLines []string
	for _, line := range strings.Split(s, "\n") {
		trimmedLine := strings.TrimRight(line, "\t ")
		trimmedLines = append(trimmedLines, trimmedLine)
	}
	multiline := strings.Join(trimmedLines, "\n")
	return strings.TrimRight(multiline, "\n")
}
