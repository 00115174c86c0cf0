// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package generate

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"carvel.dev/cmakegen/pkg/cmd/ui"
	"carvel.dev/cmakegen/pkg/failure"
	"carvel.dev/cmakegen/pkg/paramlist"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectXML = `<CMakeCreator>
  <Common>
    <required_cmake value="3.15"/>
    <project value="Demo"/>
  </Common>
  <BuildTargets>
    <Target><main value="main.cpp"/></Target>
  </BuildTargets>
</CMakeCreator>
`

type testUI struct {
	ui.TTY
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestUI(stdin string) testUI {
	color.NoColor = true
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return testUI{ui.NewCustomWriterTTY(false, strings.NewReader(stdin), stdout, stderr), stdout, stderr}
}

func newTestOptions(t *testing.T, dir string) *GenerateOptions {
	t.Helper()
	dataFile := filepath.Join(dir, "project.xml")
	require.NoError(t, os.WriteFile(dataFile, []byte(projectXML), 0600))

	o := NewOptions()
	o.DataFile = dataFile
	o.OutputPath = filepath.Join(dir, DefaultOutputPath)
	o.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return o
}

func TestGenerateWritesNewFile(t *testing.T) {
	dir := t.TempDir()
	o := newTestOptions(t, dir)
	tty := newTestUI("")

	require.NoError(t, o.RunWithUI(tty))

	content, err := os.ReadFile(o.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# 2024-03-01 CMakeLists.txt generated by cmakegen")
	assert.Contains(t, string(content), "# Source document : "+o.DataFile)
	assert.Contains(t, tty.stdout.String(), "File created : "+o.OutputPath)
}

func TestGenerateNoTimestamp(t *testing.T) {
	dir := t.TempDir()
	o := newTestOptions(t, dir)
	o.NoTimestamp = true

	require.NoError(t, o.RunWithUI(newTestUI("")))

	content, err := os.ReadFile(o.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "\n# CMakeLists.txt generated by cmakegen\n")
}

func TestGenerateVerboseEchoesOutput(t *testing.T) {
	dir := t.TempDir()
	o := newTestOptions(t, dir)
	o.Verbose = true
	tty := newTestUI("")

	require.NoError(t, o.RunWithUI(tty))

	content, err := os.ReadFile(o.OutputPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(tty.stdout.String(), string(content)))
}

func TestExistingFileDeclinedIsUnchanged(t *testing.T) {
	for _, answer := range []string{"n\n", "\n", "", "yes\n", "Y\n"} {
		t.Run(answer, func(t *testing.T) {
			dir := t.TempDir()
			o := newTestOptions(t, dir)

			handWritten := []byte("# hand written\nproject(Keep)\n")
			require.NoError(t, os.WriteFile(o.OutputPath, handWritten, 0644))

			tty := newTestUI(answer)
			require.NoError(t, o.RunWithUI(tty))

			content, err := os.ReadFile(o.OutputPath)
			require.NoError(t, err)
			assert.Equal(t, handWritten, content)
			assert.Contains(t, tty.stdout.String(), "Overwrite existing "+o.OutputPath+" ? y)es n)o [n]  :  ")
			assert.Contains(t, tty.stdout.String(), "Leaving "+o.OutputPath+" unchanged")

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Len(t, entries, 2, "no temporary files left behind")
		})
	}
}

func TestExistingFileConfirmedIsReplaced(t *testing.T) {
	dir := t.TempDir()
	o := newTestOptions(t, dir)
	require.NoError(t, os.WriteFile(o.OutputPath, []byte("project(Old)\n"), 0644))

	tty := newTestUI("y\n")
	require.NoError(t, o.RunWithUI(tty))

	content, err := os.ReadFile(o.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "project(Demo)")
	assert.Contains(t, tty.stdout.String(), "Overwrite existing")
}

func TestExistingFileForcedIsReplacedWithoutPrompt(t *testing.T) {
	dir := t.TempDir()
	o := newTestOptions(t, dir)
	o.Force = true
	require.NoError(t, os.WriteFile(o.OutputPath, []byte("project(Old)\n"), 0644))

	tty := newTestUI("")
	require.NoError(t, o.RunWithUI(tty))

	content, err := os.ReadFile(o.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "project(Demo)")
	assert.NotContains(t, tty.stdout.String(), "Overwrite existing")
}

func TestIdenticalOutputSkipsPrompt(t *testing.T) {
	dir := t.TempDir()
	o := newTestOptions(t, dir)

	require.NoError(t, o.RunWithUI(newTestUI("")))

	tty := newTestUI("")
	require.NoError(t, o.RunWithUI(tty))
	assert.NotContains(t, tty.stdout.String(), "Overwrite existing")
	assert.Contains(t, tty.stdout.String(), "File unchanged : "+o.OutputPath)
}

func TestFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	o := newTestOptions(t, dir)
	require.NoError(t, os.WriteFile(o.DataFile, []byte(`<CMakeCreator>
  <Common><required_cmake value="3.15"/><project value="Demo"/></Common>
  <BuildTargets><Target><ctest value="ON"/></Target></BuildTargets>
</CMakeCreator>`), 0600))

	err := o.RunWithUI(newTestUI(""))
	require.Error(t, err)
	assert.True(t, failure.Is(err, failure.KindMissingField), "got %v", err)

	_, statErr := os.Stat(o.OutputPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFailureKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	o := newTestOptions(t, dir)
	o.Force = true
	require.NoError(t, os.WriteFile(o.DataFile, []byte(`<CMakeCreator><Common><project value="Demo"/></Common></CMakeCreator>`), 0600))

	handWritten := []byte("project(Keep)\n")
	require.NoError(t, os.WriteFile(o.OutputPath, handWritten, 0644))

	err := o.RunWithUI(newTestUI(""))
	require.Error(t, err)
	assert.True(t, failure.Is(err, failure.KindNotFound), "got %v", err)

	content, err := os.ReadFile(o.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, handWritten, content)
}

func TestMissingDataFile(t *testing.T) {
	o := NewOptions()
	err := o.RunWithUI(newTestUI(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--data-file")

	o.DataFile = filepath.Join(t.TempDir(), "absent.xml")
	err = o.RunWithUI(newTestUI(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.xml")
}

func TestUnsupportedDocumentType(t *testing.T) {
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "project.json")
	require.NoError(t, os.WriteFile(dataFile, []byte("{}"), 0600))

	o := NewOptions()
	o.DataFile = dataFile
	err := o.RunWithUI(newTestUI(""))
	require.Error(t, err)
	assert.True(t, failure.Is(err, failure.KindParse), "got %v", err)
}

func TestWarningsGoToStderr(t *testing.T) {
	doc, err := paramlist.ParseXML([]byte(`<CMakeCreator>
  <Common><required_cmake value="3.15"/><project value="Demo"/></Common>
  <Options><USE_FFTW value="ON"/></Options>
</CMakeCreator>`), "fftw.xml")
	require.NoError(t, err)

	tty := newTestUI("")
	o := NewOptions()
	result, err := o.RunWithDocument(doc, tty)
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, tty.stderr.String(), "Warning: cmake_modules directory path containing FindFFTW.cmake not set.")
	assert.Empty(t, tty.stdout.String())
}

func TestSamplesAreValidDocuments(t *testing.T) {
	for _, name := range []string{annotatedSample, basicSample} {
		t.Run(name, func(t *testing.T) {
			data, err := samples.ReadFile(name)
			require.NoError(t, err)

			doc, err := paramlist.ParseXML(data, name)
			require.NoError(t, err)

			o := NewOptions()
			o.NoTimestamp = true
			result, err := o.RunWithDocument(doc, newTestUI(""))
			require.NoError(t, err)
			assert.Contains(t, string(result.Content), `STREQUAL "sample.cpp"`)
			assert.Empty(t, result.Warnings)
		})
	}
}

func TestWriteSample(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd) //nolint:errcheck

	o := NewOptions()
	o.BasicSample = true
	tty := newTestUI("")
	require.NoError(t, o.RunWithUI(tty))

	expected, err := samples.ReadFile(basicSample)
	require.NoError(t, err)
	written, err := os.ReadFile(filepath.Join(dir, SamplePath))
	require.NoError(t, err)
	assert.Equal(t, expected, written)
	assert.Contains(t, tty.stdout.String(), SamplePath)

	_, err = os.Stat(filepath.Join(dir, DefaultOutputPath))
	assert.True(t, os.IsNotExist(err), "sample mode does not generate")
}
