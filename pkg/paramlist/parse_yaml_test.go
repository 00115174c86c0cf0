// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package paramlist_test

import (
	"testing"

	"carvel.dev/cmakegen/pkg/failure"
	"carvel.dev/cmakegen/pkg/paramlist"
	"carvel.dev/cmakegen/pkg/paramvalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
Common:
  required_cmake: "3.15"
  project: Demo
  IncludeDirs:
    dir: [include, third_party]
  threads: !!int 4
  marker:
  base: &base
    libDir: libs/core
    libName: core
  Library: *base
Options:
  USE_LAPACK: "ON"
BuildTargets:
  Target:
  - main: main.cpp
    ctest: "true"
  - main: other.cpp
ProjectDir:
- dir: first
  index: 2
- dir: second
  index: 1
`

func TestParseYAMLLookups(t *testing.T) {
	doc, err := paramlist.ParseYAML([]byte(sampleYAML), "demo.yml")
	require.NoError(t, err)

	text, err := doc.Text("Common", "project")
	require.NoError(t, err)
	assert.Equal(t, "Demo", text)

	val, err := doc.Value("Common", "threads")
	require.NoError(t, err)
	assert.Equal(t, paramvalue.NewInt(4), val)

	dirs, err := doc.Parameter("Common", "IncludeDirs")
	require.NoError(t, err)
	require.Len(t, dirs.ChildrenNamed("dir"), 2)
	assert.Equal(t, "third_party", dirs.ChildrenNamed("dir")[1].Text())

	marker, err := doc.Parameter("Common", "marker")
	require.NoError(t, err)
	assert.False(t, marker.HasLiteral())
	assert.False(t, marker.IsContainer())

	lib, err := doc.Parameter("Common", "Library")
	require.NoError(t, err)
	libName, found := lib.Child("libName")
	require.True(t, found)
	assert.Equal(t, "core", libName.Text())

	val, err = doc.Value("Options", "USE_LAPACK")
	require.NoError(t, err)
	assert.Equal(t, paramvalue.NewBool(true), val)

	targets, err := doc.Children("BuildTargets", "Target")
	require.NoError(t, err)
	require.Len(t, targets, 2)

	groups := paramlist.SortByOrderKey(doc.Groups("ProjectDir"))
	require.Len(t, groups, 2)
	dir, _ := groups[0].Parameter("dir")
	assert.Equal(t, "second", dir.Text())
}

func TestParseYAMLExplicitTagMismatch(t *testing.T) {
	_, err := paramlist.ParseYAML([]byte("Common:\n  threads: !!int four\n"), "bad.yml")
	require.Error(t, err)
	assert.True(t, failure.Is(err, failure.KindParse) || failure.Is(err, failure.KindTypeCoercion), "got %v", err)
}

func TestParseYAMLShapeErrors(t *testing.T) {
	cases := map[string]string{
		"scalar document":  "just text\n",
		"list document":    "- a\n- b\n",
		"nested sequences": "Common:\n  dirs:\n  - [a, b]\n",
		"invalid syntax":   "Common: [unclosed\n",
		"empty":            "",
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := paramlist.ParseYAML([]byte(input), "shape.yml")
			require.Error(t, err)
			assert.True(t, failure.Is(err, failure.KindParse), "got %v", err)
		})
	}
}

func TestParseYAMLRejectsRepeatedNonRepeatableGroup(t *testing.T) {
	t.Run("sequence of groups", func(t *testing.T) {
		input := `
Common:
- project: A
- IncludeDirs:
    dir: extra
`
		_, err := paramlist.ParseYAML([]byte(input), "dup.yml")
		require.Error(t, err)
		assert.True(t, failure.Is(err, failure.KindDuplicateList), "got %v", err)
		assert.Contains(t, err.Error(), "dup.yml:4")
	})

	t.Run("repeated key", func(t *testing.T) {
		input := `
Options:
  USE_LAPACK: "ON"
Options:
  USE_OPENMP: "ON"
`
		_, err := paramlist.ParseYAML([]byte(input), "dup.yml")
		require.Error(t, err)
	})

	t.Run("single element sequence", func(t *testing.T) {
		doc, err := paramlist.ParseYAML([]byte("Common:\n- project: A\n"), "single.yml")
		require.NoError(t, err)
		text, err := doc.Text("Common", "project")
		require.NoError(t, err)
		assert.Equal(t, "A", text)
	})
}
