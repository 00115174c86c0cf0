// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package fragments_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"carvel.dev/cmakegen/pkg/failure"
	"carvel.dev/cmakegen/pkg/fragments"
	"carvel.dev/cmakegen/pkg/orderedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstitute(t *testing.T) {
	assembler := fragments.NewAssembler(fstest.MapFS{})

	ctx := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "name", Value: "Demo"},
		{Key: "version", Value: "3.15"},
	})

	result, err := assembler.Substitute("t.tpl",
		"project((@= name @)) # (@=name@)\ncmake_minimum_required(VERSION (@= version @))\nset(X ${Y})\n", ctx)
	require.NoError(t, err)
	assert.Equal(t, "project(Demo) # Demo\ncmake_minimum_required(VERSION 3.15)\nset(X ${Y})\n", result)
}

func TestSubstitutePlainFragment(t *testing.T) {
	assembler := fragments.NewAssembler(fstest.MapFS{})

	result, err := assembler.Substitute("plain.tpl", "enable_testing()\n", nil)
	require.NoError(t, err)
	assert.Equal(t, "enable_testing()\n", result)
}

func TestSubstituteDoesNotRescanValues(t *testing.T) {
	assembler := fragments.NewAssembler(fstest.MapFS{})

	ctx := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "a", Value: "(@= b @)"},
		{Key: "b", Value: "B"},
	})

	result, err := assembler.Substitute("t.tpl", "[(@= a @)][(@= b @)]", ctx)
	require.NoError(t, err)
	assert.Equal(t, "[(@= b @)][B]", result)
}

func TestSubstituteMismatch(t *testing.T) {
	assembler := fragments.NewAssembler(fstest.MapFS{})
	template := "project((@= name @))"

	cases := []struct {
		desc  string
		items []orderedmap.MapItem
		ident string
	}{
		{"extra key", []orderedmap.MapItem{{Key: "name", Value: "x"}, {Key: "date", Value: "d"}}, "date"},
		{"extra key listed first", []orderedmap.MapItem{{Key: "date", Value: "d"}, {Key: "name", Value: "x"}}, "date"},
		{"missing key", nil, "name"},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			ctx := orderedmap.NewMapWithItems(tc.items)
			for i := 0; i < 2; i++ {
				_, err := assembler.Substitute("base.tpl", template, ctx)
				require.Error(t, err)

				var typedErr *failure.Error
				require.ErrorAs(t, err, &typedErr)
				assert.Equal(t, failure.KindTemplate, typedErr.Kind)
				assert.Equal(t, tc.ident, typedErr.Ident)
				assert.Contains(t, err.Error(), "base.tpl")
			}
		})
	}
}

func TestSubstituteMalformedPlaceholders(t *testing.T) {
	assembler := fragments.NewAssembler(fstest.MapFS{})

	for _, template := range []string{
		"(@= a ",
		"a @) b",
		"(@= a (@= b @)",
		"(@ a @)",
		"(@= @)",
	} {
		t.Run(template, func(t *testing.T) {
			_, err := assembler.Substitute("bad.tpl", template, orderedmap.NewMap())
			require.Error(t, err)
			assert.True(t, failure.Is(err, failure.KindTemplate), "got %v", err)
		})
	}
}

func TestLoad(t *testing.T) {
	assembler := fragments.NewAssembler(fstest.MapFS{
		"Present.frag": &fstest.MapFile{Data: []byte("find_package(X)\n")},
	})

	text, err := assembler.Load("Present.frag")
	require.NoError(t, err)
	assert.Equal(t, "find_package(X)\n", text)

	_, err = assembler.Load("Missing.frag")
	require.Error(t, err)
	assert.True(t, failure.Is(err, failure.KindRead), "got %v", err)

	_, err = assembler.Render("Missing.frag", nil)
	assert.True(t, failure.Is(err, failure.KindRead), "got %v", err)
}

func TestDefaultCatalog(t *testing.T) {
	assembler := fragments.NewDefaultAssembler()

	staticFragments := []string{
		fragments.Lapack, fragments.LapackTarget,
		fragments.OpenMP, fragments.OpenMPTarget,
		fragments.FFTW, fragments.FFTWTarget,
		fragments.SQLite3, fragments.SQLite3Target,
		fragments.MemCheck, fragments.CompileFeatures,
	}
	for _, name := range staticFragments {
		text, err := assembler.Render(name, orderedmap.NewMap())
		require.NoError(t, err, name)
		assert.NotEmpty(t, strings.TrimSpace(text), name)
	}

	text, err := assembler.Load(fragments.Header)
	require.NoError(t, err)
	tpl, err := fragments.ParseTemplate(text, fragments.Header)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"requiredVersion", "projectName", "sourceDocumentPath", "generationDate"}, tpl.Keys())

	text, err = assembler.Render(fragments.DefaultXMLTestData, orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "targetStem", Value: "main"},
	}))
	require.NoError(t, err)
	assert.Contains(t, text, `"-f main.xml"`)
}
