// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package spell_test

import (
	"testing"

	"carvel.dev/cmakegen/pkg/spell"
	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"USE_LAPACK", "USE_LAPAK", 1},
		{"USE_FFTW", "USE_FTTW", 1},
		{"USE_FFTW", "USE_FTW3", 2},
		{"héllo", "hello", 1},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, spell.Distance(tc.a, tc.b), "%q -> %q", tc.a, tc.b)
		assert.Equal(t, tc.expected, spell.Distance(tc.b, tc.a), "%q -> %q", tc.b, tc.a)
	}
}

func TestSuggest(t *testing.T) {
	candidates := []string{"USE_LAPACK", "USE_OPENMP", "USE_FFTW", "USE_SQLITE3", "USE_MEMCHECK"}

	cases := map[string]string{
		"USE_LAPAK":   "USE_LAPACK",
		"use_lapack":  "USE_LAPACK",
		"USE_OPEN_MP": "USE_OPENMP",
		"USE_SQLITE":  "USE_SQLITE3",
		"USE_FFTW3":   "USE_FFTW",
	}
	for word, expected := range cases {
		suggestion, found := spell.Suggest(word, candidates)
		assert.True(t, found, word)
		assert.Equal(t, expected, suggestion, word)
	}

	for _, word := range []string{"USE_LAPACK", "USE_CUSTOM", "BUILD_DOCS", ""} {
		_, found := spell.Suggest(word, candidates)
		assert.False(t, found, word)
	}
}
