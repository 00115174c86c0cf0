// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package generator

import (
	"carvel.dev/cmakegen/pkg/fragments"
)

// Option is a recognized feature toggle and the fragments it contributes.
type Option struct {
	Name string
	// Global is appended once after the OPTION declarations.
	Global string
	// PerTarget is appended inside every target block; empty for none.
	PerTarget string
	// FindModule names a Find<Module>.cmake expected on CMAKE_MODULE_PATH.
	FindModule string
}

var optionRegistry = []Option{
	{Name: "USE_LAPACK", Global: fragments.Lapack, PerTarget: fragments.LapackTarget},
	{Name: "USE_OPENMP", Global: fragments.OpenMP, PerTarget: fragments.OpenMPTarget},
	{Name: "USE_FFTW", Global: fragments.FFTW, PerTarget: fragments.FFTWTarget, FindModule: "FFTW"},
	{Name: "USE_SQLITE3", Global: fragments.SQLite3, PerTarget: fragments.SQLite3Target},
	{Name: "USE_MEMCHECK", Global: fragments.MemCheck},
}

// RecognizedOptions returns a copy of the option registry.
func RecognizedOptions() []Option {
	return append([]Option(nil), optionRegistry...)
}

func optionNames() []string {
	var names []string
	for _, opt := range optionRegistry {
		names = append(names, opt.Name)
	}
	return names
}

func lookupOption(name string) (Option, bool) {
	for _, opt := range optionRegistry {
		if opt.Name == name {
			return opt, true
		}
	}
	return Option{}, false
}
