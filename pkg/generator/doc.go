// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package generator produces CMakeLists.txt text from a paramlist.Document.

Generation runs ten phases in a fixed order: Header, IncludeDirs,
CompilerOptions, ModulesDir, Libraries, Options, TestingEnable,
MainSourcesList, PerTargetLoop and Footer. Each phase reads the document
and the State accumulated by earlier phases, appends a block of text and
returns an extended State. The first failing phase aborts generation.

Recognized options (USE_LAPACK, USE_OPENMP, USE_FFTW, USE_SQLITE3,
USE_MEMCHECK) map to a global fragment and, for most, a per-target
fragment. Unrecognized options are still declared with OPTION().
*/
package generator
