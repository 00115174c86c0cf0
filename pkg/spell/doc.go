// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package spell provides the ability to suggest an exact spelling of a word.

In the context of cmakegen, this is useful for warnings that involve
misspelled option names.
*/
package spell
