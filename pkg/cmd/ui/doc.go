// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package ui provides a thin abstraction over user input and output (typically,
a tty device), including the overwrite confirmation prompt and debug logging.
*/
package ui
