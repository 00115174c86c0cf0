// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package generate implements the command that turns a configuration document
into a CMakeLists.txt, or writes a sample document.
*/
package generate
