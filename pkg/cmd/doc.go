// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd assembles the cmakegen command tree: the root command generates
CMakeLists.txt, "version" prints the build version.
*/
package cmd
