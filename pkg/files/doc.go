// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides primitives for loading data from file or file-like
Source's (local paths, in-memory bytes, bundled fs.FS entries) and for writing
the generated artifact to the filesystem.

Output is written through a pending temporary file that replaces the
destination in a single rename; a failed run never leaves a partial file.

cmakegen picks the document parser by File Type. For example, a File that is
TypeXML is parsed as an XML parameter list document.
*/
package files
