// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filepos provides the concept of Position: a source name (usually a
configuration document) and line number within that source.

File positions are crucial when reporting parse errors to the user. Parameters
built programmatically (rather than parsed) carry the zero-value Position
(see NewUnknownPosition()).
*/
package filepos
