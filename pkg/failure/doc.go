// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package failure holds the closed set of fatal error kinds reported by cmakegen.

Library packages return *Error values so that the command layer can render a
labeled banner with the offending identifier without string matching.
*/
package failure
