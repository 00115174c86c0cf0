// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package fragments loads named CMake text fragments and fills in their
"(@= key @)" placeholders.

Substitution is strict: a context key without a placeholder, or a
placeholder without a key, is a TemplateMismatch failure. Placeholder
syntax is distinct from CMake's own ${VAR} references, which pass through
untouched.
*/
package fragments
