// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package orderedmap provides a map implementation where the order of keys is
maintained (unlike the native Go map).

Fragment substitution contexts are ordered maps so that validation reports
the first offending key in a stable order, keeping cmakegen deterministic.
*/
package orderedmap
