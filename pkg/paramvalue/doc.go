// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package paramvalue converts between the literal text of a configuration leaf
and one of four typed kinds: int, float, bool and string.

A declared type tag ("int", "long", "float", "double", "bool", "string") must
coerce the literal or decoding fails. Without a tag the kind is inferred:
numeric text containing a '.' is a float, other numeric text is an int,
one of the fixed boolean spellings is a bool, and everything else is a string.
*/
package paramvalue
