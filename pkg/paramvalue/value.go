// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package paramvalue

import (
	"fmt"
	"strconv"
)

type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	default:
		panic(fmt.Sprintf("Unknown value kind %d", int(k)))
	}
}

// Value is a leaf parameter value. Exactly one payload is meaningful,
// selected by Kind. The zero Value is the empty String.
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
}

func NewInt(i int64) Value     { return Value{kind: KindInt, i: i} }
func NewFloat(f float64) Value { return Value{kind: KindFloat, f: f} }
func NewBool(b bool) Value     { return Value{kind: KindBool, b: b} }
func NewString(s string) Value { return Value{kind: KindString, s: s} }
func (v Value) Kind() Kind     { return v.kind }

func (v Value) Int() (int64, bool)     { return v.i, v.kind == KindInt }
func (v Value) Float() (float64, bool) { return v.f, v.kind == KindFloat }
func (v Value) Bool() (bool, bool)     { return v.b, v.kind == KindBool }
func (v Value) Str() (string, bool)    { return v.s, v.kind == KindString }

// Equal compares kind and payload. Floats compare with ==, so NaN is never
// equal to itself.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindBool:
		return v.b == other.b
	default:
		return v.s == other.s
	}
}

// String renders the value the way it would appear in generated text,
// which for strings is the raw string.
func (v Value) String() string {
	literal, _ := Encode(v)
	return literal
}

// GoString is used by %#v in test failure output.
func (v Value) GoString() string {
	literal, tag := Encode(v)
	return fmt.Sprintf("paramvalue.Value{%s: %s}", tag, strconv.Quote(literal))
}
