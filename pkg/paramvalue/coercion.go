// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package paramvalue

import (
	"strconv"
	"strings"

	"carvel.dev/cmakegen/pkg/failure"
)

const (
	TagInt    = "int"
	TagLong   = "long"
	TagFloat  = "float"
	TagDouble = "double"
	TagBool   = "bool"
	TagString = "string"
)

// floatPrecision keeps 17 significant digits so that every float64
// survives Encode followed by Decode.
const floatPrecision = 16

var (
	trueSpellings  = []string{"1", "true", "True", "TRUE", "y", "yes", "Y", "Yes", "YES", "ON", "on", "On"}
	falseSpellings = []string{"0", "false", "False", "FALSE", "n", "no", "N", "No", "NO", "OFF", "off", "Off"}
)

// TrueSpellings returns a copy of the accepted spellings of true.
func TrueSpellings() []string { return append([]string(nil), trueSpellings...) }

// FalseSpellings returns a copy of the accepted spellings of false.
func FalseSpellings() []string { return append([]string(nil), falseSpellings...) }

// Encode produces the literal text and type tag for a value.
func Encode(v Value) (string, string) {
	switch v.kind {
	case KindFloat:
		return strconv.FormatFloat(v.f, 'e', floatPrecision, 64), TagFloat
	case KindBool:
		if v.b {
			return "true", TagBool
		}
		return "false", TagBool
	case KindInt:
		return strconv.FormatInt(v.i, 10), TagInt
	default:
		return v.s, TagString
	}
}

// Decode converts literal text into a Value. When tag is empty the kind is
// inferred from the text alone.
func Decode(literal, tag string) (Value, error) {
	if tag == "" {
		return infer(literal), nil
	}

	switch tag {
	case TagString:
		return NewString(literal), nil

	case TagInt, TagLong:
		i, err := strconv.ParseInt(literal, 10, 64)
		if err != nil {
			return Value{}, coercionErr(literal, tag)
		}
		return NewInt(i), nil

	case TagFloat, TagDouble:
		f, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return Value{}, coercionErr(literal, tag)
		}
		return NewFloat(f), nil

	case TagBool:
		if b, ok := spelledBool(literal); ok {
			return NewBool(b), nil
		}
		return Value{}, coercionErr(literal, tag)

	default:
		return Value{}, failure.New(failure.KindTypeCoercion, tag,
			"Unsupported type '%s' declared for value '%s'", tag, literal)
	}
}

// Toggle reports whether text spells an ON state. Anything not in the true
// spellings, including unrecognized text, is OFF.
func Toggle(text string) bool {
	b, ok := spelledBool(text)
	return ok && b
}

func infer(literal string) Value {
	// only plain decimal notation counts as numeric (no hex floats, no digit separators)
	decimal := !strings.ContainsAny(literal, "xXpP_")

	if f, err := strconv.ParseFloat(literal, 64); decimal && err == nil {
		if strings.Contains(literal, ".") {
			return NewFloat(f)
		}
		if i, err := strconv.ParseInt(literal, 10, 64); err == nil {
			return NewInt(i)
		}
	}
	if b, ok := spelledBool(literal); ok {
		return NewBool(b)
	}
	return NewString(literal)
}

func spelledBool(text string) (bool, bool) {
	for _, spelling := range trueSpellings {
		if text == spelling {
			return true, true
		}
	}
	for _, spelling := range falseSpellings {
		if text == spelling {
			return false, true
		}
	}
	return false, false
}

func coercionErr(literal, tag string) error {
	return failure.New(failure.KindTypeCoercion, literal,
		"Expected value '%s' to be of declared type '%s'", literal, tag)
}
