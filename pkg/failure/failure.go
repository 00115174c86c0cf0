// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package failure

import (
	"errors"
	"fmt"
)

// Kind classifies a fatal condition. Every Kind aborts a generation run.
type Kind string

const (
	KindParse         Kind = "ParseError"
	KindNotFound      Kind = "NotFound"
	KindDuplicateList Kind = "DuplicateList"
	KindTemplate      Kind = "TemplateMismatch"
	KindRead          Kind = "ReadError"
	KindMissingField  Kind = "MissingField"
	KindTypeCoercion  Kind = "TypeCoercionError"
)

// Error is a classified failure that names the offending identifier
// (group, parameter, placeholder key, fragment or target).
type Error struct {
	Kind  Kind
	Ident string
	Msg   string
	Err   error
}

var _ error = &Error{}

func New(kind Kind, ident, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Ident: ident, Msg: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, ident string, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Ident: ident, Msg: fmt.Sprintf(format, args...), Err: err}
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var typedErr *Error
	if errors.As(err, &typedErr) {
		return typedErr.Kind, true
	}
	return "", false
}

// Is reports whether err carries the given Kind.
func Is(err error, kind Kind) bool {
	found, ok := KindOf(err)
	return ok && found == kind
}
