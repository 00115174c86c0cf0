// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package fragments

import (
	"fmt"
	"strings"

	"carvel.dev/cmakegen/pkg/failure"
	"carvel.dev/cmakegen/pkg/filepos"
)

// Template is a fragment split into literal text and placeholder segments.
type Template struct {
	name     string
	segments []segment
}

type segment struct {
	text     string
	key      string
	isToken  bool
	position *filepos.Position
}

// Keys returns the placeholder keys in order of first appearance.
func (t *Template) Keys() []string {
	var keys []string
	seen := map[string]struct{}{}
	for _, seg := range t.segments {
		if !seg.isToken {
			continue
		}
		if _, found := seen[seg.key]; !found {
			seen[seg.key] = struct{}{}
			keys = append(keys, seg.key)
		}
	}
	return keys
}

func (t *Template) HasKey(key string) bool {
	for _, seg := range t.segments {
		if seg.isToken && seg.key == key {
			return true
		}
	}
	return false
}

// ParseTemplate splits data at "(@= key @)" tokens. Literal text between
// tokens is kept byte for byte.
func ParseTemplate(data, name string) (*Template, error) {
	tpl := &Template{name: name}

	var (
		lastChar  rune
		currLine  = 1
		currCol   = 1
		inToken   bool
		start     int
		startLine = 1
	)

	for i, currChar := range data {
		if lastChar == '(' && currChar == '@' {
			if inToken {
				return nil, tokenErr(name, "Unexpected placeholder opening '(@' at line %d col %d", currLine, currCol)
			}
			tpl.segments = append(tpl.segments, segment{
				text:     data[start : i-1],
				position: filepos.NewPositionInFile(startLine, name),
			})
			inToken = true
			start = i + 1
			startLine = currLine
			// keep "(@)" from closing the token it just opened
			currChar = 0
		}

		if lastChar == '@' && currChar == ')' {
			if !inToken {
				return nil, tokenErr(name, "Unexpected placeholder closing '@)' at line %d col %d", currLine, currCol)
			}
			seg, err := newTokenSegment(data[start:i-1], filepos.NewPositionInFile(startLine, name))
			if err != nil {
				return nil, err
			}
			tpl.segments = append(tpl.segments, seg)
			inToken = false
			start = i + 1
			startLine = currLine
			currChar = 0
		}

		if currChar == '\n' {
			currLine++
			currCol = 1
		} else {
			currCol++
		}

		lastChar = currChar
	}

	if inToken {
		return nil, tokenErr(name, "Missing placeholder closing '@)' at line %d col %d", currLine, currCol)
	}

	tpl.segments = append(tpl.segments, segment{
		text:     data[start:],
		position: filepos.NewPositionInFile(startLine, name),
	})

	return tpl, nil
}

func newTokenSegment(content string, pos *filepos.Position) (segment, error) {
	if !strings.HasPrefix(content, "=") {
		return segment{}, failure.New(failure.KindTemplate, pos.GetFile(),
			"Expected placeholder at %s to start with '(@=' (got '(@%s@)')", pos.AsString(), content)
	}
	key := strings.TrimSpace(strings.TrimPrefix(content, "="))
	if len(key) == 0 {
		return segment{}, failure.New(failure.KindTemplate, pos.GetFile(),
			"Expected placeholder at %s to name a key", pos.AsString())
	}
	return segment{key: key, isToken: true, position: pos}, nil
}

func tokenErr(name, format string, args ...interface{}) error {
	return failure.New(failure.KindTemplate, name, "Parsing fragment '%s': %s", name, fmt.Sprintf(format, args...))
}
