// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package paramlist

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"carvel.dev/cmakegen/pkg/failure"
	"carvel.dev/cmakegen/pkg/filepos"
)

const (
	xmlValueAttr = "value"
	xmlTypeAttr  = "type"
)

type xmlElement struct {
	name     string
	attrs    map[string]string
	text     strings.Builder
	children []*xmlElement
	line     int
}

// ParseXML reads a document whose root element holds the groups, each
// group element holding parameter elements. A parameter's literal is its
// trimmed value attribute, or its trimmed text when the attribute is absent.
func ParseXML(data []byte, associatedName string) (*Document, error) {
	root, err := readXMLTree(data, associatedName)
	if err != nil {
		return nil, err
	}

	doc := NewDocument(root.name)

	for _, groupEl := range root.children {
		g := &Group{
			name:     groupEl.name,
			text:     strings.TrimSpace(groupEl.text.String()),
			position: filepos.NewPositionInFile(groupEl.line, associatedName),
		}
		for _, paramEl := range groupEl.children {
			p, err := newXMLParameter(paramEl, associatedName)
			if err != nil {
				return nil, err
			}
			g.params = append(g.params, p)
		}
		err := doc.appendParsedGroup(g)
		if err != nil {
			return nil, err
		}
	}

	return doc, nil
}

func newXMLParameter(el *xmlElement, associatedName string) (*Parameter, error) {
	p := &Parameter{
		name:     el.name,
		tag:      el.attrs[xmlTypeAttr],
		position: filepos.NewPositionInFile(el.line, associatedName),
	}

	if val, found := el.attrs[xmlValueAttr]; found {
		p.literal = strings.TrimSpace(val)
		p.hasLiteral = true
	} else if text := strings.TrimSpace(el.text.String()); len(text) > 0 {
		p.literal = text
		p.hasLiteral = true
	}

	if p.hasLiteral {
		err := p.decode()
		if err != nil {
			return nil, err
		}
	}

	for _, childEl := range el.children {
		child, err := newXMLParameter(childEl, associatedName)
		if err != nil {
			return nil, err
		}
		p.children = append(p.children, child)
	}

	return p, nil
}

func readXMLTree(data []byte, associatedName string) (*xmlElement, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.Strict = true

	var (
		root  *xmlElement
		stack []*xmlElement
	)

	for {
		line, _ := decoder.InputPos()

		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, parseErr(associatedName, line, err)
		}

		switch typedToken := token.(type) {
		case xml.StartElement:
			el := &xmlElement{name: typedToken.Name.Local, attrs: map[string]string{}, line: line}
			for _, attr := range typedToken.Attr {
				el.attrs[attr.Name.Local] = attr.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, parseErr(associatedName, line, errors.New("multiple root elements"))
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(typedToken)
			} else if len(bytes.TrimSpace(typedToken)) > 0 {
				return nil, parseErr(associatedName, line, errors.New("text outside of root element"))
			}
		}
	}

	if root == nil {
		return nil, failure.New(failure.KindParse, associatedName,
			"Parsing '%s': expected a root element", associatedName)
	}

	return root, nil
}

func parseErr(associatedName string, line int, err error) error {
	pos := filepos.NewUnknownPositionInFile(associatedName)
	if line > 0 {
		pos = filepos.NewPositionInFile(line, associatedName)
	}
	return failure.Wrap(failure.KindParse, associatedName, err, "Parsing %s", pos.AsString())
}
