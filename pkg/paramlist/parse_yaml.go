// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package paramlist

import (
	"fmt"

	"carvel.dev/cmakegen/pkg/failure"
	"carvel.dev/cmakegen/pkg/filepos"
	"carvel.dev/cmakegen/pkg/paramvalue"
	"gopkg.in/yaml.v3"
)

var yamlExplicitTags = map[string]string{
	"!!int":   paramvalue.TagInt,
	"!!float": paramvalue.TagFloat,
	"!!bool":  paramvalue.TagBool,
	"!!str":   paramvalue.TagString,
}

// ParseYAML reads a document whose top-level mapping keys are group names.
// A sequence of mappings under a repeatable key repeats that group. Inside a group,
// scalars are leaves, mappings are containers and sequences repeat a
// parameter name. Only explicitly tagged scalars carry a declared type.
func ParseYAML(data []byte, associatedName string) (*Document, error) {
	var root yaml.Node

	err := yaml.Unmarshal(data, &root)
	if err != nil {
		return nil, failure.Wrap(failure.KindParse, associatedName, err, "Parsing '%s'", associatedName)
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, failure.New(failure.KindParse, associatedName,
			"Parsing '%s': expected a document with a top-level mapping", associatedName)
	}

	top := resolveAlias(root.Content[0])
	if top.Kind != yaml.MappingNode {
		return nil, yamlShapeErr(associatedName, top, "expected a top-level mapping of parameter lists")
	}

	doc := NewDocument("")

	for i := 0; i+1 < len(top.Content); i += 2 {
		keyNode, valNode := top.Content[i], resolveAlias(top.Content[i+1])

		var groupNodes []*yaml.Node
		if valNode.Kind == yaml.SequenceNode {
			if !IsRepeatable(keyNode.Value) && len(valNode.Content) > 1 {
				return nil, failure.New(failure.KindDuplicateList, keyNode.Value,
					"Duplicate parameter list '%s' at %s (parameter list '%s' is not repeatable)",
					keyNode.Value, yamlPosition(valNode.Content[1], associatedName).AsString(), keyNode.Value)
			}
			groupNodes = valNode.Content
		} else {
			groupNodes = []*yaml.Node{valNode}
		}

		for _, groupNode := range groupNodes {
			g, err := newYAMLGroup(keyNode.Value, resolveAlias(groupNode), associatedName)
			if err != nil {
				return nil, err
			}
			err = doc.appendParsedGroup(g)
			if err != nil {
				return nil, err
			}
		}
	}

	return doc, nil
}

func newYAMLGroup(name string, node *yaml.Node, associatedName string) (*Group, error) {
	g := &Group{name: name, position: yamlPosition(node, associatedName)}

	switch node.Kind {
	case yaml.ScalarNode:
		if !isYAMLNull(node) {
			g.text = node.Value
		}
		return g, nil

	case yaml.MappingNode:
		params, err := newYAMLParameters(node, associatedName)
		if err != nil {
			return nil, err
		}
		g.params = params
		return g, nil

	default:
		return nil, yamlShapeErr(associatedName, node, fmt.Sprintf("expected parameter list '%s' to be a mapping", name))
	}
}

func newYAMLParameters(mapping *yaml.Node, associatedName string) ([]*Parameter, error) {
	var params []*Parameter

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		name, valNode := mapping.Content[i].Value, resolveAlias(mapping.Content[i+1])

		var paramNodes []*yaml.Node
		if valNode.Kind == yaml.SequenceNode {
			paramNodes = valNode.Content
		} else {
			paramNodes = []*yaml.Node{valNode}
		}

		for _, paramNode := range paramNodes {
			p, err := newYAMLParameter(name, resolveAlias(paramNode), associatedName)
			if err != nil {
				return nil, err
			}
			params = append(params, p)
		}
	}

	return params, nil
}

func newYAMLParameter(name string, node *yaml.Node, associatedName string) (*Parameter, error) {
	p := &Parameter{name: name, position: yamlPosition(node, associatedName)}

	switch node.Kind {
	case yaml.ScalarNode:
		if isYAMLNull(node) {
			return p, nil
		}
		p.literal = node.Value
		p.hasLiteral = true
		if node.Style&yaml.TaggedStyle != 0 {
			p.tag = yamlExplicitTags[node.Tag]
		}
		return p, p.decode()

	case yaml.MappingNode:
		children, err := newYAMLParameters(node, associatedName)
		if err != nil {
			return nil, err
		}
		p.children = children
		return p, nil

	default:
		return nil, yamlShapeErr(associatedName, node, fmt.Sprintf("unexpected nested sequence in parameter '%s'", name))
	}
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func isYAMLNull(node *yaml.Node) bool {
	return node.Tag == "!!null" && node.Style&yaml.TaggedStyle == 0
}

func yamlPosition(node *yaml.Node, associatedName string) *filepos.Position {
	if node.Line > 0 {
		return filepos.NewPositionInFile(node.Line, associatedName)
	}
	return filepos.NewUnknownPositionInFile(associatedName)
}

func yamlShapeErr(associatedName string, node *yaml.Node, msg string) error {
	return failure.New(failure.KindParse, associatedName,
		"Parsing %s: %s", yamlPosition(node, associatedName).AsString(), msg)
}
