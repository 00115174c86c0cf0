// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package paramlist

import (
	"carvel.dev/cmakegen/pkg/failure"
	"carvel.dev/cmakegen/pkg/filepos"
	"carvel.dev/cmakegen/pkg/paramvalue"
)

func NewDocument(rootName string) *Document {
	return &Document{rootName: rootName}
}

// AddGroup appends an empty group. Unlike parsing, building a document
// does not allow repeating a group name.
func (d *Document) AddGroup(name string) (*Group, error) {
	if d.HasGroup(name) {
		return nil, failure.New(failure.KindDuplicateList, name,
			"Duplicate parameter lists not allowed: '%s'", name)
	}
	g := &Group{name: name, position: filepos.NewUnknownPosition()}
	d.groups = append(d.groups, g)
	return g, nil
}

// AddParameter appends a parameter to the first group named group. A nil
// value creates a marker parameter that may later receive children.
func (d *Document) AddParameter(group, name string, value *paramvalue.Value) (*Parameter, error) {
	g, err := d.Group(group)
	if err != nil {
		return nil, err
	}
	p := newParameter(name, value)
	g.params = append(g.params, p)
	return p, nil
}

// AddParameterChild adds a child to every parameter named param in group,
// creating the parameter first when the group has none.
func (d *Document) AddParameterChild(group, param, child string, value *paramvalue.Value) error {
	g, err := d.Group(group)
	if err != nil {
		return err
	}

	if len(g.ParametersNamed(param)) == 0 {
		_, err := d.AddParameter(group, param, nil)
		if err != nil {
			return err
		}
	}

	for _, instance := range g.ParametersNamed(param) {
		if instance.hasLiteral {
			return failure.New(failure.KindTypeCoercion, param,
				"Adding child '%s' to parameter '%s' in parameter list '%s' that holds a value is not allowed",
				child, param, group)
		}
		if _, found := instance.Child(child); found {
			return failure.New(failure.KindDuplicateList, child,
				"Duplicate child parameter '%s' not allowed in parameter '%s' of parameter list '%s'",
				child, param, group)
		}
		instance.children = append(instance.children, newParameter(child, value))
	}
	return nil
}

func newParameter(name string, value *paramvalue.Value) *Parameter {
	p := &Parameter{name: name, position: filepos.NewUnknownPosition()}
	if value != nil {
		p.literal, p.tag = paramvalue.Encode(*value)
		p.hasLiteral = true
		p.value = *value
	}
	return p
}
