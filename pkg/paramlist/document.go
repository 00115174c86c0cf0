// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package paramlist

import (
	"sort"
	"strconv"
	"strings"

	"carvel.dev/cmakegen/pkg/failure"
	"carvel.dev/cmakegen/pkg/filepos"
	"carvel.dev/cmakegen/pkg/paramvalue"
)

// OrderKeyParameter names the child that orders repeated groups.
const OrderKeyParameter = "index"

const defaultOrderKey = "1"

// repeatableGroups may appear more than once at the top level of a parsed
// document; any other name must be unique.
var repeatableGroups = []string{"ProjectDir"}

// IsRepeatable reports whether a group name may repeat in a parsed document.
func IsRepeatable(name string) bool {
	for _, repeatable := range repeatableGroups {
		if name == repeatable {
			return true
		}
	}
	return false
}

// Document is a parsed (or programmatically built) configuration document:
// an ordered sequence of named parameter groups. Once built it is only read.
type Document struct {
	rootName string
	groups   []*Group
}

// Group is a named, ordered collection of parameters. Only repeatable
// names (e.g. ProjectDir) may appear more than once in a parsed document.
type Group struct {
	name     string
	text     string
	params   []*Parameter
	position *filepos.Position
}

// Parameter is either a leaf holding a literal (and its decoded value) or a
// container of nested parameters. A parameter with neither is a marker.
type Parameter struct {
	name       string
	tag        string
	literal    string
	hasLiteral bool
	value      paramvalue.Value
	children   []*Parameter
	position   *filepos.Position
}

func (d *Document) RootName() string { return d.rootName }
func (d *Document) AllGroups() []*Group {
	return append([]*Group(nil), d.groups...)
}

func (d *Document) HasGroup(name string) bool {
	_, found := d.findGroup(name)
	return found
}

func (d *Document) HasParameter(group, name string) bool {
	g, found := d.findGroup(group)
	if !found {
		return false
	}
	_, found = g.Parameter(name)
	return found
}

// Group returns the first group with the given name.
func (d *Document) Group(name string) (*Group, error) {
	g, found := d.findGroup(name)
	if !found {
		return nil, failure.New(failure.KindNotFound, name, "Parameter list '%s' not found", name)
	}
	return g, nil
}

// Groups returns every group with the given name in document order.
func (d *Document) Groups(name string) []*Group {
	var result []*Group
	for _, g := range d.groups {
		if g.name == name {
			result = append(result, g)
		}
	}
	return result
}

func (d *Document) Parameter(group, name string) (*Parameter, error) {
	g, err := d.Group(group)
	if err != nil {
		return nil, err
	}
	p, found := g.Parameter(name)
	if !found {
		return nil, failure.New(failure.KindNotFound, name,
			"Parameter '%s' not found in parameter list '%s'", name, group)
	}
	return p, nil
}

func (d *Document) Value(group, name string) (paramvalue.Value, error) {
	p, err := d.Parameter(group, name)
	if err != nil {
		return paramvalue.Value{}, err
	}
	return p.Value()
}

// ValueOrDefault never fails: any absence (group, parameter or literal)
// yields def.
func (d *Document) ValueOrDefault(group, name string, def paramvalue.Value) paramvalue.Value {
	val, err := d.Value(group, name)
	if err != nil {
		return def
	}
	return val
}

// Text returns the trimmed literal without type coercion.
func (d *Document) Text(group, name string) (string, error) {
	p, err := d.Parameter(group, name)
	if err != nil {
		return "", err
	}
	if !p.hasLiteral {
		return "", failure.New(failure.KindNotFound, name,
			"Parameter '%s' in parameter list '%s' has no value", name, group)
	}
	return p.Text(), nil
}

func (d *Document) ChildNames(group string) ([]string, error) {
	g, err := d.Group(group)
	if err != nil {
		return nil, err
	}
	names := []string{}
	for _, p := range g.params {
		names = append(names, p.name)
	}
	return names, nil
}

func (d *Document) Children(group, childName string) ([]*Parameter, error) {
	g, err := d.Group(group)
	if err != nil {
		return nil, err
	}
	return g.ParametersNamed(childName), nil
}

// appendParsedGroup adds a parsed group, rejecting a repeated name unless
// the name is repeatable.
func (d *Document) appendParsedGroup(g *Group) error {
	if !IsRepeatable(g.name) {
		if first, found := d.findGroup(g.name); found {
			return failure.New(failure.KindDuplicateList, g.name,
				"Duplicate parameter list '%s' at %s (first declared at %s)",
				g.name, g.position.AsString(), first.position.AsString())
		}
	}
	d.groups = append(d.groups, g)
	return nil
}

func (d *Document) findGroup(name string) (*Group, bool) {
	for _, g := range d.groups {
		if g.name == name {
			return g, true
		}
	}
	return nil, false
}

func (g *Group) Name() string                             { return g.name }
func (g *Group) Text() string                             { return g.text }
func (g *Group) Position() *filepos.Position              { return g.position }
func (g *Group) Parameters() []*Parameter                 { return append([]*Parameter(nil), g.params...) }
func (g *Group) Parameter(name string) (*Parameter, bool) { return findParameter(g.params, name) }

func (g *Group) ParametersNamed(name string) []*Parameter {
	return filterParameters(g.params, name)
}

// OrderKey is the text of the group's index child, "1" when absent.
func (g *Group) OrderKey() string {
	p, found := g.Parameter(OrderKeyParameter)
	if !found || !p.hasLiteral {
		return defaultOrderKey
	}
	return p.Text()
}

// SortByOrderKey returns groups stably sorted by OrderKey. Keys that are
// both integers compare numerically; otherwise they compare as text.
func SortByOrderKey(groups []*Group) []*Group {
	sorted := append([]*Group(nil), groups...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return orderKeyLess(sorted[i].OrderKey(), sorted[j].OrderKey())
	})
	return sorted
}

func orderKeyLess(a, b string) bool {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)
	if aErr == nil && bErr == nil {
		return ai < bi
	}
	return a < b
}

func (p *Parameter) Name() string                { return p.name }
func (p *Parameter) Tag() string                 { return p.tag }
func (p *Parameter) Position() *filepos.Position { return p.position }
func (p *Parameter) HasLiteral() bool            { return p.hasLiteral }
func (p *Parameter) IsContainer() bool           { return len(p.children) > 0 }
func (p *Parameter) Children() []*Parameter      { return append([]*Parameter(nil), p.children...) }

// Literal is the raw literal as written; found is false for containers
// and markers.
func (p *Parameter) Literal() (string, bool) { return p.literal, p.hasLiteral }

// Text is the trimmed literal, empty when there is none.
func (p *Parameter) Text() string { return strings.TrimSpace(p.literal) }

func (p *Parameter) Value() (paramvalue.Value, error) {
	if !p.hasLiteral {
		return paramvalue.Value{}, failure.New(failure.KindNotFound, p.name,
			"Parameter '%s' has no value", p.name)
	}
	return p.value, nil
}

func (p *Parameter) Child(name string) (*Parameter, bool) { return findParameter(p.children, name) }

func (p *Parameter) ChildrenNamed(name string) []*Parameter {
	return filterParameters(p.children, name)
}

func findParameter(params []*Parameter, name string) (*Parameter, bool) {
	for _, p := range params {
		if p.name == name {
			return p, true
		}
	}
	return nil, false
}

func filterParameters(params []*Parameter, name string) []*Parameter {
	var result []*Parameter
	for _, p := range params {
		if p.name == name {
			result = append(result, p)
		}
	}
	return result
}
