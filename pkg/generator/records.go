// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package generator

import (
	"fmt"
	"strings"

	"carvel.dev/cmakegen/pkg/failure"
	"carvel.dev/cmakegen/pkg/paramlist"
	"carvel.dev/cmakegen/pkg/paramvalue"
)

const (
	commonGroup  = "Common"
	optionsGroup = "Options"
	targetsGroup = "BuildTargets"
	targetParam  = "Target"
	libraryParam = "Library"

	sourceExt = ".cpp"
)

// Target is one Target entry of the BuildTargets group.
type Target struct {
	Ident              string
	Main               string
	HasMain            bool
	AdditionalSources  []string
	AdditionalIncludes []string
	CTest              bool
	CTestArguments     string
	HasCTestArguments  bool
	InputFiles         []string
	DefaultXML         bool
}

// Stem is the main source name without its .cpp extension; it names the
// executable and its Testing directory.
func (t Target) Stem() string { return strings.TrimSuffix(t.Main, sourceExt) }

// Library is one Library entry of the Common group.
type Library struct {
	Ident string
	Dir   string
	Name  string
}

func readTargets(doc *paramlist.Document) []Target {
	if !doc.HasGroup(targetsGroup) {
		return nil
	}
	params, _ := doc.Children(targetsGroup, targetParam)

	var targets []Target
	for i, p := range params {
		t := Target{Ident: fmt.Sprintf("%s #%d", targetParam, i+1)}
		if main, found := p.Child("main"); found && len(main.Text()) > 0 {
			t.Main = main.Text()
			t.HasMain = true
		}
		t.AdditionalSources = childTexts(p, "additionalSource")
		t.AdditionalIncludes = childTexts(p, "additionalIncludeDir")
		t.CTest = childToggle(p, "ctest")
		if args, found := p.Child("ctestArguments"); found {
			t.CTestArguments = args.Text()
			t.HasCTestArguments = true
		}
		t.InputFiles = childTexts(p, "inputFile")
		t.DefaultXML = childToggle(p, "defaultXML")
		targets = append(targets, t)
	}
	return targets
}

func readLibraries(doc *paramlist.Document) ([]Library, error) {
	var libs []Library
	for i, p := range commonParameters(doc, libraryParam) {
		lib := Library{Ident: fmt.Sprintf("%s #%d", libraryParam, i+1)}
		for _, field := range []struct {
			name string
			dest *string
		}{{"libDir", &lib.Dir}, {"libName", &lib.Name}} {
			child, found := p.Child(field.name)
			if !found || len(child.Text()) == 0 {
				return nil, failure.New(failure.KindMissingField, lib.Ident,
					"%s has no '%s' parameter", lib.Ident, field.name)
			}
			*field.dest = child.Text()
		}
		libs = append(libs, lib)
	}
	return libs, nil
}

// commonParameters returns Common parameters named name; none when the
// group is absent.
func commonParameters(doc *paramlist.Document, name string) []*paramlist.Parameter {
	if !doc.HasGroup(commonGroup) {
		return nil
	}
	params, _ := doc.Children(commonGroup, name)
	return params
}

func childTexts(p *paramlist.Parameter, name string) []string {
	var result []string
	for _, child := range p.ChildrenNamed(name) {
		result = append(result, child.Text())
	}
	return result
}

func childToggle(p *paramlist.Parameter, name string) bool {
	child, found := p.Child(name)
	return found && paramvalue.Toggle(child.Text())
}
