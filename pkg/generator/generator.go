// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package generator

import (
	"strings"

	"carvel.dev/cmakegen/pkg/orderedmap"
	"carvel.dev/cmakegen/pkg/paramlist"
	"github.com/rs/zerolog"
)

// Fragments provides the named text fragments phases append.
type Fragments interface {
	Load(name string) (string, error)
	Render(name string, ctx *orderedmap.Map) (string, error)
}

type Options struct {
	// SourcePath is recorded in the header as the originating document.
	SourcePath string
	// Date is inserted verbatim into the header; empty omits it.
	Date   string
	Logger *zerolog.Logger
}

type Result struct {
	Content  []byte
	Warnings []string
}

type input struct {
	doc       *paramlist.Document
	fragments Fragments
	opts      Options
	targets   []Target
	logger    zerolog.Logger
}

type phase struct {
	name string
	run  func(in input, st State) (string, State, error)
}

var phases = []phase{
	{"Header", headerPhase},
	{"IncludeDirs", includeDirsPhase},
	{"CompilerOptions", compilerOptionsPhase},
	{"ModulesDir", modulesDirPhase},
	{"Libraries", librariesPhase},
	{"Options", optionsPhase},
	{"TestingEnable", testingEnablePhase},
	{"MainSourcesList", mainSourcesPhase},
	{"PerTargetLoop", perTargetLoopPhase},
	{"Footer", footerPhase},
}

// PhaseNames lists the generation phases in execution order.
func PhaseNames() []string {
	var names []string
	for _, p := range phases {
		names = append(names, p.name)
	}
	return names
}

// Generate runs every phase in order over doc. On any failure no content
// is returned.
func Generate(doc *paramlist.Document, fragments Fragments, opts Options) (Result, error) {
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	in := input{
		doc:       doc,
		fragments: fragments,
		opts:      opts,
		targets:   readTargets(doc),
		logger:    logger,
	}

	var (
		content strings.Builder
		st      State
	)

	for _, p := range phases {
		text, nextSt, err := p.run(in, st)
		if err != nil {
			logger.Debug().Str("phase", p.name).Err(err).Msg("phase failed")
			return Result{}, err
		}
		logger.Debug().Str("phase", p.name).Int("bytes", len(text)).Msg("phase done")

		content.WriteString(text)
		st = nextSt
	}

	return Result{Content: []byte(content.String()), Warnings: st.Warnings}, nil
}
