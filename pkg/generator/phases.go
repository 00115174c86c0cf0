// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package generator

import (
	"fmt"
	"strings"

	"carvel.dev/cmakegen/pkg/failure"
	"carvel.dev/cmakegen/pkg/fragments"
	"carvel.dev/cmakegen/pkg/orderedmap"
	"carvel.dev/cmakegen/pkg/paramvalue"
	"carvel.dev/cmakegen/pkg/spell"
	"github.com/hashicorp/go-version"
)

const (
	bannerRule = "#####################################################\n"
	targetRule = "##################################################################\n"
	blockRule  = "#----------------------------------------------------------------#\n"

	versionRangeSep = "..."
)

func headerPhase(in input, st State) (string, State, error) {
	requiredVersion, err := in.doc.Text(commonGroup, "required_cmake")
	if err != nil {
		return "", st, err
	}
	err = checkRequiredVersion(requiredVersion)
	if err != nil {
		return "", st, err
	}
	in.logger.Debug().Str("required_cmake", requiredVersion).Msg("validated version")

	projectName, err := in.doc.Text(commonGroup, "project")
	if err != nil {
		return "", st, err
	}

	text, err := in.fragments.Render(fragments.Header, orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "requiredVersion", Value: requiredVersion},
		{Key: "projectName", Value: projectName},
		{Key: "sourceDocumentPath", Value: in.opts.SourcePath},
		{Key: "generationDate", Value: in.opts.Date},
	}))
	return text, st, err
}

// checkRequiredVersion accepts "3.15" as well as a "3.15...3.28" policy
// range, in which case the lower bound must be a version.
func checkRequiredVersion(text string) error {
	lower := strings.SplitN(text, versionRangeSep, 2)[0]
	_, err := version.NewVersion(lower)
	if err != nil {
		return failure.Wrap(failure.KindTypeCoercion, "required_cmake", err,
			"Expected parameter 'required_cmake' value '%s' to be a CMake version", text)
	}
	return nil
}

func includeDirsPhase(in input, st State) (string, State, error) {
	var b strings.Builder
	b.WriteString("#\n# Global include directories\n#\n\n")
	b.WriteString("list(APPEND IncludeDirs \"${CMAKE_SOURCE_DIR}\")\n")

	for _, p := range commonParameters(in.doc, "IncludeDirs") {
		for _, dir := range childTexts(p, "dir") {
			fmt.Fprintf(&b, "list(APPEND IncludeDirs \"${CMAKE_SOURCE_DIR}/%s\")\n", dir)
		}
	}
	return b.String(), st, nil
}

// compilerOptionsPhase only records options; Footer emits them. When a mode
// is declared more than once the last declaration replaces earlier ones.
func compilerOptionsPhase(in input, st State) (string, State, error) {
	for mode := ModeDebug; mode < numModes; mode++ {
		for _, p := range commonParameters(in.doc, modeGroups[mode]) {
			var opts [numPlatforms]string
			for platform := PlatformLinux; platform < numPlatforms; platform++ {
				for _, value := range childTexts(p, platformParams[platform]) {
					opts[platform] += quoteOptionTokens(value)
				}
			}
			st = st.WithCompilerOptions(mode, opts)
		}
	}
	return "", st, nil
}

// quoteOptionTokens turns "-Wall, -DX=\"y\"" into `"-Wall" "-DX=\"y\"" `.
func quoteOptionTokens(value string) string {
	var result string
	for _, token := range strings.Split(value, ",") {
		token = strings.TrimSpace(token)
		if len(token) == 0 {
			continue
		}
		result += cmakeQuote(token) + " "
	}
	return result
}

func modulesDirPhase(in input, st State) (string, State, error) {
	var b strings.Builder
	for _, p := range commonParameters(in.doc, "CMakeModulesDir") {
		b.WriteString("\n#\n# Cmake modules directories\n#\n\n")
		for _, dir := range childTexts(p, "dir") {
			fmt.Fprintf(&b, "list(APPEND CMAKE_MODULE_PATH \"${CMAKE_SOURCE_DIR}/%s\")\n", dir)
			st = st.WithModulesDir()
		}
	}
	return b.String(), st, nil
}

func librariesPhase(in input, st State) (string, State, error) {
	libs, err := readLibraries(in.doc)
	if err != nil {
		return "", st, err
	}

	var b strings.Builder
	for i, lib := range libs {
		if i == 0 {
			b.WriteString("\n\n" + bannerRule)
			b.WriteString("# Invoke build of supporting libraries (projects)\n")
			b.WriteString(bannerRule)
		}
		fmt.Fprintf(&b, "\nadd_subdirectory(\"${CMAKE_SOURCE_DIR}/%s\" \"${CMAKE_SOURCE_DIR}/%s/build\")\n", lib.Dir, lib.Dir)
		fmt.Fprintf(&b, "list(APPEND ExternalLibs \"%s\")\n", lib.Name)
		st = st.WithLibrary(lib.Name)
	}
	return b.String(), st, nil
}

// optionsPhase declares one OPTION per child of Options. A name declared
// twice is rejected so each option has a single state and fragment.
func optionsPhase(in input, st State) (string, State, error) {
	if !in.doc.HasGroup(optionsGroup) {
		return "", st, nil
	}
	group, err := in.doc.Group(optionsGroup)
	if err != nil {
		return "", st, err
	}
	params := group.Parameters()
	if len(params) == 0 {
		return "", st, nil
	}

	var names []string
	for _, p := range params {
		for _, seen := range names {
			if seen == p.Name() {
				return "", st, failure.New(failure.KindDuplicateList, p.Name(),
					"Option '%s' declared more than once in parameter list '%s' (%s)",
					p.Name(), optionsGroup, p.Position().AsString())
			}
		}
		names = append(names, p.Name())
	}

	var b strings.Builder
	b.WriteString("\n" + bannerRule)
	b.WriteString("# Collecting data for components specified by options\n")
	b.WriteString(bannerRule)
	b.WriteString("\n#\n# Specify cmake option value using -DOption_Name=ON (or = OFF)\n# to override default\n#\n\n")

	for _, p := range params {
		fmt.Fprintf(&b, "OPTION(%s  \"Option %s\"  %s)\n", p.Name(), p.Name(), toggleState(p.Text()))
		st = st.WithOptionName(p.Name())
	}

	for _, name := range names {
		opt, found := lookupOption(name)
		if !found {
			if suggestion, ok := spell.Suggest(name, optionNames()); ok {
				st = st.WithWarning(fmt.Sprintf(
					"Option %s is not recognized and adds no components. Did you mean %s?", name, suggestion))
			}
			continue
		}
		text, err := in.fragments.Render(opt.Global, orderedmap.NewMap())
		if err != nil {
			return "", st, err
		}
		b.WriteString("\n" + text)

		if len(opt.FindModule) > 0 && !st.ModulesDirSet {
			st = st.WithWarning(fmt.Sprintf(
				"cmake_modules directory path containing Find%s.cmake not set. "+
					"Add CMakeModulesDir parameter specifying cmake_modules path or remove option %s.",
				opt.FindModule, opt.Name))
		}
	}
	return b.String(), st, nil
}

func testingEnablePhase(in input, st State) (string, State, error) {
	for _, t := range in.targets {
		if t.CTest {
			st = st.WithTestingEnabled()
		}
	}
	if !st.TestingEnabled {
		return "", st, nil
	}
	return "\n#\n# Enable testing and create directories for testing\n#\n\nenable_testing()\n\n", st, nil
}

func mainSourcesPhase(in input, st State) (string, State, error) {
	var b strings.Builder
	for _, t := range in.targets {
		if !t.HasMain {
			return "", st, failure.New(failure.KindMissingField, t.Ident,
				"%s has no 'main' parameter specifying its main source", t.Ident)
		}
		st = st.WithMainSource(t.Main)
		if t.CTest {
			fmt.Fprintf(&b, "file(MAKE_DIRECTORY \"${CMAKE_SOURCE_DIR}/Testing/%s\")\n", t.Stem())
		}
	}

	b.WriteString("\n" + bannerRule)
	b.WriteString("# Specify list of target sources containing \"main\"\n")
	b.WriteString(bannerRule)
	fmt.Fprintf(&b, "\nset(Main_Sources %s)\n", quoteList(st.MainSources))

	return b.String(), st, nil
}

func perTargetLoopPhase(in input, st State) (string, State, error) {
	var b strings.Builder
	b.WriteString("\n#\n#   Loop over build commands for each target\n#\n\n")
	b.WriteString("foreach(mainFile ${Main_Sources} )\n")
	b.WriteString("string( REPLACE \"" + sourceExt + "\" \"\" mainExecName ${mainFile} )\n\n")

	for _, t := range in.targets {
		text, err := targetBlock(in, st, t)
		if err != nil {
			return "", st, err
		}
		b.WriteString(text)
	}
	return b.String(), st, nil
}

func targetBlock(in input, st State, t Target) (string, error) {
	var b strings.Builder

	b.WriteString(targetRule)
	fmt.Fprintf(&b, "#   Target :  %s\n", t.Stem())
	b.WriteString(targetRule)

	fmt.Fprintf(&b, "\n    if(\"${mainExecName}%s\" STREQUAL %s)\n", sourceExt, cmakeQuote(t.Main))
	fmt.Fprintf(&b, "      add_executable( ${mainExecName} %s)\n", quoteList(append([]string{t.Main}, t.AdditionalSources...)))

	var perTarget []string
	for _, name := range st.OptionNames {
		if opt, found := lookupOption(name); found && len(opt.PerTarget) > 0 {
			perTarget = append(perTarget, opt.PerTarget)
		}
	}
	if len(perTarget) > 0 {
		b.WriteString("#\n#     Supporting libraries and include directories\n#\n")
	}
	for _, name := range perTarget {
		text, err := in.fragments.Render(name, orderedmap.NewMap())
		if err != nil {
			return "", err
		}
		b.WriteString(text)
	}

	if st.HasExternalLibraries() {
		b.WriteString("\n      target_link_libraries(${mainExecName} PUBLIC ${ExternalLibs})\n")
	}

	b.WriteString("\n      target_include_directories(${mainExecName} PUBLIC ${IncludeDirs} )\n")
	for _, dir := range t.AdditionalIncludes {
		fmt.Fprintf(&b, "      target_include_directories(${mainExecName} PUBLIC \"%s\" )\n", dir)
	}

	if t.CTest {
		text, err := testBlock(in, t)
		if err != nil {
			return "", err
		}
		b.WriteString(text)
	}

	b.WriteString("\n    endif()\n\n")
	b.WriteString(blockRule)
	b.WriteString("\n")

	return b.String(), nil
}

// testBlock registers exactly one test: the default document test, a test
// with explicit arguments, or a bare test.
func testBlock(in input, t Target) (string, error) {
	var b strings.Builder
	b.WriteString("\n#      --- Commands for ctest setup ---\n")

	if len(t.InputFiles) > 0 {
		fmt.Fprintf(&b, "\n#     Copy test input files to Testing/%s\n\n", t.Stem())
	}
	for _, file := range t.InputFiles {
		fmt.Fprintf(&b, "      file(COPY \"%s\"  DESTINATION \"${CMAKE_SOURCE_DIR}/Testing/${mainExecName}\")\n", file)
	}

	const addTest = "      add_test(NAME  ${mainExecName} WORKING_DIRECTORY \"${CMAKE_SOURCE_DIR}/Testing/${mainExecName}\"\n"

	switch {
	case t.DefaultXML:
		text, err := in.fragments.Render(fragments.DefaultXMLTestData, orderedmap.NewMapWithItems([]orderedmap.MapItem{
			{Key: "targetStem", Value: t.Stem()},
		}))
		if err != nil {
			return "", err
		}
		b.WriteString("\n" + text + "\n")

	case t.HasCTestArguments:
		b.WriteString("\n#     Specify command line arguments\n\n")
		fmt.Fprintf(&b, "      set (ctestArguments %s )\n", t.CTestArguments)
		b.WriteString("\n#     Add target to test set\n\n")
		b.WriteString(addTest)
		b.WriteString("      COMMAND \"${CMAKE_SOURCE_DIR}/${CMAKE_BUILD_TYPE}/${mainExecName}\" ${ctestArguments} )\n")

	default:
		b.WriteString("\n#     Add target to test set\n\n")
		b.WriteString(addTest)
		b.WriteString("      COMMAND \"${CMAKE_SOURCE_DIR}/${CMAKE_BUILD_TYPE}/${mainExecName}\")\n")
	}

	return b.String(), nil
}

func footerPhase(in input, st State) (string, State, error) {
	features, err := in.fragments.Render(fragments.CompileFeatures, orderedmap.NewMap())
	if err != nil {
		return "", st, err
	}

	var b strings.Builder
	b.WriteString(features)
	b.WriteString("#\n#  Additional compiler options (operating system dependent)\n")
	b.WriteString("#  Visual studio options if \"Windows\", Mac options if \"Darwin\"\n#\n")

	for mode := ModeDebug; mode < numModes; mode++ {
		variable := modeVariables[mode]
		fmt.Fprintf(&b, "    set(%s \"\")\n", variable)
		for platform := PlatformLinux; platform < numPlatforms; platform++ {
			keyword := "elseif"
			if platform == PlatformLinux {
				keyword = "if"
			}
			fmt.Fprintf(&b, "    %s(\"${CMAKE_SYSTEM_NAME}\" STREQUAL \"%s\")\n", keyword, platform)

			if opts := st.CompilerOptions[mode][platform]; len(opts) > 0 {
				fmt.Fprintf(&b, "      set(%s %s)\n", variable, opts)
			} else {
				fmt.Fprintf(&b, "#     set(%s %s)\n", variable, platformSamples[platform])
			}
		}
		b.WriteString("    endif()\n\n")
	}

	for mode := ModeDebug; mode < numModes; mode++ {
		fmt.Fprintf(&b, "    target_compile_options(${mainExecName} PUBLIC \"$<$<CONFIG:%s>:${%s}>\")\n", mode, modeVariables[mode])
	}

	b.WriteString("\nendforeach()   # Loop over targets\n")

	return b.String(), st, nil
}

func toggleState(text string) string {
	if paramvalue.Toggle(text) {
		return "ON"
	}
	return "OFF"
}

func quoteList(items []string) string {
	var result string
	for _, item := range items {
		result += cmakeQuote(item) + " "
	}
	return result
}

// cmakeQuote renders item as one CMake quoted argument.
func cmakeQuote(item string) string {
	return `"` + strings.ReplaceAll(item, `"`, `\"`) + `"`
}
