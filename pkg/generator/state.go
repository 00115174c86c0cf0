// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package generator

// Mode is a build configuration that carries its own extra compiler options.
type Mode int

const (
	ModeDebug Mode = iota
	ModeRelease
	numModes
)

// Platform is an operating system as reported by CMAKE_SYSTEM_NAME.
type Platform int

const (
	PlatformLinux Platform = iota
	PlatformWindows
	PlatformDarwin
	numPlatforms
)

var (
	modeVariables   = [numModes]string{"ADDITIONAL_DEBUG_OPTIONS", "ADDITIONAL_RELEASE_OPTIONS"}
	modeConfigs     = [numModes]string{"DEBUG", "RELEASE"}
	modeGroups      = [numModes]string{"AdditionalDebugOptions", "AdditionalReleaseOptions"}
	platformNames   = [numPlatforms]string{"Linux", "Windows", "Darwin"}
	platformParams  = [numPlatforms]string{"linuxOption", "visualStudioOption", "macOption"}
	platformSamples = [numPlatforms]string{`"-Wall"`, `"/Wall"`, `"-Wall"`}
)

func (m Mode) String() string     { return modeConfigs[m] }
func (p Platform) String() string { return platformNames[p] }

// CompilerOptions holds the assembled option tokens per mode and platform.
// An empty entry means no options were declared.
type CompilerOptions [numModes][numPlatforms]string

// State is threaded from phase to phase. Phases never modify the State they
// receive; each With method returns an extended copy.
type State struct {
	ModulesDirSet     bool
	ExternalLibraries []string
	OptionNames       []string
	CompilerOptions   CompilerOptions
	MainSources       []string
	TestingEnabled    bool
	Warnings          []string
}

func (s State) HasExternalLibraries() bool { return len(s.ExternalLibraries) > 0 }

func (s State) WithModulesDir() State {
	s.ModulesDirSet = true
	return s
}

func (s State) WithLibrary(name string) State {
	s.ExternalLibraries = appendCopy(s.ExternalLibraries, name)
	return s
}

func (s State) WithOptionName(name string) State {
	s.OptionNames = appendCopy(s.OptionNames, name)
	return s
}

func (s State) WithCompilerOptions(mode Mode, opts [numPlatforms]string) State {
	s.CompilerOptions[mode] = opts
	return s
}

func (s State) WithMainSource(source string) State {
	s.MainSources = appendCopy(s.MainSources, source)
	return s
}

func (s State) WithTestingEnabled() State {
	s.TestingEnabled = true
	return s
}

func (s State) WithWarning(msg string) State {
	s.Warnings = appendCopy(s.Warnings, msg)
	return s
}

func appendCopy(items []string, item string) []string {
	result := make([]string, 0, len(items)+1)
	result = append(result, items...)
	return append(result, item)
}
