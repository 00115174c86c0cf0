// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of cmakegen.

This codebase is intentionally organized into well-defined layers. Packages
depend on each other only to the degree required, and the lower layers know
nothing about the command line.

In the inventory, below, individual packages are named alongside their coupling
with the other packages in the codebase.

	(# of dependents) => <package name> => (# of dependencies)

Where "# of dependents" is the count of packages that import the named package
and "# of dependencies" is the count of packages that this named package
imports.

From top-down, cmakegen code is layered in this way:

# Entry Point

cmakegen is built into a single command-line tool:

	./cmd/cmakegen

# Commands

The root command generates; "generate" is the same command spelled out, and
"version" prints the build version.

	(1) => pkg/cmd => (3)
	(1) => pkg/cmd/generate => (5)

# Generation

A configuration document is turned into CMakeLists.txt text by a fixed
sequence of phases. Phases thread an immutable State from one to the next and
pull boilerplate text from the fragment catalog.

	(1) => pkg/generator => (6)
	(2) => pkg/fragments => (4)

# Configuration Documents

Documents are parsed from XML or YAML into ordered groups of parameters.
Literals are coerced into typed values on parse.

	(2) => pkg/paramlist => (4)
	(2) => pkg/paramvalue => (1)

# Utilities

The remainder are domain-agnostic utilities that provide either an
application-level capability or a specialized piece of logic.

	(6) => pkg/failure => (0)
	(3) => pkg/files => (1)
	(2) => pkg/filepos => (0)
	(2) => pkg/orderedmap => (0)
	(2) => pkg/cmd/ui => (0)
	(1) => pkg/spell => (0)
	(1) => pkg/version => (0)

# Dependencies

Each package's dependencies on other packages within this module are as follows
(if a package is not listed, it has no dependencies on other packages within
this module):

	pkg/cmd:
	- pkg/cmd/generate
	- pkg/cmd/ui
	- pkg/version
	pkg/cmd/generate:
	- pkg/cmd/ui
	- pkg/files
	- pkg/fragments
	- pkg/generator
	- pkg/paramlist
	pkg/generator:
	- pkg/failure
	- pkg/fragments
	- pkg/orderedmap
	- pkg/paramlist
	- pkg/paramvalue
	- pkg/spell
	pkg/files:
	- pkg/failure
	pkg/fragments:
	- pkg/failure
	- pkg/filepos
	- pkg/files
	- pkg/orderedmap
	pkg/paramlist:
	- pkg/failure
	- pkg/filepos
	- pkg/files
	- pkg/paramvalue
	pkg/paramvalue:
	- pkg/failure
*/
package pkg
