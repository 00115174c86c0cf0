// Copyright 2020 VMware, Inc.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	cmdgen "carvel.dev/cmakegen/pkg/cmd/generate"
	"carvel.dev/cmakegen/pkg/version"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
)

type CmakegenOptions struct{}

func NewDefaultCmakegenOptions() *CmakegenOptions {
	return &CmakegenOptions{}
}

func NewDefaultCmakegenCmd() *cobra.Command {
	return NewCmakegenCmd(NewDefaultCmakegenOptions())
}

func NewCmakegenCmd(o *CmakegenOptions) *cobra.Command {
	cmd := cmdgen.NewCmd(cmdgen.NewOptions())

	cmd.Use = "cmakegen"
	cmd.Aliases = nil
	cmd.Version = version.Version
	cmd.Short = "cmakegen generates CMakeLists.txt from a configuration document"
	cmd.Long = `cmakegen generates CMakeLists.txt from a configuration document.

Typical invocation:

  cmakegen -x project.xml

Write an annotated (-s) or minimal (-b) sample document to start from:

  cmakegen -s`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(cmdgen.NewCmd(cmdgen.NewOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
