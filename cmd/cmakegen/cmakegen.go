// Copyright 2020 VMware, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"os"

	"carvel.dev/cmakegen/pkg/cmd"
	"carvel.dev/cmakegen/pkg/failure"
	uierrs "github.com/cppforlife/go-cli-ui/errors"
	"github.com/fatih/color"
)

func main() {
	command := cmd.NewDefaultCmakegenCmd()

	err := command.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cmakegen: %s %s\n", color.New(color.FgRed, color.Bold).Sprint(errorLabel(err)), uierrs.NewMultiLineError(err))
		os.Exit(1)
	}
}

// errorLabel names the failure kind and offending identifier when known.
func errorLabel(err error) string {
	var typedErr *failure.Error
	if !errors.As(err, &typedErr) {
		return "Error:"
	}
	if len(typedErr.Ident) == 0 {
		return fmt.Sprintf("Error: [%s]", typedErr.Kind)
	}
	return fmt.Sprintf("Error: [%s: %s]", typedErr.Kind, typedErr.Ident)
}
