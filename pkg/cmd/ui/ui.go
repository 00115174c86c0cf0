// Copyright 2020 VMware, Inc.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"github.com/rs/zerolog"
)

type UI interface {
	Printf(string, ...interface{})
	Debugf(string, ...interface{})
	Warnf(str string, args ...interface{})
	Logger() zerolog.Logger
	AskForConfirmation(prompt string) (bool, error)
}
