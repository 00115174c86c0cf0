// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package version

// Version is overridden at build time via -ldflags "-X carvel.dev/cmakegen/pkg/version.Version=..."
var Version = "develop"
