// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package filepos_test

import (
	"testing"

	"carvel.dev/cmakegen/pkg/filepos"
	"github.com/stretchr/testify/assert"
)

func TestPositionStrings(t *testing.T) {
	assert.Equal(t, "line doc.xml:12", filepos.NewPositionInFile(12, "doc.xml").AsString())
	assert.Equal(t, "3", filepos.NewPosition(3).AsCompactString())
	assert.Equal(t, "doc.xml:?", filepos.NewUnknownPositionInFile("doc.xml").AsCompactString())
	assert.Equal(t, "?", filepos.NewUnknownPosition().AsCompactString())

	var nilPos *filepos.Position
	assert.False(t, nilPos.IsKnown())
	assert.Equal(t, "?", nilPos.AsCompactString())
}

func TestNewPositionRejectsZeroLine(t *testing.T) {
	assert.Panics(t, func() { filepos.NewPosition(0) })
}
