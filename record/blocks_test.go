// Copyright 2025 The morphtag contributors
//   This file is part of MORPHTAG.
//
//  MORPHTAG is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  MORPHTAG is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with MORPHTAG.  If not, see <https://www.gnu.org/licenses/>.

package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitIntoRawBlocks(t *testing.T) {
	text := ":raw lu/w\n:lem lu/w\n:raw lu=otero\n:lem lu=otero"
	blocks := SplitIntoRawBlocks(text)
	assert.Equal(t, [][]string{
		{":raw lu/w", ":lem lu/w"},
		{":raw lu=otero", ":lem lu=otero"},
	}, blocks)
}

func TestSplitIntoRawBlocksDropsLeadingText(t *testing.T) {
	text := "analyses of lu/w\n:raw lu/w\n:lem lu/w"
	blocks := SplitIntoRawBlocks(text)
	assert.Equal(t, [][]string{{":raw lu/w", ":lem lu/w"}}, blocks)
}

func TestSplitIntoRawBlocksEmptyInput(t *testing.T) {
	assert.Empty(t, SplitIntoRawBlocks(""))
}

func TestSplitIntoRawBlocksCRLFInput(t *testing.T) {
	text := ":raw lu/w\r\n:lem lu/w\r\n:raw lu=otero\r\n:lem lu=otero\r\n"
	blocks := SplitIntoRawBlocks(text)
	assert.Equal(t, [][]string{
		{":raw lu/w", ":lem lu/w"},
		{":raw lu=otero", ":lem lu=otero"},
	}, blocks)
}

func TestSplitIntoRawBlocksTrailingNewline(t *testing.T) {
	blocks := SplitIntoRawBlocks(":raw lu/w\n:lem lu/w\n")
	assert.Equal(t, [][]string{{":raw lu/w", ":lem lu/w"}}, blocks)
}
