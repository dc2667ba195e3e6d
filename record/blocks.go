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
	"regexp"
	"strings"
)

var rawHeader = regexp.MustCompile(`(?m)^:raw`)

// SplitIntoRawBlocks splits an analyser plain-text response into
// per-analysis blocks of lines. A new block starts at each line
// beginning with the `:raw` header; the header line is kept as the
// first line of its block. Text before the first header is dropped.
func SplitIntoRawBlocks(text string) [][]string {
	locs := rawHeader.FindAllStringIndex(text, -1)
	blocks := make([][]string, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		chunk := strings.TrimSuffix(text[loc[0]:end], "\n")
		lines := strings.Split(chunk, "\n")
		for j, line := range lines {
			// analyser responses may arrive with CRLF line ends
			lines[j] = strings.TrimSuffix(line, "\r")
		}
		blocks = append(blocks, lines)
	}
	return blocks
}
