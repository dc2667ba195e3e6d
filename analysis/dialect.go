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

package analysis

import (
	"strings"

	"github.com/czcorpus/cnc-gokit/collections"
)

// dialectCodes is the closed set of recognized literary dialects.
// Analyser output is often a combined list like attic/epic/doric/
// ionic; only Attic and Aeolic map to tag suffixes used by the
// reference corpus, the rest is intentionally unmapped.
var dialectCodes = map[string]string{
	"attic":  "ATT",
	"aeolic": "A",
}

// appendDialectSuffix extends a tag with the sorted, deduplicated,
// hyphen-joined codes of any recognized dialects.
func appendDialectSuffix(tag string, dialects []string) string {
	if len(dialects) == 0 {
		return tag
	}
	mapped := collections.NewSet[string]()
	for _, d := range dialects {
		if code, ok := dialectCodes[strings.ToLower(d)]; ok {
			mapped.Add(code)
		}
	}
	if mapped.Size() == 0 {
		return tag
	}
	return tag + "-" + strings.Join(mapped.ToOrderedSlice(), "-")
}
