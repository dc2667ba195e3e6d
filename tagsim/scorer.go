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

// Package tagsim scores the syntactic similarity of two compact
// morphological tags. Nine per-category tables express closeness of
// syntactic function rather than morphological identity; category
// scores aggregate into a weighted overall score in [0, 1].
package tagsim

import "fmt"

// scorer compares two labels of one grammatical category. Lookup
// contract: exact match scores 1.0, then the matrix cell, then the
// fallback (suffix containment only), then 0.0.
type scorer struct {
	index    map[string]int
	cells    [][]float64
	fallback func(a, b string) float64
}

// newScorer validates the matrix (square over the label set,
// symmetric, unit diagonal, entries within [0, 1]) and returns the
// scorer. Matrices are process-wide constants, so validation runs
// once at package initialization and a violation aborts startup.
func newScorer(labels []string, cells [][]float64, fallback func(a, b string) float64) (*scorer, error) {
	if len(cells) != len(labels) {
		return nil, fmt.Errorf("similarity matrix has %d rows for %d labels", len(cells), len(labels))
	}
	for i, row := range cells {
		if len(row) != len(labels) {
			return nil, fmt.Errorf("similarity matrix row %d has %d columns for %d labels", i, len(row), len(labels))
		}
		if row[i] != 1.0 {
			return nil, fmt.Errorf("similarity matrix diagonal is %f at %s", row[i], labels[i])
		}
		for j, cell := range row {
			if cell < 0 || cell > 1 {
				return nil, fmt.Errorf("similarity %f out of range at %s vs %s", cell, labels[i], labels[j])
			}
			if cell != cells[j][i] {
				return nil, fmt.Errorf("similarity asymmetric at %s vs %s: %f != %f",
					labels[i], labels[j], cell, cells[j][i])
			}
		}
	}
	index := make(map[string]int, len(labels))
	for i, lbl := range labels {
		index[lbl] = i
	}
	return &scorer{index: index, cells: cells, fallback: fallback}, nil
}

func mustScorer(labels []string, cells [][]float64, fallback func(a, b string) float64) *scorer {
	s, err := newScorer(labels, cells, fallback)
	if err != nil {
		panic(err)
	}
	return s
}

// score compares two category labels. It is symmetric by
// construction.
func (s *scorer) score(a, b string) float64 {
	if a == b {
		return 1.0
	}
	i, okA := s.index[a]
	j, okB := s.index[b]
	if okA && okB {
		return s.cells[i][j]
	}
	if s.fallback != nil {
		return s.fallback(a, b)
	}
	return 0.0
}
