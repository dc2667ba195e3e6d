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

package tagsim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"morphtag/tagset"
)

func TestCompareIdenticalTags(t *testing.T) {
	res := Compare("V-PAI-3S", "V-PAI-3S")
	assert.Equal(t, 1.0, res.OverallSimilarity)
}

func TestCompareIsSymmetric(t *testing.T) {
	a := Compare("V-PAP-NSM", "N-NSM")
	b := Compare("N-NSM", "V-PAP-NSM")
	assert.Equal(t, a.OverallSimilarity, b.OverallSimilarity)
}

func TestCompareParticipleAgainstNoun(t *testing.T) {
	res := Compare("V-PAP-NSM", "N-NSM")

	pos := res.Details[tagset.FeatPOS]
	assert.Equal(t, "Participle", pos.Tag1)
	assert.Equal(t, "Noun", pos.Tag2)
	assert.Equal(t, 0.7, pos.Similarity)
	assert.Equal(t, 10, pos.Weight)

	// tense exists on the participle side only, so it is excluded
	tense := res.Details[tagset.FeatTense]
	assert.Equal(t, 0, tense.Weight)

	// (0.7*10 + 1*3 + 1*2 + 1*4) / (10+3+2+4)
	assert.InDelta(t, 16.0/19.0, res.OverallSimilarity, 1e-9)
}

func TestCompareInfinitiveRelabeled(t *testing.T) {
	res := Compare("V-PAN", "V-PAN")
	assert.Equal(t, "Infinitive", res.Details[tagset.FeatPOS].Tag1)
	assert.Equal(t, 1.0, res.OverallSimilarity)
}

func TestCompareFiniteVerbKeepsVerbLabel(t *testing.T) {
	res := Compare("V-PAI-3S", "N-NSM")
	assert.Equal(t, "Verb", res.Details[tagset.FeatPOS].Tag1)
}

func TestCompareUndecodableTag(t *testing.T) {
	res := Compare("", "N-NSM")
	assert.Equal(t, 0.0, res.OverallSimilarity)
	for _, d := range res.Details {
		assert.Equal(t, 0, d.Weight)
	}
}

func TestCompareDetailsAlwaysComplete(t *testing.T) {
	res := Compare("CONJ", "PREP")
	assert.Len(t, res.Details, len(featureWeights))
}

func TestCompareSuffixFallback(t *testing.T) {
	assert.Equal(t, 0.5, suffixFallback("Attic", "Attic Greek"))
	assert.Equal(t, 0.5, suffixFallback("Attic Greek", "Attic"))
	assert.Equal(t, 0.0, suffixFallback("Crasis", "Negative"))
}

func TestCompareRangeStaysInUnitInterval(t *testing.T) {
	tags := []string{
		"N-NSM", "V-PAI-3S", "V-PAP-NSM", "V-PAN", "A-NSM-C",
		"P-1AS", "D-NPM", "CONJ", "PREP", "ADV-I", "N-PRI",
	}
	for _, a := range tags {
		for _, b := range tags {
			res := Compare(a, b)
			assert.GreaterOrEqual(t, res.OverallSimilarity, 0.0, "%s vs %s", a, b)
			assert.LessOrEqual(t, res.OverallSimilarity, 1.0, "%s vs %s", a, b)
		}
	}
}
