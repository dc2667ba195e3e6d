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

package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"morphtag/tagset"
)

func TestDecodeEmptyTag(t *testing.T) {
	feats := Tag("")
	assert.Equal(t, tagset.LabelUnsupportedPOS, feats[tagset.FeatPOS])
	assert.Equal(t, "Please enter a parsing tag.", feats[tagset.FeatError])
}

func TestDecodeWhitespaceOnlyTag(t *testing.T) {
	feats := Tag("   ")
	assert.Equal(t, "Please enter a parsing tag.", feats[tagset.FeatError])
}

func TestDecodeUnknownPrefix(t *testing.T) {
	feats := Tag("ZZZ")
	assert.Equal(t, tagset.LabelUnsupportedPOS, feats[tagset.FeatPOS])
	assert.Equal(t, "POS unknown", feats[tagset.FeatError])
}

func TestDecodeNoun(t *testing.T) {
	feats := Tag("N-NSM")
	assert.Equal(t, tagset.Features{
		tagset.FeatPOS:    "Noun",
		tagset.FeatCase:   "Nominative",
		tagset.FeatNumber: "Singular",
		tagset.FeatGender: "Masculine",
	}, feats)
}

func TestDecodeNounWithSuffix(t *testing.T) {
	feats := Tag("N-GPF-ATT")
	assert.Equal(t, "Genitive", feats[tagset.FeatCase])
	assert.Equal(t, "Plural", feats[tagset.FeatNumber])
	assert.Equal(t, "Feminine", feats[tagset.FeatGender])
	assert.Equal(t, "Attic", feats[tagset.FeatSuffix])
}

func TestDecodeNounUnknownSuffixKeepsFeatures(t *testing.T) {
	feats := Tag("N-NSM-ZZ")
	assert.Equal(t, "Nominative", feats[tagset.FeatCase])
	assert.Equal(t, "Singular", feats[tagset.FeatNumber])
	assert.Equal(t, "Masculine", feats[tagset.FeatGender])
	assert.Equal(t, "Unknown suffix", feats[tagset.FeatWarning])
	assert.False(t, feats.HasError())
}

func TestDecodeNounTooShort(t *testing.T) {
	feats := Tag("N-N")
	assert.Equal(t, "Not enough elements provided", feats[tagset.FeatWarning])
}

func TestDecodeAdjectiveComparative(t *testing.T) {
	feats := Tag("A-NSM-C")
	assert.Equal(t, "Adjective", feats[tagset.FeatPOS])
	assert.Equal(t, "Comparative", feats[tagset.FeatSuffix])
}

func TestDecodeFiniteVerb(t *testing.T) {
	feats := Tag("V-PAI-3S")
	assert.Equal(t, tagset.Features{
		tagset.FeatPOS:    "Verb",
		tagset.FeatTense:  "Present",
		tagset.FeatVoice:  "Active",
		tagset.FeatMood:   "Indicative",
		tagset.FeatPerson: "Third Person",
		tagset.FeatNumber: "Singular",
	}, feats)
}

func TestDecodeSecondAorist(t *testing.T) {
	feats := Tag("V-2AAI-3S")
	assert.Equal(t, "Second Aorist", feats[tagset.FeatTense])
}

func TestDecodeParticiple(t *testing.T) {
	feats := Tag("V-PAP-NSM")
	assert.Equal(t, "Participle", feats[tagset.FeatMood])
	assert.Equal(t, "Nominative", feats[tagset.FeatCase])
	assert.Equal(t, "Singular", feats[tagset.FeatNumber])
	assert.Equal(t, "Masculine", feats[tagset.FeatGender])
}

func TestDecodeParticipleIncompleteFeatures(t *testing.T) {
	feats := Tag("V-PAP-NS")
	assert.Equal(t, "Incomplete feature code", feats[tagset.FeatError])
}

func TestDecodeFiniteVerbBadFeatureBlock(t *testing.T) {
	feats := Tag("V-PAI-NSM")
	assert.Equal(t, "Incorrect feature code", feats[tagset.FeatError])
}

func TestDecodeInfinitive(t *testing.T) {
	feats := Tag("V-PAN")
	assert.Equal(t, "Infinitive", feats[tagset.FeatMood])
	assert.NotContains(t, feats, tagset.FeatPerson)
	assert.NotContains(t, feats, tagset.FeatNumber)
}

func TestDecodeInfinitiveWithExtraBlock(t *testing.T) {
	feats := Tag("V-RAN-ATT")
	assert.Equal(t, "Infinitive", feats[tagset.FeatMood])
	assert.Equal(t, "Attic", feats[tagset.FeatVerbExtra])
	assert.Contains(t, feats, tagset.FeatWarning)
	assert.False(t, feats.HasError())
}

func TestDecodeVerbExtra(t *testing.T) {
	feats := Tag("V-PAI-3S-IRR")
	assert.Equal(t, "Irregular or impure form", feats[tagset.FeatVerbExtra])
}

func TestDecodeVerbUnknownExtra(t *testing.T) {
	feats := Tag("V-PAI-3S-ZZZ")
	assert.Equal(t, "Unknown verb extra", feats[tagset.FeatVerbExtra])
	assert.Equal(t, "Unknown verb extra -ZZZ", feats[tagset.FeatWarning])
}

func TestDecodeVerbUnresolvableTense(t *testing.T) {
	feats := Tag("V-ZZZ")
	assert.Equal(t, tagset.LabelUnknown, feats[tagset.FeatTense])
	assert.Equal(t, "Cannot resolve tense from ZZZ", feats[tagset.FeatWarning])
	assert.NotContains(t, feats, tagset.FeatVoice)
}

func TestDecodeVerbPatternMismatch(t *testing.T) {
	feats := Tag("V-P")
	assert.True(t, feats.HasError())
}

func TestDecodePersonalPronoun(t *testing.T) {
	feats := Tag("P-1AS")
	assert.Equal(t, "Personal Pronoun", feats[tagset.FeatPOS])
	assert.Equal(t, "First Person", feats[tagset.FeatPerson])
	assert.Equal(t, "Accusative", feats[tagset.FeatCase])
	assert.Equal(t, "Singular", feats[tagset.FeatNumber])
}

func TestDecodePronounCaseNumberOnly(t *testing.T) {
	feats := Tag("P-GS")
	assert.Equal(t, "Genitive", feats[tagset.FeatCase])
	assert.Equal(t, "Singular", feats[tagset.FeatNumber])
	assert.NotContains(t, feats, tagset.FeatPerson)
}

func TestDecodePronounCaseNumberGender(t *testing.T) {
	feats := Tag("D-NPM")
	assert.Equal(t, "Demonstrative Pronoun", feats[tagset.FeatPOS])
	assert.Equal(t, "Nominative", feats[tagset.FeatCase])
	assert.Equal(t, "Plural", feats[tagset.FeatNumber])
	assert.Equal(t, "Masculine", feats[tagset.FeatGender])
}

func TestDecodePronounWithSuffix(t *testing.T) {
	feats := Tag("P-1AS-K")
	assert.Equal(t, "Crasis", feats[tagset.FeatSuffix])
}

func TestDecodeReflexivePronoun(t *testing.T) {
	feats := Tag("F-3ASM")
	assert.Equal(t, "Reflexive Pronoun", feats[tagset.FeatPOS])
	assert.Equal(t, "Third Person", feats[tagset.FeatPerson])
	assert.Equal(t, "Accusative", feats[tagset.FeatCase])
	assert.Equal(t, "Singular", feats[tagset.FeatNumber])
	assert.Equal(t, "Masculine", feats[tagset.FeatGender])
}

func TestDecodePossessivePronoun(t *testing.T) {
	feats := Tag("S-1SNSM")
	assert.Equal(t, "Possessive Pronoun", feats[tagset.FeatPOS])
	assert.Equal(t, "First Person", feats[tagset.FeatPersonOfPossessor])
	assert.Equal(t, "Singular", feats[tagset.FeatNumberOfPossessor])
	assert.Equal(t, "Nominative", feats[tagset.FeatCaseOfPossessed])
	assert.Equal(t, "Singular", feats[tagset.FeatNumberOfPossessed])
	assert.Equal(t, "Masculine", feats[tagset.FeatGenderOfPossessed])
}

func TestDecodeIndeclinables(t *testing.T) {
	assert.Equal(t, "Conjunction", Tag("CONJ")[tagset.FeatPOS])
	assert.Equal(t, "Preposition", Tag("PREP")[tagset.FeatPOS])
	assert.Equal(t, "Proper Noun Indeclinable", Tag("N-PRI")[tagset.FeatPOS])
	assert.Equal(t, "Numeral Indeclinable", Tag("A-NUI")[tagset.FeatPOS])
}

func TestDecodeInterrogativeAdverb(t *testing.T) {
	feats := Tag("ADV-I")
	assert.Equal(t, "Adverb", feats[tagset.FeatPOS])
	assert.Equal(t, "Interrogative", feats[tagset.FeatSuffix])
}

func TestDecodeIndeclinableUnknownSuffix(t *testing.T) {
	feats := Tag("ADV-ZZ")
	assert.Equal(t, "Unknown suffix", feats[tagset.FeatWarning])
}

func TestDecodeLowerCaseFeatureBlock(t *testing.T) {
	feats := Tag("N-nsm")
	assert.Equal(t, "Nominative", feats[tagset.FeatCase])
	assert.Equal(t, "Singular", feats[tagset.FeatNumber])
	assert.Equal(t, "Masculine", feats[tagset.FeatGender])
}

func TestDecodeUnknownCodeYieldsUnknownLabel(t *testing.T) {
	feats := Tag("N-ZSM")
	assert.Equal(t, tagset.LabelUnknown, feats[tagset.FeatCase])
	assert.Equal(t, "Singular", feats[tagset.FeatNumber])
}
