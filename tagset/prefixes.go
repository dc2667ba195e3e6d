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

package tagset

import "strings"

// POSPrefix binds a tag prefix to its part-of-speech label.
type POSPrefix struct {
	Prefix string
	Label  string
}

// POSPrefixes is the ordered prefix table. Matching is first match
// wins, so subset prefixes (N-PRI, N-LI, N-OI, A-NUI) must precede
// their generic counterparts (N-, A-). A test pins this order.
var POSPrefixes = []POSPrefix{
	{"N-PRI", "Proper Noun Indeclinable"},
	{"N-LI", "Letter Indeclinable"},
	{"N-OI", "Noun Other Type Indeclinable"},
	{"N-", "Noun"},
	{"A-NUI", "Numeral Indeclinable"},
	{"A-", "Adjective"},
	{"T-", "Article"},
	{"V-", "Verb"},
	{"P-", "Personal Pronoun"},
	{"R-", "Relative Pronoun"},
	{"C-", "Reciprocal Pronoun"},
	{"D-", "Demonstrative Pronoun"},
	{"K-", "Correlative Pronoun"},
	{"I-", "Interrogative Pronoun"},
	{"X-", "Indefinite Pronoun"},
	{"Q-", "Correlative/Interrogative Pronoun"},
	{"F-", "Reflexive Pronoun"},
	{"S-", "Possessive Pronoun"},
	{"ADV", "Adverb"},
	{"CONJ", "Conjunction"},
	{"COND", "Conditional"},
	{"PRT", "Particle"},
	{"PREP", "Preposition"},
	{"INJ", "Interjection"},
	{"ARAM", "Aramaic"},
	{"HEB", "Hebrew"},
	{"PUNCT", "Punctuation"},
}

// MatchPOSPrefix finds the first prefix the tag starts with.
func MatchPOSPrefix(tag string) (POSPrefix, bool) {
	for _, p := range POSPrefixes {
		if strings.HasPrefix(tag, p.Prefix) {
			return p, true
		}
	}
	return POSPrefix{}, false
}

// IndeclinablePrefixes are prefixes whose tags carry no inflection
// block, only an optional suffix.
var IndeclinablePrefixes = map[string]bool{
	"ADV":   true,
	"CONJ":  true,
	"COND":  true,
	"PRT":   true,
	"PREP":  true,
	"INJ":   true,
	"ARAM":  true,
	"HEB":   true,
	"N-PRI": true,
	"A-NUI": true,
	"N-LI":  true,
	"N-OI":  true,
	"PUNCT": true,
}

// PronounPrefixes are the pronoun prefixes decoded by positional
// patterns (reflexive F- and possessive S- have dedicated shapes
// and are excluded here).
var PronounPrefixes = map[string]bool{
	"P-": true,
	"R-": true,
	"C-": true,
	"D-": true,
	"K-": true,
	"I-": true,
	"X-": true,
	"Q-": true,
}
