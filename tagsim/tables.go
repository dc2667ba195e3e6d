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
	"strings"

	"morphtag/tagset"
)

// Category weights. Part of speech dominates, tense/voice/mood carry
// the verbal profile, nominal agreement features weigh less and the
// suffix is a tie-breaker. Iteration order is fixed so that results
// and logs stay deterministic.
var featureWeights = []struct {
	Feature string
	Weight  int
}{
	{tagset.FeatPOS, 10},
	{tagset.FeatNumber, 3},
	{tagset.FeatTense, 8},
	{tagset.FeatVoice, 6},
	{tagset.FeatMood, 6},
	{tagset.FeatGender, 2},
	{tagset.FeatCase, 4},
	{tagset.FeatPerson, 3},
	{tagset.FeatSuffix, 1},
}

// Part of speech. Values express closeness of syntactic function:
// adjectives agree with nouns (0.5), conjunctions join predicates
// and sit closer to verbs (0.7), pronoun subtypes cluster at 0.8,
// indeclinable noun types are nouns with irregular morphology (0.9),
// and the two non-finite verb classes appended at the end behave
// noun-like (participle 0.7, infinitive 0.8) while keeping a verbal
// core (0.7 / 0.9).
var posLabels = []string{
	"Noun", "Verb", "Adjective", "Adverb", "Conjunction",
	"Personal Pronoun", "Relative Pronoun", "Reciprocal Pronoun",
	"Demonstrative Pronoun", "Correlative Pronoun", "Interrogative Pronoun",
	"Indefinite Pronoun", "Correlative/Interrogative Pronoun", "Reflexive Pronoun",
	"Possessive Pronoun", "Particle", "Preposition", "Interjection",
	"Proper Noun Indeclinable", "Numeral Indeclinable", "Letter Indeclinable",
	"Noun Other Type Indeclinable", "Aramaic", "Hebrew", "Participle", "Infinitive",
}

var posMatrix = [][]float64{
	//                                 |-------------------------- pronouns ---------------------------|
	// noun verb adj  adv  conj prsn rela reci demn corr intr indf c/i  refl poss prtl prep intj pri  nui  li   oi   aram heb  ptc  inf
	{1.0, 0.2, 0.5, 0.4, 0.2, 0.2, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.9, 0.0, 0.9, 0.9, 0.6, 0.6, 0.7, 0.8}, // Noun
	{0.2, 1.0, 0.5, 0.6, 0.7, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.7, 0.9}, // Verb
	{0.5, 0.5, 1.0, 0.5, 0.4, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.9, 0.3}, // Adjective
	{0.4, 0.6, 0.5, 1.0, 0.3, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.4, 0.5}, // Adverb
	{0.2, 0.7, 0.4, 0.3, 1.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.8, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0}, // Conjunction
	{0.2, 0.0, 0.0, 0.0, 0.0, 1.0, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0}, // Personal Pronoun
	{0.0, 0.0, 0.0, 0.0, 0.0, 0.8, 1.0, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0}, // Relative Pronoun
	{0.0, 0.0, 0.0, 0.0, 0.0, 0.8, 0.8, 1.0, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0}, // Reciprocal Pronoun
	{0.0, 0.0, 0.0, 0.0, 0.0, 0.8, 0.8, 0.8, 1.0, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0}, // Demonstrative Pronoun
	{0.0, 0.0, 0.0, 0.0, 0.0, 0.8, 0.8, 0.8, 0.8, 1.0, 0.8, 0.8, 0.9, 0.8, 0.8, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0}, // Correlative Pronoun
	{0.0, 0.0, 0.0, 0.0, 0.0, 0.8, 0.8, 0.8, 0.8, 0.8, 1.0, 0.8, 0.9, 0.8, 0.8, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0}, // Interrogative Pronoun
	{0.0, 0.0, 0.0, 0.0, 0.0, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8, 1.0, 0.8, 0.8, 0.8, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0}, // Indefinite Pronoun
	{0.0, 0.0, 0.0, 0.0, 0.0, 0.8, 0.8, 0.8, 0.8, 0.9, 0.9, 0.8, 1.0, 0.8, 0.8, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0}, // Correlative/Interrogative Pronoun
	{0.0, 0.0, 0.0, 0.0, 0.0, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8, 1.0, 0.8, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0}, // Reflexive Pronoun
	{0.0, 0.0, 0.0, 0.0, 0.0, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8, 1.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0}, // Possessive Pronoun
	{0.0, 0.0, 0.0, 0.0, 0.8, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 1.0, 0.0, 0.3, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0}, // Particle
	{0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0}, // Preposition
	{0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.3, 0.0, 1.0, 0.0, 0.0, 0.0, 0.0, 0.6, 0.6, 0.0, 0.0}, // Interjection
	{0.9, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0}, // Proper Noun Indeclinable
	{0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0}, // Numeral Indeclinable
	{0.9, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, 0.0, 0.0, 0.0}, // Letter Indeclinable
	{0.9, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, 0.0, 0.0}, // Noun Other Type Indeclinable
	{0.6, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.6, 0.0, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, 0.0}, // Aramaic
	{0.6, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.6, 0.0, 0.0, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0}, // Hebrew
	{0.7, 0.7, 0.9, 0.4, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 1.0, 0.5}, // Participle
	{0.8, 0.9, 0.3, 0.5, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.5, 1.0}, // Infinitive
}

// Number. Singular and dual are both "small" numbers (0.8); plural
// sits further away (0.4).
var numberLabels = []string{"Singular", "Dual", "Plural"}

var numberMatrix = [][]float64{
	{1.0, 0.8, 0.4},
	{0.8, 1.0, 0.4},
	{0.4, 0.4, 1.0},
}

// Tense. Imperfective tenses cluster (present/imperfect/future),
// second forms are variants of their base tense (0.9), perfect and
// pluperfect share resultative aspect (0.8), cross-aspect pairs get
// nothing and "no tense stated" is a low-certainty 0.2 everywhere.
var tenseLabels = []string{
	"Present", "Imperfect", "Future", "Second Future", "Aorist", "Second Aorist",
	"Perfect", "Second Perfect", "Pluperfect", "Second Pluperfect", "No Tense Stated",
}

var tenseMatrix = [][]float64{
	// pres  impf  fut   2fut  aor   2aor  perf  2perf plup  2plup X
	{1.0, 0.8, 0.6, 0.6, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.2}, // Present
	{0.8, 1.0, 0.8, 0.8, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.2}, // Imperfect
	{0.6, 0.8, 1.0, 0.9, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.2}, // Future
	{0.6, 0.8, 0.9, 1.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.2}, // Second Future
	{0.0, 0.0, 0.0, 0.0, 1.0, 0.9, 0.0, 0.0, 0.0, 0.0, 0.2}, // Aorist
	{0.0, 0.0, 0.0, 0.0, 0.9, 1.0, 0.0, 0.0, 0.0, 0.0, 0.2}, // Second Aorist
	{0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 1.0, 0.9, 0.8, 0.8, 0.2}, // Perfect
	{0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.9, 1.0, 0.8, 0.8, 0.2}, // Second Perfect
	{0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.8, 0.8, 1.0, 0.9, 0.2}, // Pluperfect
	{0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.8, 0.8, 0.9, 1.0, 0.2}, // Second Pluperfect
	{0.2, 0.2, 0.2, 0.2, 0.2, 0.2, 0.2, 0.2, 0.2, 0.2, 1.0}, // No Tense Stated
}

// Voice. Deponent forms differ from their plain counterparts only
// morphologically (0.9); "middle or passive" overlaps both (0.8);
// contradicting pairs (active vs passive) get nothing and "no voice"
// is a low-certainty 0.2 everywhere.
var voiceLabels = []string{
	"Active", "Middle", "Passive", "Middle or Passive", "Middle Deponent",
	"Passive Deponent", "Middle or Passive Deponent", "Impersonal Active", "No Voice",
}

var voiceMatrix = [][]float64{
	// act   mid   pass  m/p   mdep  pdep  mpdep impa  nov
	{1.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.8, 0.2}, // Active
	{0.0, 1.0, 0.0, 0.8, 0.9, 0.0, 0.9, 0.0, 0.2}, // Middle
	{0.0, 0.0, 1.0, 0.8, 0.0, 0.9, 0.9, 0.0, 0.2}, // Passive
	{0.0, 0.8, 0.8, 1.0, 0.8, 0.8, 0.9, 0.0, 0.2}, // Middle or Passive
	{0.0, 0.9, 0.0, 0.8, 1.0, 0.0, 0.8, 0.0, 0.2}, // Middle Deponent
	{0.0, 0.0, 0.9, 0.8, 0.0, 1.0, 0.8, 0.0, 0.2}, // Passive Deponent
	{0.0, 0.9, 0.9, 0.9, 0.8, 0.8, 1.0, 0.0, 0.2}, // Middle or Passive Deponent
	{0.8, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 1.0, 0.2}, // Impersonal Active
	{0.2, 0.2, 0.2, 0.2, 0.2, 0.2, 0.2, 0.2, 1.0}, // No Voice
}

// Mood. Realis and potential finite moods neighbour each other,
// non-finite forms cluster, and the imperative participle is mostly
// a participle (0.9) with an imperative nuance (0.8).
var moodLabels = []string{
	"Indicative", "Subjunctive", "Optative", "Imperative",
	"Infinitive", "Participle", "Imperative Participle",
}

var moodMatrix = [][]float64{
	// ind   subj  opt   imp   inf   part  imppart
	{1.0, 0.8, 0.0, 0.0, 0.0, 0.0, 0.0}, // Indicative
	{0.8, 1.0, 0.8, 0.0, 0.0, 0.0, 0.0}, // Subjunctive
	{0.0, 0.8, 1.0, 0.0, 0.0, 0.0, 0.0}, // Optative
	{0.0, 0.0, 0.0, 1.0, 0.0, 0.0, 0.8}, // Imperative
	{0.0, 0.0, 0.0, 0.0, 1.0, 0.6, 0.5}, // Infinitive
	{0.0, 0.0, 0.0, 0.0, 0.6, 1.0, 0.9}, // Participle
	{0.0, 0.0, 0.0, 0.8, 0.5, 0.9, 1.0}, // Imperative Participle
}

// Gender. A "wrong" gender still proves the word is gendered, so
// off-diagonal cells keep a little weight.
var genderLabels = []string{"Masculine", "Feminine", "Neuter"}

var genderMatrix = [][]float64{
	{1.0, 0.2, 0.2},
	{0.2, 1.0, 0.2},
	{0.2, 0.2, 1.0},
}

// Case. Vocative is the direct address form of the subject (0.8 to
// nominative); accusative and dative are both objective cases (0.4).
var caseLabels = []string{"Nominative", "Accusative", "Genitive", "Dative", "Vocative"}

var caseMatrix = [][]float64{
	// nom   acc   gen   dat   voc
	{1.0, 0.2, 0.2, 0.2, 0.8}, // Nominative
	{0.2, 1.0, 0.2, 0.4, 0.2}, // Accusative
	{0.2, 0.2, 1.0, 0.2, 0.2}, // Genitive
	{0.2, 0.4, 0.2, 1.0, 0.2}, // Dative
	{0.8, 0.2, 0.2, 0.2, 1.0}, // Vocative
}

// Person. Same shape as gender: a little credit for being personed
// at all.
var personLabels = []string{"First Person", "Second Person", "Third Person"}

var personMatrix = [][]float64{
	{1.0, 0.2, 0.2},
	{0.2, 1.0, 0.2},
	{0.2, 0.2, 1.0},
}

// Suffixes have no curated matrix: exact matches score 1.0 and a
// substring containment in either direction scores a medium 0.5.
func suffixFallback(a, b string) float64 {
	if a != "" && b != "" && (strings.Contains(a, b) || strings.Contains(b, a)) {
		return 0.5
	}
	return 0.0
}

var scorers = map[string]*scorer{
	tagset.FeatPOS:    mustScorer(posLabels, posMatrix, nil),
	tagset.FeatNumber: mustScorer(numberLabels, numberMatrix, nil),
	tagset.FeatTense:  mustScorer(tenseLabels, tenseMatrix, nil),
	tagset.FeatVoice:  mustScorer(voiceLabels, voiceMatrix, nil),
	tagset.FeatMood:   mustScorer(moodLabels, moodMatrix, nil),
	tagset.FeatGender: mustScorer(genderLabels, genderMatrix, nil),
	tagset.FeatCase:   mustScorer(caseLabels, caseMatrix, nil),
	tagset.FeatPerson: mustScorer(personLabels, personMatrix, nil),
	tagset.FeatSuffix: mustScorer(nil, nil, suffixFallback),
}
