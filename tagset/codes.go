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

// CaseByCode maps single-letter case codes to labels.
var CaseByCode = map[byte]string{
	'N': "Nominative",
	'G': "Genitive",
	'D': "Dative",
	'A': "Accusative",
	'V': "Vocative",
}

// NumberByCode maps single-letter number codes to labels.
var NumberByCode = map[byte]string{
	'S': "Singular",
	'P': "Plural",
	'D': "Dual",
}

// GenderByCode maps single-letter gender codes to labels.
var GenderByCode = map[byte]string{
	'M': "Masculine",
	'F': "Feminine",
	'N': "Neuter",
}

// PersonByCode maps person digits to labels.
var PersonByCode = map[byte]string{
	'1': "First Person",
	'2': "Second Person",
	'3': "Third Person",
}

// TenseCodes lists tense codes in match order: two-character
// second-form codes first, so that resolving the tense by the
// longest matching prefix of the tense-voice-mood block never
// confuses e.g. "2A" with "A".
var TenseCodes = []string{"2F", "2A", "2R", "2L", "P", "I", "F", "A", "R", "L", "X"}

// TenseByCode maps tense codes to labels.
var TenseByCode = map[string]string{
	"P":  "Present",
	"I":  "Imperfect",
	"F":  "Future",
	"2F": "Second Future",
	"A":  "Aorist",
	"2A": "Second Aorist",
	"R":  "Perfect",
	"2R": "Second Perfect",
	"L":  "Pluperfect",
	"2L": "Second Pluperfect",
	"X":  "No Tense Stated",
}

// VoiceByCode maps single-letter voice codes to labels.
var VoiceByCode = map[byte]string{
	'A': "Active",
	'M': "Middle",
	'P': "Passive",
	'E': "Middle or Passive",
	'D': "Middle Deponent",
	'O': "Passive Deponent",
	'N': "Middle or Passive Deponent",
	'Q': "Impersonal Active",
	'X': "No Voice",
}

// MoodByCode maps single-letter mood codes to labels.
var MoodByCode = map[byte]string{
	'I': "Indicative",
	'S': "Subjunctive",
	'O': "Optative",
	'M': "Imperative",
	'N': "Infinitive",
	'P': "Participle",
	'R': "Imperative Participle",
}

// Mood code classes steering how the verb feature block is read.
const (
	FiniteMoodCodes     = "ISOM" // person + number
	ParticipleMoodCodes = "PR"   // case + number + gender
	InfinitiveMoodCode  = byte('N')
)

// VerbExtraBySuffix maps trailing verb tokens (with leading dash)
// to labels.
var VerbExtraBySuffix = map[string]string{
	"-M":   "Middle significance",
	"-C":   "Contracted form",
	"-T":   "Transitive",
	"-A":   "Aeolic",
	"-ATT": "Attic",
	"-AP":  "Apocopated form",
	"-IRR": "Irregular or impure form",
}

// SuffixByCode maps trailing tag suffixes (with leading dash) to
// labels.
var SuffixByCode = map[string]string{
	"-K":   "Crasis",
	"-N":   "Negative",
	"-S":   "Superlative",
	"-C":   "Comparative",
	"-ABB": "Abbreviated",
	"-I":   "Interrogative",
	"-ATT": "Attic",
	"-P":   "Particle Attached",
}
