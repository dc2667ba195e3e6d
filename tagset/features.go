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

// Package tagset holds the closed vocabularies of the compact tag
// grammar: feature (category) names, single-letter code tables,
// tag suffix tables and the ordered part-of-speech prefix table.
// The encoder and the decoder form a matched grammar over these
// tables; every decoder production mirrors an encoder rule.
package tagset

// Feature names used as keys of decoded feature maps. Absent keys
// mean "not applicable", never a guessed value.
const (
	FeatPOS       = "Part of Speech"
	FeatCase      = "Case"
	FeatNumber    = "Number"
	FeatGender    = "Gender"
	FeatTense     = "Tense"
	FeatVoice     = "Voice"
	FeatMood      = "Mood"
	FeatPerson    = "Person"
	FeatVerbExtra = "Verb extra"
	FeatSuffix    = "Suffix"
	FeatWarning   = "Warning"
	FeatError     = "Error"

	// possessive pronouns carry two feature bundles, one for the
	// possessor and one for the possessed item
	FeatPersonOfPossessor = "Person of Possessor"
	FeatNumberOfPossessor = "Number of Possessor"
	FeatCaseOfPossessed   = "Case of Possessed"
	FeatNumberOfPossessed = "Number of Possessed"
	FeatGenderOfPossessed = "Gender of Possessed"
)

// Sentinel labels surfaced as data instead of faults.
const (
	LabelUnknown        = "Unknown"
	LabelUnsupportedPOS = "Unknown or Unsupported"
)

// Features maps feature names to decoded labels.
type Features map[string]string

// Get returns the label for a feature or an empty string.
func (f Features) Get(name string) string {
	return f[name]
}

// HasError reports whether decoding aborted with an error entry.
func (f Features) HasError() bool {
	_, ok := f[FeatError]
	return ok
}
