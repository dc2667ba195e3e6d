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

// Package analysis determines the part of speech of a parse record
// and encodes the record into a compact morphological tag. The
// reference grammar follows Wallace, The Basics of New Testament
// Syntax and Greek Grammar Beyond the Basics.
package analysis

import (
	"regexp"
	"slices"

	"github.com/rs/zerolog/log"

	"morphtag/record"
)

// Part-of-speech labels produced by Classify. The vocabulary is
// closed; the encoder maps each label to its tag prefix.
const (
	POSNoun                   = "noun"
	POSVerb                   = "verb"
	POSAdjective              = "adjective"
	POSAdverb                 = "adverb"
	POSArticle                = "article"
	POSConjunction            = "conjunction"
	POSPreposition            = "preposition"
	POSParticle               = "particle"
	POSInterjection           = "interjection"
	POSNumeral                = "numeral"
	POSPersonalPronoun        = "personal pronoun"
	POSRelativePronoun        = "relative pronoun"
	POSDemonstrativePronoun   = "demonstrative pronoun"
	POSIndefinitePronoun      = "indefinite pronoun"
	POSInterrogativePronoun   = "interrogative pronoun"
	POSNumeralIndeclinable    = "numeral indeclinable"
	POSProperNounIndeclinable = "proper noun indeclinable"
	POSNounOtherIndeclinable  = "noun other indeclinable"
	POSUnknown                = "unknown"
)

// codeMap maps conclusive morphological codes and flags to a part
// of speech. Codes define broad categories, flags provide finer
// annotations; both feed the same lookup.
var codeMap = map[string]string{
	"conj":       POSConjunction,
	"aor1":       POSVerb,
	"aor2":       POSVerb,
	"aor2_pass":  POSVerb,
	"irreg_adj3": POSAdjective,
	"verb_adj2":  POSAdjective,
	"demonstr":   POSDemonstrativePronoun,
	"prep":       POSPreposition,
	"particle":   POSParticle,
	"numeral":    POSNumeral,
	"relative":   POSRelativePronoun,
	"pron1":      POSPersonalPronoun,
	"pron2":      POSPersonalPronoun,
	"pron3":      POSPersonalPronoun,
	"indef":      POSIndefinitePronoun,
	"interrog":   POSInterrogativePronoun,
	"article":    POSArticle,
	"adverb":     POSAdverb, // adverbs that are not neut-sg indeclinables
	"adverbial":  POSAdverb,
	"irreg_mi":   POSVerb,
	"art_adj":    POSPersonalPronoun,
	"pron_adj1":  POSDemonstrativePronoun,
	"wn_on_comp": POSAdjective,
	"exclam":     POSInterjection,
}

// classifierRule is one step of the classification cascade.
type classifierRule struct {
	name  string
	apply func(rec *record.Record, items []string) (string, bool)
}

// cascade is evaluated in order, first match wins. Participles and
// infinitives are deliberately folded into "verb" here to stay in
// line with the reference corpus classification; the comparator
// refines them later.
var cascade = []classifierRule{
	{
		name: "tense or mood present",
		apply: func(rec *record.Record, items []string) (string, bool) {
			if rec.HasTense() || rec.HasMood() {
				return POSVerb, true
			}
			return "", false
		},
	},
	{
		name: "conclusive code or flag",
		apply: func(rec *record.Record, items []string) (string, bool) {
			for _, code := range items {
				if pos, ok := codeMap[code]; ok {
					return pos, true
				}
			}
			return "", false
		},
	},
	{
		name: "indeclinable form",
		apply: func(rec *record.Record, items []string) (string, bool) {
			if !slices.Contains(items, "indeclform") {
				return "", false
			}
			if rec.Gender.Scalar() == "neut" && rec.Number.Scalar() == "sg" &&
				(rec.Case.Scalar() == "nom" || rec.Case.Scalar() == "acc") {
				return POSAdverb, true
			}
			if slices.Contains(items, "numeral") {
				return POSNumeralIndeclinable, true
			}
			// gender or number on an indeclinable is read as a name
			if !rec.Gender.IsZero() || !rec.Number.IsZero() {
				return POSProperNounIndeclinable, true
			}
			return POSNounOtherIndeclinable, true
		},
	},
	{
		name: "enclitic or proclitic",
		apply: func(rec *record.Record, items []string) (string, bool) {
			if slices.Contains(items, "enclitic") || slices.Contains(items, "proclitic") {
				return POSParticle, true
			}
			return "", false
		},
	},
	{
		name: "case or gender present",
		apply: func(rec *record.Record, items []string) (string, bool) {
			if !rec.Case.IsZero() || !rec.Gender.IsZero() {
				return POSNoun, true
			}
			return "", false
		},
	},
	{
		name: "adverbial ending token",
		apply: func(rec *record.Record, items []string) (string, bool) {
			if slices.Contains(rec.OtherEndTokens, "adverbial") {
				return POSAdverb, true
			}
			return "", false
		},
	},
}

// Classify determines the part of speech of a single parse record.
// It walks the rule cascade in order and returns the first match,
// or "unknown" when no rule applies (non-fatal, logged for review).
func Classify(rec *record.Record) string {
	items := rec.CodesAndFlags()
	for _, rule := range cascade {
		if pos, ok := rule.apply(rec, items); ok {
			return pos
		}
	}
	log.Debug().
		Str("lemma", rec.LemBaseBC).
		Strs("codesAndFlags", items).
		Msg("no classification rule matched, falling back to unknown")
	return POSUnknown
}

var leadingPersonDigit = regexp.MustCompile(`^[123]`)
