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
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"morphtag/record"
)

// Sentinel tags. TagError marks a structurally invalid record,
// TagUnknown an unrecognized part of speech. Neither ever produces
// a malformed tag downstream.
const (
	TagError   = "ERROR"
	TagUnknown = "UNK"
)

// posPrefix maps part-of-speech labels to tag prefixes. The table
// also carries analyser synonyms (e.g. "exclam", "numeral") so that
// records classified upstream by other vocabularies still encode.
var posPrefix = map[string]string{
	"noun":                                 "N-",
	"adjective":                            "A-",
	"article":                              "T-",
	"definite article":                     "T-",
	"indefinite article":                   "T-",
	"verb":                                 "V-",
	"personal pronoun":                     "P-",
	"relative pronoun":                     "R-",
	"reciprocal pronoun":                   "C-",
	"demonstrative pronoun":                "D-",
	"correlative pronoun":                  "K-",
	"interrogative pronoun":                "I-",
	"indefinite pronoun":                   "X-",
	"correlative or interrogative pronoun": "Q-",
	"reflexive pronoun":                    "F-",
	"possessive pronoun":                   "S-",
	"adverb":                               "ADV",
	"conjunction":                          "CONJ",
	"conditional":                          "COND",
	"particle":                             "PRT",
	"preposition":                          "PREP",
	"interjection":                         "INJ",
	"aramaic":                              "ARAM",
	"hebrew":                               "HEB",
	"proper noun indeclinable":             "N-PRI",
	"numeral indeclinable":                 "A-NUI",
	"exclam":                               "INJ",
	"numeral":                              "A-NUI",
	"letter indeclinable":                  "N-LI",
	"noun other indeclinable":              "N-OI",
	"punctuation":                          "PUNCT",
}

// indeclinableByPrefix marks prefixes that form the whole tag.
var indeclinableByPrefix = map[string]bool{
	"ADV": true, "CONJ": true, "COND": true, "PRT": true,
	"PREP": true, "INJ": true, "ARAM": true, "HEB": true,
	"N-PRI": true, "A-NUI": true, "N-LI": true, "N-OI": true,
	"PUNCT": true,
}

var pronounByPrefix = map[string]bool{
	"P-": true, "R-": true, "C-": true, "D-": true, "K-": true,
	"I-": true, "X-": true, "Q-": true, "F-": true, "S-": true,
}

// Analyser tense token to tense code.
var tenseCode = map[string]string{
	"pres":            "P",
	"imperf":          "I",
	"fut":             "F",
	"aor":             "A",
	"perf":            "R",
	"plup":            "L",
	"no tense stated": "X",
}

// secondFormFlags lists the morph codes that signal a "second" form
// of a tense; secondFormCode carries the code such a form gets
// instead of the plain one.
var secondFormFlags = map[string][]string{
	"aor":  {"aor2", "aor2_pass"},
	"fut":  {"fut2", "future2"},
	"perf": {"perf2"},
	"plup": {"lpl2", "plup2"},
}

var secondFormCode = map[string]string{
	"aor":  "2A",
	"fut":  "2F",
	"perf": "2R",
	"plup": "2L",
}

var voiceCode = map[string]string{
	"act":                        "A",
	"mid":                        "M",
	"pass":                       "P",
	"mp":                         "E",
	"middle deponent":            "D",
	"passive deponent":           "O",
	"middle or passive deponent": "N",
	"impersonal active":          "Q",
	"no voice":                   "X",
}

var moodCode = map[string]string{
	"ind":                   "I",
	"subj":                  "S",
	"opt":                   "O",
	"imperat":               "M",
	"inf":                   "N",
	"part":                  "P",
	"imperative participle": "R",
}

// initial derives the code of a scalar feature value: its first
// character, upper-cased ("nom" -> "N").
func initial(v string) string {
	if v == "" {
		return ""
	}
	return strings.ToUpper(v[:1])
}

// initials derives the code of a possibly list-valued feature: the
// concatenated upper-cased initials in list order, not sorted
// (["masc", "fem"] -> "MF").
func initials(mv record.MultiValue) string {
	var sb strings.Builder
	for _, v := range mv {
		sb.WriteString(initial(v))
	}
	return sb.String()
}

// orIterable keeps one iteration alive for features that may be
// legitimately absent from a tag family.
func orIterable(mv record.MultiValue) []string {
	if len(mv) == 0 {
		return []string{""}
	}
	return mv
}

// EncodeTag builds the compact morphological tag for a parse record
// with a known part of speech. List-valued case/number/gender fields
// produce one tag per combination, joined by "/". It returns
// TagUnknown for an unrecognized part of speech and TagError for a
// structurally invalid record.
func EncodeTag(rec *record.Record, pos string) string {
	if rec == nil {
		return TagError
	}
	prefix := posPrefix[strings.ToLower(strings.TrimSpace(pos))]

	if indeclinableByPrefix[prefix] {
		// interrogative adverbs carry a dedicated suffix
		if prefix == "ADV" && slices.Contains(rec.MorphCodes, "interrog") {
			return "ADV-I"
		}
		return appendDialectSuffix(prefix, rec.Dialects)
	}

	if prefix == "V-" {
		return encodeVerb(rec)
	}

	if prefix == "N-" || prefix == "A-" || prefix == "T-" {
		return encodeNominal(rec, prefix)
	}

	if pronounByPrefix[prefix] {
		return encodePronoun(rec, prefix)
	}

	log.Debug().
		Str("pos", pos).
		Str("lemma", rec.LemBaseBC).
		Msg("no tag family for part of speech, falling back to UNK")
	return TagUnknown
}

// encodeVerb builds "V-" + tense + voice + mood, then a mood-specific
// feature block: person+number for finite moods, nothing for the
// infinitive, case+number+gender combinations for participles.
func encodeVerb(rec *record.Record) string {
	morphCodes := make([]string, len(rec.MorphCodes))
	for i, c := range rec.MorphCodes {
		morphCodes[i] = strings.ToLower(c)
	}
	baseTense := strings.ToLower(strings.TrimSpace(rec.Tense))

	lookup := baseTense
	if lookup == "" {
		lookup = "no tense stated"
	}
	t, ok := tenseCode[lookup]
	if !ok {
		t = "X"
	}
	for _, flag := range secondFormFlags[baseTense] {
		if slices.Contains(morphCodes, flag) {
			t = secondFormCode[baseTense]
			break
		}
	}
	v, ok := voiceCode[rec.Voice]
	if !ok {
		v = "X"
	}
	m, ok := moodCode[rec.Mood]
	if !ok {
		m = "X"
	}

	person := initial(rec.Person.First())
	if person == "" {
		for _, tok := range rec.OtherEndTokens {
			if d := leadingPersonDigit.FindString(tok); d != "" {
				person = d
				break
			}
		}
	}

	base := "V-" + t + v + m
	switch {
	case strings.Contains("ISOM", m) && person != "":
		return appendDialectSuffix(base+"-"+person+initials(rec.Number), rec.Dialects)

	case m == "N":
		return appendDialectSuffix(base, rec.Dialects)

	case m == "P":
		var tags []string
		for _, c := range rec.Case {
			for _, n := range rec.Number {
				for _, g := range rec.Gender {
					tags = append(tags, base+"-"+initial(c)+initial(n)+initial(g))
				}
			}
		}
		if len(tags) == 0 {
			return appendDialectSuffix(base, rec.Dialects)
		}
		return appendDialectSuffix(strings.Join(tags, "/"), rec.Dialects)
	}

	// finite mood without person, or a mood outside the tag grammar
	// (e.g. imperative participle is never produced by the analyser)
	log.Debug().
		Str("lemma", rec.LemBaseBC).
		Str("mood", rec.Mood).
		Msg("verb record outside the tag grammar, falling back to UNK")
	return TagUnknown
}

// encodeNominal builds prefix + case + number + gender per
// combination; adjectives append a degree suffix.
func encodeNominal(rec *record.Record, prefix string) string {
	var tags []string
	for _, c := range rec.Case {
		for _, n := range orIterable(rec.Number) {
			for _, g := range rec.Gender {
				tag := prefix + initial(c) + initial(n) + initial(g)
				if prefix == "A-" {
					switch rec.Degree {
					case "comparative":
						tag += "-C"
					case "superlative":
						tag += "-S"
					}
				}
				tags = append(tags, appendDialectSuffix(tag, rec.Dialects))
			}
		}
	}
	return strings.Join(tags, "/")
}

// encodePronoun builds prefix + [person] + case + number + [gender]
// per case and gender combination; person and number are scalar.
// Absent gender is omitted entirely, never placeholdered.
func encodePronoun(rec *record.Record, prefix string) string {
	personCode := initials(rec.Person)
	numCode := initials(rec.Number)

	var tags []string
	for _, c := range orIterable(rec.Case) {
		for _, g := range orIterable(rec.Gender) {
			var sb strings.Builder
			sb.WriteString(prefix)
			sb.WriteString(personCode)
			sb.WriteString(initial(c))
			sb.WriteString(numCode)
			sb.WriteString(initial(g))
			tags = append(tags, appendDialectSuffix(sb.String(), rec.Dialects))
		}
	}
	return strings.Join(tags, "/")
}
