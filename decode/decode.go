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

// Package decode parses a compact morphological tag into a map of
// human-readable grammatical features. Malformed input is surfaced
// as data (Warning and Error entries), never as a fault.
package decode

import (
	"regexp"
	"strings"

	"morphtag/tagset"
)

const (
	errEmptyTag   = "Please enter a parsing tag."
	errUnknownPOS = "POS unknown"
)

// Verb tags split into three parts: an optional digit plus three
// letters (tense-voice-mood), an optional feature block (person and
// number, or case, number and gender, selected by mood) and an
// optional trailing verb-extra token.
var verbPattern = regexp.MustCompile(`^V-([0-9]?[A-Z]{3})(?:-([1-3A-Z]{2,3}))?(?:-([A-Z-]+))?$`)

// Tag decodes a compact morphological tag (e.g. "V-PAI-3S") into
// grammatical features. Unknown vocabulary yields sentinel labels
// plus a Warning; a tag violating its part-of-speech grammar yields
// an Error entry and no guessed features.
func Tag(tagInput string) tagset.Features {
	out := tagset.Features{}

	tag := strings.TrimSpace(tagInput)
	if tag == "" {
		out[tagset.FeatPOS] = tagset.LabelUnsupportedPOS
		out[tagset.FeatError] = errEmptyTag
		return out
	}

	prefix, ok := tagset.MatchPOSPrefix(tag)
	if !ok {
		out[tagset.FeatPOS] = tagset.LabelUnsupportedPOS
		out[tagset.FeatError] = errUnknownPOS
		return out
	}
	out[tagset.FeatPOS] = prefix.Label

	// the prefix is matched case-sensitively, the feature block is
	// tolerant of lower-case input
	rest := strings.ToUpper(tag)[len(prefix.Prefix):]

	switch {
	case prefix.Prefix == "V-":
		decodeVerb(tag, out)

	case tagset.IndeclinablePrefixes[prefix.Prefix]:
		if strings.Contains(rest, "-") {
			if label, ok := tagset.SuffixByCode[rest]; ok {
				out[tagset.FeatSuffix] = label
			} else {
				out[tagset.FeatWarning] = "Unknown suffix"
			}
		}

	case prefix.Prefix == "N-" || prefix.Prefix == "A-" || prefix.Prefix == "T-":
		if len(rest) >= 3 {
			out[tagset.FeatCase] = label(tagset.CaseByCode, rest[0])
			out[tagset.FeatNumber] = label(tagset.NumberByCode, rest[1])
			out[tagset.FeatGender] = label(tagset.GenderByCode, rest[2])

		} else {
			out[tagset.FeatWarning] = "Not enough elements provided"
		}
		decodeTrailingSuffix(rest, out)

	case prefix.Prefix == "F-":
		if len(rest) >= 4 {
			out[tagset.FeatPerson] = label(tagset.PersonByCode, rest[0])
			out[tagset.FeatCase] = label(tagset.CaseByCode, rest[1])
			out[tagset.FeatNumber] = label(tagset.NumberByCode, rest[2])
			out[tagset.FeatGender] = label(tagset.GenderByCode, rest[3])

		} else {
			out[tagset.FeatWarning] = "Not enough elements provided"
		}
		decodeTrailingSuffix(rest, out)

	case prefix.Prefix == "S-":
		if len(rest) >= 5 {
			out[tagset.FeatPersonOfPossessor] = label(tagset.PersonByCode, rest[0])
			out[tagset.FeatNumberOfPossessor] = label(tagset.NumberByCode, rest[1])
			out[tagset.FeatCaseOfPossessed] = label(tagset.CaseByCode, rest[2])
			out[tagset.FeatNumberOfPossessed] = label(tagset.NumberByCode, rest[3])
			out[tagset.FeatGenderOfPossessed] = label(tagset.GenderByCode, rest[4])

		} else {
			out[tagset.FeatWarning] = "Not enough elements provided"
		}
		decodeTrailingSuffix(rest, out)

	case tagset.PronounPrefixes[prefix.Prefix]:
		decodePronoun(rest, out)

	default:
		decodeTrailingSuffix(rest, out)
	}
	return out
}

// decodeVerb reads the three verb tag parts. The pattern is strict;
// a mismatch aborts the decode of this tag with an Error entry.
func decodeVerb(tag string, out tagset.Features) {
	m := verbPattern.FindStringSubmatch(tag)
	if m == nil {
		out[tagset.FeatError] = "Tag " + tag + " does not match expected pattern."
		return
	}
	tvm, feat, extra := m[1], m[2], m[3]

	// tense is the longest matching prefix of the TVM block
	var tenseCode string
	for _, tc := range tagset.TenseCodes {
		if strings.HasPrefix(tvm, tc) {
			tenseCode = tc
			break
		}
	}
	if tenseCode == "" {
		out[tagset.FeatTense] = tagset.LabelUnknown
		out[tagset.FeatWarning] = "Cannot resolve tense from " + tvm
		return
	}
	out[tagset.FeatTense] = tagset.TenseByCode[tenseCode]

	rem := tvm[len(tenseCode):]
	if len(rem) != 2 {
		out[tagset.FeatError] = "Tag " + tag + " does not match expected pattern."
		return
	}
	mood := rem[1]
	out[tagset.FeatVoice] = label(tagset.VoiceByCode, rem[0])
	out[tagset.FeatMood] = label(tagset.MoodByCode, mood)

	switch {
	case strings.IndexByte(tagset.ParticipleMoodCodes, mood) >= 0:
		if len(feat) == 3 {
			out[tagset.FeatCase] = label(tagset.CaseByCode, feat[0])
			out[tagset.FeatNumber] = label(tagset.NumberByCode, feat[1])
			out[tagset.FeatGender] = label(tagset.GenderByCode, feat[2])

		} else {
			out[tagset.FeatError] = "Incomplete feature code"
		}

	case strings.IndexByte(tagset.FiniteMoodCodes, mood) >= 0:
		if len(feat) == 2 {
			out[tagset.FeatPerson] = label(tagset.PersonByCode, feat[0])
			out[tagset.FeatNumber] = label(tagset.NumberByCode, feat[1])

		} else {
			out[tagset.FeatError] = "Incorrect feature code"
		}

	case mood == tagset.InfinitiveMoodCode:
		// an infinitive should carry no feature block, but tags like
		// V-RAN-ATT exist in the wild; treat the block as verb extra
		if len(feat) > 0 {
			out[tagset.FeatWarning] = "Unexpected extra element (" + feat + ") for mood N will be handled as verb extra"
			extra = feat
		}

	default:
		out[tagset.FeatError] = "Unrecognized mood code " + string(mood)
	}

	if len(extra) > 0 {
		if lbl, ok := tagset.VerbExtraBySuffix["-"+extra]; ok {
			out[tagset.FeatVerbExtra] = lbl

		} else {
			out[tagset.FeatVerbExtra] = "Unknown verb extra"
			out[tagset.FeatWarning] = "Unknown verb extra -" + extra
		}
	}
}

// decodePronoun tries the positional patterns [case, number], then
// [person, case, number] (leading digit), then [case, number,
// gender], plus an optional trailing suffix.
func decodePronoun(rest string, out tagset.Features) {
	switch {
	case len(rest) == 2:
		out[tagset.FeatCase] = label(tagset.CaseByCode, rest[0])
		out[tagset.FeatNumber] = label(tagset.NumberByCode, rest[1])

	case len(rest) >= 3 && rest[0] >= '1' && rest[0] <= '3':
		out[tagset.FeatPerson] = label(tagset.PersonByCode, rest[0])
		out[tagset.FeatCase] = label(tagset.CaseByCode, rest[1])
		out[tagset.FeatNumber] = label(tagset.NumberByCode, rest[2])

	case len(rest) >= 3:
		out[tagset.FeatCase] = label(tagset.CaseByCode, rest[0])
		out[tagset.FeatNumber] = label(tagset.NumberByCode, rest[1])
		out[tagset.FeatGender] = label(tagset.GenderByCode, rest[2])
	}
	decodeTrailingSuffix(rest, out)
}

// decodeTrailingSuffix resolves the portion after the last dash
// (e.g. the "-K" in "P-1AS-K"). An unknown suffix is a warning, not
// an error.
func decodeTrailingSuffix(rest string, out tagset.Features) {
	idx := strings.LastIndex(rest, "-")
	if idx < 0 {
		return
	}
	if lbl, ok := tagset.SuffixByCode["-"+rest[idx+1:]]; ok {
		out[tagset.FeatSuffix] = lbl

	} else {
		out[tagset.FeatWarning] = "Unknown suffix"
	}
}

func label(m map[byte]string, code byte) string {
	if lbl, ok := m[code]; ok {
		return lbl
	}
	return tagset.LabelUnknown
}
