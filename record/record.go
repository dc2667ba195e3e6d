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

// Package record defines the parse-record data model shared by the
// classifier, encoder and ranking layers. A record is produced by an
// external morphological analyser (Morpheus); morphtag only reads it
// and attaches derived annotations (part of speech, compact tag,
// similarity percentages).
package record

import (
	"encoding/json"
	"fmt"
	"slices"
)

// MultiValue holds a grammatical feature that an analyser may report
// either as a scalar or as a list of alternatives (e.g. gender
// ["masc", "fem"]). JSON input accepts both shapes.
type MultiValue []string

// First returns the first value, or an empty string when the value
// is absent.
func (mv MultiValue) First() string {
	if len(mv) == 0 {
		return ""
	}
	return mv[0]
}

// Scalar returns the value only when exactly one alternative is
// present. A list of alternatives never equals a scalar.
func (mv MultiValue) Scalar() string {
	if len(mv) == 1 {
		return mv[0]
	}
	return ""
}

// IsZero reports whether the feature is absent from the record.
func (mv MultiValue) IsZero() bool {
	return len(mv) == 0
}

func (mv *MultiValue) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*mv = nil

		} else {
			*mv = MultiValue{single}
		}
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("multi-value feature must be a string or a list of strings: %w", err)
	}
	*mv = MultiValue(items)
	return nil
}

func (mv MultiValue) MarshalJSON() ([]byte, error) {
	if len(mv) == 1 {
		return json.Marshal(mv[0])
	}
	return json.Marshal([]string(mv))
}

// Record is a single morphological analysis of a word form. Field
// names follow the analyser's vocabulary; empty values mean the
// feature is not applicable, never a guess.
type Record struct {
	Pos             string     `json:"pos,omitempty"`
	Tense           string     `json:"tense,omitempty"`
	Voice           string     `json:"voice,omitempty"`
	Mood            string     `json:"mood,omitempty"`
	Degree          string     `json:"degree,omitempty"`
	Case            MultiValue `json:"case,omitempty"`
	Number          MultiValue `json:"number,omitempty"`
	Gender          MultiValue `json:"gender,omitempty"`
	Person          MultiValue `json:"person,omitempty"`
	Dialects        []string   `json:"dialects,omitempty"`
	MorphCodes      []string   `json:"morph_codes,omitempty"`
	EndCodes        []string   `json:"end_codes,omitempty"`
	StemCodes       []string   `json:"stem_codes,omitempty"`
	EndFlags        []string   `json:"end_flags,omitempty"`
	StemFlags       []string   `json:"stem_flags,omitempty"`
	OtherEndTokens  []string   `json:"other_end_tokens,omitempty"`
	LemBaseBC       string     `json:"lem_base_bc,omitempty"`
	LemFullBC       string     `json:"lem_full_bc,omitempty"`
	Morph           string     `json:"morph,omitempty"`
	MorphSimilarity string     `json:"morph_similarity,omitempty"`
}

// HasTense reports presence of the tense feature (the classifier
// tests presence, not value).
func (rec *Record) HasTense() bool { return rec.Tense != "" }

// HasMood reports presence of the mood feature.
func (rec *Record) HasMood() bool { return rec.Mood != "" }

// CodesAndFlags concatenates ending codes, stem codes, ending flags
// and stem flags in this fixed order. Broad categories (codes) come
// before finer annotations (flags); duplicates across the lists are
// harmless and intentionally kept.
func (rec *Record) CodesAndFlags() []string {
	items := make([]string, 0, len(rec.EndCodes)+len(rec.StemCodes)+len(rec.EndFlags)+len(rec.StemFlags))
	items = append(items, rec.EndCodes...)
	items = append(items, rec.StemCodes...)
	items = append(items, rec.EndFlags...)
	items = append(items, rec.StemFlags...)
	return items
}

// Clone returns a deep copy. Ranking annotates copies only, so
// caller-owned records are never mutated.
func (rec *Record) Clone() *Record {
	ans := *rec
	ans.Case = slices.Clone(rec.Case)
	ans.Number = slices.Clone(rec.Number)
	ans.Gender = slices.Clone(rec.Gender)
	ans.Person = slices.Clone(rec.Person)
	ans.Dialects = slices.Clone(rec.Dialects)
	ans.MorphCodes = slices.Clone(rec.MorphCodes)
	ans.EndCodes = slices.Clone(rec.EndCodes)
	ans.StemCodes = slices.Clone(rec.StemCodes)
	ans.EndFlags = slices.Clone(rec.EndFlags)
	ans.StemFlags = slices.Clone(rec.StemFlags)
	ans.OtherEndTokens = slices.Clone(rec.OtherEndTokens)
	return &ans
}
