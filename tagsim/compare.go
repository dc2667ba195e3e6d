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
	"morphtag/decode"
	"morphtag/tagset"
)

// Detail is the per-category breakdown of a comparison.
type Detail struct {
	Tag1       string  `json:"tag1"`
	Tag2       string  `json:"tag2"`
	Similarity float64 `json:"similarity"`
	Weight     int     `json:"weight"`
}

// Result reports the weighted overall similarity of two tags plus
// the per-category breakdown. Categories where either side has no
// value carry weight 0 and are excluded from normalization, not
// penalized.
type Result struct {
	Tag1              string            `json:"tag1"`
	Tag2              string            `json:"tag2"`
	OverallSimilarity float64           `json:"overall_similarity"`
	Details           map[string]Detail `json:"details"`
}

// Compare decodes two tags and scores their syntactic similarity.
// The first tag is conventionally the reference (gold standard),
// but the function is symmetric: swapping the arguments changes
// neither any per-category similarity nor the overall score.
func Compare(tag1, tag2 string) Result {
	feats1 := decode.Tag(tag1)
	feats2 := decode.Tag(tag2)

	// A participle or infinitive functions noun-like rather than
	// verb-like; relabeling lets the part-of-speech matrix encode
	// that closeness directly.
	for _, feats := range []tagset.Features{feats1, feats2} {
		if feats[tagset.FeatPOS] == "Verb" {
			switch feats[tagset.FeatMood] {
			case "Participle":
				feats[tagset.FeatPOS] = "Participle"
			case "Infinitive":
				feats[tagset.FeatPOS] = "Infinitive"
			}
		}
	}

	var totalScore float64
	var totalWeight int
	details := make(map[string]Detail, len(featureWeights))

	for _, fw := range featureWeights {
		v1 := feats1.Get(fw.Feature)
		v2 := feats2.Get(fw.Feature)
		sim := scorers[fw.Feature].score(v1, v2)
		weight := fw.Weight
		// an undecodable side or a category missing on either side
		// is excluded from the calculation but still reported, so
		// the details block stays uniform
		if v1 == tagset.LabelUnsupportedPOS || v2 == tagset.LabelUnsupportedPOS ||
			v1 == "" || v2 == "" {
			sim = 0
			weight = 0
		}
		details[fw.Feature] = Detail{
			Tag1:       v1,
			Tag2:       v2,
			Similarity: sim,
			Weight:     weight,
		}
		totalScore += sim * float64(weight)
		totalWeight += weight
	}

	overall := 0.0
	if totalWeight > 0 {
		overall = totalScore / float64(totalWeight)
	}
	return Result{
		Tag1:              tag1,
		Tag2:              tag2,
		OverallSimilarity: overall,
		Details:           details,
	}
}
