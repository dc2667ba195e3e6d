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

// Package ranking scores a batch of tagged parse records against a
// reference tag and reorders them for review: the lemma group
// matching the reference lemma first, remaining groups by their best
// candidate, and within each group the best candidates first.
package ranking

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/czcorpus/cnc-gokit/collections"

	"morphtag/record"
	"morphtag/tagsim"
)

// Options tunes lemma matching. The zero value is the default
// behavior (case-insensitive lemma normalization).
type Options struct {
	// CaseSensitive disables lower-casing when normalized lemma
	// forms are matched against the reference lemma.
	CaseSensitive bool
}

// Rank annotates and reorders candidate analyses of one word form.
// Every record's tag (possibly a "/"-joined set) is scored against
// referenceTag and the integer percentages are stored on the record;
// records are then grouped by their (homonym-suffixed) base lemma
// and ordered. The input slice and its records are never mutated;
// the returned records are private copies.
func Rank(records []*record.Record, referenceTag, referenceLemma string, opts Options) []*record.Record {
	clones := collections.SliceMap(records, func(rec *record.Record, _ int) *record.Record {
		return rec.Clone()
	})

	bestPercent := make(map[*record.Record]int, len(clones))
	for _, rec := range clones {
		annotateHomonymSuffix(rec)
		bestPercent[rec] = annotateSimilarity(rec, referenceTag)
	}

	// grouped by hand: the group order must follow first appearance
	// of each lemma to keep the later sorts stable and deterministic
	groups := make(map[string][]*record.Record)
	var keys []string
	for _, rec := range clones {
		if _, ok := groups[rec.LemBaseBC]; !ok {
			keys = append(keys, rec.LemBaseBC)
		}
		groups[rec.LemBaseBC] = append(groups[rec.LemBaseBC], rec)
	}

	groupMax := make(map[string]int, len(keys))
	for key, members := range groups {
		best := 0
		for _, rec := range members {
			if bestPercent[rec] > best {
				best = bestPercent[rec]
			}
		}
		groupMax[key] = best
	}

	homeKey, hasHome := findHomeGroup(keys, referenceLemma, opts)
	if hasHome {
		keys = slices.DeleteFunc(keys, func(k string) bool { return k == homeKey })
	}
	slices.SortStableFunc(keys, func(a, b string) int {
		return groupMax[b] - groupMax[a]
	})
	if hasHome {
		keys = append([]string{homeKey}, keys...)
	}

	ans := make([]*record.Record, 0, len(clones))
	for _, key := range keys {
		members := groups[key]
		slices.SortStableFunc(members, func(a, b *record.Record) int {
			return bestPercent[b] - bestPercent[a]
		})
		ans = append(ans, members...)
	}
	return ans
}

// annotateHomonymSuffix appends "_(suffix)" to the base lemma when
// the full lemma extends beyond it to disambiguate homonyms. Already
// suffixed lemmas are left alone, so the annotation is idempotent.
func annotateHomonymSuffix(rec *record.Record) {
	if !strings.HasPrefix(rec.LemFullBC, rec.LemBaseBC) {
		return
	}
	leftover := strings.TrimSpace(rec.LemFullBC[len(rec.LemBaseBC):])
	if leftover == "" {
		return
	}
	suffix := "_(" + leftover + ")"
	if !strings.HasSuffix(rec.LemBaseBC, suffix) {
		rec.LemBaseBC += suffix
	}
}

// annotateSimilarity scores each candidate tag of the record against
// the reference tag, stores the "/"-joined integer percentages and
// returns the record's best percentage. An exact tag match is forced
// to 100 regardless of rounding.
func annotateSimilarity(rec *record.Record, referenceTag string) int {
	best := 0
	var percents []string
	for _, tag := range strings.Split(rec.Morph, "/") {
		if tag == "" {
			continue
		}
		percent := 100
		if tag != referenceTag {
			res := tagsim.Compare(tag, referenceTag)
			percent = int(math.Round(res.OverallSimilarity * 100))
		}
		if percent > best {
			best = percent
		}
		percents = append(percents, strconv.Itoa(percent))
	}
	if len(percents) == 0 {
		rec.MorphSimilarity = "0"
		return 0
	}
	rec.MorphSimilarity = strings.Join(percents, "/")
	return best
}

// findHomeGroup picks the group the reference lemma belongs to:
// first by exact match against the (possibly suffixed) group keys,
// then by comparing hyphen-stripped normalized forms with the
// homonym suffix ignored.
func findHomeGroup(keys []string, referenceLemma string, opts Options) (string, bool) {
	if slices.Contains(keys, referenceLemma) {
		return referenceLemma, true
	}
	norm := normalizeLemma(referenceLemma, opts)
	for _, key := range keys {
		if normalizeLemma(key, opts) == norm {
			return key, true
		}
	}
	return "", false
}

// normalizeLemma strips the homonym suffix and all hyphens from a
// betacode lemma; unless matching case-sensitively it also drops the
// betacode capitalization marker and lower-cases the rest.
func normalizeLemma(bc string, opts Options) string {
	base, _, _ := strings.Cut(bc, "_(")
	if !opts.CaseSensitive {
		base = strings.ToLower(strings.ReplaceAll(base, "*", ""))
	}
	return strings.ReplaceAll(base, "-", "")
}
