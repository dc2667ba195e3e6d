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

package cmd

import (
	"github.com/spf13/cobra"

	"morphtag/ranking"
)

var rankCmd = &cobra.Command{
	Use:   "rank <reference-tag> <reference-lemma> [file]",
	Short: "Rank candidate analyses against a reference tag and lemma",
	Long: `Rank a JSON array of analysis records (from a file or stdin)
against a reference tag and a reference betacode lemma. Each record
gets per-tag similarity percentages; records are grouped by lemma
with the reference lemma's group first and the best candidates on top.

Example:
  morphtag rank V-PAI-3S "lu/w" candidates.json`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runRank,
}

func init() {
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 3 {
		path = args[2]
	}
	recs, err := loadRecords(path)
	if err != nil {
		return err
	}
	ans := ranking.Rank(recs, args[0], args[1], ranking.Options{
		CaseSensitive: conf.Ranking.CaseSensitiveLemmas,
	})
	return printJSON(ans)
}
