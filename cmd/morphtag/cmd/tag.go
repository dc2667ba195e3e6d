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
	"fmt"

	"github.com/spf13/cobra"

	"morphtag/analysis"
)

var tagCmd = &cobra.Command{
	Use:   "tag [file]",
	Short: "Encode a parsed analysis into a compact tag",
	Long: `Encode a single JSON analysis record (from a file or stdin)
into a compact morphological tag. When the record carries no part of
speech it is classified first.

Example:
  echo '{"pos": "verb", "tense": "aor", "voice": "act", "mood": "ind", "person": ["3"], "number": "sg"}' | morphtag tag`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTag,
}

func init() {
	rootCmd.AddCommand(tagCmd)
}

func runTag(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	}
	rec, err := loadRecord(path)
	if err != nil {
		return err
	}
	pos := rec.Pos
	if pos == "" {
		pos = analysis.Classify(rec)
	}
	fmt.Println(analysis.EncodeTag(rec, pos))
	return nil
}
