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

var classifyCmd = &cobra.Command{
	Use:   "classify [file]",
	Short: "Determine the part of speech of a parsed analysis",
	Long: `Classify a single JSON analysis record (from a file or stdin)
into a part-of-speech label such as "verb", "noun" or "adverb".

Example:
  echo '{"tense": "pres", "mood": "ind"}' | morphtag classify`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	}
	rec, err := loadRecord(path)
	if err != nil {
		return err
	}
	fmt.Println(analysis.Classify(rec))
	return nil
}
