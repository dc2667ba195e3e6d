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

	"morphtag/tagsim"
)

var compareCmd = &cobra.Command{
	Use:   "compare <tag1> <tag2>",
	Short: "Score the similarity of two compact tags",
	Long: `Compare two compact morphological tags and print the weighted
overall similarity in [0, 1] together with the per-feature details.

Example:
  morphtag compare V-PAP-NSM N-NSM`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	return printJSON(tagsim.Compare(args[0], args[1]))
}
