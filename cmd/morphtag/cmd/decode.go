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

	"morphtag/decode"
	"morphtag/tagset"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <tag> [<tag>...]",
	Short: "Decode compact tags into human-readable features",
	Long: `Decode one or more compact morphological tags into labeled
features. Unknown or malformed parts are reported via Warning and
Error entries instead of aborting.

Example:
  morphtag decode V-PAI-3S N-NSM`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	ans := make(map[string]tagset.Features, len(args))
	for _, tag := range args {
		ans[tag] = decode.Tag(tag)
	}
	return printJSON(ans)
}
