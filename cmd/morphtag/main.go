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

// Package main is the entry point for the morphtag CLI.
package main

import (
	"os"

	"morphtag/cmd/morphtag/cmd"
)

var (
	version   string
	buildDate string
	gitCommit string
)

func main() {
	if err := cmd.Execute(version, buildDate, gitCommit); err != nil {
		os.Exit(1)
	}
}
