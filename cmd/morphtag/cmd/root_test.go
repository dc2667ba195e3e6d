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
	"testing"

	"github.com/stretchr/testify/assert"
)

// runs the whole cobra init path including config loading and
// logging setup with an empty config
func TestExecuteVersionCommand(t *testing.T) {
	rootCmd.SetArgs([]string{"version"})
	err := Execute("v1.2.3", "2026-08-26", "'abcdef'")
	assert.NoError(t, err)
	assert.Equal(t, "1.2.3", binInfo.Version)
	assert.Equal(t, "abcdef", binInfo.GitCommit)
}

func TestCleanVersionInfo(t *testing.T) {
	assert.Equal(t, "2.0.1", cleanVersionInfo("'v2.0.1'"))
	assert.Equal(t, "", cleanVersionInfo(""))
}
