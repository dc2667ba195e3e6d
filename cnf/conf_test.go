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

package cnf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigEmptyPathGivesDefaults(t *testing.T) {
	conf := LoadConfig("")
	assert.Equal(t, "", conf.LogFile)
	assert.False(t, conf.Ranking.CaseSensitiveLemmas)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	err := os.WriteFile(path, []byte(`{"logLevel": "debug", "ranking": {"caseSensitiveLemmas": true}}`), 0644)
	assert.NoError(t, err)

	conf := LoadConfig(path)
	assert.True(t, conf.IsDebugMode())
	assert.True(t, conf.Ranking.CaseSensitiveLemmas)
	assert.Equal(t, path, conf.GetSourcePath())
}

func TestValidateAndDefaultsSetsLogLevel(t *testing.T) {
	var conf Conf
	ValidateAndDefaults(&conf)
	assert.Equal(t, "info", string(conf.LogLevel))
}
