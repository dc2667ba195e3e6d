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
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"
)

const (
	dfltLogLevel = "info"
)

// RankingConf tunes how candidate analyses are grouped and ordered.
type RankingConf struct {
	// CaseSensitiveLemmas disables lower-casing when lemma groups
	// are matched against a reference lemma.
	CaseSensitiveLemmas bool `json:"caseSensitiveLemmas"`
}

// Conf is a global configuration of the app
type Conf struct {
	LogFile  string           `json:"logFile"`
	LogLevel logging.LogLevel `json:"logLevel"`
	Ranking  RankingConf      `json:"ranking"`

	srcPath string
}

func (conf *Conf) IsDebugMode() bool {
	return conf.LogLevel == "debug"
}

// GetSourcePath returns an absolute path of a file
// the config was loaded from.
func (conf *Conf) GetSourcePath() string {
	if conf.srcPath == "" {
		return ""
	}
	if filepath.IsAbs(conf.srcPath) {
		return conf.srcPath
	}
	var cwd string
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "[failed to get working dir]"
	}
	return filepath.Join(cwd, conf.srcPath)
}

// LoadConfig reads the JSON configuration from path. An empty path
// is allowed and produces a zero-value configuration so the tool
// works out of the box without any config file.
func LoadConfig(path string) *Conf {
	var conf Conf
	if path == "" {
		return &conf
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	conf.srcPath = path
	err = json.Unmarshal(rawData, &conf)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return &conf
}

func ValidateAndDefaults(conf *Conf) {
	if conf.LogLevel == "" {
		conf.LogLevel = dfltLogLevel
		log.Warn().Msgf("logLevel not specified, using default: %s", dfltLogLevel)
	}
}
