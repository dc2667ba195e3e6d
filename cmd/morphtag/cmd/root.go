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

// Package cmd contains all CLI commands for the morphtag tool.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/spf13/cobra"

	"morphtag/cnf"
	"morphtag/general"
	"morphtag/record"
)

var (
	cfgFile  string
	logLevel string

	conf    *cnf.Conf
	binInfo general.VersionInfo
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "morphtag",
	Short: "Encode, decode and compare compact Greek morphological tags",
	Long: `MORPHTAG works with compact morphological tags for ancient Greek
word forms (e.g. V-PAI-3S, N-NSM, P-GS).

It can classify a parsed analysis into a part of speech, encode the
analysis into a compact tag, decode a tag back into human-readable
features, score the similarity of two tags and rank a whole batch of
candidate analyses against a reference tag and lemma.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Build-time version identifiers are passed through
// from package main.
func Execute(version, buildDate, gitCommit string) error {
	binInfo = general.VersionInfo{
		Version:   cleanVersionInfo(version),
		BuildDate: cleanVersionInfo(buildDate),
		GitCommit: cleanVersionInfo(gitCommit),
	}
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConf)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a JSON config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")
}

func initConf() {
	conf = cnf.LoadConfig(cfgFile)
	if logLevel != "" {
		conf.LogLevel = logging.LogLevel(logLevel)
	}
	cnf.ValidateAndDefaults(conf)
	logging.SetupLogging(logging.LoggingConf{
		Path:  conf.LogFile,
		Level: conf.LogLevel,
	})
}

func cleanVersionInfo(v string) string {
	return strings.TrimLeft(strings.Trim(v, "'"), "v")
}

// readInput returns the contents of the file named by the argument,
// or stdin when the argument is empty or "-".
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// loadRecord decodes a single JSON analysis record from a file or stdin.
func loadRecord(path string) (*record.Record, error) {
	rawData, err := readInput(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis: %w", err)
	}
	var rec record.Record
	if err := json.Unmarshal(rawData, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode analysis: %w", err)
	}
	return &rec, nil
}

// loadRecords decodes a JSON array of analysis records from a file or stdin.
func loadRecords(path string) ([]*record.Record, error) {
	rawData, err := readInput(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read analyses: %w", err)
	}
	var recs []*record.Record
	if err := json.Unmarshal(rawData, &recs); err != nil {
		return nil, fmt.Errorf("failed to decode analyses: %w", err)
	}
	return recs, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
