// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// errFindings signals diagnostics of error severity. It has already been reported.
var errFindings = errors.New("problems found")

// app holds the state shared by the subcommands.
type app struct {
	v      *viper.Viper
	logger *slog.Logger
}

func newRootCmd() *cobra.Command { return newApp().rootCmd() }

func newApp() *app {
	return &app{v: viper.New(), logger: slog.New(slog.DiscardHandler)}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sharplint",
		Short: "Check and fix C# sources",
		Long: `sharplint finds local variables that can be declared constant and
regular expression patterns that do not compile.

Suppress rules in source with "#pragma warning disable <ID>".`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "configuration file (default .sharplint.yaml)")
	flags.BoolP("verbose", "v", false, "log debug messages")
	flags.String("color", "auto", "colorize output: auto, on or off")
	flags.IntP("jobs", "j", 0, "number of files analyzed concurrently (default GOMAXPROCS)")
	flags.Bool("include-generated", false, "check generated files")
	flags.StringToString("rule", nil, "rule levels, like MakeConst=off,Regex=warning")
	flags.StringSlice("regex-target", nil, "regex methods to check, like System.Text.RegularExpressions.Regex.IsMatch@1/dotnet")

	for key, name := range map[string]string{
		"verbose":           "verbose",
		"color":             "color",
		"jobs":              "jobs",
		"include-generated": "include-generated",
		"rules":             "rule",
		"regex-targets":     "regex-target",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	a.v.SetEnvPrefix("SHARPLINT")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(newCheckCmd(a), newFixCmd(a), newRulesCmd(a))

	return root
}

// setup reads the configuration file and initializes logging and colors.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	if err := readConfig(a.v, path); err != nil {
		return err
	}

	level := slog.LevelInfo
	if a.v.GetBool("verbose") {
		level = slog.LevelDebug
	}

	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	switch mode := a.v.GetString("color"); mode {
	case "auto":

	case "on", "always":
		color.NoColor = false

	case "off", "never":
		color.NoColor = true

	default:
		return fmt.Errorf("invalid color mode %q", mode)
	}

	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("Configuration loaded", slog.String("file", used))
	}

	return nil
}

// readConfig reads the file at path, or an optional .sharplint.yaml in the working directory.
func readConfig(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".sharplint")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("reading configuration: %w", err)
	}

	return nil
}

// paths returns the command arguments, the working directory when there are none.
func paths(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}

	return args
}
