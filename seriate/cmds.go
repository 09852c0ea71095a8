// Copyright 2023 Seriate Authors.
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

package main

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"seriate/series"

	"github.com/spf13/cobra"
)

func fatal(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	os.Exit(1)
}

func baseSansExt(fname string) string {
	base := filepath.Base(fname)
	return strings.TrimSuffix(base, path.Ext(base))
}

// Represents the state used when processing a command.
type Action struct {
	cmd   *cobra.Command
	quiet bool
	cfg   series.Config
}

func newAction(cmd *cobra.Command) *Action {
	result := &Action{cmd: cmd}
	result.quiet = result.getBool("quiet")
	result.cfg = result.loadConfig()
	return result
}

func (a *Action) getBool(name string) bool {
	result, _ := a.cmd.Flags().GetBool(name)
	return result
}

func (a *Action) getString(name string) string {
	result, _ := a.cmd.Flags().GetString(name)
	return result
}

func (a *Action) getRune(name string) rune {
	s, _ := a.cmd.Flags().GetString(name)
	if s == "" {
		return rune(0)
	}
	return []rune(s)[0]
}

func (a *Action) loadConfig() series.Config {
	cfg := series.Config{Format: "pretty"}
	fname := a.getString("config")
	profile := a.getString("profile")
	if err := series.LoadConfigFile(fname, profile, &cfg); err != nil && !a.quiet {
		// a missing config file is fine, flags and defaults apply
		if fname != series.DefaultConfigFile {
			fmt.Printf("\n%s\n", strings.TrimRight(err.Error(), "\r\n"))
		}
	}
	if v := a.getString("format"); v != "" {
		cfg.Format = v
	}
	return cfg
}

func (a *Action) showSeries(cols ...series.Series) {
	for i, s := range cols {
		if i > 0 {
			fmt.Println()
		}
		switch a.cfg.Format {
		case "json":
			if err := series.ShowJSON(s.AsJSON(), 2); err != nil {
				fatal("%s", err)
			}
		default:
			if a.cfg.MaxRows > 0 && s.Len() > a.cfg.MaxRows {
				s.Slice(0, a.cfg.MaxRows).Show()
				fmt.Printf("... (%d more)\n", s.Len()-a.cfg.MaxRows)
			} else {
				s.Show()
			}
		}
	}
}

func (a *Action) writeOutput(fname string, cols []series.Series) {
	f, err := os.Create(fname)
	if err != nil {
		fatal("%s", err)
	}
	defer f.Close()
	if err := series.WriteIPC(f, cols); err != nil {
		fatal("%s", err)
	}
	if !a.quiet {
		fmt.Printf("wrote %d series to %s\n", len(cols), fname)
	}
}

// parseSchema parses a schema definition of comma separated entries,
// each either 'name=Type' or a bare 'Type'.
func parseSchema(arg string) (*series.DataTypeVector, error) {
	dtv := series.NewDataTypeVector()
	for _, entry := range strings.Split(arg, ",") {
		var name *string
		typeName := strings.TrimSpace(entry)
		if k := strings.IndexByte(typeName, '='); k >= 0 {
			n := strings.TrimSpace(typeName[:k])
			name = &n
			typeName = strings.TrimSpace(typeName[k+1:])
		}
		dt, err := series.NewDataType(typeName)
		if err != nil {
			return nil, err
		}
		dtv.Push(name, dt)
	}
	return dtv, nil
}

func listTypes(cmd *cobra.Command, args []string) {
	for _, name := range series.SimpleTypeNames() {
		fmt.Println(name)
	}
}

func parseType(cmd *cobra.Command, args []string) {
	action := newAction(cmd)
	dt, err := series.NewDataType(args[0])
	if err != nil {
		fatal("%s", err)
	}
	if action.getBool("list") {
		dt = series.NewListType(dt)
	}
	arrowType, err := dt.ArrowType()
	if err != nil {
		fatal("%s", err)
	}
	fmt.Printf("%s (arrow: %s)\n", dt, arrowType)
}

func convertJSON(cmd *cobra.Command, args []string) {
	action := newAction(cmd)
	data, err := os.ReadFile(args[0])
	if err != nil {
		fatal("%s", err)
	}
	value, err := series.ValueFromJSON(data)
	if err != nil {
		fatal("%s", err)
	}
	name := action.getString("name")
	if name == "" {
		name = baseSansExt(args[0])
	}
	s, err := series.FromValue(value, name)
	if err != nil {
		fatal("%s", err)
	}
	if fname := action.getString("output"); fname != "" {
		action.writeOutput(fname, []series.Series{s})
		return
	}
	action.showSeries(s)
}

func loadCSV(cmd *cobra.Command, args []string) {
	action := newAction(cmd)
	opts := series.CSVOptions{
		Comma:    action.getRune("delim"),
		NoHeader: action.getBool("no-header"),
	}
	if arg := action.getString("schema"); arg != "" {
		schema, err := parseSchema(arg)
		if err != nil {
			fatal("%s", err)
		}
		opts.Schema = schema
	}
	f, err := os.Open(args[0])
	if err != nil {
		fatal("%s", err)
	}
	defer f.Close()
	cols, err := series.ReadCSV(f, opts)
	if err != nil {
		fatal("%s", err)
	}
	if fname := action.getString("output"); fname != "" {
		action.writeOutput(fname, cols)
		return
	}
	action.showSeries(cols...)
}

func showIPC(cmd *cobra.Command, args []string) {
	action := newAction(cmd)
	f, err := os.Open(args[0])
	if err != nil {
		fatal("%s", err)
	}
	defer f.Close()
	cols, err := series.ReadIPC(f)
	if err != nil {
		fatal("%s", err)
	}
	action.showSeries(cols...)
}
