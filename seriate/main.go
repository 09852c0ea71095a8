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
	"seriate/series"

	"github.com/spf13/cobra"
)

func addCommands(root *cobra.Command) {
	// Type catalog
	cmd := &cobra.Command{
		Use:   "list-types",
		Short: "List the canonical names of all simple data types",
		Run:   listTypes}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "parse-type name",
		Short: "Resolve a type name or alias to its canonical data type",
		Args:  cobra.ExactArgs(1),
		Run:   parseType}
	cmd.Flags().Bool("list", false, "wrap the resolved type in a list type")
	root.AddCommand(cmd)

	// Conversion
	cmd = &cobra.Command{
		Use:   "convert file",
		Short: "Convert a JSON document into a single series",
		Args:  cobra.ExactArgs(1),
		Run:   convertJSON}
	cmd.Flags().StringP("name", "n", "", "series name (default: file name)")
	cmd.Flags().StringP("output", "o", "", "write an arrow ipc stream to the given file")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "load-csv file",
		Short: "Load a CSV file into one series per column",
		Args:  cobra.ExactArgs(1),
		Run:   loadCSV}
	cmd.Flags().String("schema", "", "schema definition, e.g. 'a=Float64,b=Int32' or 'Float64,Int32'")
	cmd.Flags().String("delim", "", "field delimiter")
	cmd.Flags().Bool("no-header", false, "treat the first record as data")
	cmd.Flags().StringP("output", "o", "", "write an arrow ipc stream to the given file")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "show-ipc file",
		Short: "Show the series stored in an arrow ipc stream",
		Args:  cobra.ExactArgs(1),
		Run:   showIPC}
	root.AddCommand(cmd)
}

func main() {
	var root = &cobra.Command{Use: "seriate"}
	root.PersistentFlags().String("config", series.DefaultConfigFile, "config file")
	root.PersistentFlags().String("profile", series.DefaultConfigProfile, "config profile")
	root.PersistentFlags().BoolP("quiet", "q", false, "silence status output")
	root.PersistentFlags().String("format", "", "format results, 'json' or 'pretty'")
	addCommands(root)
	root.Execute()
}
