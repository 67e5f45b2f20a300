// Copyright 2025 The Tern Authors
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

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ternlang.org/go/tern/format"
	"ternlang.org/go/tern/parser"
)

// newFmtCmd creates a new fmt command.
func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "reformat an expression as canonical source text",
		Long: `fmt parses an expression and prints it back in canonical form,
without evaluating it.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runFmt,
	}
	cmd.Flags().StringP(flagExpression, "e", "", "format this expression instead of a file")
	return cmd
}

func runFmt(cmd *cobra.Command, args []string) error {
	name, src, err := source(cmd, args)
	if err != nil {
		return err
	}
	x, err := parser.ParseExpr(name, src)
	if err != nil {
		return err
	}
	b, err := format.Node(x)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", b)
	return nil
}
