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

	"ternlang.org/go/internal/core/adt"
	"ternlang.org/go/internal/core/export"
	"ternlang.org/go/tern/format"
)

// newEvalCmd creates a new eval command.
func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [file]",
		Short: "evaluate an expression and print its normal form",
		Long: `eval reduces an expression to normal form and prints it as source text.

The expression is read from the named file, from standard input when the
argument is "-" or missing, or from the --expression flag. Stuck parts of
the result print as source text as well; use --debug to additionally see
the internal representation on stderr.

Examples:

  tern eval -e '(\x -> x) 42'
  tern eval expr.tern
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runEval,
	}
	addCommonFlags(cmd.Flags())
	return cmd
}

func runEval(cmd *cobra.Command, args []string) error {
	expr, err := load(cmd, args)
	if err != nil {
		return err
	}

	ctx := adt.NewContext()
	v := ctx.Eval(nil, expr)
	printDebug(cmd, v)

	out := export.Expr(ctx.Quote(nil, v))
	b, err := format.Node(out)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", b)

	printStats(cmd, ctx)
	return nil
}
