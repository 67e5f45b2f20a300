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
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"ternlang.org/go/internal/core/adt"
	"ternlang.org/go/internal/core/compile"
	"ternlang.org/go/internal/core/debug"
	"ternlang.org/go/tern/ast"
	"ternlang.org/go/tern/parser"
)

// source returns the expression text to process and a name for it in
// positions: the -e flag, a named file, or standard input for "-" or no
// argument.
func source(cmd *cobra.Command, args []string) (name string, src []byte, err error) {
	if expr, _ := cmd.Flags().GetString(flagExpression); expr != "" {
		return "<expression>", []byte(expr), nil
	}
	if len(args) == 0 || args[0] == "-" {
		src, err = io.ReadAll(cmd.InOrStdin())
		return "<stdin>", src, err
	}
	src, err = os.ReadFile(args[0])
	return args[0], src, err
}

// load parses and compiles the input of cmd to an adt expression.
func load(cmd *cobra.Command, args []string) (adt.Expr, error) {
	name, src, err := source(cmd, args)
	if err != nil {
		return nil, err
	}
	x, err := parser.ParseExpr(name, src)
	if err != nil {
		return nil, err
	}
	return compileExpr(x)
}

func compileExpr(x ast.Expr) (adt.Expr, error) {
	expr, errs := compile.Expr(nil, x)
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return expr, nil
}

// printStats renders the context's counters through a localized printer,
// so large counts come out with digit grouping.
func printStats(cmd *cobra.Command, ctx *adt.OpContext) {
	if on, _ := cmd.Flags().GetBool(flagStats); !on {
		return
	}
	counts := ctx.Stats()
	p := message.NewPrinter(language.English)
	p.Fprintf(cmd.ErrOrStderr(), "reductions: %d (β: %d, δ: %d), lookups: %d, quotes: %d\n",
		counts.Reductions(), counts.Betas, counts.Deltas, counts.Lookups, counts.Quotes)
}

func printDebug(cmd *cobra.Command, v adt.Value) {
	if on, _ := cmd.Flags().GetBool(flagDebug); on {
		fmt.Fprintln(cmd.ErrOrStderr(), debug.NodeString(v))
	}
}
