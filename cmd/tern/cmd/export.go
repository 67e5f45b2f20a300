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

	"ternlang.org/go/encoding/json"
	"ternlang.org/go/encoding/yaml"
	"ternlang.org/go/internal/core/adt"
	"ternlang.org/go/tern/errors"
	"ternlang.org/go/tern/token"
)

const flagOut = "out"

// newExportCmd creates a new export command.
func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "evaluate an expression and emit it as data",
		Long: `export reduces an expression to normal form and emits it as JSON or YAML.

The result must be concrete data: scalars, lists, and records. Functions
and expressions that get stuck on unknowns cannot be exported and report
an error.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExport,
	}
	addCommonFlags(cmd.Flags())
	cmd.Flags().String(flagOut, "json", "output format (json or yaml)")
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	expr, err := load(cmd, args)
	if err != nil {
		return err
	}

	ctx := adt.NewContext()
	v := ctx.Eval(nil, expr)
	printDebug(cmd, v)

	var b []byte
	switch out, _ := cmd.Flags().GetString(flagOut); out {
	case "json":
		b, err = json.Marshal(v)
		if err == nil {
			b = append(b, '\n')
		}
	case "yaml":
		b, err = yaml.Marshal(v)
	default:
		return errors.Newf(token.Position{}, "unknown output format %q", out)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s", b)

	printStats(cmd, ctx)
	return nil
}
