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

// Package cmd implements the tern command line tool.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"ternlang.org/go/tern/errors"
)

// New creates the root command of the tern tool.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tern",
		Short: "tern normalizes Tern expressions",
		Long: `tern evaluates expressions of the Tern language to normal form.

Evaluation is total: expressions that mention unbound variables or apply
operators to unknown operands reduce to stuck terms, which print as
ordinary source text.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newEvalCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newFmtCmd())

	return cmd
}

// Main runs the tern tool and returns the exit code.
func Main() int {
	cmd := New()
	if err := cmd.Execute(); err != nil {
		errors.Print(os.Stderr, err)
		return 1
	}
	return 0
}
