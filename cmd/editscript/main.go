// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// editscript is a small CLI that prints the edit script between two strings, one line per
// operation. It exists mostly to poke at the library from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"znkr.io/editscript"
)

func main() {
	var moves bool

	rootCmd := &cobra.Command{
		Use:          "editscript <old> <new>",
		Short:        "Print the edit script that transforms one string into another",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], args[1], moves)
		},
	}
	rootCmd.Flags().BoolVar(&moves, "moves", true, "collapse matched insert/remove pairs into moves")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, old, new string, moves bool) error {
	var opts []editscript.Option
	if moves {
		opts = append(opts, editscript.DetectMoves())
	}

	src := []rune(old)
	dst := []rune(new)
	for _, op := range editscript.Diff(src, dst, opts...) {
		switch op.Op {
		case editscript.Insert:
			fmt.Fprintf(cmd.OutOrStdout(), "insert %c at %d\n", dst[op.Offset], op.Index)
		case editscript.Remove:
			fmt.Fprintf(cmd.OutOrStdout(), "remove %d items at %d\n", op.Count, op.Offset)
		case editscript.Move:
			fmt.Fprintf(cmd.OutOrStdout(), "move from %d to %d\n", op.From, op.To)
		default:
			return fmt.Errorf("unknown operation: %v", op.Op)
		}
	}
	return nil
}
