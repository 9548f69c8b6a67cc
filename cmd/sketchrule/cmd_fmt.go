// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sketchrule/pattern"
	"github.com/katalvlaran/sketchrule/primitive"
	"github.com/katalvlaran/sketchrule/ref"
)

func newFmtCmd(_ *app) *cobra.Command {
	var asPattern bool
	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Re-serialize a primitive or pattern document in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asPattern {
				p, err := pattern.Parse(src, ref.New())
				if err != nil {
					return fmt.Errorf("%s: %w", args[0], err)
				}
				fmt.Fprintln(out, pattern.Serialize(p))
				return nil
			}
			root, table, err := primitive.Parse(src, ref.New())
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			fmt.Fprint(out, primitive.SerializeDocument(root, table))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asPattern, "pattern", false, "FILE is a pattern document")

	return cmd
}
