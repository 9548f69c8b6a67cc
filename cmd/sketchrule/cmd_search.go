// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	var flags struct {
		ids    bool
		factor int
	}
	cmd := &cobra.Command{
		Use:   "search FILE",
		Short: "Print the pattern found in a primitive document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadSession(cmd, args[0])
			if err != nil {
				return err
			}
			if _, err := s.Search(); err != nil {
				return err
			}
			var text string
			if flags.factor > 0 {
				text, err = s.FactoredPatternText(flags.factor)
			} else {
				text, err = s.PatternText(flags.ids)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	f := cmd.Flags()
	f.BoolVar(&flags.ids, "ids", false, "prefix every pattern node with its #reference")
	f.IntVar(&flags.factor, "factor", 0, "pull argument literals repeated at least N times into $variables")
	cmd.MarkFlagsMutuallyExclusive("ids", "factor")

	return cmd
}
