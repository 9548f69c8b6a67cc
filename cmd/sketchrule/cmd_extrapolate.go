// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExtrapolateCmd(a *app) *cobra.Command {
	var flags struct {
		counts  []int
		pattern string
		saving  bool
	}
	cmd := &cobra.Command{
		Use:   "extrapolate FILE",
		Short: "Continue the pattern of a primitive document",
		Long: "extrapolate searches FILE for a pattern (or reads one with --pattern) and prints\n" +
			"the document the pattern generates from FILE's master primitive. --counts gives one\n" +
			"count per pattern level; a single count is used at every level.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadSession(cmd, args[0])
			if err != nil {
				return err
			}
			if flags.pattern != "" {
				src, err := readSource(cmd, flags.pattern)
				if err != nil {
					return err
				}
				if err := s.LoadPattern(src); err != nil {
					return fmt.Errorf("%s: %w", flags.pattern, err)
				}
			}
			counts := flags.counts
			if !cmd.Flags().Changed("counts") {
				counts = a.cfg.Counts
			}
			if _, err := s.Extrapolate(counts); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, s.OutputText())
			if saving, ok := s.SpaceSaving(); ok && flags.saving {
				fmt.Fprintf(cmd.ErrOrStderr(), "space saving: %.2f%%\n", saving)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntSliceVar(&flags.counts, "counts", nil, "instances per level, outermost first (default from config)")
	f.StringVar(&flags.pattern, "pattern", "", "pattern document to use instead of searching")
	f.BoolVar(&flags.saving, "saving", false, "report how much shorter the pattern is than its output")

	return cmd
}
