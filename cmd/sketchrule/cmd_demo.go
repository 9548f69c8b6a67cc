// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sketchrule/builder"
)

func newDemoCmd(a *app) *cobra.Command {
	var flags struct {
		size   int
		seed   int64
		noise  float64
		search bool
		counts []int
	}
	cmd := &cobra.Command{
		Use:   "demo NAME",
		Short: "Print a synthetic sketch: " + strings.Join(builder.Sketches(), ", "),
		Long: "demo prints a deterministic synthetic sketch. With --search it also prints the\n" +
			"pattern found in it, and with --counts the extrapolation of that pattern.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: builder.Sketches(),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctor, err := builder.Sketch(args[0], flags.size)
			if err != nil {
				return err
			}
			s := a.newSession("demo:" + args[0])
			var opts []builder.Option
			if flags.noise > 0 {
				opts = append(opts, builder.WithSeed(flags.seed), builder.WithNoise(flags.noise))
			}
			root, err := builder.Build(s.Allocator(), opts, ctor)
			if err != nil {
				return err
			}
			s.SetDocument(root, nil)

			out := cmd.OutOrStdout()
			fmt.Fprint(out, s.DocumentText())
			if !flags.search && len(flags.counts) == 0 {
				return nil
			}
			if _, err := s.Search(); err != nil {
				return err
			}
			text, err := s.PatternText(false)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%s\n", text)
			if len(flags.counts) > 0 {
				if _, err := s.Extrapolate(flags.counts); err != nil {
					return err
				}
				fmt.Fprintf(out, "\n%s", s.OutputText())
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&flags.size, "size", 4, "sketch size (primitives, groups or rows)")
	f.Int64Var(&flags.seed, "seed", 1, "noise seed")
	f.Float64Var(&flags.noise, "noise", 0, "Gaussian noise sigma added to every coordinate")
	f.BoolVar(&flags.search, "search", false, "also print the pattern found in the sketch")
	f.IntSliceVar(&flags.counts, "counts", nil, "also print the extrapolation with these counts")

	return cmd
}
