// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sketchrule/logging"
)

// batchResult is the outcome for one file, printed in argument order.
type batchResult struct {
	file    string
	pattern string
	err     error
}

func newBatchCmd(a *app) *cobra.Command {
	var flags struct {
		jobs     int
		failFast bool
	}
	cmd := &cobra.Command{
		Use:   "batch FILE...",
		Short: "Search many primitive documents in parallel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs := flags.jobs
			if jobs <= 0 {
				jobs = a.cfg.Workers
			}
			results, err := a.runBatch(cmd, args, jobs, flags.failFast)
			out := cmd.OutOrStdout()
			failed := 0
			for _, r := range results {
				switch {
				case r.err != nil:
					failed++
					fmt.Fprintf(out, "%s: error: %v\n", r.file, r.err)
				case r.pattern != "":
					fmt.Fprintf(out, "%s: %s\n", r.file, r.pattern)
				}
			}
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("batch: %d of %d files failed", failed, len(args))
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&flags.jobs, "jobs", 0, "parallel workers (default from config)")
	f.BoolVar(&flags.failFast, "fail-fast", false, "stop scheduling files after the first failure")

	return cmd
}

// runBatch searches every file with at most jobs sessions in flight. With
// failFast the first error cancels files not yet started.
func (a *app) runBatch(cmd *cobra.Command, files []string, jobs int, failFast bool) ([]batchResult, error) {
	log := logging.New("batch")
	results := make([]batchResult, len(files))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				results[i] = batchResult{file: file, err: err}
				return nil
			}
			results[i] = a.searchFile(cmd, file)
			if results[i].err != nil {
				log.Warn("file failed", slog.String("file", file), slog.Any("error", results[i].err))
				if failFast {
					return results[i].err
				}
			}
			return nil
		})
	}
	err := g.Wait()
	log.Debug("batch done", slog.Int("files", len(files)), slog.Int("jobs", jobs))

	return results, err
}

func (a *app) searchFile(cmd *cobra.Command, file string) batchResult {
	s, err := a.loadSession(cmd, file)
	if err != nil {
		return batchResult{file: file, err: err}
	}
	if _, err := s.Search(); err != nil {
		return batchResult{file: file, err: err}
	}
	text, err := s.PatternText(false)

	return batchResult{file: file, pattern: text, err: err}
}
