// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sketchrule/logging"
	"github.com/katalvlaran/sketchrule/session"
)

// readSource reads path, or standard input when path is "-".
func readSource(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	return string(data), nil
}

// newSession opens a session configured from a.cfg and logging under file.
func (a *app) newSession(file string) *session.Session {
	log := logging.New("session")
	if file != "" {
		log = log.With(slog.String("file", file))
	}

	return session.New(session.WithConfig(a.cfg), session.WithLogger(log))
}

// loadSession reads a primitive document into a new session. Parse errors
// are fatal here: a CLI run has no console to show them in.
func (a *app) loadSession(cmd *cobra.Command, path string) (*session.Session, error) {
	src, err := readSource(cmd, path)
	if err != nil {
		return nil, err
	}
	s := a.newSession(path)
	if err := s.Load(src); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}
