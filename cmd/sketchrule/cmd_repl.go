// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sketchrule/builder"
	"github.com/katalvlaran/sketchrule/session"
)

const (
	historyFile = ".sketchrule_history"
	promptMain  = "sketch> "
)

const replHelp = `Type primitive DSL lines; every line is appended to the document and the
pattern is searched again. Commands:
  :load FILE          replace the document with FILE
  :doc                print the document
  :pattern [ids]      print the current pattern
  :factor [N]         print the pattern with repeated literals as $variables (N ≥ 2)
  :use PATTERN        replace the current pattern with a pattern document
  :next N[,M...]      extrapolate with the given counts
  :saving             how much shorter the pattern is than the last output
  :demo NAME [N]      replace the document with a synthetic sketch
  :console            print the error console
  :clear              empty the error console
  :reset              start a new session
  :help               this text
  :quit               leave
`

// prompter is the part of liner.State the REPL needs.
type prompter interface {
	Prompt(prompt string) (string, error)
}

// historian records accepted lines; liner.State implements it.
type historian interface {
	AppendHistory(item string)
}

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive shell over one session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			home, _ := os.UserHomeDir()
			histPath := filepath.Join(home, historyFile)

			ln := liner.NewLiner()
			defer ln.Close()
			ln.SetCtrlCAborts(true)

			if f, err := os.Open(histPath); err == nil {
				_, _ = ln.ReadHistory(f)
				_ = f.Close()
			}

			fmt.Fprintf(cmd.OutOrStdout(), "sketchrule %s, :help for commands\n", version)
			newRepl(a, cmd.OutOrStdout()).run(ln)

			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
			return nil
		},
	}
}

// repl is the shell state: a session and the document source typed so far.
type repl struct {
	a   *app
	out io.Writer
	s   *session.Session
	src string
}

func newRepl(a *app, out io.Writer) *repl {
	return &repl{a: a, out: out, s: a.newSession("repl")}
}

// run reads lines until EOF or :quit. Ctrl+C abandons the current line.
func (r *repl) run(in prompter) {
	for {
		line, err := in.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out)
			return
		}
		if err != nil {
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if h, ok := in.(historian); ok {
			h.AppendHistory(line)
		}
		if strings.HasPrefix(line, ":") {
			if r.command(line) {
				return
			}
			continue
		}
		r.append(line)
	}
}

// append adds a line to the document and searches again. A line that does
// not parse is reported and dropped, restoring the previous document.
func (r *repl) append(line string) {
	prev := r.src
	r.src += line + "\n"
	if err := r.s.Load(r.src); err != nil {
		r.printLastError()
		r.src = prev
		if r.s.Load(prev) == nil && r.s.Document().Master() != nil {
			_, _ = r.s.Search()
		}
		return
	}
	r.search()
}

// reload parses the whole buffer, searches it and prints the pattern or the
// newest console entry.
func (r *repl) reload() {
	if err := r.s.Load(r.src); err != nil {
		r.printLastError()
		return
	}
	r.search()
}

func (r *repl) search() {
	if _, err := r.s.Search(); err != nil {
		r.printLastError()
		return
	}
	text, _ := r.s.PatternText(false)
	fmt.Fprintln(r.out, text)
}

func (r *repl) printLastError() {
	entries := r.s.Console().Entries()
	if len(entries) > 0 {
		fmt.Fprintln(r.out, "error:", entries[len(entries)-1])
	}
}

// command runs a ':' command and reports whether the shell should exit.
func (r *repl) command(line string) (exit bool) {
	fields := strings.Fields(line)
	rest := strings.TrimSpace(strings.TrimPrefix(line, fields[0]))

	switch strings.ToLower(fields[0]) {
	case ":quit", ":exit":
		return true

	case ":help":
		fmt.Fprint(r.out, replHelp)

	case ":load":
		if rest == "" {
			fmt.Fprintln(r.out, "usage: :load FILE")
			return false
		}
		data, err := os.ReadFile(rest)
		if err != nil {
			fmt.Fprintf(r.out, "cannot read %s: %v\n", rest, err)
			return false
		}
		r.src = string(data)
		r.reload()

	case ":doc":
		fmt.Fprint(r.out, r.s.DocumentText())

	case ":pattern":
		text, err := r.s.PatternText(rest == "ids")
		if err != nil {
			fmt.Fprintln(r.out, "error:", err)
			return false
		}
		fmt.Fprintln(r.out, text)

	case ":factor":
		least := 2
		if rest != "" {
			n, err := strconv.Atoi(rest)
			if err != nil || n < 2 {
				fmt.Fprintln(r.out, "usage: :factor [N], N ≥ 2")
				return false
			}
			least = n
		}
		text, err := r.s.FactoredPatternText(least)
		if err != nil {
			fmt.Fprintln(r.out, "error:", err)
			return false
		}
		fmt.Fprintln(r.out, text)

	case ":use":
		if err := r.s.LoadPattern(rest); err != nil {
			r.printLastError()
			return false
		}
		text, _ := r.s.PatternText(false)
		fmt.Fprintln(r.out, text)

	case ":next":
		counts, err := parseCounts(rest)
		if err != nil {
			fmt.Fprintln(r.out, "usage: :next N[,M...]:", err)
			return false
		}
		if _, err := r.s.Extrapolate(counts); err != nil {
			if errors.Is(err, session.ErrNoDocument) {
				fmt.Fprintln(r.out, "error:", err)
				return false
			}
			r.printLastError()
			return false
		}
		fmt.Fprint(r.out, r.s.OutputText())

	case ":saving":
		if saving, ok := r.s.SpaceSaving(); ok {
			fmt.Fprintf(r.out, "space saving: %.2f%%\n", saving)
		} else {
			fmt.Fprintln(r.out, "space saving: /")
		}

	case ":demo":
		r.demo(fields[1:])

	case ":console":
		for _, e := range r.s.Console().Entries() {
			fmt.Fprintln(r.out, e)
		}

	case ":clear":
		r.s.Console().Clear()

	case ":reset":
		r.s = r.a.newSession("repl")
		r.src = ""
		fmt.Fprintln(r.out, r.s)

	default:
		fmt.Fprintln(r.out, "unknown command, :help for help")
	}

	return false
}

func (r *repl) demo(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "usage: :demo NAME [N] (%s)\n", strings.Join(builder.Sketches(), ", "))
		return
	}
	n := 4
	if len(args) > 1 {
		v, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintln(r.out, "usage: :demo NAME [N]")
			return
		}
		n = v
	}
	ctor, err := builder.Sketch(args[0], n)
	if err != nil {
		fmt.Fprintln(r.out, "error:", err)
		return
	}
	root, err := builder.Build(r.s.Allocator(), nil, ctor)
	if err != nil {
		fmt.Fprintln(r.out, "error:", err)
		return
	}
	r.s.SetDocument(root, nil)
	r.src = r.s.DocumentText()
	fmt.Fprint(r.out, r.s.DocumentText())
	r.search()
}

// parseCounts reads "4,1" or "4 1".
func parseCounts(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) == 0 {
		return nil, errors.New("no counts")
	}
	counts := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad count %q", f)
		}
		counts[i] = n
	}

	return counts, nil
}
