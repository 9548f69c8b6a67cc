// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sketchrule/config"
	"github.com/katalvlaran/sketchrule/pattern"
)

const staircaseDoc = `
{ rect(0, 0, 10, 10). rect(0, 20, 10, 10). }
{ rect(20, 0, 10, 10). rect(20, 20, 10, 10). rect(20, 40, 10, 10). }
{ rect(40, 0, 10, 10). rect(40, 20, 10, 10). rect(40, 40, 10, 10). rect(40, 60, 10, 10). }
`

const staircasePattern = `#lin(2, 1)(@4[name:cte(rect), 0:lin(0, 20), 1:cte(0), 2,3:cte(10)]) {
	@4[name:cte(rect), 0:cte(0), 1:lin(0, 20), 2,3:cte(10)],
	@4[name:cte(rect), 0:cte(20), 1:lin(0, 20), 2,3:cte(10)],
	@4[name:cte(rect), 0:cte(40), 1:lin(0, 20), 2,3:cte(10)]
}`

// execute runs the CLI with args and returns standard output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSearchCmd(t *testing.T) {
	path := writeFile(t, "stairs.sketch", staircaseDoc)
	out, err := execute(t, "", "search", path)
	require.NoError(t, err)
	assert.Equal(t, staircasePattern+"\n", out)

	out, err = execute(t, staircaseDoc, "search", "-", "--factor", "3")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "$c0 = "), out)

	_, err = execute(t, "", "search", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, "rect(1, 2", "search", "-")
	assert.Error(t, err)
}

func TestExtrapolateCmd(t *testing.T) {
	path := writeFile(t, "stairs.sketch", staircaseDoc)
	out, err := execute(t, "", "extrapolate", path, "--counts", "4,1")
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "{"))
	assert.Equal(t, 2+3+4+5, strings.Count(out, "rect("))
	assert.Contains(t, out, "\trect(60, 80, 10, 10).\n")

	pat := writeFile(t, "row.pattern", "[0:lin(0, 5), 1:cte(0), 2:cte(1)]")
	row := writeFile(t, "one.sketch", "circle(0, 0, 1).")
	out, err = execute(t, "", "extrapolate", row, "--pattern", pat, "--counts", "3")
	require.NoError(t, err)
	assert.Equal(t, "circle(0, 0, 1).\ncircle(5, 0, 1).\ncircle(10, 0, 1).\n", out)

	_, err = execute(t, "", "extrapolate", path, "--counts", "4,1,1")
	assert.Error(t, err)

	_, err = execute(t, "", "extrapolate", path, "--counts=-1")
	assert.ErrorIs(t, err, pattern.ErrNegativeCount)
}

func TestFmtCmd(t *testing.T) {
	out, err := execute(t, "$p(x, y)\nrect(0,0,10,10). { p(1,1). }", "fmt", "-")
	require.NoError(t, err)
	assert.Equal(t, "$p(x, y)\nrect(0, 0, 10, 10).\n{\n\tp(1, 1).\n}\n", out)

	out, err = execute(t, "[ 0 : cte( 1 ) ]", "fmt", "-", "--pattern")
	require.NoError(t, err)
	assert.Equal(t, "[0:cte(1)]\n", out)

	_, err = execute(t, "[0:", "fmt", "-", "--pattern")
	assert.Error(t, err)
}

func TestBatchCmd(t *testing.T) {
	a := writeFile(t, "a.sketch", "p(1). p(2). p(3).")
	b := writeFile(t, "b.sketch", staircaseDoc)
	out, err := execute(t, "", "batch", a, b, "--jobs", "2")
	require.NoError(t, err)
	lines := strings.SplitN(out, "\n", 2)
	assert.Equal(t, a+": @1[name:cte(p), 0:lin(1, 1)]", lines[0], "results keep argument order")
	assert.True(t, strings.HasPrefix(lines[1], b+": #lin(2, 1)"))

	bad := writeFile(t, "bad.sketch", "p(1")
	out, err = execute(t, "", "batch", a, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files failed")
	assert.Contains(t, out, bad+": error:")
}

func TestDemoCmd(t *testing.T) {
	out, err := execute(t, "", "demo", "row", "--size", "3", "--search", "--counts", "4")
	require.NoError(t, err)
	assert.Equal(t, "rect(0, 0, 10, 10).\nrect(20, 0, 10, 10).\nrect(40, 0, 10, 10).\n"+
		"\n@4[name:cte(rect), 0:lin(0, 20), 1:cte(0), 2,3:cte(10)]\n"+
		"\nrect(0, 0, 10, 10).\nrect(20, 0, 10, 10).\nrect(40, 0, 10, 10).\nrect(60, 0, 10, 10).\n", out)

	_, err = execute(t, "", "demo", "spiral")
	assert.Error(t, err)
}

func TestGlobalFlags(t *testing.T) {
	_, err := execute(t, "p(1).", "fmt", "-", "--log-level", "loud")
	assert.ErrorIs(t, err, config.ErrInvalid)

	cfg := writeFile(t, "cfg.yaml", "patterns: [cte]\n")
	out, err := execute(t, "p(1). p(2).", "search", "-", "--config", cfg, "--log-format", "json")
	require.NoError(t, err)
	assert.Equal(t, "none\n", out)
}

// lines feeds a fixed script to the REPL.
type lines struct {
	script  []string
	history []string
}

func (l *lines) Prompt(string) (string, error) {
	if len(l.script) == 0 {
		return "", io.EOF
	}
	line := l.script[0]
	l.script = l.script[1:]
	return line, nil
}

func (l *lines) AppendHistory(item string) { l.history = append(l.history, item) }

func TestRepl(t *testing.T) {
	var out bytes.Buffer
	r := newRepl(&app{cfg: config.Default()}, &out)
	in := &lines{script: []string{
		"circle(0, 0, 1).",
		"circle(10, 0, 2).",
		":next 4",
		":saving",
		"circle(20, 0",
		"circle(20, 0",
		":console",
		":pattern ids",
		":use [0:lin(0, 1), 1:lin(0, 7), 2:cte(1)]",
		":next 2",
		":demo doubling 3",
		":bogus",
		":quit",
		"never read",
	}}
	r.run(in)

	text := out.String()
	assert.Contains(t, text, "@3[name:cte(circle), 0:lin(0, 10), 1:cte(0), 2:lin(1, 1)]\n")
	assert.Contains(t, text, "circle(30, 0, 4).\n")
	assert.Contains(t, text, "space saving: ")
	assert.Contains(t, text, "(x2)\n", "the repeated error is coalesced")
	assert.Contains(t, text, "circle(0, 0, 1).\ncircle(1, 7, 1).\n")
	assert.Contains(t, text, "vector(0, 40, 40, 0).\n")
	assert.Contains(t, text, "unknown command")
	assert.Equal(t, []string{"never read"}, in.script)
	assert.Len(t, in.history, 13)
}

func TestParseCounts(t *testing.T) {
	got, err := parseCounts("4, 1")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 1}, got)
	_, err = parseCounts("")
	assert.Error(t, err)
	_, err = parseCounts("4,-1")
	assert.Error(t, err)
}
