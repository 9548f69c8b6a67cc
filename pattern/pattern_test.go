// SPDX-License-Identifier: MIT

package pattern_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sketchrule/param"
	"github.com/katalvlaran/sketchrule/pattern"
	"github.com/katalvlaran/sketchrule/primitive"
	"github.com/katalvlaran/sketchrule/ref"
)

const staircase = `
{ rect(0, 0, 10, 10). rect(0, 20, 10, 10). }
{ rect(20, 0, 10, 10). rect(20, 20, 10, 10). rect(20, 40, 10, 10). }
{ rect(40, 0, 10, 10). rect(40, 20, 10, 10). rect(40, 40, 10, 10). rect(40, 60, 10, 10). }
`

const staircasePattern = `#lin(2, 1)(@4[name:cte(rect), 0:lin(0, 20), 1:cte(0), 2,3:cte(10)]) {
	@4[name:cte(rect), 0:cte(0), 1:lin(0, 20), 2,3:cte(10)],
	@4[name:cte(rect), 0:cte(20), 1:lin(0, 20), 2,3:cte(10)],
	@4[name:cte(rect), 0:cte(40), 1:lin(0, 20), 2,3:cte(10)]
}`

func parseDoc(t *testing.T, src string) (*primitive.Group, primitive.SelectorTable, *ref.Allocator) {
	t.Helper()
	alloc := ref.New()
	root, table, err := primitive.Parse(src, alloc)
	require.NoError(t, err)
	return root, table, alloc
}

func texts(prims []*primitive.Primitive) []string {
	out := make([]string, len(prims))
	for i, p := range prims {
		out[i] = p.String()
	}
	return out
}

// TestSearch_Staircase checks a growing group sequence is found and that
// one extra group gets one extra child.
func TestSearch_Staircase(t *testing.T) {
	root, table, alloc := parseDoc(t, staircase)
	found, err := pattern.Search(root, table, param.AllKinds, param.DefaultTolerance, alloc)
	require.NoError(t, err)

	gp, ok := found.(*pattern.GroupPattern)
	require.True(t, ok, "got %T", found)
	assert.Equal(t, 2, gp.Level())
	assert.Equal(t, []int{2, 3, 4}, gp.Sizes())
	assert.Equal(t, "lin(2, 1)", gp.SizePattern().String())
	assert.Equal(t, staircasePattern, pattern.Serialize(found))

	out, err := pattern.NextGroup([]*primitive.Primitive{root.Master()}, found, table, []int{4, 1}, alloc)
	require.NoError(t, err)
	require.Equal(t, 4, out.Len())
	for i, want := range []int{2, 3, 4, 5} {
		g, ok := out.At(i).(*primitive.Group)
		require.True(t, ok)
		assert.Equal(t, want, g.Len(), "group %d", i)
	}
	fourth := out.At(3).(*primitive.Group).Primitives()
	assert.Equal(t, []string{
		"rect(60, 0, 10, 10).",
		"rect(60, 20, 10, 10).",
		"rect(60, 40, 10, 10).",
		"rect(60, 60, 10, 10).",
		"rect(60, 80, 10, 10).",
	}, texts(fourth))
	assert.Equal(t, primitive.Rect, fourth[0].Kind)

	flat, err := pattern.Next([]*primitive.Primitive{root.Master()}, found, table, []int{4, 1}, alloc)
	require.NoError(t, err)
	assert.Len(t, flat, 2+3+4+5)
	assert.Empty(t, cmp.Diff(texts(out.Primitives()), texts(flat)))
}

// TestSearch_PeriodicSizes checks WithSizePatternFit(false).
func TestSearch_PeriodicSizes(t *testing.T) {
	root, table, alloc := parseDoc(t, staircase)
	found, err := pattern.Search(root, table, param.AllKinds, param.DefaultTolerance, alloc,
		pattern.WithSizePatternFit(false))
	require.NoError(t, err)
	gp := found.(*pattern.GroupPattern)
	assert.Equal(t, "prd(2, 3, 4)", gp.SizePattern().String())

	out, err := pattern.NextGroup([]*primitive.Primitive{root.Master()}, found, table, []int{4, 1}, alloc)
	require.NoError(t, err)
	assert.Equal(t, 2, out.At(3).(*primitive.Group).Len(), "sizes repeat")
}

// TestSelectorAlignment checks selectors resolve per (name, arity) layout.
func TestSelectorAlignment(t *testing.T) {
	root, table, alloc := parseDoc(t, `
		$p(x, y)
		$p(y, w, x)
		p(0, 10). p(20, 5, 1). p(2, 30). p(40, 5, 3).
	`)
	found, err := pattern.Search(root, table, param.AllKinds, param.DefaultTolerance, alloc)
	require.NoError(t, err)
	pp, ok := found.(*pattern.PrimitivePattern)
	require.True(t, ok, "got %T", found)
	assert.Equal(t, "@2,3[name:cte(p), x:lin(0, 1), y:lin(10, 10), w:cte(5)]", pattern.Serialize(pp))

	out, err := pattern.Next([]*primitive.Primitive{root.Master()}, found, table, []int{6}, alloc)
	require.NoError(t, err)
	want := []string{"p(0, 10).", "p(20, 5, 1).", "p(2, 30).", "p(40, 5, 3).", "p(4, 50).", "p(60, 5, 5)."}
	if diff := cmp.Diff(want, texts(out)); diff != "" {
		t.Errorf("Next mismatch (-want +got):\n%s", diff)
	}
	for _, p := range out {
		assert.Len(t, table.Lookup(p.Name, p.Arity()), p.Arity())
	}
}

// TestPrimitivePattern_Unresolved checks uncovered positions copy the start
// and fail beyond it.
func TestPrimitivePattern_Unresolved(t *testing.T) {
	alloc := ref.New()
	pp := pattern.NewPrimitivePattern(alloc.Next(), []int{3})
	lin, err := param.FromArgs("lin", []primitive.Value{primitive.Int(0), primitive.Int(1)})
	require.NoError(t, err)
	pp.Set(primitive.Pos(0), lin)

	start := primitive.New(alloc.Next(), "p", primitive.Int(5), primitive.Int(7), primitive.Int(9))
	out, err := pp.Next(start, 2, primitive.SelectorTable{}, alloc)
	require.NoError(t, err)
	assert.Equal(t, []string{"p(5, 7, 9).", "p(6, 7, 9)."}, texts(out))

	short := primitive.New(alloc.Next(), "p", primitive.Int(5))
	_, err = pp.Next(short, 1, primitive.SelectorTable{}, alloc)
	assert.ErrorIs(t, err, pattern.ErrUnresolvedParameter)
}

// TestSearch_None covers unfittable columns and None passthrough.
func TestSearch_None(t *testing.T) {
	root, table, alloc := parseDoc(t, `p(1). p(5). p(2).`)
	found, err := pattern.Search(root, table, []param.Kind{param.KindConstant, param.KindLinear}, param.DefaultTolerance, alloc)
	require.NoError(t, err)
	require.IsType(t, &pattern.None{}, found)
	assert.Equal(t, "none", pattern.Serialize(found))

	out, err := pattern.Next([]*primitive.Primitive{root.Master()}, found, table, []int{3}, alloc)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, primitive.Equal(root.Master(), out[0]))
	assert.NotEqual(t, root.Master().Ref, out[0].Ref)
}

// TestSearch_Errors covers malformed groups, options and counts.
func TestSearch_Errors(t *testing.T) {
	alloc := ref.New()
	empty := primitive.NewGroup(alloc.Next())
	_, err := pattern.Search(empty, nil, param.AllKinds, param.DefaultTolerance, alloc)
	assert.ErrorIs(t, err, pattern.ErrEmptyGroup)

	holey := primitive.NewGroup(alloc.Next(),
		primitive.New(alloc.Next(), "p", primitive.Int(1)),
		primitive.NewGroup(alloc.Next()))
	_, err = pattern.SearchGroup(holey, nil, param.AllKinds, param.DefaultTolerance, alloc)
	assert.ErrorIs(t, err, pattern.ErrMissingMaster)

	_, err = pattern.Search(holey, nil, param.AllKinds, param.DefaultTolerance, alloc, pattern.WithMaxDepth(0))
	assert.ErrorIs(t, err, pattern.ErrOptionViolation)

	root, table, alloc := parseDoc(t, staircase)
	found, err := pattern.Search(root, table, param.AllKinds, param.DefaultTolerance, alloc)
	require.NoError(t, err)
	_, err = pattern.Next([]*primitive.Primitive{root.Master()}, found, table, []int{4}, alloc)
	assert.ErrorIs(t, err, pattern.ErrLevelMismatch)
	_, err = pattern.Next(nil, nil, table, []int{1}, alloc)
	assert.ErrorIs(t, err, pattern.ErrNilPattern)
}

// TestNext_NegativeCount checks negative counts are errors at every level.
func TestNext_NegativeCount(t *testing.T) {
	root, table, alloc := parseDoc(t, "p(1). p(2). p(3).")
	found, err := pattern.Search(root, table, param.AllKinds, param.DefaultTolerance, alloc)
	require.NoError(t, err)
	starts := []*primitive.Primitive{root.Master()}
	_, err = pattern.Next(starts, found, table, []int{-1}, alloc)
	assert.ErrorIs(t, err, pattern.ErrNegativeCount)

	prim, ok := found.(*pattern.PrimitivePattern)
	require.True(t, ok)
	_, err = prim.Next(root.Master(), -1, table, alloc)
	assert.ErrorIs(t, err, pattern.ErrNegativeCount)

	root, table, alloc = parseDoc(t, staircase)
	found, err = pattern.Search(root, table, param.AllKinds, param.DefaultTolerance, alloc)
	require.NoError(t, err)
	_, err = pattern.NextGroup([]*primitive.Primitive{root.Master()}, found, table, []int{4, -1}, alloc)
	assert.ErrorIs(t, err, pattern.ErrNegativeCount)
}

// TestNextGroup_NoLeakedReferences checks every id taken from the output
// allocator belongs to a node of the output tree.
func TestNextGroup_NoLeakedReferences(t *testing.T) {
	root, table, alloc := parseDoc(t, staircase)
	found, err := pattern.Search(root, table, param.AllKinds, param.DefaultTolerance, alloc)
	require.NoError(t, err)

	out := ref.New()
	g, err := pattern.NextGroup([]*primitive.Primitive{root.Master()}, found, table, []int{4, 1}, out)
	require.NoError(t, err)
	require.Equal(t, 4, g.Len())
	nodes := 1 + g.Len() + len(g.Primitives())
	assert.Equal(t, 1+4+(2+3+4+5), nodes)
	assert.Equal(t, nodes, out.InUse())
}

// TestGroupPattern_Level checks level tracks the deepest child.
func TestGroupPattern_Level(t *testing.T) {
	alloc := ref.New()
	inner := pattern.NewGroupPattern(alloc.Next(), nil)
	inner.Append(&pattern.None{Ref: alloc.Next()}, 1)
	assert.Equal(t, 2, inner.Level())

	outer := pattern.NewGroupPattern(alloc.Next(), nil)
	outer.Append(&pattern.None{Ref: alloc.Next()}, 1)
	outer.Append(inner, 1)
	assert.Equal(t, 3, outer.Level())
	assert.Equal(t, "cte(1)", outer.SizePattern().String())
}
