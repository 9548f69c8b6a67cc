// SPDX-License-Identifier: MIT

package primitive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sketchrule/primitive"
	"github.com/katalvlaran/sketchrule/ref"
)

func sample(t *testing.T, alloc *ref.Allocator) *primitive.Group {
	t.Helper()
	root, _, err := primitive.Parse("a(1). { b(1, 2). { c(1, 2, 3). } } d().", alloc)
	require.NoError(t, err)

	return root
}

func TestGroup_MasterAndArity(t *testing.T) {
	root := sample(t, ref.New())
	assert.Equal(t, "a", root.Master().Name)
	lo, hi := root.ArityRange()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 2, hi)

	empty := primitive.NewGroup(99)
	assert.Nil(t, empty.Master())
	root.Append(empty)
	assert.Equal(t, "a", root.Master().Name, "empty groups never become master")
}

func TestGroup_FindParentDepth(t *testing.T) {
	root := sample(t, ref.New())
	ps := root.Primitives()
	require.Len(t, ps, 4)
	c := ps[2]
	assert.Equal(t, "c", c.Name)

	assert.Same(t, c, root.Find(c.Ref))
	assert.Same(t, root, root.Find(root.Ref))
	assert.Nil(t, root.Find(1000))

	parent := root.Parent(c.Ref)
	require.NotNil(t, parent)
	assert.Equal(t, 1, parent.Len())
	assert.Nil(t, root.Parent(root.Ref))

	d, ok := root.Depth(c.Ref)
	require.True(t, ok)
	assert.Equal(t, 3, d)
	_, ok = root.Depth(1000)
	assert.False(t, ok)
}

func TestGroup_RemoveReleases(t *testing.T) {
	alloc := ref.New()
	root := sample(t, alloc)
	before := alloc.InUse()
	inner := root.At(1).(*primitive.Group)

	root.Remove(alloc, inner.Ref)
	assert.Equal(t, before-4, alloc.InUse(), "two groups and two primitives released")
	assert.Equal(t, 2, root.Len())
	lo, hi := root.ArityRange()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 1, hi)

	root.Remove(alloc, root.At(0).Reference())
	assert.Equal(t, "d", root.Master().Name)
}

func TestGroup_SetMaster(t *testing.T) {
	alloc := ref.New()
	root := sample(t, alloc)
	d := root.At(2).(*primitive.Primitive)
	require.NoError(t, root.SetMaster(d))
	assert.Same(t, d, root.Master())

	stranger := primitive.New(alloc.Next(), "x")
	assert.ErrorIs(t, root.SetMaster(stranger), primitive.ErrNotChild)

	cp := root.Copy(alloc)
	assert.True(t, primitive.Equal(root, cp))
	assert.NotEqual(t, root.Ref, cp.Ref)
	assert.Equal(t, "d", cp.Master().Name)

	root.Remove(alloc, d.Ref)
	assert.False(t, root.ExplicitMaster())
	assert.Equal(t, "a", root.Master().Name)
}

func TestGroup_Walk(t *testing.T) {
	root := sample(t, ref.New())
	var depths []int
	root.Walk(func(n primitive.Node, depth int) bool {
		depths = append(depths, depth)
		return true
	})
	// root, a, {b {c}}, b, {c}, c, d
	assert.Equal(t, []int{0, 1, 1, 2, 2, 3, 1}, depths)

	count := 0
	root.Walk(func(n primitive.Node, depth int) bool {
		count++
		_, isGroup := n.(*primitive.Group)
		return !isGroup || depth == 0
	})
	assert.Equal(t, 4, count, "root, a, the pruned group and d")
}

func TestValue(t *testing.T) {
	assert.Equal(t, "3", primitive.Int(3).String())
	assert.Equal(t, "2.0", primitive.Float(2).String())
	assert.Equal(t, "-0.5", primitive.Float(-0.5).String())
	assert.Equal(t, "left", primitive.String("left").String())
	assert.Equal(t, `"two words"`, primitive.String("two words").String())
	assert.True(t, primitive.None().IsNone())
	assert.False(t, primitive.Int(1).Equal(primitive.Float(1)))
	assert.True(t, primitive.Number(4, true).Equal(primitive.Int(4)))
	assert.True(t, primitive.Number(4.5, true).Equal(primitive.Float(4.5)))
	f, ok := primitive.Int(7).Float64()
	assert.True(t, ok)
	assert.Equal(t, 7.0, f)
}
