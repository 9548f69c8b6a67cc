// SPDX-License-Identifier: MIT

package ref_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sketchrule/ref"
)

// TestAllocator_Sequential verifies fresh allocators count up from zero.
func TestAllocator_Sequential(t *testing.T) {
	a := ref.New()
	for want := 0; want < 5; want++ {
		assert.Equal(t, want, a.Next())
	}
	assert.Equal(t, 5, a.InUse())
}

// TestAllocator_ReleaseReuse verifies released references are reused smallest first.
func TestAllocator_ReleaseReuse(t *testing.T) {
	a := ref.New()
	for i := 0; i < 5; i++ {
		a.Next()
	}
	a.Release(3)
	a.Release(1)
	a.Release(1) // double release is a no-op
	a.Release(-1)
	a.Release(42) // never issued

	assert.True(t, a.IsFree(1))
	assert.True(t, a.IsFree(3))
	assert.False(t, a.IsFree(2))
	assert.Equal(t, 1, a.Next())
	assert.Equal(t, 3, a.Next())
	assert.Equal(t, 5, a.Next())
}

// TestAllocator_ReserveBackfill checks that reserving beyond the high-water mark
// releases the gap.
func TestAllocator_ReserveBackfill(t *testing.T) {
	a := ref.New()
	require.NoError(t, a.Reserve(4))
	assert.False(t, a.IsFree(4))
	for _, r := range []int{0, 1, 2, 3} {
		assert.True(t, a.IsFree(r), "gap reference %d should be free", r)
	}
	assert.Equal(t, 0, a.Next())
	require.NoError(t, a.Reserve(2))
	assert.Equal(t, 1, a.Next())
	assert.Equal(t, 3, a.Next())
	assert.Equal(t, 5, a.Next())
}

// TestAllocator_ReserveInUse verifies misuse is reported and logged but harmless.
func TestAllocator_ReserveInUse(t *testing.T) {
	var buf bytes.Buffer
	a := ref.New(ref.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	a.Next()
	a.Next()

	err := a.Reserve(1)
	assert.ErrorIs(t, err, ref.ErrReferenceInUse)
	assert.Contains(t, buf.String(), "reference already used")
	assert.Equal(t, 2, a.Next(), "state must stay consistent after misuse")
	assert.NoError(t, a.Reserve(-7))
}

// TestAllocator_Reset verifies Reset restarts numbering.
func TestAllocator_Reset(t *testing.T) {
	a := ref.New()
	a.Next()
	a.Next()
	a.Release(0)
	a.Reset()
	assert.Equal(t, 0, a.InUse())
	assert.Equal(t, 0, a.Next())
	assert.Equal(t, 1, a.Next())
}
