// SPDX-License-Identifier: MIT

package param_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sketchrule/param"
	"github.com/katalvlaran/sketchrule/primitive"
)

func ints(xs ...int) []primitive.Value {
	out := make([]primitive.Value, len(xs))
	for i, x := range xs {
		out[i] = primitive.Int(x)
	}
	return out
}

func floats(xs ...float64) []primitive.Value {
	out := make([]primitive.Value, len(xs))
	for i, x := range xs {
		out[i] = primitive.Float(x)
	}
	return out
}

func strs(xs ...string) []primitive.Value {
	out := make([]primitive.Value, len(xs))
	for i, x := range xs {
		out[i] = primitive.String(x)
	}
	return out
}

func apply(t *testing.T, k param.Kind, values []primitive.Value, tol param.Tolerance) param.Pattern {
	t.Helper()
	p, ok := k.Apply(values, param.NewFlags(values), tol)
	require.True(t, ok, "%s should fit %v", k, values)
	return p
}

// TestEqualTolerant covers the absolute, relative and zero cases.
func TestEqualTolerant(t *testing.T) {
	assert.True(t, param.EqualTolerant(5, 5, param.Tolerance{}))
	assert.True(t, param.EqualTolerant(0.1+0.2, 0.3, param.Tolerance{}))
	assert.False(t, param.EqualTolerant(5, 6, param.Tolerance{}))
	assert.True(t, param.EqualTolerant(5, 6, param.Tolerance{Absolute: 1}))
	assert.True(t, param.EqualTolerant(95, 100, param.Tolerance{Relative: 0.1}))
	assert.False(t, param.EqualTolerant(85, 100, param.Tolerance{Relative: 0.1}))
	assert.False(t, param.EqualTolerant(math.NaN(), 0, param.DefaultTolerance))
}

// TestFlags checks dtype merging.
func TestFlags(t *testing.T) {
	f := param.NewFlags(ints(1, 2))
	assert.Equal(t, param.DtypeInt, f.Dtype)
	assert.True(t, f.Numeric())

	f = param.NewFlags(append(ints(1), primitive.Float(2.5)))
	assert.Equal(t, param.DtypeFloat, f.Dtype)
	assert.True(t, f.HasInt())
	assert.True(t, f.HasFloat())

	f = param.NewFlags(strs("a", "b"))
	assert.Equal(t, param.DtypeString, f.Dtype)
	assert.False(t, f.Numeric())

	f = param.NewFlags(append(strs("a"), primitive.Int(1)))
	assert.Equal(t, param.DtypeObject, f.Dtype)

	f = param.NewFlags([]primitive.Value{primitive.None(), primitive.None()})
	assert.Equal(t, param.DtypeNone, f.Dtype)
}

// TestKind covers names, aliases and minimum lengths.
func TestKind(t *testing.T) {
	for _, k := range param.AllKinds {
		got, ok := param.ParseKind(k.String())
		require.True(t, ok)
		assert.Equal(t, k, got)
	}
	k, ok := param.ParseKind("Sinus")
	require.True(t, ok)
	assert.Equal(t, param.KindSinusoidal, k)
	_, ok = param.ParseKind("nope")
	assert.False(t, ok)

	assert.Equal(t, 3, param.KindOperator.MinimumParameters())
	_, ok = param.KindOperator.Apply(ints(1, 2), param.NewFlags(ints(1, 2)), param.DefaultTolerance)
	assert.False(t, ok, "too short")
}

func TestConstant(t *testing.T) {
	p := apply(t, param.KindConstant, ints(5, 5, 5), param.Tolerance{})
	assert.Equal(t, "cte(5)", p.String())
	assert.Equal(t, 1.0, p.Confidence())
	assert.Equal(t, primitive.Int(5), p.Next(primitive.None(), 7))
	assert.Equal(t, primitive.Int(9), p.Next(primitive.Int(9), 2), "start wins")

	_, ok := param.KindConstant.Apply(ints(5, 5, 6), param.NewFlags(ints(5, 5, 6)), param.Tolerance{})
	assert.False(t, ok)

	p = apply(t, param.KindConstant, strs("rect", "rect"), param.DefaultTolerance)
	assert.Equal(t, "cte(rect)", p.String())
	_, ok = param.KindConstant.Apply(strs("a", "b"), param.NewFlags(strs("a", "b")), param.DefaultTolerance)
	assert.False(t, ok)

	// loose tolerance accepts noise with confidence below 1
	p = apply(t, param.KindConstant, floats(1, 1.01, 0.99), param.Tolerance{Absolute: 0.1})
	assert.Less(t, p.Confidence(), 1.0)
	assert.Greater(t, p.Confidence(), 0.99)
}

func TestLinear(t *testing.T) {
	p := apply(t, param.KindLinear, ints(2, 4, 6, 8), param.DefaultTolerance)
	assert.Equal(t, "lin(2, 2)", p.String())
	assert.Equal(t, primitive.Int(12), p.Next(primitive.Int(2), 5))
	assert.Equal(t, primitive.Int(12), p.Next(primitive.None(), 5))
	assert.Equal(t, primitive.Float(3.5), p.Next(primitive.Float(1.5), 1))

	_, ok := param.KindLinear.Apply(ints(1, 2, 4), param.NewFlags(ints(1, 2, 4)), param.Tolerance{})
	assert.False(t, ok)
	_, ok = param.KindLinear.Apply(strs("a", "b"), param.NewFlags(strs("a", "b")), param.DefaultTolerance)
	assert.False(t, ok)
}

func TestPeriodic(t *testing.T) {
	p := apply(t, param.KindPeriodic, ints(1, 2, 1, 2, 1), param.Tolerance{})
	assert.Equal(t, "prd(1, 2)", p.String())
	assert.Equal(t, 1.0, p.Confidence())
	assert.Equal(t, primitive.Int(1), p.Next(primitive.Int(1), 4))
	assert.Equal(t, primitive.Int(2), p.Next(primitive.Int(1), 5))
	assert.Equal(t, primitive.Int(12), p.Next(primitive.Int(11), 1), "relative to start")

	p = apply(t, param.KindPeriodic, strs("a", "b", "c", "a", "b", "c"), param.Tolerance{})
	assert.Equal(t, "prd(a, b, c)", p.String())
	assert.Equal(t, primitive.String("c"), p.Next(primitive.String("a"), 5))

	p = apply(t, param.KindPeriodic, ints(1, 2, 3), param.Tolerance{})
	assert.Equal(t, 0.5, p.Confidence(), "no repetition")
}

func TestOperator(t *testing.T) {
	p := apply(t, param.KindOperator, ints(1, 2, 4, 8, 16), param.DefaultTolerance)
	assert.Equal(t, "op(/, 1, 2)", p.String())
	assert.Equal(t, primitive.Int(32), p.Next(primitive.Int(16), 1))
	assert.Equal(t, primitive.Int(32), p.Next(primitive.None(), 5))

	// second differences are constant: squares
	p = apply(t, param.KindOperator, ints(0, 1, 4, 9, 16), param.Tolerance{})
	assert.Equal(t, "op(-, -, 0, 1, 2)", p.String())
	assert.Equal(t, primitive.Int(25), p.Next(primitive.None(), 5))

	_, ok := param.KindOperator.Apply(strs("a", "b", "c"), param.NewFlags(strs("a", "b", "c")), param.DefaultTolerance)
	assert.False(t, ok)
}

// TestOperator_ZeroGuard checks sequences containing 0 never divide.
func TestOperator_ZeroGuard(t *testing.T) {
	values := ints(0, 3, 0, 3, 0, 3)
	p, ok := param.KindOperator.Apply(values, param.NewFlags(values), param.Tolerance{})
	require.True(t, ok)
	assert.NotContains(t, p.String(), "/")
	for i, v := range values {
		assert.Equal(t, v, p.Next(primitive.None(), i))
	}
}

func TestSinusoidal(t *testing.T) {
	const amp, freq, phase, mean = 3.0, 0.7, 0.4, 10.0
	xs := make([]float64, 12)
	for i := range xs {
		xs[i] = amp*math.Sin(freq*float64(i)+phase) + mean
	}
	values := floats(xs...)
	p := apply(t, param.KindSinusoidal, values, param.Tolerance{Absolute: 1e-4})
	s, ok := p.(*param.Sinusoidal)
	require.True(t, ok)
	assert.InDelta(t, amp, s.Amplitude, 1e-4)
	assert.InDelta(t, freq, s.Frequency, 1e-4)
	for i, x := range xs {
		got, _ := p.Next(values[0], i).Float64()
		assert.InDelta(t, x, got, 1e-4, "index %d", i)
	}
	want := amp*math.Sin(freq*12+phase) + mean
	got, _ := p.Next(values[0], 12).Float64()
	assert.InDelta(t, want, got, 1e-3)

	assert.InDelta(t, mean, s.Mean, 1e-3, "mean is absolute")
	for i, x := range xs {
		got, _ := p.Next(primitive.None(), i).Float64()
		assert.InDelta(t, x, got, 1e-3, "no start, index %d", i)
	}
	got, _ = p.Next(primitive.Float(mean+50), 0).Float64()
	assert.InDelta(t, mean+50, got, 1e-9, "a start anchors nth 0")

	_, ok = param.KindSinusoidal.Apply(ints(1, 2, 3), param.NewFlags(ints(1, 2, 3)), param.DefaultTolerance)
	assert.False(t, ok, "too short")
}

// TestSearchParameters covers ranking, short-circuit and failure.
func TestSearchParameters(t *testing.T) {
	cases := []struct {
		name   string
		values []primitive.Value
		tol    param.Tolerance
		want   string
	}{
		{"constant", ints(5, 5, 5), param.DefaultTolerance, "cte(5)"},
		{"linear", ints(2, 4, 6, 8), param.DefaultTolerance, "lin(2, 2)"},
		{"periodic", ints(1, 2, 1, 2, 1), param.DefaultTolerance, "prd(1, 2)"},
		{"operator", ints(1, 2, 4, 8, 16), param.DefaultTolerance, "op(/, 1, 2)"},
		{"strings", strs("a", "b", "a", "b"), param.DefaultTolerance, "prd(a, b)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := param.SearchParameters(tc.values, param.AllKinds, tc.tol)
			require.NoError(t, err)
			require.NotNil(t, p)
			assert.Equal(t, tc.want, p.String())
		})
	}

	p, err := param.SearchParameters(ints(5, 5, 6), []param.Kind{param.KindConstant}, param.Tolerance{})
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = param.SearchParameters(ints(5), param.AllKinds, param.DefaultTolerance)
	require.NoError(t, err)
	assert.Nil(t, p, "a single value fits nothing")

	_, err = param.SearchParameters(ints(1, 2), param.AllKinds, param.DefaultTolerance, param.WithMaxDepth(0))
	assert.ErrorIs(t, err, param.ErrOptionViolation)
}

// TestSearchParameters_Logs checks the chosen pattern is logged at debug.
func TestSearchParameters_Logs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := param.SearchParameters(ints(2, 4, 6), param.AllKinds, param.DefaultTolerance, param.WithLogger(log))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `pattern="lin(2, 2)"`)
}

// TestFromArgs rebuilds each pattern from its printed arguments.
func TestFromArgs(t *testing.T) {
	cases := []struct {
		name string
		args []primitive.Value
		want string
	}{
		{"cte", ints(5), "cte(5)"},
		{"Constant", strs("rect"), "cte(rect)"},
		{"lin", ints(0, 10), "lin(0, 10)"},
		{"prd", ints(1, 2, 3), "prd(1, 2, 3)"},
		{"op", append(strs("/"), ints(1, 2)...), "op(/, 1, 2)"},
		{"op", append(strs("-", "+"), floats(1, 2, 3)...), "op(-, +, 1.0, 2.0, 3.0)"},
		{"sine", floats(1, 0.5, 0, 2), "sine(1.0, 0.5, 0.0, 2.0)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := param.FromArgs(tc.name, tc.args)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.String())
			assert.Equal(t, 1.0, p.Confidence())
		})
	}

	_, err := param.FromArgs("zigzag", ints(1))
	assert.ErrorIs(t, err, param.ErrUnknownPattern)
	bad := map[string][]primitive.Value{
		"cte":  ints(1, 2),
		"lin":  strs("a", "b"),
		"prd":  nil,
		"sine": ints(1, 2, 3),
	}
	for name, args := range bad {
		_, err = param.FromArgs(name, args)
		assert.ErrorIs(t, err, param.ErrArguments, name)
	}
	_, err = param.FromArgs("op", append(strs("%"), ints(1, 2)...))
	assert.ErrorIs(t, err, param.ErrArguments)
	_, err = param.FromArgs("op", append(strs("+"), ints(1)...))
	assert.ErrorIs(t, err, param.ErrArguments)
	_, err = param.FromArgs("op", ints(1, 2))
	assert.ErrorIs(t, err, param.ErrArguments)
}
