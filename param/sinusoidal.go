// SPDX-License-Identifier: MIT

package param

import (
	"math"

	"github.com/katalvlaran/sketchrule/matrix"
	"github.com/katalvlaran/sketchrule/primitive"
)

// Sinusoidal is amp·sin(freq·t + phase) + mean. Mean is the absolute level
// of the column.
type Sinusoidal struct {
	Amplitude  float64
	Frequency  float64
	Phase      float64
	Mean       float64
	confidence float64
}

// NewSinusoidal returns a Sinusoidal with confidence 1.
func NewSinusoidal(amp, freq, phase, mean float64) *Sinusoidal {
	return &Sinusoidal{Amplitude: amp, Frequency: freq, Phase: phase, Mean: mean, confidence: 1}
}

func (*Sinusoidal) Kind() Kind             { return KindSinusoidal }
func (s *Sinusoidal) Confidence() float64 { return s.confidence }

func (s *Sinusoidal) String() string {
	return call(KindSinusoidal,
		primitive.Float(s.Amplitude), primitive.Float(s.Frequency),
		primitive.Float(s.Phase), primitive.Float(s.Mean))
}

func (s *Sinusoidal) at(t float64) float64 {
	return s.Amplitude*math.Sin(s.Frequency*t+s.Phase) + s.Mean
}

// Next returns the fitted curve at nth. A numeric start shifts the curve so
// that nth = 0 reproduces start.
func (s *Sinusoidal) Next(start primitive.Value, nth int) primitive.Value {
	v := s.at(float64(nth))
	if base, ok := start.Float64(); ok {
		v += base - s.at(0)
	}

	return primitive.Float(v)
}

const (
	lmMaxIterations = 50
	lmInitialLambda = 1e-3
	lmMaxLambda     = 1e8
	lmMinGain       = 1e-12
)

// fitSinusoidal scans a frequency grid with a linear least-squares fit per
// frequency, then refines the best candidate with Levenberg–Marquardt.
//
// Implementation:
//   - Stage 1: y = v − v[0], t = 0..n-1.
//   - Stage 2: for f = πk/(2n), k = 1..2n-1, solve y ≈ a·sin(ft) + b·cos(ft) + m
//     and keep the smallest residual; amp = hypot(a, b), phase = atan2(b, a).
//   - Stage 3: damped Gauss–Newton steps on (amp, freq, phase, mean).
//   - Stage 4: normalize amp > 0, freq > 0, add v[0] back to the mean and
//     accept only if every value is reproduced within tolerance.
func fitSinusoidal(values []primitive.Value, flags Flags, tol Tolerance) (Pattern, bool) {
	if !flags.Numeric() {
		return nil, false
	}
	xs, ok := floats(values)
	if !ok || !allFinite(xs) {
		return nil, false
	}
	n := len(xs)
	ys := make([]float64, n)
	for i, x := range xs {
		ys[i] = x - xs[0]
	}

	best, bestSSE := gridSinusoid(ys)
	if best == nil {
		return nil, false
	}
	best, bestSSE = refineSinusoid(best, ys, bestSSE)
	best.normalize()
	best.Mean += xs[0]

	predicted := make([]float64, n)
	for i := range xs {
		predicted[i] = best.at(float64(i))
		if !EqualTolerant(predicted[i], xs[i], tol) {
			return nil, false
		}
	}
	best.confidence = confidence(mse(xs, predicted), tol)

	return best, true
}

func gridSinusoid(ys []float64) (*Sinusoidal, float64) {
	n := len(ys)
	var best *Sinusoidal
	bestSSE := math.Inf(1)
	rows := make([][]float64, n)
	for k := 1; k < 2*n; k++ {
		f := math.Pi * float64(k) / float64(2*n)
		for t := range rows {
			rows[t] = []float64{math.Sin(f * float64(t)), math.Cos(f * float64(t)), 1}
		}
		design, err := matrix.NewFromRows(rows)
		if err != nil {
			continue
		}
		coef, err := matrix.LeastSquares(design, ys, 0)
		if err != nil {
			continue
		}
		cand := &Sinusoidal{
			Amplitude: math.Hypot(coef[0], coef[1]),
			Frequency: f,
			Phase:     math.Atan2(coef[1], coef[0]),
			Mean:      coef[2],
		}
		if sse := cand.sse(ys); sse < bestSSE {
			best, bestSSE = cand, sse
		}
	}

	return best, bestSSE
}

func refineSinusoid(s *Sinusoidal, ys []float64, sse float64) (*Sinusoidal, float64) {
	n := len(ys)
	lambda := lmInitialLambda
	jac := make([][]float64, n)
	r := make([]float64, n)
	for iter := 0; iter < lmMaxIterations && sse > lmMinGain; iter++ {
		for t := range jac {
			tt := float64(t)
			arg := s.Frequency*tt + s.Phase
			c := math.Cos(arg)
			jac[t] = []float64{math.Sin(arg), s.Amplitude * tt * c, s.Amplitude * c, 1}
			r[t] = ys[t] - s.at(tt)
		}
		j, err := matrix.NewFromRows(jac)
		if err != nil {
			break
		}
		step, err := matrix.LeastSquares(j, r, lambda)
		if err != nil {
			break
		}
		cand := &Sinusoidal{
			Amplitude: s.Amplitude + step[0],
			Frequency: s.Frequency + step[1],
			Phase:     s.Phase + step[2],
			Mean:      s.Mean + step[3],
		}
		candSSE := cand.sse(ys)
		if candSSE < sse {
			gain := sse - candSSE
			s, sse = cand, candSSE
			lambda /= 10
			if gain < lmMinGain*(1+sse) {
				break
			}
			continue
		}
		lambda *= 10
		if lambda > lmMaxLambda {
			break
		}
	}

	return s, sse
}

func (s *Sinusoidal) sse(ys []float64) float64 {
	var sum float64
	for t, y := range ys {
		d := y - s.at(float64(t))
		sum += d * d
	}
	if math.IsNaN(sum) {
		return math.Inf(1)
	}

	return sum
}

// normalize keeps amp and freq positive and phase in (−π, π].
func (s *Sinusoidal) normalize() {
	if s.Amplitude < 0 {
		s.Amplitude = -s.Amplitude
		s.Phase += math.Pi
	}
	if s.Frequency < 0 {
		s.Frequency = -s.Frequency
		s.Phase = math.Pi - s.Phase
	}
	s.Phase = math.Remainder(s.Phase, 2*math.Pi)
	if s.Phase <= -math.Pi {
		s.Phase += 2 * math.Pi
	}
}
