// Package rng provides the explicit random source threaded through every
// probabilistic engine call.
//
// The source's position in its stream is part of the replay contract:
// replaying an identical call sequence against an identically-seeded source
// reproduces identical results bit-for-bit. Callers serialize access; the
// engine never reaches for a package-level generator.
package rng

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Source wraps a seeded generator handle. It is mutated in place by every
// draw; call order determines draw order.
type Source struct {
	r *rand.Rand
}

// New returns a source seeded deterministically from a single value.
func New(seed uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(seed, seed<<1|1))}
}

// Float64 draws a uniform value in [0, 1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// IntN draws a uniform integer in [0, n).
func (s *Source) IntN(n int) int {
	return s.r.IntN(n)
}

// Shuffle permutes n elements via the swap callback.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}

// Jitter draws a uniform value in [-halfWidth, +halfWidth]. One Float64 draw.
func (s *Source) Jitter(halfWidth float64) float64 {
	return (s.r.Float64()*2 - 1) * halfWidth
}

// Normal draws from a Gaussian with the given mean and standard deviation.
// A non-positive sigma returns the mean without consuming the stream.
func (s *Source) Normal(mu, sigma float64) float64 {
	if sigma <= 0 {
		return mu
	}
	n := distuv.Normal{Mu: mu, Sigma: sigma, Src: s.r}
	return n.Rand()
}

// Chance draws once and reports whether the roll landed under p.
func (s *Source) Chance(p float64) bool {
	return s.r.Float64() < p
}
