package rnd

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source is a seeded source of random samples.
// Two Sources created with the same seed produce identical sample sequences.
// Source is not safe for concurrent use.
type Source struct {
	// src is PRNG source
	src rand.Source
	// seed is the seed src was created with
	seed uint64
}

// NewSource creates new Source seeded with seed and returns it.
func NewSource(seed uint64) *Source {
	return &Source{
		src:  rand.NewSource(seed),
		seed: seed,
	}
}

// Normal draws a sample from Normal distribution with mean mu and standard deviation sigma.
// Every call consumes exactly one Normal draw, including calls with zero sigma.
func (s *Source) Normal(mu, sigma float64) float64 {
	dist := distuv.Normal{Mu: mu, Sigma: sigma, Src: s.src}
	return dist.Rand()
}

// NormalN draws n samples from Normal distribution with mean mu and standard deviation sigma.
// It fails with error if n is non-positive.
func (s *Source) NormalN(mu, sigma float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("invalid number of samples requested: %d", n)
	}

	dist := distuv.Normal{Mu: mu, Sigma: sigma, Src: s.src}
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = dist.Rand()
	}

	return samples, nil
}

// Seed returns the seed of the source.
func (s *Source) Seed() uint64 {
	return s.seed
}

// Reset reseeds the source with its original seed.
func (s *Source) Reset() {
	s.src.Seed(s.seed)
}

// String implements the Stringer interface.
func (s *Source) String() string {
	return fmt.Sprintf("Source{Seed=%d}", s.seed)
}
