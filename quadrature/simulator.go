package quadrature

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Simulator produces raw quadrature samples from a simulated homodyne
// detector. Each sample is an independent draw from N(0, ShotNoiseVariance).
//
// A Simulator owns its random source: two Simulators built with the same
// non-zero Seed emit identical sample streams.
type Simulator struct {
	opts  Options
	sigma float64
	dist  distuv.Normal
}

// New constructs a Simulator from opts, validating detector parameters
// up front.
//
// Errors:
//   - ErrShotNoiseVariance — ShotNoiseVariance <= 0.
//   - ErrSamplingRate      — SamplingRate <= 0.
//   - ErrSeed              — crypto/rand failed while Seed == 0.
func New(opts Options) (*Simulator, error) {
	if opts.ShotNoiseVariance <= 0 {
		return nil, ErrShotNoiseVariance
	}
	if opts.SamplingRate <= 0 {
		return nil, ErrSamplingRate
	}

	seed := opts.Seed
	if seed == 0 {
		drawn, err := cryptoSeed()
		if err != nil {
			return nil, err
		}
		seed = drawn
	}

	sigma := math.Sqrt(opts.ShotNoiseVariance)

	return &Simulator{
		opts:  opts,
		sigma: sigma,
		dist: distuv.Normal{
			Mu:    0,
			Sigma: sigma,
			Src:   rand.NewPCG(seed, seed),
		},
	}, nil
}

// Generate returns n independent quadrature samples drawn from
// N(0, ShotNoiseVariance). n must be strictly positive.
//
// Errors:
//   - ErrNonPositiveSamples — n <= 0, checked before any sampling.
func (s *Simulator) Generate(n int) ([]float64, error) {
	if n <= 0 {
		return nil, ErrNonPositiveSamples
	}

	samples := make([]float64, n)
	for i := range samples {
		samples[i] = s.dist.Rand()
	}

	return samples, nil
}

// Sigma reports the standard deviation of the simulated quadrature noise.
func (s *Simulator) Sigma() float64 { return s.sigma }

// SamplingRate reports the nominal detector sampling rate in Hz.
func (s *Simulator) SamplingRate() int { return s.opts.SamplingRate }

// cryptoSeed draws a 64-bit seed from crypto/rand for non-reproducible runs.
func cryptoSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSeed, err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}
