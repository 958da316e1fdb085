// Package quadrature defines options and error sentinels for the
// vacuum-fluctuation simulator.
package quadrature

import "errors"

// Sentinel errors for simulator construction and sampling.
var (
	// ErrShotNoiseVariance is returned when ShotNoiseVariance is not strictly positive.
	ErrShotNoiseVariance = errors.New("quadrature: shot-noise variance must be > 0")

	// ErrSamplingRate is returned when SamplingRate is not strictly positive.
	ErrSamplingRate = errors.New("quadrature: sampling rate must be > 0")

	// ErrNonPositiveSamples is returned when Generate is asked for n <= 0 samples.
	ErrNonPositiveSamples = errors.New("quadrature: sample count must be > 0")

	// ErrSeed is returned when drawing a crypto seed for Seed == 0 fails.
	ErrSeed = errors.New("quadrature: cannot draw random seed")
)

// Default detector parameters.
const (
	// DefaultShotNoiseVariance is the vacuum shot-noise level in normalized units.
	DefaultShotNoiseVariance = 1.0

	// DefaultSamplingRate is the simulated detector sampling rate in Hz.
	// It is metadata only: sample values do not depend on it.
	DefaultSamplingRate = 1_000_000
)

// Options configures the vacuum-fluctuation simulator.
//
// Fields:
//   - ShotNoiseVariance — variance of the simulated quadrature noise.
//     Must be strictly positive; σ = sqrt(ShotNoiseVariance).
//   - SamplingRate      — nominal detector sampling rate in Hz (metadata).
//     Must be strictly positive.
//   - Seed              — seed for the instance-owned PCG source.
//     Zero means: draw a fresh seed from crypto/rand (non-reproducible run).
type Options struct {
	ShotNoiseVariance float64
	SamplingRate      int
	Seed              uint64
}

// DefaultOptions returns Options with the reference detector parameters:
// unit shot-noise variance, 1 MHz sampling rate, crypto-drawn seed.
func DefaultOptions() Options {
	return Options{
		ShotNoiseVariance: DefaultShotNoiseVariance,
		SamplingRate:      DefaultSamplingRate,
		Seed:              0,
	}
}
