// Package pipeline defines options, trace stages, and error sentinels for
// the extraction pipeline.
package pipeline

import (
	"errors"

	"github.com/katalvlaran/qrngsim/quadrature"
	"github.com/katalvlaran/qrngsim/whiten"
)

// Sentinel errors for request validation. Construction and stage failures
// propagate the owning package's sentinels (quadrature.ErrShotNoiseVariance,
// whiten.ErrDecomposition, quantize.ErrBitsRange, ...) unchanged.
var (
	// ErrNonPositiveBytes is returned when a request asks for numBytes <= 0.
	ErrNonPositiveBytes = errors.New("pipeline: byte count must be > 0")

	// ErrNonPositiveFeatures is returned when a request uses features <= 0.
	ErrNonPositiveFeatures = errors.New("pipeline: feature width must be > 0")
)

// DefaultFeatures is the reference whitening window width used by adapters
// when the caller does not choose one.
const DefaultFeatures = 8

// DefaultBits is the reference quantization width.
const DefaultBits = 8

// Stage identifies a pipeline step reported through the Trace hook.
type Stage int

const (
	// StageGenerate reports the raw quadrature sample count.
	StageGenerate Stage = iota

	// StageWhiten reports the number of whitened sample rows.
	StageWhiten

	// StageQuantize reports the quantized level count.
	StageQuantize

	// StageExtract reports the extracted bit count before truncation.
	StageExtract
)

// String names a Stage for adapters that log trace events.
func (s Stage) String() string {
	switch s {
	case StageGenerate:
		return "generate"
	case StageWhiten:
		return "whiten"
	case StageQuantize:
		return "quantize"
	case StageExtract:
		return "extract"
	default:
		return "unknown"
	}
}

// TraceFunc observes one completed stage and the number of elements it
// produced. Hooks must be fast and must not retain the pipeline.
type TraceFunc func(stage Stage, count int)

// Options configures a Pipeline.
//
// Fields:
//   - Bits              — quantization width, in [1,16].
//   - Epsilon           — whitening regularization constant, > 0.
//   - ShotNoiseVariance — simulated shot-noise level, > 0.
//   - Seed              — noise source seed; 0 draws one from crypto/rand.
//   - Trace             — optional per-stage observer; nil disables tracing.
type Options struct {
	Bits              int
	Epsilon           float64
	ShotNoiseVariance float64
	Seed              uint64
	Trace             TraceFunc
}

// DefaultOptions returns the reference pipeline configuration: 8-bit
// quantization, DefaultEpsilon regularization, unit shot-noise variance,
// crypto-drawn seed, no tracing.
func DefaultOptions() Options {
	return Options{
		Bits:              DefaultBits,
		Epsilon:           whiten.DefaultEpsilon,
		ShotNoiseVariance: quadrature.DefaultShotNoiseVariance,
	}
}
