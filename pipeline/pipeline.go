package pipeline

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qrngsim/quadrature"
	"github.com/katalvlaran/qrngsim/quantize"
	"github.com/katalvlaran/qrngsim/whiten"
)

// Pipeline owns a seeded noise source and drives it through whitening,
// quantization, and bit extraction. A Pipeline is safe for sequential reuse;
// each request fits its own whitening model.
type Pipeline struct {
	opts Options
	sim  *quadrature.Simulator
}

// New constructs a Pipeline, validating every option eagerly so that request
// time can only fail on numerics, not configuration.
//
// Errors:
//   - quantize.ErrBitsRange            — Bits outside [1,16].
//   - whiten.ErrEpsilon                — Epsilon <= 0.
//   - quadrature.ErrShotNoiseVariance  — ShotNoiseVariance <= 0.
//   - quadrature.ErrSeed               — crypto seeding failed.
func New(opts Options) (*Pipeline, error) {
	if opts.Bits < quantize.MinBits || opts.Bits > quantize.MaxBits {
		return nil, quantize.ErrBitsRange
	}
	if _, err := whiten.New(whiten.Options{Epsilon: opts.Epsilon}); err != nil {
		return nil, err
	}

	simOpts := quadrature.DefaultOptions()
	simOpts.ShotNoiseVariance = opts.ShotNoiseVariance
	simOpts.Seed = opts.Seed
	sim, err := quadrature.New(simOpts)
	if err != nil {
		return nil, err
	}

	return &Pipeline{opts: opts, sim: sim}, nil
}

// GenerateBits produces exactly numBytes·8 bits as 0/1 values, using a
// (rows × features) whitening batch sized by ceiling division. Excess bits
// from the row round-up are dropped from the tail.
//
// Errors:
//   - ErrNonPositiveBytes    — numBytes <= 0, before any generation.
//   - ErrNonPositiveFeatures — features <= 0, before any generation.
//   - whiten.ErrDecomposition and other stage sentinels, wrapped with the
//     failing stage name.
func (p *Pipeline) GenerateBits(numBytes, features int) ([]byte, error) {
	if numBytes <= 0 {
		return nil, ErrNonPositiveBytes
	}
	if features <= 0 {
		return nil, ErrNonPositiveFeatures
	}

	bitsNeeded := numBytes * 8
	perRow := features * p.opts.Bits
	rows := (bitsNeeded + perRow - 1) / perRow
	if rows < whiten.MinFitRows {
		rows = whiten.MinFitRows
	}

	total := rows * features
	samples, err := p.sim.Generate(total)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	p.trace(StageGenerate, total)

	zca, err := whiten.New(whiten.Options{Epsilon: p.opts.Epsilon})
	if err != nil {
		return nil, fmt.Errorf("whiten: %w", err)
	}
	whitened, err := zca.FitTransform(mat.NewDense(rows, features, samples))
	if err != nil {
		return nil, fmt.Errorf("whiten: %w", err)
	}
	p.trace(StageWhiten, rows)

	levels, err := quantize.Quantize(flatten(whitened), p.opts.Bits)
	if err != nil {
		return nil, fmt.Errorf("quantize: %w", err)
	}
	p.trace(StageQuantize, len(levels))

	stream, err := quantize.ExtractBits(levels, p.opts.Bits)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	p.trace(StageExtract, len(stream))

	return stream[:bitsNeeded], nil
}

// GenerateBytes produces exactly numBytes bytes by packing GenerateBits
// output MSB-first. The length guarantee holds for every valid features.
func (p *Pipeline) GenerateBytes(numBytes, features int) ([]byte, error) {
	bits, err := p.GenerateBits(numBytes, features)
	if err != nil {
		return nil, err
	}

	raw, err := quantize.PackBits(bits)
	if err != nil {
		return nil, fmt.Errorf("pack: %w", err)
	}

	return raw, nil
}

// trace reports a completed stage when a hook is installed.
func (p *Pipeline) trace(stage Stage, count int) {
	if p.opts.Trace != nil {
		p.opts.Trace(stage, count)
	}
}

// flatten returns the row-major contents of d as a flat slice, reusing the
// backing array when the matrix is contiguous.
func flatten(d *mat.Dense) []float64 {
	raw := d.RawMatrix()
	if raw.Stride == raw.Cols {
		return raw.Data[:raw.Rows*raw.Cols]
	}

	out := make([]float64, 0, raw.Rows*raw.Cols)
	for i := 0; i < raw.Rows; i++ {
		out = append(out, raw.Data[i*raw.Stride:i*raw.Stride+raw.Cols]...)
	}

	return out
}
