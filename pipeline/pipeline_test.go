package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qrngsim/pipeline"
	"github.com/katalvlaran/qrngsim/quadrature"
	"github.com/katalvlaran/qrngsim/quantize"
	"github.com/katalvlaran/qrngsim/whiten"
)

// seededOptions returns deterministic reference options.
func seededOptions(seed uint64) pipeline.Options {
	opts := pipeline.DefaultOptions()
	opts.Seed = seed

	return opts
}

// TestNew_OptionValidation verifies eager option validation with the owning
// packages' sentinels.
func TestNew_OptionValidation(t *testing.T) {
	opts := seededOptions(1)
	opts.Bits = 0
	_, err := pipeline.New(opts)
	assert.ErrorIs(t, err, quantize.ErrBitsRange, "bits=0 must error")

	opts = seededOptions(1)
	opts.Bits = 17
	_, err = pipeline.New(opts)
	assert.ErrorIs(t, err, quantize.ErrBitsRange, "bits=17 must error")

	opts = seededOptions(1)
	opts.Epsilon = 0
	_, err = pipeline.New(opts)
	assert.ErrorIs(t, err, whiten.ErrEpsilon, "epsilon=0 must error")

	opts = seededOptions(1)
	opts.ShotNoiseVariance = -1
	_, err = pipeline.New(opts)
	assert.ErrorIs(t, err, quadrature.ErrShotNoiseVariance, "variance<=0 must error")
}

// TestGenerateBits_RequestValidation verifies the call-boundary guards.
func TestGenerateBits_RequestValidation(t *testing.T) {
	p, err := pipeline.New(seededOptions(1))
	require.NoError(t, err)

	_, err = p.GenerateBits(0, 8)
	assert.ErrorIs(t, err, pipeline.ErrNonPositiveBytes, "numBytes=0 must error")

	_, err = p.GenerateBits(-4, 8)
	assert.ErrorIs(t, err, pipeline.ErrNonPositiveBytes, "negative numBytes must error")

	_, err = p.GenerateBits(16, 0)
	assert.ErrorIs(t, err, pipeline.ErrNonPositiveFeatures, "features=0 must error")
}

// TestGenerateBytes_ExactLength is the pipeline's core invariant: exactly
// numBytes bytes for every feature width, regardless of row rounding.
func TestGenerateBytes_ExactLength(t *testing.T) {
	p, err := pipeline.New(seededOptions(3))
	require.NoError(t, err)

	for _, numBytes := range []int{1, 2, 7, 64, 1024} {
		for _, features := range []int{1, 3, 8, 17, 100} {
			raw, err := p.GenerateBytes(numBytes, features)
			require.NoError(t, err, "numBytes=%d features=%d", numBytes, features)
			assert.Len(t, raw, numBytes, "numBytes=%d features=%d", numBytes, features)
		}
	}
}

// TestGenerateBits_ExactLengthAndBitValues verifies the bit-level form of
// the length invariant and that the stream contains only 0/1 values.
func TestGenerateBits_ExactLengthAndBitValues(t *testing.T) {
	p, err := pipeline.New(seededOptions(5))
	require.NoError(t, err)

	bits, err := p.GenerateBits(100, 7)
	require.NoError(t, err)
	require.Len(t, bits, 100*8)
	for i, b := range bits {
		require.LessOrEqual(t, b, byte(1), "bit %d out of range", i)
	}
}

// TestGenerateBytes_DeterministicWithSeed verifies that equally seeded
// pipelines emit identical byte streams, and the packed form matches the
// bit form.
func TestGenerateBytes_DeterministicWithSeed(t *testing.T) {
	a, err := pipeline.New(seededOptions(42))
	require.NoError(t, err)
	b, err := pipeline.New(seededOptions(42))
	require.NoError(t, err)

	rawA, err := a.GenerateBytes(256, pipeline.DefaultFeatures)
	require.NoError(t, err)

	bitsB, err := b.GenerateBits(256, pipeline.DefaultFeatures)
	require.NoError(t, err)
	packed, err := quantize.PackBits(bitsB)
	require.NoError(t, err)

	assert.Equal(t, rawA, packed, "packed bits must equal the byte stream")
}

// TestTraceHook_ReportsStagesInOrder verifies the per-stage observer: four
// stages in pipeline order with consistent element counts.
func TestTraceHook_ReportsStagesInOrder(t *testing.T) {
	type event struct {
		stage pipeline.Stage
		count int
	}
	var events []event

	opts := seededOptions(9)
	opts.Trace = func(stage pipeline.Stage, count int) {
		events = append(events, event{stage, count})
	}
	p, err := pipeline.New(opts)
	require.NoError(t, err)

	const numBytes, features = 32, 8
	_, err = p.GenerateBits(numBytes, features)
	require.NoError(t, err)

	require.Len(t, events, 4)
	assert.Equal(t, pipeline.StageGenerate, events[0].stage)
	assert.Equal(t, pipeline.StageWhiten, events[1].stage)
	assert.Equal(t, pipeline.StageQuantize, events[2].stage)
	assert.Equal(t, pipeline.StageExtract, events[3].stage)

	rows := events[1].count
	assert.Equal(t, rows*features, events[0].count, "samples = rows × features")
	assert.Equal(t, events[0].count, events[2].count, "one level per sample")
	assert.Equal(t, events[2].count*8, events[3].count, "eight bits per level")
	assert.GreaterOrEqual(t, events[3].count, numBytes*8, "extraction covers the request")
}

// TestGenerateBits_RowFloorForTinyRequests verifies that a request smaller
// than one whitening row still succeeds: the row count is floored at the
// whitener's two-row minimum and the excess is truncated.
func TestGenerateBits_RowFloorForTinyRequests(t *testing.T) {
	p, err := pipeline.New(seededOptions(11))
	require.NoError(t, err)

	bits, err := p.GenerateBits(1, 100)
	require.NoError(t, err)
	assert.Len(t, bits, 8, "one byte request yields exactly 8 bits")
}

// TestGenerateBits_WiderQuantization verifies non-default bit widths flow
// through the whole chain while preserving the length guarantee.
func TestGenerateBits_WiderQuantization(t *testing.T) {
	opts := seededOptions(13)
	opts.Bits = 12
	p, err := pipeline.New(opts)
	require.NoError(t, err)

	raw, err := p.GenerateBytes(33, 5)
	require.NoError(t, err)
	assert.Len(t, raw, 33)
}
