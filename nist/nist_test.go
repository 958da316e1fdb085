package nist_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qrngsim/nist"
)

// constantBits returns n copies of bit b.
func constantBits(n int, b byte) []byte {
	bits := make([]byte, n)
	for i := range bits {
		bits[i] = b
	}

	return bits
}

// alternatingBits returns 0,1,0,1,... of length n.
func alternatingBits(n int) []byte {
	bits := make([]byte, n)
	for i := range bits {
		bits[i] = byte(i % 2)
	}

	return bits
}

// randomBits returns n seeded pseudo-random bits.
func randomBits(n int, seed uint64) []byte {
	rng := rand.New(rand.NewPCG(seed, seed))
	bits := make([]byte, n)
	for i := range bits {
		bits[i] = byte(rng.IntN(2))
	}

	return bits
}

// TestValidation_SharedContract verifies that every test rejects short and
// malformed bitstreams before computing anything.
func TestValidation_SharedContract(t *testing.T) {
	short := constantBits(99, 1)
	bad := constantBits(100, 0)
	bad[50] = 2

	_, err := nist.Monobit(short)
	assert.ErrorIs(t, err, nist.ErrTooShort, "monobit on 99 bits")
	_, err = nist.Monobit(bad)
	assert.ErrorIs(t, err, nist.ErrNotBits, "monobit on non-bit value")

	_, err = nist.Runs(short)
	assert.ErrorIs(t, err, nist.ErrTooShort, "runs on 99 bits")
	_, err = nist.Runs(bad)
	assert.ErrorIs(t, err, nist.ErrNotBits, "runs on non-bit value")

	_, err = nist.BlockFrequency(constantBits(127, 1), 128)
	assert.ErrorIs(t, err, nist.ErrTooShort, "block frequency below one block")
	_, err = nist.BlockFrequency(bad, 0)
	assert.ErrorIs(t, err, nist.ErrBlockSize, "block size 0")

	_, _, err = nist.Serial(short, nist.DefaultSerialM)
	assert.ErrorIs(t, err, nist.ErrTooShort, "serial on 99 bits")
	_, _, err = nist.Serial(bad, nist.DefaultSerialM)
	assert.ErrorIs(t, err, nist.ErrNotBits, "serial on non-bit value")
	_, _, err = nist.Serial(constantBits(100, 1), 0)
	assert.ErrorIs(t, err, nist.ErrBlockSize, "serial pattern length 0")
	_, _, err = nist.Serial(constantBits(100, 1), nist.MaxSerialM+1)
	assert.ErrorIs(t, err, nist.ErrBlockSize, "serial pattern length above MaxSerialM")

	_, _, err = nist.Serial(randomBits(1000, 7), nist.MaxSerialM)
	require.NoError(t, err, "serial at MaxSerialM must be accepted")
}

// TestMonobit_KnownValue pins the monobit p-value on a 100-bit sequence with
// 60 ones: S = 20, s_obs = 2, p = erfc(2/√2) ≈ 0.0455.
func TestMonobit_KnownValue(t *testing.T) {
	bits := append(constantBits(60, 1), constantBits(40, 0)...)

	p, err := nist.Monobit(bits)
	require.NoError(t, err)
	assert.InDelta(t, 0.0455, p, 5e-4)
}

// TestMonobit_ConstantSequencesFail verifies that all-zero and all-one
// sequences yield p-values near zero.
func TestMonobit_ConstantSequencesFail(t *testing.T) {
	for _, b := range []byte{0, 1} {
		p, err := nist.Monobit(constantBits(1000, b))
		require.NoError(t, err)
		assert.Less(t, p, nist.Alpha, "constant sequence of %d must fail monobit", b)
	}
}

// TestRuns_FrequencyPrecondition verifies the short-circuit: a sequence
// biased beyond 2/√n yields p = 0 without a runs statistic.
func TestRuns_FrequencyPrecondition(t *testing.T) {
	// 75 ones / 25 zeros: |0.75 − 0.5| = 0.25 >= 2/10, strictly past the
	// threshold (70/30 lands on the boundary and misses it in float64).
	bits := append(constantBits(75, 1), constantBits(25, 0)...)

	p, err := nist.Runs(bits)
	require.NoError(t, err)
	assert.Zero(t, p, "biased sequence must short-circuit to p=0")
}

// TestRuns_TwoRunsFail verifies that a perfectly balanced but blocky
// sequence (all zeros then all ones) fails on its run count.
func TestRuns_TwoRunsFail(t *testing.T) {
	bits := append(constantBits(500, 0), constantBits(500, 1)...)

	p, err := nist.Runs(bits)
	require.NoError(t, err)
	assert.Less(t, p, nist.Alpha, "two runs in 1000 bits must fail")
}

// TestAlternating_MonobitPassesRunsFails is the regression pin for the runs
// statistic: a 10,000-bit 0/1/0/1 sequence is perfectly balanced, so the
// monobit test passes, while its run count deviates maximally from random
// expectation, so the runs test must fail.
func TestAlternating_MonobitPassesRunsFails(t *testing.T) {
	bits := alternatingBits(10_000)

	pMono, err := nist.Monobit(bits)
	require.NoError(t, err)
	assert.Greater(t, pMono, nist.Alpha, "balanced sequence must pass monobit")
	assert.InDelta(t, 1.0, pMono, 1e-12, "zero deviation gives p=1")

	pRuns, err := nist.Runs(bits)
	require.NoError(t, err)
	assert.Less(t, pRuns, nist.Alpha, "maximal run count must fail runs")
}

// TestBlockFrequency_AllOnesFails verifies that maximally biased blocks
// produce a vanishing p-value.
func TestBlockFrequency_AllOnesFails(t *testing.T) {
	p, err := nist.BlockFrequency(constantBits(1280, 1), nist.DefaultBlockSize)
	require.NoError(t, err)
	assert.Less(t, p, nist.Alpha)
}

// TestBlockFrequency_DiscardsTrailingRemainder verifies that trailing bits
// beyond the last complete block do not influence the statistic.
func TestBlockFrequency_DiscardsTrailingRemainder(t *testing.T) {
	base := randomBits(1280, 17)
	// Append a pathological remainder shorter than one block.
	padded := append(append([]byte{}, base...), constantBits(127, 1)...)

	pBase, err := nist.BlockFrequency(base, nist.DefaultBlockSize)
	require.NoError(t, err)
	pPadded, err := nist.BlockFrequency(padded, nist.DefaultBlockSize)
	require.NoError(t, err)

	assert.Equal(t, pBase, pPadded, "remainder bits must be discarded")
}

// TestBlockFrequency_SeededTrialPassRate is the statistical assertion from
// the design contract: across 100 seeded 10,000-bit uniform streams, the
// block frequency test must pass at least 95 times.
func TestBlockFrequency_SeededTrialPassRate(t *testing.T) {
	passes := 0
	for seed := uint64(1); seed <= 100; seed++ {
		p, err := nist.BlockFrequency(randomBits(10_000, seed), nist.DefaultBlockSize)
		require.NoError(t, err)
		if p > nist.Alpha {
			passes++
		}
	}

	assert.GreaterOrEqual(t, passes, 95, "pass rate over seeded trials")
}

// TestSerial_AlternatingFails verifies that the serial test catches the
// alternating sequence through its 2-bit pattern imbalance: only 01 and 10
// ever occur, so ∇ψ² = n and both p-values vanish.
func TestSerial_AlternatingFails(t *testing.T) {
	p1, p2, err := nist.Serial(alternatingBits(1000), nist.DefaultSerialM)
	require.NoError(t, err)
	assert.Less(t, p1, nist.Alpha, "first serial p-value must fail")
	assert.Less(t, p2, nist.Alpha, "second serial p-value must fail")
}

// TestSerial_SeededTrialPassRate verifies that seeded uniform bits clear
// both serial p-values nearly always: at least 18 of 20 trials, keeping the
// assertion clear of the 1% null rejection rate per p-value.
func TestSerial_SeededTrialPassRate(t *testing.T) {
	passes := 0
	for seed := uint64(1); seed <= 20; seed++ {
		p1, p2, err := nist.Serial(randomBits(10_000, 200+seed), nist.DefaultSerialM)
		require.NoError(t, err)
		if p1 > nist.Alpha && p2 > nist.Alpha {
			passes++
		}
	}

	assert.GreaterOrEqual(t, passes, 18, "pass rate over seeded trials")
}
