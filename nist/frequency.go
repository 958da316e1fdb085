package nist

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Monobit is the NIST frequency (monobit) test: the proportion of ones over
// the whole sequence. Bits map to ±1 and are summed; the normalized deviation
// |S|/√n converts to a p-value through the complementary error function.
// Detects global bias toward 0 or 1. Requires at least MinLength bits.
func Monobit(bits []byte) (float64, error) {
	if err := validate(bits, MinLength); err != nil {
		return 0, err
	}

	s := 0
	for _, b := range bits {
		s += 2*int(b) - 1
	}
	sObs := math.Abs(float64(s)) / math.Sqrt(float64(len(bits)))

	return math.Erfc(sObs / math.Sqrt2), nil
}

// Runs is the NIST runs test: the total number of maximal runs of identical
// bits, compared against its expectation 2nπ(1−π) under the theoretical
// variance. Requires at least MinLength bits.
//
// Precondition: the sequence must first be plausibly balanced. When
// |π − 0.5| >= 2/√n the frequency precondition fails and the test
// short-circuits to p = 0 — a run count is meaningless on a biased sequence.
func Runs(bits []byte) (float64, error) {
	if err := validate(bits, MinLength); err != nil {
		return 0, err
	}

	n := float64(len(bits))
	ones := 0
	for _, b := range bits {
		ones += int(b)
	}
	pi := float64(ones) / n

	if math.Abs(pi-0.5) >= 2/math.Sqrt(n) {
		return 0, nil
	}

	// Total maximal runs: the run starting at bit 0, plus one per flip.
	v := 1
	for i := 1; i < len(bits); i++ {
		if bits[i] != bits[i-1] {
			v++
		}
	}

	num := math.Abs(float64(v) - 2*n*pi*(1-pi))
	den := 2 * math.Sqrt(2*n) * pi * (1 - pi)

	return math.Erfc(num / den), nil
}

// BlockFrequency is the NIST frequency-within-a-block test: the proportion
// of ones within non-overlapping blockSize-bit blocks. Trailing bits that do
// not fill a block are discarded, not padded. The χ² statistic
// 4·M·Σ(πᵢ − 0.5)² converts to a p-value through the upper regularized
// incomplete gamma function with the complete block count as degrees of
// freedom. Requires at least blockSize bits.
func BlockFrequency(bits []byte, blockSize int) (float64, error) {
	if blockSize < 1 {
		return 0, ErrBlockSize
	}
	if err := validate(bits, blockSize); err != nil {
		return 0, err
	}

	nBlocks := len(bits) / blockSize
	chi := 0.0
	for i := 0; i < nBlocks; i++ {
		ones := 0
		for _, b := range bits[i*blockSize : (i+1)*blockSize] {
			ones += int(b)
		}
		d := float64(ones)/float64(blockSize) - 0.5
		chi += d * d
	}
	chi *= 4 * float64(blockSize)

	return mathext.GammaIncRegComp(float64(nBlocks)/2, chi/2), nil
}
