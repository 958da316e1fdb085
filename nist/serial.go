package nist

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Serial is the NIST serial test: the frequency of all overlapping m-bit
// patterns across the sequence, treated as circular. It detects over- or
// under-represented short patterns that the plain frequency tests cannot see.
// Requires at least MinLength bits and 1 <= m <= MaxSerialM.
//
// From the ψ² statistics at lengths m, m−1, m−2 it derives
//
//	∇ψ²  = ψ²(m) − ψ²(m−1)
//	∇²ψ² = ψ²(m) − 2ψ²(m−1) + ψ²(m−2)
//
// and converts each to a p-value via the upper regularized incomplete gamma
// function with 2^(m−2) and 2^(m−3) degrees of freedom respectively, the
// latter floored at one half for m <= 2. The m <= 2 branch is calibrated to
// DefaultSerialM and intentionally not generalized further.
func Serial(bits []byte, m int) (p1, p2 float64, err error) {
	if m < 1 || m > MaxSerialM {
		return 0, 0, ErrBlockSize
	}
	if err := validate(bits, MinLength); err != nil {
		return 0, 0, err
	}

	psiM := psiSquared(bits, m)
	psiM1 := psiSquared(bits, m-1)
	psiM2 := psiSquared(bits, m-2)

	delta1 := psiM - psiM1
	delta2 := psiM - 2*psiM1 + psiM2
	// Both deltas are non-negative quadratic forms; clamp floating dust.
	if delta1 < 0 {
		delta1 = 0
	}
	if delta2 < 0 {
		delta2 = 0
	}

	df1 := math.Pow(2, float64(m-2))
	df2 := math.Pow(2, float64(m-3))
	if m <= 2 {
		df2 = 0.5
	}

	p1 = mathext.GammaIncRegComp(df1, delta1/2)
	p2 = mathext.GammaIncRegComp(df2, delta2/2)

	return p1, p2, nil
}

// psiSquared computes the ψ² statistic for cyclically-overlapping k-bit
// patterns: (2^k/n)·Σ c² − n, where c counts each pattern's occurrences over
// all n windows (the first k−1 bits wrap onto the end). ψ²(k) = 0 for k <= 0.
//
// Counts are keyed by the pattern's integer value rather than the bit tuple
// itself, which keeps the map compact for any practical k.
func psiSquared(bits []byte, k int) float64 {
	if k <= 0 {
		return 0
	}

	n := len(bits)
	counts := make(map[uint64]int)
	for i := 0; i < n; i++ {
		var pattern uint64
		for j := 0; j < k; j++ {
			pattern = pattern<<1 | uint64(bits[(i+j)%n])
		}
		counts[pattern]++
	}

	var sum float64
	for _, c := range counts {
		sum += float64(c) * float64(c)
	}

	return sum*math.Pow(2, float64(k))/float64(n) - float64(n)
}
