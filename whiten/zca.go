package whiten

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ZCA holds a fitted zero-phase whitening model: the per-feature mean of the
// fitted batch and the (features × features) whitening matrix
// W = U·diag(1/√(S+ε))·Uᵀ. The model is immutable after a successful Fit;
// refitting replaces it wholesale.
type ZCA struct {
	epsilon float64
	mean    []float64  // per-feature mean of the fitted batch; nil until fitted
	w       *mat.Dense // whitening matrix; nil until fitted
	cols    int        // fitted feature width
}

// New constructs an unfitted ZCA whitener from opts.
//
// Errors:
//   - ErrEpsilon — opts.Epsilon <= 0.
func New(opts Options) (*ZCA, error) {
	if opts.Epsilon <= 0 {
		return nil, ErrEpsilon
	}

	return &ZCA{epsilon: opts.Epsilon}, nil
}

// Fitted reports whether a successful Fit has been performed.
func (z *ZCA) Fitted() bool { return z.w != nil }

// Mean returns a copy of the fitted per-feature mean vector,
// or nil when the whitener is not fitted.
func (z *ZCA) Mean() []float64 {
	if z.mean == nil {
		return nil
	}
	out := make([]float64, len(z.mean))
	copy(out, z.mean)

	return out
}

// WhiteningMatrix returns the fitted whitening matrix, or nil when the
// whitener is not fitted. The returned matrix is the live model;
// callers must not modify it.
func (z *ZCA) WhiteningMatrix() mat.Matrix {
	if z.w == nil {
		return nil
	}

	return z.w
}

// Fit computes the whitening model from x, shape (rows × features).
//
// Steps: per-feature means; sample covariance of the columns; symmetric
// eigendecomposition Cov = U·diag(S)·Uᵀ; whitening matrix
// W = U·diag(1/√(S+ε))·Uᵀ. The fitted model is only replaced on success.
//
// Errors:
//   - ErrNilInput      — x is nil.
//   - ErrTooFewRows    — fewer than MinFitRows rows.
//   - ErrNoFeatures    — zero columns.
//   - ErrDecomposition — eigendecomposition did not converge, or a
//     regularized eigenvalue is not positive.
func (z *ZCA) Fit(x mat.Matrix) error {
	if x == nil {
		return ErrNilInput
	}
	r, c := x.Dims()
	if r < MinFitRows {
		return ErrTooFewRows
	}
	if c < 1 {
		return ErrNoFeatures
	}

	// Per-feature means, one column at a time.
	mean := make([]float64, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, x)
		mean[j] = stat.Mean(col, nil)
	}

	// Sample covariance of the feature columns (centers internally).
	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, x, nil)

	var es mat.EigenSym
	if ok := es.Factorize(&cov, true); !ok {
		return ErrDecomposition
	}

	// Inverse square root of regularized eigenvalues.
	vals := es.Values(nil)
	sInv := make([]float64, c)
	for i, s := range vals {
		reg := s + z.epsilon
		if reg <= 0 || math.IsNaN(reg) {
			return ErrDecomposition
		}
		sInv[i] = 1 / math.Sqrt(reg)
	}

	var u mat.Dense
	es.VectorsTo(&u)

	// W = U · diag(sInv) · Uᵀ — symmetric positive-definite by construction.
	var w mat.Dense
	w.Product(&u, mat.NewDiagDense(c, sInv), u.T())

	z.mean = mean
	z.w = &w
	z.cols = c

	return nil
}

// Transform applies the fitted whitening model: (x − mean) · W.
// The input may be any batch with the fitted feature width, not only the
// batch passed to Fit.
//
// Errors:
//   - ErrNotFitted    — Fit has not succeeded yet.
//   - ErrNilInput     — x is nil.
//   - ErrShapeMismatch — column count differs from the fitted width.
func (z *ZCA) Transform(x mat.Matrix) (*mat.Dense, error) {
	if !z.Fitted() {
		return nil, ErrNotFitted
	}
	if x == nil {
		return nil, ErrNilInput
	}
	r, c := x.Dims()
	if c != z.cols {
		return nil, ErrShapeMismatch
	}

	centered := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			centered.Set(i, j, x.At(i, j)-z.mean[j])
		}
	}

	var out mat.Dense
	out.Mul(centered, z.w)

	return &out, nil
}

// FitTransform fits the model on x and immediately transforms the same batch.
func (z *ZCA) FitTransform(x mat.Matrix) (*mat.Dense, error) {
	if err := z.Fit(x); err != nil {
		return nil, err
	}

	return z.Transform(x)
}
