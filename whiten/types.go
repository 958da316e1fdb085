// Package whiten defines options and error sentinels for ZCA whitening.
package whiten

import "errors"

// Sentinel errors for whitener construction, fitting, and transforming.
var (
	// ErrEpsilon is returned when the regularization constant is not strictly positive.
	ErrEpsilon = errors.New("whiten: epsilon must be > 0")

	// ErrNilInput is returned when a nil matrix is passed to Fit or Transform.
	ErrNilInput = errors.New("whiten: input matrix is nil")

	// ErrTooFewRows is returned when Fit receives fewer than MinFitRows rows.
	ErrTooFewRows = errors.New("whiten: fit requires at least 2 sample rows")

	// ErrNoFeatures is returned when the input matrix has zero columns.
	ErrNoFeatures = errors.New("whiten: input matrix has no feature columns")

	// ErrNotFitted is returned when Transform is called before a successful Fit.
	ErrNotFitted = errors.New("whiten: transform called before fit")

	// ErrShapeMismatch is returned when Transform input width differs from the fitted width.
	ErrShapeMismatch = errors.New("whiten: feature width differs from fitted model")

	// ErrDecomposition is returned when the covariance eigendecomposition
	// does not converge (near-singular or ill-conditioned batch).
	ErrDecomposition = errors.New("whiten: covariance decomposition failed")
)

// DefaultEpsilon regularizes 1/sqrt(S+ε) against near-zero eigenvalues.
const DefaultEpsilon = 1e-5

// MinFitRows is the minimum number of sample rows required by Fit;
// a sample covariance needs at least two observations.
const MinFitRows = 2

// Options configures a ZCA whitener.
//
// Fields:
//   - Epsilon — regularization added to covariance eigenvalues before the
//     inverse square root. Must be strictly positive.
type Options struct {
	Epsilon float64
}

// DefaultOptions returns Options with Epsilon = DefaultEpsilon.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}
