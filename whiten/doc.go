// Package whiten implements Zero-phase Component Analysis (ZCA) whitening
// over gonum matrices: a linear transform that decorrelates multi-feature
// data while staying as close as possible to the original basis.
//
// 🚀 What is ZCA whitening?
//
//	Given samples X with shape (rows × features), ZCA drives the covariance
//	of the transformed output toward the identity matrix. Unlike plain
//	eigen-whitening it rotates back into the input basis after rescaling:
//
//	  W = U · diag(1/√(S+ε)) · Uᵀ
//
//	where U, S come from the eigendecomposition of the sample covariance
//	and ε is a small regularization constant guarding near-zero variance
//	directions. The rotate-back step keeps whitened output maximally
//	correlated in direction with the raw input, which matters when a later
//	quantization stage assumes roughly feature-symmetric value ranges.
//
// ✨ Key features:
//   - Fit / Transform / FitTransform in the familiar transformer shape
//   - fail-fast validation: ≥ 2 rows to fit, matching width to transform
//   - explicit sentinel errors for state misuse and non-converging
//     decompositions
//
// ⚙️ Usage:
//
//	zca, err := whiten.New(whiten.DefaultOptions())
//	if err != nil { ... }
//	if err := zca.Fit(X); err != nil { ... }
//	Y, err := zca.Transform(X)
//
// Correctness property: for i.i.d. Gaussian input the empirical covariance
// of Transform output converges to the identity as the row count grows.
//
// Complexity: Fit is O(r·c² + c³) time (covariance + eigendecomposition),
// Transform is O(r·c²).
package whiten
