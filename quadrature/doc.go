// Package quadrature simulates homodyne detection of quantum vacuum-state
// fluctuations, producing raw quadrature samples for randomness extraction.
//
// 🚀 What is a quadrature here?
//
//	In the optical model, the vacuum state has non-zero fluctuations in its
//	quadrature amplitudes (X and P). A homodyne detector measuring one
//	quadrature observes zero-mean Gaussian noise whose variance is set by
//	the shot-noise level. This package stands in for that detector with a
//	seeded Gaussian sampler:
//	  • zero mean
//	  • standard deviation σ = sqrt(ShotNoiseVariance)
//	  • independent draws per sample
//
// ✨ Key features:
//   - instance-owned random source — an explicit Seed yields byte-for-byte
//     reproducible output, Seed 0 draws a fresh seed from crypto/rand
//   - fail-fast validation of sample counts and detector parameters
//   - no global state, no hidden sync
//
// ⚙️ Usage:
//
//	opts := quadrature.DefaultOptions()
//	opts.Seed = 42
//	sim, err := quadrature.New(opts)
//	if err != nil { ... }
//	samples, err := sim.Generate(10_000)
//
// Performance:
//
//   - Time:   O(n) per Generate call
//   - Memory: O(n) for the returned slice
//
// See pipeline for the full noise → whitening → quantization chain.
package quadrature
