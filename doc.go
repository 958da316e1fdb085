// Package qrngsim is an in-memory playground for simulated quantum random
// number generation — from vacuum-noise modeling to statistical validation.
//
// 🚀 What is qrngsim?
//
//	A library that simulates the numeric pipeline of an optical QRNG:
//		• Noise source: homodyne detection of vacuum quadrature fluctuations
//		• Whitening: ZCA decorrelation of feature-grouped sample batches
//		• Quantization: linear rescaling into fixed-width integer levels
//		• Extraction: big-endian bit expansion with exact length accounting
//		• Validation: a NIST SP 800-22-style test battery for bitstreams
//
// ✨ Why choose qrngsim?
//
//   - Deterministic by choice – every noisy component takes an explicit seed
//   - Rock-solid contracts – fail-fast validation, sentinel errors, hooks
//   - Honest about limits – a simulation, not a certified entropy source
//
// Everything is organized under per-concern subpackages:
//
//	quadrature/ — vacuum fluctuation simulator (Gaussian noise source)
//	whiten/     — ZCA whitening: fit, transform, convergence to identity
//	quantize/   — quantization, bit extraction/regrouping, byte packing
//	pipeline/   — the orchestrated chain with per-stage trace hooks
//	nist/       — monobit, runs, block frequency, serial tests + runner
//	httpapi/    — HTTP adapter (generate, test, health)
//	cmd/        — qrng CLI and qrngd daemon
//
// Quick sketch of a request:
//
//	N bytes ──rows=⌈N·8/(F·bits)⌉──▶ noise (rows×F) ─▶ whiten ─▶ quantize
//	        ◀──────── exactly N·8 bits ◀─ extract ◀─ flatten ──┘
//
// Dive into each package's doc.go for contracts, error sentinels, and
// worked examples.
//
//	go get github.com/katalvlaran/qrngsim
package qrngsim
