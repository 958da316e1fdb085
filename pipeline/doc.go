// Package pipeline orchestrates the full randomness extraction chain:
// simulated vacuum noise → ZCA whitening → quantization → bit extraction,
// delivering an exact-length bitstream or byte sequence on request.
//
// 🚀 How a request flows:
//
//	caller asks for N bytes with feature width F
//	  ├─ rows = ceil(N·8 / (F·Bits)), floored at 2 for the whitener
//	  ├─ quadrature: rows·F Gaussian samples, reshaped (rows × F)
//	  ├─ whiten:     fresh ZCA fit + transform on the batch
//	  ├─ quantize:   flatten row-major, rescale to Bits-wide levels
//	  ├─ extract:    big-endian bit expansion of every level
//	  └─ truncate:   exactly N·8 bits (ceiling excess dropped)
//
// The length guarantee is unconditional: GenerateBytes returns exactly N
// bytes for every valid N and F.
//
// ✨ Key features:
//   - instance-owned seeded noise source — reproducible streams on demand
//   - a fresh whitening model per batch; fitted state never leaks across
//     requests of different shape
//   - an optional Trace hook reporting per-stage element counts, so
//     adapters can observe progress without the core embedding a logger
//
// ⚙️ Usage:
//
//	p, err := pipeline.New(pipeline.DefaultOptions())
//	if err != nil { ... }
//	raw, err := p.GenerateBytes(1024, pipeline.DefaultFeatures)
//
// The output is simulated randomness: no cryptographic suitability is
// implied. Validate candidate streams with the nist package.
package pipeline
