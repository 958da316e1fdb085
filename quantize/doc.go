// Package quantize digitizes whitened analog samples into fixed-width
// unsigned integers and expands them into a flat bitstream.
//
// 🚀 What happens here?
//
//	The whitened signal is a slice of real values with an arbitrary range.
//	Quantize rescales that range linearly onto [0, 2^bits − 1] and rounds
//	to the nearest level — the software analogue of an ADC. ExtractBits
//	then unpacks every quantized level into its big-endian fixed-width
//	binary form, concatenated in sample order, so that each group of
//	bits-per-sample bits reconstructs exactly one level (RegroupBits is
//	the inverse). PackBits collapses a 0/1 stream into raw bytes, most
//	significant bit first.
//
// ✨ Edge-case policy:
//   - a constant input batch quantizes to all zeros instead of failing —
//     a flat signal carries no information but must still yield
//     well-formed output, never a division by zero
//   - NaN or ±Inf samples are rejected up front (no silent garbage levels)
//   - a level that does not fit the requested width fails ExtractBits,
//     keeping the per-sample expansion invertible
//
// ⚙️ Usage:
//
//	levels, err := quantize.Quantize(signal, 8)
//	bits, err := quantize.ExtractBits(levels, 8)
//	raw, err := quantize.PackBits(bits)
//
// All functions are pure and stateless; supported widths are 1..16 bits.
package quantize
