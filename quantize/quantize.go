package quantize

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Supported quantization widths. Levels are stored in uint16, the smallest
// Go-native width covering the full supported range; levels produced with
// bits <= 8 always fit a single byte.
const (
	MinBits = 1
	MaxBits = 16
)

// BitsPerByte is the packing granularity of PackBits.
const BitsPerByte = 8

// Sentinel errors for quantization and bit handling.
var (
	// ErrBitsRange is returned when a bit width lies outside [MinBits, MaxBits].
	ErrBitsRange = errors.New("quantize: bits must be in [1,16]")

	// ErrEmptyInput is returned when an input slice is empty.
	ErrEmptyInput = errors.New("quantize: input must be non-empty")

	// ErrNonFinite is returned when a sample is NaN or ±Inf.
	ErrNonFinite = errors.New("quantize: NaN or Inf sample")

	// ErrSampleOverflow is returned by ExtractBits when a level does not fit
	// the requested width.
	ErrSampleOverflow = errors.New("quantize: level exceeds bit width")

	// ErrNotBits is returned when a bitstream contains a value other than 0 or 1.
	ErrNotBits = errors.New("quantize: bitstream values must be 0 or 1")

	// ErrBitsLength is returned when a bitstream length does not divide by the
	// required group size.
	ErrBitsLength = errors.New("quantize: bitstream length does not divide evenly")
)

// Quantize linearly rescales data onto the integer range [0, 2^bits − 1],
// rounding to the nearest level and clamping against floating overshoot.
//
// A constant batch (max == min) quantizes to all zeros: a flat signal is
// valid, uninformative input, not an error.
//
// Errors:
//   - ErrEmptyInput — len(data) == 0.
//   - ErrBitsRange  — bits outside [MinBits, MaxBits].
//   - ErrNonFinite  — data contains NaN or ±Inf.
func Quantize(data []float64, bits int) ([]uint16, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if bits < MinBits || bits > MaxBits {
		return nil, ErrBitsRange
	}
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNonFinite
		}
	}

	levels := make([]uint16, len(data))

	minVal := floats.Min(data)
	maxVal := floats.Max(data)
	if maxVal == minVal {
		return levels, nil
	}

	maxLevel := float64(int(1)<<bits - 1)
	scale := maxLevel / (maxVal - minVal)
	for i, v := range data {
		level := math.Round((v - minVal) * scale)
		// Clamp against rounding overshoot at the range edges.
		if level < 0 {
			level = 0
		} else if level > maxLevel {
			level = maxLevel
		}
		levels[i] = uint16(level)
	}

	return levels, nil
}

// ExtractBits expands every level into its bitsPerSample-wide big-endian
// binary form, concatenated in input order. The result has length
// len(levels) · bitsPerSample and contains only 0/1 values.
//
// Errors:
//   - ErrEmptyInput     — len(levels) == 0.
//   - ErrBitsRange      — bitsPerSample outside [MinBits, MaxBits].
//   - ErrSampleOverflow — a level needs more than bitsPerSample bits.
func ExtractBits(levels []uint16, bitsPerSample int) ([]byte, error) {
	if len(levels) == 0 {
		return nil, ErrEmptyInput
	}
	if bitsPerSample < MinBits || bitsPerSample > MaxBits {
		return nil, ErrBitsRange
	}

	out := make([]byte, 0, len(levels)*bitsPerSample)
	for _, level := range levels {
		if bitsPerSample < MaxBits && level >= uint16(1)<<bitsPerSample {
			return nil, ErrSampleOverflow
		}
		for shift := bitsPerSample - 1; shift >= 0; shift-- {
			out = append(out, byte(level>>shift)&1)
		}
	}

	return out, nil
}

// RegroupBits is the exact inverse of ExtractBits: every consecutive group
// of bitsPerSample 0/1 values is reassembled into one level, MSB first.
//
// Errors:
//   - ErrEmptyInput — len(bits) == 0.
//   - ErrBitsRange  — bitsPerSample outside [MinBits, MaxBits].
//   - ErrBitsLength — len(bits) is not a multiple of bitsPerSample.
//   - ErrNotBits    — a value other than 0 or 1 is present.
func RegroupBits(bits []byte, bitsPerSample int) ([]uint16, error) {
	if len(bits) == 0 {
		return nil, ErrEmptyInput
	}
	if bitsPerSample < MinBits || bitsPerSample > MaxBits {
		return nil, ErrBitsRange
	}
	if len(bits)%bitsPerSample != 0 {
		return nil, ErrBitsLength
	}

	levels := make([]uint16, len(bits)/bitsPerSample)
	for i := range levels {
		var level uint16
		for _, b := range bits[i*bitsPerSample : (i+1)*bitsPerSample] {
			if b > 1 {
				return nil, ErrNotBits
			}
			level = level<<1 | uint16(b)
		}
		levels[i] = level
	}

	return levels, nil
}

// PackBits groups every 8 consecutive 0/1 values into one byte, most
// significant bit first.
//
// Errors:
//   - ErrEmptyInput — len(bits) == 0.
//   - ErrBitsLength — len(bits) is not a multiple of 8.
//   - ErrNotBits    — a value other than 0 or 1 is present.
func PackBits(bits []byte) ([]byte, error) {
	if len(bits) == 0 {
		return nil, ErrEmptyInput
	}
	if len(bits)%BitsPerByte != 0 {
		return nil, ErrBitsLength
	}

	out := make([]byte, len(bits)/BitsPerByte)
	for i, b := range bits {
		if b > 1 {
			return nil, ErrNotBits
		}
		out[i/BitsPerByte] = out[i/BitsPerByte]<<1 | b
	}

	return out, nil
}
