// Package nist defines the shared constants, error sentinels, and result
// shape of the randomness test battery.
package nist

import "errors"

// Sentinel errors shared by all tests.
var (
	// ErrTooShort is returned when a bitstream does not meet a test's
	// minimum length.
	ErrTooShort = errors.New("nist: bitstream shorter than test minimum")

	// ErrNotBits is returned when a bitstream contains a value other than 0 or 1.
	ErrNotBits = errors.New("nist: bitstream values must be 0 or 1")

	// ErrBlockSize is returned for a non-positive block size, or a serial
	// pattern length outside [1, MaxSerialM].
	ErrBlockSize = errors.New("nist: block size out of range")
)

// Battery-wide parameters.
const (
	// Alpha is the fixed significance threshold: a test passes when p > Alpha.
	Alpha = 0.01

	// MinLength is the minimum bitstream length for Monobit, Runs, and Serial.
	MinLength = 100

	// DefaultBlockSize is the block frequency test's reference block size.
	DefaultBlockSize = 128

	// DefaultSerialM is the serial test's reference pattern length.
	// The degrees-of-freedom special case for m <= 2 is calibrated to this
	// default; longer patterns are accepted but not re-derived beyond it.
	DefaultSerialM = 2

	// MaxSerialM bounds the serial pattern length. Patterns are counted by
	// their uint64 value, and any m near this bound already dwarfs MinLength
	// (2^m patterns over n windows), so longer patterns are rejected.
	MaxSerialM = 16
)

// Canonical test names, used as Result.Name and in adapter payloads.
const (
	TestMonobit        = "monobit"
	TestRuns           = "runs"
	TestBlockFrequency = "block_frequency"
	TestSerial         = "serial"
)

// Result is one test's verdict: its p-value(s) — the serial test yields a
// pair — and whether every p-value clears Alpha.
type Result struct {
	Name    string
	PValues []float64
	Pass    bool
}

// validate enforces the shared input contract before any statistic:
// minimum length first, then 0/1 content.
func validate(bits []byte, minLen int) error {
	if len(bits) < minLen {
		return ErrTooShort
	}
	for _, b := range bits {
		if b > 1 {
			return ErrNotBits
		}
	}

	return nil
}
