package nist_test

import (
	"fmt"

	"github.com/katalvlaran/qrngsim/nist"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleRunAll
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Run the whole battery on a perfectly alternating 0/1 sequence.
//	The stream is exactly balanced, so the monobit test passes, but every
//	other test sees the rigid structure: the run count is maximal, every
//	block is half ones by construction yet the 2-bit patterns 00 and 11
//	never occur.
//
// Use case:
//
//	Quick verdict overview for a candidate bitstream.
func ExampleRunAll() {
	bits := make([]byte, 10_000)
	for i := range bits {
		bits[i] = byte(i % 2)
	}

	results, err := nist.RunAll(bits)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, r := range results {
		verdict := "FAIL"
		if r.Pass {
			verdict = "PASS"
		}
		fmt.Printf("%-15s %s\n", r.Name, verdict)
	}
	// Output:
	// monobit         PASS
	// runs            FAIL
	// block_frequency PASS
	// serial          FAIL
}

// ExampleMonobit shows the single-test form: a heavily biased stream is
// rejected with a vanishing p-value.
func ExampleMonobit() {
	bits := make([]byte, 200) // all zeros: maximal bias

	p, err := nist.Monobit(bits)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("p=%.4f pass=%v\n", p, p > nist.Alpha)
	// Output:
	// p=0.0000 pass=false
}
