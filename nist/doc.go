// Package nist implements a battery of randomness hypothesis tests modeled
// on NIST SP 800-22, operating on flat 0/1 bitstreams.
//
// 🚀 What does the battery check?
//
//	Each test targets a different statistical signature of non-randomness:
//	  • Monobit         — global bias toward 0 or 1
//	  • Runs            — run-length distribution (too few / too many flips)
//	  • Block frequency — local bias inside fixed-size blocks
//	  • Serial          — over/under-represented short bit patterns
//
//	Every test converts its statistic into a p-value: the probability,
//	under the null hypothesis of true randomness, of observing a deviation
//	at least as extreme. A test passes when p > Alpha (0.01).
//
// ✨ Contract shared by all tests:
//   - input must contain only 0/1 values (ErrNotBits otherwise)
//   - input must meet the per-test minimum length (ErrTooShort otherwise)
//   - both are checked before any statistic is computed
//
// ⚙️ Usage:
//
//	p, err := nist.Monobit(bits)
//	results, err := nist.RunAll(bits)
//	for _, r := range results {
//	    fmt.Printf("%s p=%v pass=%v\n", r.Name, r.PValues, r.Pass)
//	}
//
// RunAll executes the tests independently: a failing verdict (or a block
// size the input cannot fill) never blocks the remaining tests.
//
// A passing battery is a necessary, not sufficient, signal — this package
// makes no cryptographic suitability claim about the source.
package nist
