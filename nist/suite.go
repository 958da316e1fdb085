package nist

// RunAll executes the whole battery on bits with the reference parameters
// (DefaultBlockSize, DefaultSerialM) and reports one Result per test in a
// fixed order: monobit, runs, block frequency, serial.
//
// The tests run independently — a failing verdict never blocks the rest.
// A test that rejects its input (the block frequency test when fewer than
// DefaultBlockSize bits are available) is reported as p = 0, Pass = false,
// matching the short-circuit convention of the runs test.
//
// The shared input contract (MinLength bits, 0/1 values) is enforced once
// up front; violations return ErrTooShort or ErrNotBits with no results.
func RunAll(bits []byte) ([]Result, error) {
	if err := validate(bits, MinLength); err != nil {
		return nil, err
	}

	pMono, err := Monobit(bits)
	results := []Result{verdict(TestMonobit, []float64{pMono}, err)}

	pRuns, err := Runs(bits)
	results = append(results, verdict(TestRuns, []float64{pRuns}, err))

	pBlock, err := BlockFrequency(bits, DefaultBlockSize)
	results = append(results, verdict(TestBlockFrequency, []float64{pBlock}, err))

	p1, p2, err := Serial(bits, DefaultSerialM)
	results = append(results, verdict(TestSerial, []float64{p1, p2}, err))

	return results, nil
}

// verdict folds a test's p-values and error into a Result: every p-value
// must clear Alpha to pass, and a test-level rejection counts as p = 0.
func verdict(name string, ps []float64, err error) Result {
	if err != nil {
		return Result{Name: name, PValues: []float64{0}, Pass: false}
	}

	pass := true
	for _, p := range ps {
		if p <= Alpha {
			pass = false
		}
	}

	return Result{Name: name, PValues: ps, Pass: pass}
}
