// Package main is the qrng command line: it generates simulated random
// bytes through the vacuum-noise pipeline, optionally saves them as a raw
// binary dump, and optionally validates them with the statistical battery.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"

	"github.com/katalvlaran/qrngsim/nist"
	"github.com/katalvlaran/qrngsim/pipeline"
	"github.com/katalvlaran/qrngsim/quantize"
)

func main() {
	var (
		numBytes = flag.Int("n", 1024, "number of random bytes to generate")
		output   = flag.String("o", "", "output file for the raw bytes")
		features = flag.Int("features", pipeline.DefaultFeatures, "whitening window width")
		seed     = flag.Uint64("seed", 0, "noise source seed (0 = random)")
		runTests = flag.Bool("test", false, "run the statistical battery on the generated bits")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	))

	if err := run(*numBytes, *features, *seed, *output, *runTests); err != nil {
		slog.Error("qrng failed", "err", err)
		os.Exit(1)
	}
}

func run(numBytes, features int, seed uint64, output string, runTests bool) error {
	opts := pipeline.DefaultOptions()
	opts.Seed = seed
	opts.Trace = func(stage pipeline.Stage, count int) {
		slog.Debug("stage complete", "stage", stage.String(), "count", count)
	}

	p, err := pipeline.New(opts)
	if err != nil {
		return fmt.Errorf("build pipeline: %w", err)
	}

	bits, err := p.GenerateBits(numBytes, features)
	if err != nil {
		return fmt.Errorf("generate bits: %w", err)
	}
	raw, err := quantize.PackBits(bits)
	if err != nil {
		return fmt.Errorf("pack bytes: %w", err)
	}
	slog.Info("generated simulated random bytes", "bytes", len(raw), "features", features)

	if output != "" {
		// Raw binary dump: no header, no metadata.
		if err := os.WriteFile(output, raw, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		slog.Info("saved output", "path", output)
	}

	if runTests {
		if err := report(bits); err != nil {
			return fmt.Errorf("run battery: %w", err)
		}
	}

	return nil
}

// report prints the battery verdicts in the reference format.
func report(bits []byte) error {
	results, err := nist.RunAll(bits)
	if err != nil {
		return err
	}

	fmt.Println("--- NIST Statistical Test Results ---")
	for _, r := range results {
		verdict := "[FAIL]"
		if r.Pass {
			verdict = "[PASS]"
		}

		ps := make([]string, len(r.PValues))
		for i, p := range r.PValues {
			ps[i] = fmt.Sprintf("%.6f", p)
		}
		fmt.Printf("%-16s P-value: %s %s\n", displayName(r.Name), strings.Join(ps, ", "), verdict)
	}

	return nil
}

// displayName renders a battery token ("block_frequency") as a report label
// ("Block Frequency").
func displayName(token string) string {
	words := strings.Split(token, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}

	return strings.Join(words, " ")
}
