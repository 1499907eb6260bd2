package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
)

// GoldenData represents a single test case in the golden file.
type GoldenData struct {
	N     string `json:"n"`
	Prime bool   `json:"prime"`
}

func main() {
	outputDir := flag.String("out", "internal/prime/testdata", "Output directory for the golden file")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "prime_golden.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	// Generate verdicts for a set of interesting cases:
	// - Every integer below 200 (exercises the small-case filter densely)
	// - Values straddling the default tier boundaries
	// - Known large primes and their neighbors

	var targets []string
	for i := 0; i < 200; i++ {
		targets = append(targets, fmt.Sprintf("%d", i))
	}
	targets = append(targets,
		"9973", "9999", "10000", "10001", "10007",
		"99999989", "99999990", "100000007",
		"2147483647",                // Mersenne prime 2^31-1
		"9999999999999937",          // largest prime below 10^16
		"10000000000000061",         // smallest prime above 10^16
		"170141183460469231731687303715884105727", // Mersenne prime 2^127-1
		"170141183460469231731687303715884105725",
	)

	var data []GoldenData

	fmt.Println("Generating golden data...")

	for _, t := range targets {
		n, ok := new(big.Int).SetString(t, 10)
		if !ok {
			fmt.Fprintf(os.Stderr, "Invalid target %q\n", t)
			os.Exit(1)
		}
		data = append(data, GoldenData{
			N:     t,
			Prime: isPrimeOracle(n),
		})
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated golden file at %s\n", filename)
}

// isPrimeOracle decides primality using the standard library.
// ProbablyPrime(0) applies the deterministic Baillie-PSW test, which has no
// known counterexamples; it serves as our oracle independent of the engines
// under test.
func isPrimeOracle(n *big.Int) bool {
	return n.ProbablyPrime(0)
}
