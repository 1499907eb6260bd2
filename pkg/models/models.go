/*
Package models defines the shared result structures exchanged between the
decision core, the CLI, and the HTTP API.

These models serve two purposes:
- **Structured Output**: a stable JSON format for scripting and ingestion.
- **API Responses**: the wire representation returned by the HTTP server.
*/
package models

// CheckResult is the outcome of a single primality decision.
type CheckResult struct {
	// N is the decimal representation of the candidate tested.
	N string `json:"n"`
	// Prime is the verdict. Verdicts from the probabilistic tier carry a
	// residual false-positive probability bounded by the round count.
	Prime bool `json:"prime"`
	// Algorithm is the name of the decision algorithm used.
	Algorithm string `json:"algorithm"`
	// Tier is the magnitude tier that handled the candidate.
	Tier string `json:"tier,omitempty"`
	// Rounds is the witness round count used by probabilistic algorithms.
	Rounds int `json:"rounds,omitempty"`
	// Duration is the formatted execution time string.
	Duration string `json:"duration"`
	// Error contains the error message if the test failed.
	Error string `json:"error,omitempty"`
}

// BatchResult is the outcome of a batch run over a range of candidates.
type BatchResult struct {
	// Upper is the exclusive upper bound of the tested range [2, Upper).
	Upper uint64 `json:"upper"`
	// AllPrime is the logical AND of every verdict in the range.
	AllPrime bool `json:"all_prime"`
	// Workers is the worker count the batch ran with.
	Workers int `json:"workers"`
	// Duration is the formatted execution time string.
	Duration string `json:"duration"`
	// Error contains the error message if the batch failed.
	Error string `json:"error,omitempty"`
}
