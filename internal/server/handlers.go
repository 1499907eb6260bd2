package server

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"time"

	"github.com/agbru/primecheck/pkg/models"

	"github.com/agbru/primecheck/internal/orchestration"
	"github.com/agbru/primecheck/internal/prime"
)

// handleHealth responds to health check requests.
// It returns a 200 OK status with a JSON payload indicating the service is healthy.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	response := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	}

	s.writeJSONResponse(w, http.StatusOK, response)
}

// handleAlgorithms returns the list of available decision algorithms.
// It queries the internal registry and returns the keys as a JSON array.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	algorithms := s.factory.List()

	response := map[string]any{
		"algorithms": algorithms,
	}

	s.writeJSONResponse(w, http.StatusOK, response)
}

// handleCheck processes single-candidate primality requests.
// It parses the query parameters 'n' (the candidate) and 'algo' (the
// algorithm), runs the decision, and returns the verdict in JSON format.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	// Parse and validate parameters using helper
	n, algo, err := s.parseCheckParams(r)
	if err != nil {
		if parseErr, ok := err.(CheckParseError); ok {
			s.writeErrorResponse(w, parseErr.StatusCode, parseErr.Message)
		} else {
			s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	tester, err := s.factory.Get(algo)
	if err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("Unknown algorithm '%s'. See /algorithms for the available set.", algo))
		return
	}

	// Create a context with timeout for the decision
	ctx, cancel := context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
	defer cancel()

	opts := s.cfg.ToTestOptions()

	start := time.Now()
	isPrime, err := tester.Test(ctx, n, opts)
	duration := time.Since(start)

	// Build and send response using helper
	resp := buildCheckResponse(n, tester.Name(), isPrime, opts, duration, err)
	s.writeJSONResponse(w, http.StatusOK, resp)
}

// handleBatch processes batch requests over a range of candidates.
// It parses the query parameters 'n' (the exclusive upper bound) and
// 'workers', tests every integer in [2, n), and returns the aggregate
// AND verdict.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	upper, workers, err := parseBatchParams(r)
	if err != nil {
		if parseErr, ok := err.(CheckParseError); ok {
			s.writeErrorResponse(w, parseErr.StatusCode, parseErr.Message)
		} else {
			s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	tester, err := s.factory.Get("auto")
	if err != nil {
		s.writeErrorResponse(w, http.StatusInternalServerError, "Default engine unavailable")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
	defer cancel()

	if workers < 1 {
		workers = orchestration.DefaultWorkers()
	}

	start := time.Now()
	allPrime, err := orchestration.AllPrime(ctx, tester, upper, workers, s.cfg.ToTestOptions())
	duration := time.Since(start)

	resp := models.BatchResult{
		Upper:    upper,
		AllPrime: allPrime,
		Workers:  workers,
		Duration: duration.String(),
	}
	if err != nil {
		resp.Error = err.Error()
	}

	s.writeJSONResponse(w, http.StatusOK, resp)
}

// parseCheckParams extracts and validates the single-check parameters from
// the request. The candidate length is capped at maxCandidateDigits decimal
// digits to prevent resource exhaustion from adversarially large inputs.
//
// Parameters:
//   - r: The HTTP request containing query parameters.
//
// Returns:
//   - n: The parsed candidate.
//   - algo: The algorithm name (defaults to "auto" if not specified).
//   - err: A CheckParseError if validation fails, nil otherwise.
func (s *Server) parseCheckParams(r *http.Request) (n *big.Int, algo string, err error) {
	nStr := r.URL.Query().Get("n")
	if nStr == "" {
		return nil, "", CheckParseError{
			Message:    "Missing 'n' parameter",
			StatusCode: http.StatusBadRequest,
		}
	}

	if len(nStr) > s.maxCandidateDigits {
		return nil, "", CheckParseError{
			Message:    fmt.Sprintf("Candidate exceeds the maximum accepted length (%d digits). This limit prevents resource exhaustion.", s.maxCandidateDigits),
			StatusCode: http.StatusBadRequest,
		}
	}

	n, ok := new(big.Int).SetString(nStr, 10)
	if !ok || n.Sign() < 0 {
		return nil, "", CheckParseError{
			Message:    "Invalid 'n' parameter: must be a non-negative decimal integer",
			StatusCode: http.StatusBadRequest,
		}
	}

	algo = r.URL.Query().Get("algo")
	if algo == "" {
		algo = "auto" // Default algorithm
	}

	return n, algo, nil
}

// parseBatchParams extracts and validates the batch parameters from the
// request.
//
// Parameters:
//   - r: The HTTP request containing query parameters.
//
// Returns:
//   - upper: The exclusive upper bound of the batch range.
//   - workers: The requested worker count (0 means one per CPU).
//   - err: A CheckParseError if validation fails, nil otherwise.
func parseBatchParams(r *http.Request) (upper uint64, workers int, err error) {
	nStr := r.URL.Query().Get("n")
	if nStr == "" {
		return 0, 0, CheckParseError{
			Message:    "Missing 'n' parameter",
			StatusCode: http.StatusBadRequest,
		}
	}

	upper, parseErr := strconv.ParseUint(nStr, 10, 64)
	if parseErr != nil {
		return 0, 0, CheckParseError{
			Message:    "Invalid 'n' parameter: must be a positive integer",
			StatusCode: http.StatusBadRequest,
		}
	}

	workersStr := r.URL.Query().Get("workers")
	if workersStr != "" {
		w, parseErr := strconv.Atoi(workersStr)
		if parseErr != nil || w < 0 {
			return 0, 0, CheckParseError{
				Message:    "Invalid 'workers' parameter: must be a non-negative integer",
				StatusCode: http.StatusBadRequest,
			}
		}
		workers = w
	}

	return upper, workers, nil
}

// buildCheckResponse constructs the response struct for a single check.
//
// Parameters:
//   - n: The candidate that was tested.
//   - algo: The algorithm name used.
//   - isPrime: The verdict (meaningless if err is non-nil).
//   - opts: The options the decision ran with.
//   - duration: The time taken for the decision.
//   - err: Any error that occurred during the decision.
//
// Returns:
//   - models.CheckResult: The constructed response struct.
func buildCheckResponse(n *big.Int, algo string, isPrime bool, opts prime.Options, duration time.Duration, err error) models.CheckResult {
	resp := models.CheckResult{
		N:         n.String(),
		Algorithm: algo,
		Tier:      prime.TierFor(n, opts).String(),
		Rounds:    opts.Rounds,
		Duration:  duration.String(),
	}

	if err != nil {
		resp.Error = err.Error()
	} else {
		resp.Prime = isPrime
	}

	return resp
}

// writeJSONResponse helper function to write a JSON response with the correct content type.
//
// Parameters:
//   - w: The HTTP response writer.
//   - statusCode: The HTTP status code to write.
//   - data: The data to be encoded as JSON.
func (s *Server) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Printf("Error encoding JSON response: %v", err)
	}
}

// writeErrorResponse helper function to write a standardized error response.
//
// Parameters:
//   - w: The HTTP response writer.
//   - statusCode: The HTTP status code to write.
//   - message: The error message to be included in the response body.
func (s *Server) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	errResp := ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	s.writeJSONResponse(w, statusCode, errResp)
}
