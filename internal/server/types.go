package server

// ErrorResponse represents the standardized JSON response for an API error.
type ErrorResponse struct {
	// Error is the short error code or status text.
	Error string `json:"error"`
	// Message is a descriptive error message.
	Message string `json:"message,omitempty"`
}

// CheckParseError represents a parameter parsing error with HTTP status.
type CheckParseError struct {
	Message    string
	StatusCode int
}

// Error implements the error interface.
func (e CheckParseError) Error() string {
	return e.Message
}
