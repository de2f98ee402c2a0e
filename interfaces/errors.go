package interfaces

import "fmt"

// SentinelReturnError reports that a capability call returned its documented
// empty/error sentinel. It carries the operation name and the raw sentinel
// value observed. Sentinel failures are surfaced to the caller and never
// retried or recovered locally.
type SentinelReturnError struct {
	// Op is the capability operation that failed.
	Op string

	// Value is the raw return value that matched the failure sentinel.
	Value string
}

// Error returns a description including the raw sentinel value.
func (e *SentinelReturnError) Error() string {
	return fmt.Sprintf("%s: capability returned error value %q", e.Op, e.Value)
}

// InvariantError reports that an internal assertion failed, such as a signed
// contract coming back with a zero-length id. This class of error indicates a
// programming or environment defect, not a condition callers should handle.
type InvariantError struct {
	Op     string
	Detail string
}

// Error returns the violated invariant.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: invariant violated: %s", e.Op, e.Detail)
}

// ParseError reports malformed XML or document structure encountered while
// extracting an id or field from a capability response or wallet file.
type ParseError struct {
	Op  string
	Err error
}

// Error returns the underlying parse failure.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying error for errors.Is/As.
func (e *ParseError) Unwrap() error {
	return e.Err
}
