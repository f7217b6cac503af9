package metlink

import "fmt"

// UpstreamError reports a failed feed retrieval: a non-2xx status, a body
// that could not be decoded, or an envelope without a well-formed entity
// array. The pipeline recovers it locally and emits an empty collection;
// it never aborts an invocation.
type UpstreamError struct {
	Reason string // "request", "status", "decode" or "envelope"
	Status int    // HTTP status, when Reason is "status"
	Err    error
}

func (e *UpstreamError) Error() string {
	switch e.Reason {
	case "status":
		return fmt.Sprintf("upstream feed: HTTP %d", e.Status)
	default:
		return fmt.Sprintf("upstream feed: %s: %v", e.Reason, e.Err)
	}
}

func (e *UpstreamError) Unwrap() error { return e.Err }
