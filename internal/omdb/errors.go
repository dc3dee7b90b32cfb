package omdb

import "fmt"

// StatusError reports a transport-level failure: the service answered
// with a non-success HTTP status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
}

// APIError reports a logical failure from a reachable service: the
// response body carried a failure flag, with Message holding the
// service-supplied text or an operation-specific fallback.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}
