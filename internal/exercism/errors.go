package exercism

import "fmt"

// NotFoundError is returned when the API reports that a track or exercise does not exist.
type NotFoundError struct {
	Resource string
	URL      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found (%s)", e.Resource, e.URL)
}

// RateLimitedError is returned on HTTP 429. RetryAfter holds the raw header, if any.
type RateLimitedError struct {
	URL        string
	RetryAfter string
}

func (e *RateLimitedError) Error() string {
	if e.RetryAfter != "" {
		return fmt.Sprintf("rate limited by %s, retry after %s", e.URL, e.RetryAfter)
	}
	return fmt.Sprintf("rate limited by %s", e.URL)
}

// TransportError covers connection failures, unexpected statuses and
// undecodable bodies.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
