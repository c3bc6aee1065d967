package weatherapi

import "fmt"

// InvalidInputError reports a malformed location query. It is returned
// before any network I/O happens.
type InvalidInputError struct {
	Query string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid location query %q", e.Query)
}

// UpstreamError reports a non-2xx response from the weather provider.
// Message carries the provider's own error text when the body had the
// standard error envelope.
type UpstreamError struct {
	Status  int
	Body    string
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("weather api: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("weather api: status %d", e.Status)
}

// MalformedResponseError reports a 2xx response whose payload is missing
// required structure.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed weather response: %s", e.Reason)
}
