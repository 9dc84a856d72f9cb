package provider

import "fmt"

// ErrorKind distinguishes the two terminal gateway failures.
type ErrorKind string

const (
	// KindTimeout means the retry budget was exhausted without a successful
	// or definitively rejected response.
	KindTimeout ErrorKind = "timeout"
	// KindRejected means the provider returned a well-formed application
	// error; such responses are never retried.
	KindRejected ErrorKind = "rejected"
)

// ProviderError is the only error type returned by the gateway.
type ProviderError struct {
	Kind   ErrorKind
	Status int
	Detail string
	Err    error
}

func (e *ProviderError) Error() string {
	switch {
	case e.Detail != "" && e.Status != 0:
		return fmt.Sprintf("provider %s (status %d): %s", e.Kind, e.Status, e.Detail)
	case e.Detail != "":
		return fmt.Sprintf("provider %s: %s", e.Kind, e.Detail)
	case e.Err != nil:
		return fmt.Sprintf("provider %s: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("provider %s", e.Kind)
	}
}

func (e *ProviderError) Unwrap() error { return e.Err }
