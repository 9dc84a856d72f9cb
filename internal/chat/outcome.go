package chat

// Outcome carries the result of an advisory step whose failure must never
// fail the overall turn. Absorbing the failure happens through WithDefault,
// so the degradation is visible at the call site instead of hidden in a
// recover or a swallowed error.
type Outcome[T any] struct {
	value T
	err   error
}

func ok[T any](v T) Outcome[T] {
	return Outcome[T]{value: v}
}

func fail[T any](err error) Outcome[T] {
	return Outcome[T]{err: err}
}

// WithDefault returns the value on success, or def when the step failed.
func (o Outcome[T]) WithDefault(def T) T {
	if o.err != nil {
		return def
	}
	return o.value
}

// Err exposes the absorbed failure for logging and metrics.
func (o Outcome[T]) Err() error { return o.err }
