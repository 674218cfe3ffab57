// Package outcome provides a success/failure result value used at every
// service and transport boundary instead of thrown-error control flow for
// expected business failures.
package outcome

const fallbackMessage = "operation failed"

// Outcome carries either a payload of type T or a failure message, never both.
type Outcome[T any] struct {
	ok      bool
	value   T
	message string
}

// Success builds a successful outcome wrapping value.
func Success[T any](value T) Outcome[T] {
	return Outcome[T]{ok: true, value: value}
}

// Failure builds a failed outcome carrying a human-readable message.
// An empty message is replaced with a generic one; a failure is never silent.
func Failure[T any](message string) Outcome[T] {
	if message == "" {
		message = fallbackMessage
	}
	return Outcome[T]{message: message}
}

// IsSuccess reports whether the outcome succeeded.
func (o Outcome[T]) IsSuccess() bool {
	return o.ok
}

// Message returns the failure message, empty when successful.
func (o Outcome[T]) Message() string {
	return o.message
}

// Value returns the payload. Callers must branch on IsSuccess first;
// reading the payload of a failed outcome is a programming error and panics.
func (o Outcome[T]) Value() T {
	if !o.ok {
		panic("outcome: Value called on failed outcome: " + o.message)
	}
	return o.value
}

// Unit is the payload of outcomes that carry no data.
type Unit struct{}

// Outcome0 is a result for operations without a payload, such as delete.
type Outcome0 = Outcome[Unit]

// OK builds a successful payload-free outcome.
func OK() Outcome0 {
	return Success(Unit{})
}

// Fail builds a failed payload-free outcome.
func Fail(message string) Outcome0 {
	return Failure[Unit](message)
}
