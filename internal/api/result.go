package api

import "errors"

// None is the payload of operations whose success carries no data.
type None struct{}

// Result is the uniform outcome of every client operation.
type Result[T any] struct {
	Success bool
	Data    T
	Error   string
}

func ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// fail builds the error branch. When the server supplied a message it wins;
// anything else (network failure, malformed body) gets the per-operation
// fallback text.
func fail[T any](err error, fallback string) Result[T] {
	var se *statusError
	if errors.As(err, &se) && se.message != "" {
		return Result[T]{Error: se.message}
	}
	return Result[T]{Error: fallback}
}

// failMsg builds the error branch with an explicit message, used for
// client-side validation failures that never reach the network.
func failMsg[T any](msg string) Result[T] {
	return Result[T]{Error: msg}
}
