package internal

import (
	"errors"
	"fmt"
)

// Runtime errors
var ErrUnboundVariable = errors.New("Unbound variable")
var ErrTypeMismatch = errors.New("Type mismatch")
var ErrUnhandledTerm = errors.New("Unhandled term")

// Decoding errors
var ErrUnknownTerm = errors.New("Unknown term")
var ErrMalformedTerm = errors.New("Malformed term")

// RuntimeError describes why an evaluation was aborted. Err is one of the
// runtime sentinels above.
type RuntimeError struct {
	Err      error
	Name     string
	Expected string
	Term     Node
}

func (e *RuntimeError) Error() string {
	switch {
	case e.Name != "":
		return fmt.Sprintf("%s: %s", e.Err, e.Name)
	case e.Expected != "":
		return fmt.Sprintf("%s: expected %s, found %s", e.Err, e.Expected, e.Term)
	case e.Term != nil:
		return fmt.Sprintf("%s: %s", e.Err, e.Term)
	}
	return e.Err.Error()
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// runtimeErr aborts the current evaluation. It is recovered by catch.
func runtimeErr(err error, term Node) {
	panic(&RuntimeError{Err: err, Term: term})
}

func typeErr(expected string, term Node) {
	panic(&RuntimeError{Err: ErrTypeMismatch, Expected: expected, Term: term})
}

// must re-raises an error returned by a helper as a runtime error.
func must(err error) {
	if err == nil {
		return
	}
	var runErr *RuntimeError
	if errors.As(err, &runErr) {
		panic(runErr)
	}
	panic(&RuntimeError{Err: err})
}

// catch turns a runtime error panic into an error return. Anything else
// keeps unwinding.
func catch(err *error) {
	if r := recover(); r != nil {
		runErr, ok := r.(*RuntimeError)
		if !ok {
			panic(r)
		}
		*err = runErr
	}
}
