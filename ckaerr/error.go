// Package ckaerr defines the coded error taxonomy of the closure
// computation. Errors carry the offending subterm so callers can
// diagnose, and capture a stack at construction for debugging.
package ckaerr

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// enableDebugErrorPrinting makes errors include their stacktrace when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	// StarOverParallel rejects input where iteration is applied directly
	// over a parallel composition, which the input algebra does not admit.
	StarOverParallel
	// InternalInvariant flags a malformed linear system reaching the
	// solver. It indicates a bug in the system builder, never bad input.
	InternalInvariant
	// Parse covers malformed textual term syntax.
	Parse
)

type CKAError interface {
	error
	Code() ErrCode

	withStack([]byte) CKAError
	getStack() []byte
}

func FormatWithCode(e CKAError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E CKAError](err E) CKAError {
	return err.withStack(debug.Stack())
}

// CodeOf returns the code of err if it is a CKAError, and None otherwise.
func CodeOf(err error) ErrCode {
	if coded, ok := err.(CKAError); ok {
		return coded.Code()
	}
	return None
}
