package ckaerr

import (
	"fmt"

	"github.com/cottand/wcka/term"
)

type NewStarOverParallel struct {
	// Star is the offending iteration as written by the caller.
	Star term.Term
	// Body is its closed body, itself a parallel composition.
	Body  term.Term
	stack []byte
}

func (e NewStarOverParallel) Error() string {
	return fmt.Sprintf("iteration over a parallel composition is outside the input algebra: '%s' iterates over '%s'", e.Star, e.Body)
}
func (e NewStarOverParallel) Code() ErrCode    { return StarOverParallel }
func (e NewStarOverParallel) getStack() []byte { return e.stack }
func (e NewStarOverParallel) withStack(stack []byte) CKAError {
	e.stack = stack
	return e
}

type NewInternalInvariant struct {
	// Context is the residual context whose inequality is malformed.
	Context term.Term
	Detail  string
	stack   []byte
}

func (e NewInternalInvariant) Error() string {
	return fmt.Sprintf("linear system invariant violated for context '%s': %s (this is a bug in the system builder)", e.Context, e.Detail)
}
func (e NewInternalInvariant) Code() ErrCode    { return InternalInvariant }
func (e NewInternalInvariant) getStack() []byte { return e.stack }
func (e NewInternalInvariant) withStack(stack []byte) CKAError {
	e.stack = stack
	return e
}

type NewParse struct {
	Message string
	// Offset is the column the error was detected at.
	Offset int
	stack  []byte
}

func (e NewParse) Error() string {
	return fmt.Sprintf("%s (at column %d)", e.Message, e.Offset)
}
func (e NewParse) Code() ErrCode    { return Parse }
func (e NewParse) getStack() []byte { return e.stack }
func (e NewParse) withStack(stack []byte) CKAError {
	e.stack = stack
	return e
}
