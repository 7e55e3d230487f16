// Package closure reduces weak concurrent Kleene algebra terms to weak
// bi-Kleene algebra form: parallel composition over compound or iterating
// operands is eliminated, leaving sums of sequences of primitive actions
// and atomic simultaneous steps.
//
// The computation splits into the preclosure expansion (interleaving of
// iteration-free operands), a linear system of inequalities over residual
// contexts (for iterating operands), and its least-fixpoint solution by
// variable elimination; Closure orchestrates the three and substitutes
// solved variables back into the expansion.
package closure

import (
	"github.com/benbjohnson/immutable"

	"github.com/cottand/wcka/ckaerr"
	"github.com/cottand/wcka/internal/log"
	"github.com/cottand/wcka/term"
)

var logger = log.DefaultLogger.With("section", "closure")

// StepPolicy decides which parallel compositions may remain in closed
// output as atomic simultaneous steps rather than being expanded.
type StepPolicy uint8

const (
	// StepPrimitivePairs retains exactly the parallel pairs of
	// primitives as atomic steps. This is the default.
	StepPrimitivePairs StepPolicy = iota
	// StepMultiPrimitive retains any parallel composition of primitives,
	// regardless of arity.
	StepMultiPrimitive
)

// atomic reports whether t is a step this policy keeps unexpanded.
func (p StepPolicy) atomic(t term.Term) bool {
	par, ok := t.(term.Parallel)
	if !ok || !term.IsStep(par) {
		return false
	}
	if p == StepPrimitivePairs {
		return len(par.Operands()) == 2
	}
	return true
}

// Closer computes closures under one step policy. Closers are stateless
// and may be shared; all per-call state lives in the call itself.
type Closer struct {
	policy StepPolicy
}

func NewCloser(policy StepPolicy) *Closer {
	return &Closer{policy: policy}
}

// Closure computes the closure of t under the default step policy.
func Closure(t term.Term) (term.Term, error) {
	return NewCloser(StepPrimitivePairs).Closure(t)
}

// Closure returns the weak bi-Kleene algebra equivalent of t. It fails,
// without a partial result, when t iterates directly over a parallel
// composition or when an internal invariant of the linear system breaks.
func (c *Closer) Closure(t term.Term) (term.Term, error) {
	return newRun(c.policy).close(t)
}

// run carries the state scoped to one top-level closure call: the memo
// table for subterms reachable through several paths. Each parallel
// composition additionally gets its own context registry, scoped to its
// linear system only.
type run struct {
	policy StepPolicy
	memo   *immutable.Map[term.Term, term.Term]
}

func newRun(policy StepPolicy) *run {
	return &run{
		policy: policy,
		memo:   immutable.NewMap[term.Term, term.Term](term.Hasher{}),
	}
}

func (r *run) close(t term.Term) (term.Term, error) {
	if got, ok := r.memo.Get(t); ok {
		return got, nil
	}
	out, err := r.closeNew(t)
	if err != nil {
		return nil, err
	}
	r.memo = r.memo.Set(t, out)
	return out, nil
}

func (r *run) closeNew(t term.Term) (term.Term, error) {
	switch t := t.(type) {
	case term.Choice:
		closed, err := r.closeAll(t.Operands())
		if err != nil {
			return nil, err
		}
		return term.NewChoice(closed...), nil
	case term.Seq:
		closed, err := r.closeAll(t.Operands())
		if err != nil {
			return nil, err
		}
		return term.NewSeq(closed...), nil
	case term.Star:
		body, err := r.close(t.Body())
		if err != nil {
			return nil, err
		}
		// iteration directly over a parallel composition is outside the
		// input algebra. A closed body is parallel-free except for atomic
		// steps, so it only remains a Parallel when the iteration wraps
		// one directly.
		if _, ok := body.(term.Parallel); ok {
			return nil, ckaerr.New(ckaerr.NewStarOverParallel{Star: t, Body: body})
		}
		return term.NewStar(body), nil
	case term.Parallel:
		return r.closeParallel(t)
	default:
		// primitives, identities and variables are already closed
		return t, nil
	}
}

func (r *run) closeAll(ops []term.Term) ([]term.Term, error) {
	out := make([]term.Term, len(ops))
	for i, op := range ops {
		closed, err := r.close(op)
		if err != nil {
			return nil, err
		}
		out[i] = closed
	}
	return out, nil
}

func (r *run) closeParallel(t term.Parallel) (term.Term, error) {
	closed, err := r.closeAll(t.Operands())
	if err != nil {
		return nil, err
	}
	renormed := term.NewParallel(closed...)
	par, ok := renormed.(term.Parallel)
	if !ok {
		// closing the operands collapsed the composition
		return r.close(renormed)
	}
	if r.policy.atomic(par) {
		return par, nil
	}
	reg := newRegistry()
	summands, err := r.interleave(par.Operands(), reg)
	if err != nil {
		return nil, err
	}
	if len(reg.vars) == 0 {
		return term.NewChoice(summands...), nil
	}
	system, err := r.buildSystem(reg)
	if err != nil {
		return nil, err
	}
	solutions, err := solve(system)
	if err != nil {
		return nil, err
	}
	out := make([]term.Term, len(summands))
	for i, summand := range summands {
		out[i] = term.Substitute(summand, func(v term.Variable) (term.Term, bool) {
			if v.Index >= 0 && v.Index < len(solutions) {
				return solutions[v.Index], true
			}
			return nil, false
		})
	}
	logger.Debug("closed parallel composition through linear system",
		"term", t.String(), "contexts", len(reg.vars))
	return term.NewChoice(out...), nil
}
