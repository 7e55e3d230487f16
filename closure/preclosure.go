package closure

import (
	"github.com/pkg/errors"

	"github.com/cottand/wcka/term"
)

// Preclosure expands a parallel composition of iteration-free operands
// into the choice of their single-action interleavings, under the default
// step policy. Unlike Closure it always expands, even when the input is
// itself an atomic step.
func Preclosure(t term.Term) (term.Term, error) {
	return NewCloser(StepPrimitivePairs).Preclosure(t)
}

// Preclosure is the interleaving expansion on its own: it refuses terms
// whose operands still iterate after closing, since those need the linear
// system that only Closure runs.
func (c *Closer) Preclosure(t term.Term) (term.Term, error) {
	par, ok := t.(term.Parallel)
	if !ok {
		return nil, errors.Errorf("preclosure needs a parallel composition, got '%s'", t)
	}
	r := newRun(c.policy)
	closed, err := r.closeAll(par.Operands())
	if err != nil {
		return nil, err
	}
	for _, op := range closed {
		if term.HasStar(op) {
			return nil, errors.Errorf("preclosure cannot expand iterating operand '%s'; use Closure", op)
		}
	}
	summands, err := r.interleave(closed, nil)
	if err != nil {
		return nil, err
	}
	return term.NewChoice(summands...), nil
}

// interleave computes the shuffle expansion of the parallel composition
// of ops as a flat list of summands. Choice operands distribute before
// anything else. An operand that still iterates cannot be peeled finitely;
// the whole remaining composition is then interned as a linear-system
// context and a placeholder variable is emitted in its place. A nil
// registry means the caller cannot defer, so iterating operands are an
// error there.
func (r *run) interleave(ops []term.Term, reg *registry) ([]term.Term, error) {
	live := make([]term.Term, 0, len(ops))
	for _, op := range ops {
		if op == term.Zero {
			// annihilates the whole composition: no summands
			return nil, nil
		}
		if op == term.Skip {
			continue
		}
		live = append(live, op)
	}
	if len(live) == 0 {
		return []term.Term{term.Skip}, nil
	}
	for i, op := range live {
		choice, ok := op.(term.Choice)
		if !ok {
			continue
		}
		var summands []term.Term
		for _, alt := range choice.Operands() {
			branch := replaceOperand(live, i, alt)
			subs, err := r.interleave(branch, reg)
			if err != nil {
				return nil, err
			}
			summands = append(summands, subs...)
		}
		return summands, nil
	}
	for _, op := range live {
		if term.HasStar(op) {
			if reg == nil {
				return nil, errors.Errorf("cannot interleave iterating operand '%s' without a linear system", op)
			}
			v := reg.intern(term.NewParallel(live...))
			return []term.Term{term.Variable{Index: v.Index}}, nil
		}
	}
	var summands []term.Term
	if allNullable(live) {
		summands = append(summands, term.Skip)
	}
	for i, op := range live {
		for _, head := range term.Heads(op) {
			rest := replaceOperand(live, i, head.Snd)
			subs, err := r.interleave(rest, reg)
			if err != nil {
				return nil, err
			}
			for _, sub := range subs {
				summands = append(summands, term.NewSeq(head.Fst, sub))
			}
		}
	}
	return summands, nil
}

func replaceOperand(ops []term.Term, i int, with term.Term) []term.Term {
	out := make([]term.Term, len(ops))
	copy(out, ops)
	out[i] = with
	return out
}

func allNullable(ops []term.Term) bool {
	for _, op := range ops {
		if !term.Nullable(op) {
			return false
		}
	}
	return true
}
