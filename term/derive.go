package term

import (
	"github.com/hashicorp/go-set/v3"

	"github.com/cottand/wcka/util"
)

// Head is a one-action decomposition of a term: Fst is the action (a
// primitive or an atomic step) and Snd is the remainder that follows it.
type Head = util.Pair[Term, Term]

// Nullable reports whether t can terminate without performing any action.
func Nullable(t Term) bool {
	switch t := t.(type) {
	case skipTerm, Star:
		return true
	case Choice:
		for _, op := range t.ops {
			if Nullable(op) {
				return true
			}
		}
		return false
	case Seq:
		return allNullable(t.ops)
	case Parallel:
		return allNullable(t.ops)
	default:
		// zero, primitives and variables all demand something.
		return false
	}
}

func allNullable(ops []Term) bool {
	for _, op := range ops {
		if !Nullable(op) {
			return false
		}
	}
	return true
}

// HasStar reports whether iteration occurs anywhere in t.
func HasStar(t Term) bool {
	switch t := t.(type) {
	case Star:
		return true
	case Choice:
		return anyHasStar(t.ops)
	case Seq:
		return anyHasStar(t.ops)
	case Parallel:
		return anyHasStar(t.ops)
	default:
		return false
	}
}

func anyHasStar(ops []Term) bool {
	for _, op := range ops {
		if HasStar(op) {
			return true
		}
	}
	return false
}

// IsStep reports whether t is an atomic simultaneous step: a parallel
// composition whose operands are all primitives. Which steps may survive
// in closed output is a policy of the closure computation, not of this
// predicate.
func IsStep(t Term) bool {
	p, ok := t.(Parallel)
	if !ok {
		return false
	}
	for _, op := range p.ops {
		if _, ok := op.(Primitive); !ok {
			return false
		}
	}
	return true
}

// Heads returns the one-action decompositions of t: every way t can begin
// with a single primitive or atomic step, paired with the remainder that
// follows. A step embedded in a sequence is peeled as one indivisible
// action, never split. The decomposition is meaningful for closed terms
// (whose only parallel nodes are steps); a compound parallel operand has
// no decomposition here, since the closure computation resolves it before
// Heads ever sees it.
//
// Iterating Heads from a closed term reaches only finitely many distinct
// remainders: each corresponds to a position within one unrolling of the
// term, which is what bounds the context space of the linear system.
func Heads(t Term) []Head {
	switch t := t.(type) {
	case Primitive:
		return []Head{util.NewPair[Term, Term](t, Skip)}
	case Parallel:
		if IsStep(t) {
			return []Head{util.NewPair[Term, Term](t, Skip)}
		}
		return nil
	case Star:
		var heads []Head
		for _, h := range Heads(t.body) {
			heads = append(heads, util.NewPair(h.Fst, NewSeq(h.Snd, t)))
		}
		return heads
	case Choice:
		var heads []Head
		for _, op := range t.ops {
			heads = append(heads, Heads(op)...)
		}
		return heads
	case Seq:
		first, rest := t.ops[0], NewSeq(t.ops[1:]...)
		var heads []Head
		for _, h := range Heads(first) {
			heads = append(heads, util.NewPair(h.Fst, NewSeq(h.Snd, rest)))
		}
		if Nullable(first) {
			heads = append(heads, Heads(rest)...)
		}
		return heads
	default:
		// zero, skip and variables offer no first action.
		return nil
	}
}

// Exits returns the iteration-free terms reachable from t by committing
// every iteration in t to zero further unrollings. They are the ways t
// can wind down without entering another loop body; behaviours that take
// more iterations first are reached through Heads instead. The result is
// deduplicated and canonically ordered.
func Exits(t Term) []Term {
	out := set.NewTreeSet[Term](Compare)
	collectExits(t, out)
	return out.Slice()
}

func collectExits(t Term, into *set.TreeSet[Term]) {
	switch t := t.(type) {
	case zeroTerm:
	case Star:
		into.Insert(Skip)
	case Choice:
		for _, op := range t.ops {
			collectExits(op, into)
		}
	case Seq:
		for _, combo := range exitCombos(t.ops) {
			into.Insert(NewSeq(combo...))
		}
	case Parallel:
		if IsStep(t) {
			into.Insert(t)
			return
		}
		for _, combo := range exitCombos(t.ops) {
			into.Insert(NewParallel(combo...))
		}
	default:
		into.Insert(t)
	}
}

// exitCombos is the cross product of the operands' exits.
func exitCombos(ops []Term) [][]Term {
	combos := [][]Term{nil}
	for _, op := range ops {
		exits := Exits(op)
		if len(exits) == 0 {
			return nil
		}
		next := make([][]Term, 0, len(combos)*len(exits))
		for _, combo := range combos {
			for _, e := range exits {
				branch := make([]Term, len(combo), len(combo)+1)
				copy(branch, combo)
				next = append(next, append(branch, e))
			}
		}
		combos = next
	}
	return combos
}

// Substitute replaces every Variable in t for which f returns a
// replacement. Composite terms are rebuilt through the constructors, so
// the result is normalised.
func Substitute(t Term, f func(Variable) (Term, bool)) Term {
	switch t := t.(type) {
	case Variable:
		if replacement, ok := f(t); ok {
			return replacement
		}
		return t
	case Star:
		return NewStar(Substitute(t.body, f))
	case Seq:
		return NewSeq(substituteAll(t.ops, f)...)
	case Parallel:
		return NewParallel(substituteAll(t.ops, f)...)
	case Choice:
		return NewChoice(substituteAll(t.ops, f)...)
	default:
		return t
	}
}

func substituteAll(ops []Term, f func(Variable) (Term, bool)) []Term {
	out := make([]Term, len(ops))
	for i, op := range ops {
		out[i] = Substitute(op, f)
	}
	return out
}
