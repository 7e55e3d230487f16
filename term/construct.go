package term

import (
	"github.com/hashicorp/go-set/v3"
)

// Prim returns the primitive action named symbol.
func Prim(symbol string) Primitive { return Primitive{sym: symbol} }

// NewChoice returns the normalised sum of ops: nested choices flatten,
// Zero is elided, duplicates (under Compare) collapse, and operands are
// kept in canonical order. No operands yield Zero, a single operand is
// returned as-is.
func NewChoice(ops ...Term) Term {
	flat := set.NewTreeSet[Term](Compare)
	for _, op := range ops {
		switch op := op.(type) {
		case zeroTerm:
		case Choice:
			flat.InsertSlice(op.ops)
		default:
			flat.Insert(op)
		}
	}
	switch flat.Size() {
	case 0:
		return Zero
	case 1:
		return flat.Min()
	}
	return Choice{ops: flat.Slice()}
}

// NewSeq returns the normalised sequential composition of ops in order:
// nested sequences flatten, Skip is elided, and any Zero operand
// annihilates the whole composition. No operands yield Skip, a single
// operand is returned as-is.
func NewSeq(ops ...Term) Term {
	var flat []Term
	for _, op := range ops {
		switch op := op.(type) {
		case skipTerm:
		case zeroTerm:
			return Zero
		case Seq:
			flat = append(flat, op.ops...)
		default:
			flat = append(flat, op)
		}
	}
	switch len(flat) {
	case 0:
		return Skip
	case 1:
		return flat[0]
	}
	return Seq{ops: flat}
}

// NewParallel returns the normalised parallel composition of ops: nested
// parallels flatten, Skip is elided, any Zero annihilates, duplicates
// (under Compare) collapse, and operands are kept in canonical order. No
// operands yield Skip, a single operand is returned as-is.
func NewParallel(ops ...Term) Term {
	flat := set.NewTreeSet[Term](Compare)
	for _, op := range ops {
		switch op := op.(type) {
		case skipTerm:
		case zeroTerm:
			return Zero
		case Parallel:
			flat.InsertSlice(op.ops)
		default:
			flat.Insert(op)
		}
	}
	switch flat.Size() {
	case 0:
		return Skip
	case 1:
		return flat.Min()
	}
	return Parallel{ops: flat.Slice()}
}

// NewStar returns the iteration of t. Iterating an identity yields Skip,
// and iterating an iteration collapses.
func NewStar(t Term) Term {
	switch t := t.(type) {
	case zeroTerm, skipTerm:
		return Skip
	case Star:
		return t
	}
	return Star{body: t}
}
