package term

import (
	"cmp"
	"slices"
	"strings"

	"github.com/benbjohnson/immutable"
)

// Compare is the canonical total order over terms: variant rank first,
// then structure. Choice and Parallel store their operands sorted by this
// order, which is what makes construction, rendering and iteration
// deterministic regardless of the order operands were supplied in.
func Compare(a, b Term) int {
	if c := cmp.Compare(a.rank(), b.rank()); c != 0 {
		return c
	}
	switch a := a.(type) {
	case zeroTerm, skipTerm:
		return 0
	case Primitive:
		return strings.Compare(a.sym, b.(Primitive).sym)
	case Variable:
		return cmp.Compare(a.Index, b.(Variable).Index)
	case Star:
		return Compare(a.body, b.(Star).body)
	case Seq:
		return compareOps(a.ops, b.(Seq).ops)
	case Parallel:
		return compareOps(a.ops, b.(Parallel).ops)
	case Choice:
		return compareOps(a.ops, b.(Choice).ops)
	default:
		panic("term: unknown variant in Compare")
	}
}

func compareOps(a, b []Term) int {
	return slices.CompareFunc(a, b, Compare)
}

// Hasher adapts terms for use as keys of hash-addressed collections such
// as immutable.Map. Equality goes through Compare, so hash collisions
// never conflate distinct terms.
type Hasher struct{}

var _ immutable.Hasher[Term] = Hasher{}

func (Hasher) Hash(t Term) uint32 {
	h := t.Hash()
	return uint32(h ^ (h >> 32))
}

func (Hasher) Equal(a, b Term) bool { return Compare(a, b) == 0 }
