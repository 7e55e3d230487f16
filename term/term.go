// Package term implements the term algebra of weak concurrent Kleene
// algebra: primitive actions composed by non-deterministic choice,
// sequential composition, parallel composition and iteration.
//
// Terms are immutable values and are freely shared. The smart constructors
// (Prim, NewChoice, NewSeq, NewParallel, NewStar) normalise as they build:
// nested Choice/Seq/Parallel operands are flattened, Choice and Parallel
// operands are deduplicated and kept in the canonical order of Compare,
// identity elements are elided, and a Star of a Star collapses. Structural
// equality (Compare == 0) is equality up to exactly these normalisations,
// not up to the full axioms of the algebra: two terms provably equal in the
// algebra can still be distinct values.
package term

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

// Term is a term of the algebra. The variant set is closed: the only
// implementations are the ones in this package.
type Term interface {
	// Hash is a structural fnv64a hash. Equal terms (Compare == 0) hash
	// equal; the converse does not hold, so equality checks must go
	// through Compare rather than comparing hashes alone.
	Hash() uint64
	fmt.Stringer

	// show renders the term given the precedence class of the operator it
	// will be embedded under. It also seals the interface.
	show(outer uint8) string
	rank() uint8
}

var (
	_ Term = zeroTerm{}
	_ Term = skipTerm{}
	_ Term = Primitive{}
	_ Term = Variable{}
	_ Term = Star{}
	_ Term = Seq{}
	_ Term = Parallel{}
	_ Term = Choice{}
)

// ranks double as precedence classes for rendering and as the major key of
// Compare. The order tracks the surface syntax, tightest binding first.
const (
	rankZero uint8 = iota
	rankSkip
	rankPrimitive
	rankVariable
	rankStar
	rankSeq
	rankParallel
	rankChoice
)

type zeroTerm struct{}
type skipTerm struct{}

// Zero is the identity of choice and the annihilator of sequential and
// parallel composition. Normalised terms never contain it as an operand;
// it only surfaces as the empty choice.
var Zero Term = zeroTerm{}

// Skip is the empty sequence, the identity of sequential and parallel
// composition.
var Skip Term = skipTerm{}

// Primitive is an atomic action identified by its symbol.
type Primitive struct {
	sym string
}

// Symbol returns the identifier of the action.
func (p Primitive) Symbol() string { return p.sym }

// Variable is an opaque placeholder for a linear-system variable, emitted
// by the preclosure expansion where an iterating operand defers to the
// linear system. It never survives into a fully closed term.
type Variable struct {
	Index int
}

// Star is the iteration of its body.
type Star struct {
	body Term
}

// Body returns the iterated term.
func (s Star) Body() Term { return s.body }

// Seq is a sequential composition of two or more operands, none of which
// is itself a Seq, Zero or Skip.
type Seq struct {
	ops []Term
}

// Operands returns the operands in order. The slice is shared and must
// not be modified.
func (s Seq) Operands() []Term { return s.ops }

// Parallel is a parallel composition of two or more distinct operands in
// canonical order, none of which is itself a Parallel, Zero or Skip.
type Parallel struct {
	ops []Term
}

// Operands returns the operands in canonical order. The slice is shared
// and must not be modified.
func (p Parallel) Operands() []Term { return p.ops }

// Choice is a non-deterministic sum of two or more distinct operands in
// canonical order, none of which is itself a Choice or Zero.
type Choice struct {
	ops []Term
}

// Operands returns the summands in canonical order. The slice is shared
// and must not be modified.
func (c Choice) Operands() []Term { return c.ops }

func (zeroTerm) rank() uint8  { return rankZero }
func (skipTerm) rank() uint8  { return rankSkip }
func (Primitive) rank() uint8 { return rankPrimitive }
func (Variable) rank() uint8  { return rankVariable }
func (Star) rank() uint8      { return rankStar }
func (Seq) rank() uint8       { return rankSeq }
func (Parallel) rank() uint8  { return rankParallel }
func (Choice) rank() uint8    { return rankChoice }

func (zeroTerm) Hash() uint64 { return tagHash("zero") }
func (skipTerm) Hash() uint64 { return tagHash("skip") }

func (p Primitive) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Primitive"))
	_, _ = h.Write([]byte(p.sym))
	return h.Sum64()
}

func (v Variable) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Variable"))
	var arr [8]byte
	binary.LittleEndian.PutUint64(arr[:], uint64(v.Index))
	_, _ = h.Write(arr[:])
	return h.Sum64()
}

func (s Star) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Star"))
	writeChildHash(h, s.body)
	return h.Sum64()
}

func (s Seq) Hash() uint64      { return opsHash("Seq", s.ops) }
func (p Parallel) Hash() uint64 { return opsHash("Parallel", p.ops) }
func (c Choice) Hash() uint64   { return opsHash("Choice", c.ops) }

type hashWriter interface {
	Write([]byte) (int, error)
	Sum64() uint64
}

func tagHash(tag string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(tag))
	return h.Sum64()
}

func writeChildHash(h hashWriter, child Term) {
	var arr [8]byte
	binary.LittleEndian.PutUint64(arr[:], child.Hash())
	_, _ = h.Write(arr[:])
}

func opsHash(tag string, ops []Term) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(tag))
	for _, op := range ops {
		writeChildHash(h, op)
	}
	return h.Sum64()
}

func (t zeroTerm) String() string  { return t.show(rankChoice) }
func (t skipTerm) String() string  { return t.show(rankChoice) }
func (t Primitive) String() string { return t.show(rankChoice) }
func (t Variable) String() string  { return t.show(rankChoice) }
func (t Star) String() string      { return t.show(rankChoice) }
func (t Seq) String() string       { return t.show(rankChoice) }
func (t Parallel) String() string  { return t.show(rankChoice) }
func (t Choice) String() string    { return t.show(rankChoice) }

func (zeroTerm) show(uint8) string    { return "0" }
func (skipTerm) show(uint8) string    { return "1" }
func (p Primitive) show(uint8) string { return p.sym }

func (v Variable) show(uint8) string { return fmt.Sprintf("X[%d]", v.Index) }

func (s Star) show(outer uint8) string {
	out := s.body.show(rankStar) + "*"
	if rankStar > outer {
		out = "(" + out + ")"
	}
	return out
}

func (s Seq) show(outer uint8) string { return showOps(s.ops, " ", rankSeq, outer) }

func (p Parallel) show(outer uint8) string { return showOps(p.ops, " ‖ ", rankParallel, outer) }

func (c Choice) show(outer uint8) string { return showOps(c.ops, " + ", rankChoice, outer) }

func showOps(ops []Term, sep string, self, outer uint8) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = op.show(self)
	}
	out := strings.Join(parts, sep)
	if self > outer {
		out = "(" + out + ")"
	}
	return out
}
