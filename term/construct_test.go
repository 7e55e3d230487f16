package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	a = Prim("a")
	b = Prim("b")
	c = Prim("c")
)

func TestChoiceNormalisation(t *testing.T) {
	for _, tt := range []struct {
		name string
		got  Term
		want Term
	}{
		{"empty is zero", NewChoice(), Zero},
		{"single operand unwraps", NewChoice(a), a},
		{"zero is elided", NewChoice(a, Zero, b), NewChoice(a, b)},
		{"all zero collapses", NewChoice(Zero, Zero), Zero},
		{"nested choices flatten", NewChoice(a, NewChoice(b, c)), NewChoice(a, b, c)},
		{"duplicates collapse", NewChoice(a, b, a), NewChoice(a, b)},
		{"order is canonical", NewChoice(c, a, b), NewChoice(a, b, c)},
		{"duplicate compounds collapse", NewChoice(NewSeq(a, b), NewSeq(a, b)), NewSeq(a, b)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestSeqNormalisation(t *testing.T) {
	for _, tt := range []struct {
		name string
		got  Term
		want Term
	}{
		{"empty is skip", NewSeq(), Skip},
		{"single operand unwraps", NewSeq(a), a},
		{"skip is elided", NewSeq(a, Skip, b), NewSeq(a, b)},
		{"zero annihilates", NewSeq(a, Zero, b), Zero},
		{"nested sequences flatten", NewSeq(a, NewSeq(b, c)), NewSeq(a, b, c)},
		{"order is preserved", NewSeq(b, a), NewSeq(b, a)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestSeqKeepsDuplicates(t *testing.T) {
	got, ok := NewSeq(a, a).(Seq)
	assert.True(t, ok)
	assert.Len(t, got.Operands(), 2)
}

func TestParallelNormalisation(t *testing.T) {
	for _, tt := range []struct {
		name string
		got  Term
		want Term
	}{
		{"empty is skip", NewParallel(), Skip},
		{"single operand unwraps", NewParallel(a), a},
		{"skip is elided", NewParallel(a, Skip), a},
		{"zero annihilates", NewParallel(a, Zero), Zero},
		{"nested parallels flatten", NewParallel(a, NewParallel(b, c)), NewParallel(a, b, c)},
		{"duplicates collapse", NewParallel(a, a), a},
		{"order is canonical", NewParallel(b, a), NewParallel(a, b)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestStarNormalisation(t *testing.T) {
	assert.Equal(t, Skip, NewStar(Zero))
	assert.Equal(t, Skip, NewStar(Skip))
	assert.Equal(t, NewStar(a), NewStar(NewStar(a)))
}

// operand order never depends on the order the caller happened to build
// the term in, so structurally equal terms are also Go-equal
func TestConstructionIsPermutationDeterministic(t *testing.T) {
	left := NewChoice(NewParallel(c, a), b, NewSeq(a, b))
	right := NewChoice(b, NewSeq(a, b), NewParallel(a, c))
	assert.Equal(t, left, right)
	assert.Zero(t, Compare(left, right))
	assert.Equal(t, left.Hash(), right.Hash())
}

func TestRendering(t *testing.T) {
	for _, tt := range []struct {
		term Term
		want string
	}{
		{Zero, "0"},
		{Skip, "1"},
		{a, "a"},
		{Variable{Index: 3}, "X[3]"},
		{NewStar(a), "a*"},
		{NewSeq(a, b, c), "a b c"},
		{NewParallel(a, b), "a ‖ b"},
		{NewChoice(a, b), "a + b"},
		{NewSeq(NewChoice(a, b), c), "(a + b) c"},
		{NewSeq(NewStar(a), b), "a* b"},
		{NewStar(NewChoice(a, b)), "(a + b)*"},
		{NewStar(NewSeq(a, b)), "(a b)*"},
		{NewChoice(NewSeq(a, b), NewParallel(a, c)), "a b + a ‖ c"},
		{NewParallel(NewSeq(a, b), c), "c ‖ a b"},
		{NewSeq(a, NewParallel(b, c)), "a (b ‖ c)"},
	} {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.term.String())
		})
	}
}

func TestCompareOrdersByRankThenStructure(t *testing.T) {
	ordered := []Term{Zero, Skip, a, b, Variable{Index: 0}, NewStar(a), NewSeq(a, b), NewParallel(a, b), NewChoice(a, b)}
	for i := range ordered {
		for j := range ordered {
			switch {
			case i < j:
				assert.Negative(t, Compare(ordered[i], ordered[j]), "%s < %s", ordered[i], ordered[j])
			case i > j:
				assert.Positive(t, Compare(ordered[i], ordered[j]), "%s > %s", ordered[i], ordered[j])
			default:
				assert.Zero(t, Compare(ordered[i], ordered[j]))
			}
		}
	}
}

func TestHashDistinguishesVariants(t *testing.T) {
	terms := []Term{Zero, Skip, a, NewStar(a), NewSeq(a, b), NewSeq(b, a), NewParallel(a, b), NewChoice(a, b)}
	seen := map[uint64]Term{}
	for _, tm := range terms {
		if prev, ok := seen[tm.Hash()]; ok {
			t.Fatalf("hash collision between %s and %s", prev, tm)
		}
		seen[tm.Hash()] = tm
	}
}
