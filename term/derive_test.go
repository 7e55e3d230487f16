package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNullable(t *testing.T) {
	for _, tt := range []struct {
		term Term
		want bool
	}{
		{Zero, false},
		{Skip, true},
		{a, false},
		{Variable{Index: 0}, false},
		{NewStar(a), true},
		{NewSeq(a, b), false},
		{NewSeq(NewStar(a), NewStar(b)), true},
		{NewChoice(a, Skip), true},
		{NewChoice(a, b), false},
		{NewParallel(NewStar(a), NewStar(b)), true},
		{NewParallel(a, NewStar(b)), false},
	} {
		t.Run(tt.term.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Nullable(tt.term))
		})
	}
}

func TestIsStep(t *testing.T) {
	assert.True(t, IsStep(NewParallel(a, b)))
	assert.True(t, IsStep(NewParallel(a, b, c)))
	assert.False(t, IsStep(a))
	assert.False(t, IsStep(NewParallel(NewSeq(a, b), c)))
	assert.False(t, IsStep(NewParallel(NewStar(a), b)))
}

func heads(t Term) map[string]string {
	out := map[string]string{}
	for _, h := range Heads(t) {
		out[h.Fst.String()] = h.Snd.String()
	}
	return out
}

func TestHeads(t *testing.T) {
	for _, tt := range []struct {
		term Term
		want map[string]string
	}{
		{a, map[string]string{"a": "1"}},
		{Skip, map[string]string{}},
		{Zero, map[string]string{}},
		{NewSeq(a, b), map[string]string{"a": "b"}},
		{NewSeq(a, b, c), map[string]string{"a": "b c"}},
		{NewChoice(a, NewSeq(b, c)), map[string]string{"a": "1", "b": "c"}},
		{NewStar(a), map[string]string{"a": "a*"}},
		{NewStar(NewSeq(a, b)), map[string]string{"a": "b (a b)*"}},
		// a nullable first operand exposes the heads of the rest
		{NewSeq(NewStar(a), b), map[string]string{"a": "a* b", "b": "1"}},
		// an atomic step peels as one action
		{NewSeq(NewParallel(a, b), c), map[string]string{"a ‖ b": "c"}},
		{NewParallel(a, b), map[string]string{"a ‖ b": "1"}},
	} {
		t.Run(tt.term.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, heads(tt.term))
		})
	}
}

func rendered(ts []Term) []string {
	out := make([]string, len(ts))
	for i, tm := range ts {
		out[i] = tm.String()
	}
	return out
}

func TestExits(t *testing.T) {
	for _, tt := range []struct {
		term Term
		want []string
	}{
		{a, []string{"a"}},
		{Skip, []string{"1"}},
		{Zero, []string{}},
		{NewStar(a), []string{"1"}},
		{NewSeq(a, NewStar(b)), []string{"a"}},
		{NewSeq(NewStar(a), b, NewStar(c)), []string{"b"}},
		{NewChoice(NewStar(a), NewSeq(b, c)), []string{"1", "b c"}},
		// choice under a sequence yields one exit per branch
		{NewSeq(NewChoice(a, NewStar(b)), c), []string{"c", "a c"}},
		{NewSeq(a, Zero), []string{}},
	} {
		t.Run(tt.term.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, rendered(Exits(tt.term)))
		})
	}
}

func TestHasStar(t *testing.T) {
	assert.False(t, HasStar(NewSeq(a, b)))
	assert.True(t, HasStar(NewSeq(a, NewStar(b))))
	assert.True(t, HasStar(NewParallel(a, NewChoice(b, NewStar(c)))))
}

func TestSubstitute(t *testing.T) {
	x0, x1 := Variable{Index: 0}, Variable{Index: 1}
	sub := func(v Variable) (Term, bool) {
		if v.Index == 0 {
			return NewSeq(a, b), true
		}
		return nil, false
	}

	got := Substitute(NewChoice(NewSeq(a, x0), x1), sub)
	assert.Equal(t, NewChoice(NewSeq(a, a, b), x1), got)

	// substitution renormalises: the replaced variable may collapse
	// its surroundings
	gotZero := Substitute(NewSeq(a, x0), func(Variable) (Term, bool) { return Zero, true })
	assert.Equal(t, Zero, gotZero)
}
