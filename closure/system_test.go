package closure

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/cottand/wcka/term"
)

var termCmp = cmp.Comparer(func(x, y term.Term) bool { return term.Compare(x, y) == 0 })

func renderSystem(system []Inequality) []string {
	out := make([]string, len(system))
	for i, iq := range system {
		out[i] = iq.String()
	}
	return out
}

func contexts(system []Inequality) []term.Term {
	out := make([]term.Term, len(system))
	for i, iq := range system {
		out[i] = iq.Variable.Context
	}
	return out
}

func TestSystemSingleIteratingOperand(t *testing.T) {
	system, err := System(term.NewParallel(a, term.NewStar(b)))
	assert.NoError(t, err)

	// the root context can wind down with a alone (zero iterations of
	// b), take either action on its own, or take both at once
	assert.Equal(t, []string{
		"a + a X[1] + b X[0] + (a ‖ b) X[1] ≤ X[0]",
		"1 + b X[1] ≤ X[1]",
	}, renderSystem(system))

	want := []term.Term{
		term.NewParallel(a, term.NewStar(b)),
		term.NewStar(b),
	}
	if diff := cmp.Diff(want, contexts(system), termCmp); diff != "" {
		t.Fatalf("unexpected contexts (-want +got):\n%s", diff)
	}
}

func TestSystemRootTransitionOnConsumedOperand(t *testing.T) {
	system, err := System(term.NewParallel(a, term.NewStar(b)))
	assert.NoError(t, err)

	root := system[0]
	assert.Equal(t, 0, root.Variable.Index)
	assert.Equal(t, term.Term(a), root.Constant)

	var aSteps []*Variable
	for _, tr := range root.Transitions {
		if term.Compare(tr.Action, a) == 0 {
			aSteps = append(aSteps, tr.Successor)
		}
	}
	assert.Len(t, aSteps, 1)
	// after a fires, only b's iteration remains
	assert.Zero(t, term.Compare(aSteps[0].Context, term.NewStar(b)))
}

func TestSystemContextCountIsBounded(t *testing.T) {
	// both operands are always at the start of an iteration, so a
	// single context covers the whole run
	system, err := System(term.NewParallel(term.NewStar(a), term.NewStar(b)))
	assert.NoError(t, err)
	assert.Len(t, system, 1)

	// (a b)* has two positions within one unrolling, c* has one
	system, err = System(term.NewParallel(term.NewStar(term.NewSeq(a, b)), term.NewStar(c)))
	assert.NoError(t, err)
	assert.Len(t, system, 2)
}

func TestSystemTransitionsAreDeduplicated(t *testing.T) {
	system, err := System(term.NewParallel(term.NewStar(a), term.NewStar(b)))
	assert.NoError(t, err)

	root := system[0]
	seen := map[string]bool{}
	for _, tr := range root.Transitions {
		key := tr.Action.String()
		assert.False(t, seen[key], "duplicate transition on %s", tr.Action)
		seen[key] = true
	}
	assert.Equal(t, map[string]bool{"a": true, "b": true, "a ‖ b": true}, seen)
}

func TestTransitionDedupComparesActionsStructurally(t *testing.T) {
	x0 := &Variable{Index: 0, Context: term.NewStar(a)}
	x1 := &Variable{Index: 1, Context: term.NewStar(b)}
	transitions := []Transition{{Action: a, Successor: x0}}

	// a distinct action to the same successor is a new transition, a
	// structurally equal one (even a separately built value) is not
	assert.False(t, containsTransition(transitions, term.NewParallel(a, b), x0))
	assert.False(t, containsTransition(transitions, a, x1))
	assert.True(t, containsTransition(transitions, term.Prim("a"), x0))

	merged := []Transition{{Action: term.NewParallel(a, b), Successor: x0}}
	assert.True(t, containsTransition(merged, term.NewParallel(b, a), x0))
	assert.False(t, containsTransition(merged, term.NewParallel(a, c), x0))
}

func TestSystemThreeWayMergeUnderMultiPolicy(t *testing.T) {
	threeStars := term.NewParallel(term.NewStar(a), term.NewStar(b), term.NewStar(c))

	system, err := NewCloser(StepMultiPrimitive).System(threeStars)
	assert.NoError(t, err)
	assert.Len(t, system, 1)

	actions := map[string]bool{}
	for _, tr := range system[0].Transitions {
		actions[tr.Action.String()] = true
	}
	assert.Equal(t, map[string]bool{
		"a": true, "b": true, "c": true,
		"a ‖ b": true, "a ‖ c": true, "b ‖ c": true,
		"a ‖ b ‖ c": true,
	}, actions)

	// the default policy admits pairs only, so the width-3 merge is
	// not a step there
	system, err = System(threeStars)
	assert.NoError(t, err)
	for _, tr := range system[0].Transitions {
		assert.NotEqual(t, "a ‖ b ‖ c", tr.Action.String())
	}
}

func TestSystemRejectsNonIteratingInput(t *testing.T) {
	_, err := System(a)
	assert.Error(t, err)

	_, err = System(term.NewParallel(a, b))
	assert.Error(t, err)
}
