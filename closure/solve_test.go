package closure

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cottand/wcka/ckaerr"
	"github.com/cottand/wcka/term"
)

func TestSolveSelfLoop(t *testing.T) {
	// 1 + a X[0] ≤ X[0] has least solution a*
	x0 := &Variable{Index: 0, Context: term.NewStar(a)}
	sols, err := solve([]Inequality{{
		Variable:    x0,
		Constant:    term.Skip,
		Transitions: []Transition{{Action: a, Successor: x0}},
	}})
	assert.NoError(t, err)
	assert.Equal(t, []term.Term{term.NewStar(a)}, sols)
}

func TestSolveMutualRecursion(t *testing.T) {
	// a X[1] ≤ X[0] and 1 + b X[0] ≤ X[1]: going through X[0] costs an
	// a, coming back costs a b, so X[0] = (a b)* a
	x0 := &Variable{Index: 0, Context: a}
	x1 := &Variable{Index: 1, Context: b}
	sols, err := solve([]Inequality{
		{
			Variable:    x0,
			Constant:    term.Zero,
			Transitions: []Transition{{Action: a, Successor: x1}},
		},
		{
			Variable:    x1,
			Constant:    term.Skip,
			Transitions: []Transition{{Action: b, Successor: x0}},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, "(a b)* a", sols[0].String())
	assert.Equal(t, "1 + b (a b)* a", sols[1].String())
}

func TestSolveConstantOnly(t *testing.T) {
	x0 := &Variable{Index: 0, Context: term.NewSeq(a, b)}
	sols, err := solve([]Inequality{{Variable: x0, Constant: term.NewSeq(a, b)}})
	assert.NoError(t, err)
	assert.Equal(t, []term.Term{term.NewSeq(a, b)}, sols)
}

func TestSolveRejectsEmptyRow(t *testing.T) {
	x0 := &Variable{Index: 0, Context: a}
	_, err := solve([]Inequality{{Variable: x0, Constant: term.Zero}})
	assert.Equal(t, ckaerr.InternalInvariant, ckaerr.CodeOf(err))
}
