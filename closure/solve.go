package closure

import (
	"github.com/cottand/wcka/ckaerr"
	"github.com/cottand/wcka/internal/log"
	"github.com/cottand/wcka/term"
)

var solveLogger = log.DefaultLogger.With("section", "solve")

// solve computes the least solution of a linear system by Gaussian
// elimination: a self-loop on X[k] folds into a leading star, then X[k]
// substitutes into every earlier row. Solutions come back indexed by
// variable, matching the system's discovery order.
func solve(system []Inequality) ([]term.Term, error) {
	n := len(system)
	constants := make([]term.Term, n)
	coeffs := make([][]term.Term, n)
	for i, iq := range system {
		if iq.Constant == term.Zero && len(iq.Transitions) == 0 {
			return nil, ckaerr.New(ckaerr.NewInternalInvariant{
				Context: iq.Variable.Context,
				Detail:  "context has no terminating branch and no transitions",
			})
		}
		constants[i] = iq.Constant
		coeffs[i] = make([]term.Term, n)
		for j := range coeffs[i] {
			coeffs[i][j] = term.Zero
		}
		for _, tr := range iq.Transitions {
			j := tr.Successor.Index
			coeffs[i][j] = term.NewChoice(coeffs[i][j], tr.Action)
		}
	}

	for k := n - 1; k >= 0; k-- {
		if coeffs[k][k] != term.Zero {
			loop := term.NewStar(coeffs[k][k])
			constants[k] = term.NewSeq(loop, constants[k])
			for j := 0; j < k; j++ {
				coeffs[k][j] = term.NewSeq(loop, coeffs[k][j])
			}
			coeffs[k][k] = term.Zero
		}
		for i := 0; i < k; i++ {
			if coeffs[i][k] == term.Zero {
				continue
			}
			constants[i] = term.NewChoice(constants[i], term.NewSeq(coeffs[i][k], constants[k]))
			for j := 0; j < k; j++ {
				coeffs[i][j] = term.NewChoice(coeffs[i][j], term.NewSeq(coeffs[i][k], coeffs[k][j]))
			}
			coeffs[i][k] = term.Zero
		}
	}

	sols := make([]term.Term, n)
	for k := 0; k < n; k++ {
		sol := constants[k]
		for j := 0; j < k; j++ {
			sol = term.NewChoice(sol, term.NewSeq(coeffs[k][j], sols[j]))
		}
		sols[k] = sol
	}
	solveLogger.Debug("system solved", "variables", n)
	return sols, nil
}
