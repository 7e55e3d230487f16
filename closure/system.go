package closure

import (
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/pkg/errors"

	"github.com/cottand/wcka/internal/log"
	"github.com/cottand/wcka/term"
)

var systemLogger = log.DefaultLogger.With("section", "system")

// Variable identifies a residual context: how far each operand of a
// parallel composition has progressed through its iterations. Index is
// breadth-first discovery order; the root context has index 0.
type Variable struct {
	Index   int
	Context term.Term
}

// Transition is one step a context can take: Action is a primitive or an
// atomic step, and Successor the context left behind once it happened.
type Transition struct {
	Action    term.Term
	Successor *Variable
}

// Inequality states that constant + Σ action·successor is refined by the
// variable: one such record exists per reachable context.
type Inequality struct {
	Variable    *Variable
	Constant    term.Term
	Transitions []Transition
}

func (iq Inequality) String() string {
	parts := []string{iq.Constant.String()}
	for _, tr := range iq.Transitions {
		parts = append(parts, term.NewSeq(tr.Action, term.Variable{Index: tr.Successor.Index}).String())
	}
	return strings.Join(parts, " + ") + " ≤ " + term.Variable{Index: iq.Variable.Index}.String()
}

// System builds the linear system Closure would solve for t, one
// inequality per reachable context in discovery order, under the default
// step policy.
func System(t term.Term) ([]Inequality, error) {
	return NewCloser(StepPrimitivePairs).System(t)
}

// System exposes the inequality system for diagnostics and tests. It is
// exactly what the solver consumes: t's operands are closed first, and t
// must be a parallel composition that still iterates afterwards.
func (c *Closer) System(t term.Term) ([]Inequality, error) {
	par, ok := t.(term.Parallel)
	if !ok {
		return nil, errors.Errorf("a linear system needs a parallel composition, got '%s'", t)
	}
	r := newRun(c.policy)
	closed, err := r.closeAll(par.Operands())
	if err != nil {
		return nil, err
	}
	renormed := term.NewParallel(closed...)
	par, ok = renormed.(term.Parallel)
	if !ok || !term.HasStar(renormed) {
		return nil, errors.Errorf("'%s' has no iterating operand, its closure needs no linear system", t)
	}
	reg := newRegistry()
	if _, err := r.interleave(par.Operands(), reg); err != nil {
		return nil, err
	}
	return r.buildSystem(reg)
}

// registry memoises residual contexts for one parallel composition. Its
// lifetime is one closure of one composition; independent closures never
// share variables.
type registry struct {
	vars  []*Variable
	index *immutable.Map[term.Term, *Variable]
	queue []*Variable
}

func newRegistry() *registry {
	return &registry{
		index: immutable.NewMap[term.Term, *Variable](term.Hasher{}),
	}
}

// intern returns the variable standing for context, discovering (and
// queueing) it first if this run has not seen it yet.
func (reg *registry) intern(context term.Term) *Variable {
	if v, ok := reg.index.Get(context); ok {
		return v
	}
	v := &Variable{Index: len(reg.vars), Context: context}
	reg.vars = append(reg.vars, v)
	reg.index = reg.index.Set(context, v)
	reg.queue = append(reg.queue, v)
	return v
}

// buildSystem drains the discovery queue breadth-first, emitting one
// inequality per context. Discovery halts because contexts are drawn from
// the finite product of each operand's positions within one unrolling.
func (r *run) buildSystem(reg *registry) ([]Inequality, error) {
	var out []Inequality
	for len(reg.queue) > 0 {
		v := reg.queue[0]
		reg.queue = reg.queue[1:]
		iq, err := r.inequalityFor(v, reg)
		if err != nil {
			return nil, err
		}
		out = append(out, iq)
	}
	systemLogger.Debug("linear system complete", "contexts", len(out))
	return out, nil
}

func (r *run) inequalityFor(v *Variable, reg *registry) (Inequality, error) {
	if !term.HasStar(v.Context) {
		// a context that no longer iterates closes outright; its whole
		// behaviour is the constant
		closed, err := r.close(v.Context)
		if err != nil {
			return Inequality{}, err
		}
		return Inequality{Variable: v, Constant: closed}, nil
	}
	ops := contextOperands(v.Context)
	constant, err := r.contextConstant(ops)
	if err != nil {
		return Inequality{}, err
	}
	heads := make([][]term.Head, len(ops))
	for i, op := range ops {
		heads[i] = term.Heads(op)
	}

	var transitions []Transition
	add := func(action term.Term, successorCtx term.Term) {
		successor := reg.intern(successorCtx)
		if containsTransition(transitions, action, successor) {
			return
		}
		transitions = append(transitions, Transition{Action: action, Successor: successor})
	}

	for i := range ops {
		for _, h := range heads[i] {
			add(h.Fst, term.NewParallel(replaceOperand(ops, i, h.Snd)...))
		}
	}
	// simultaneous steps: two or more operands acting at once, where the
	// merged action is itself a step the policy admits. Each subset of
	// operands is visited exactly once, picking one head per member.
	var merge func(from int, actions []term.Term, rest []term.Term)
	merge = func(from int, actions []term.Term, rest []term.Term) {
		if len(actions) >= 2 {
			action := term.NewParallel(actions...)
			if r.policy.atomic(action) {
				add(action, term.NewParallel(rest...))
			}
		}
		for i := from; i < len(ops); i++ {
			for _, h := range heads[i] {
				picked := append(actions[:len(actions):len(actions)], h.Fst)
				merge(i+1, picked, replaceOperand(rest, i, h.Snd))
			}
		}
	}
	merge(0, nil, ops)
	return Inequality{Variable: v, Constant: constant, Transitions: transitions}, nil
}

// containsTransition reports whether transitions already holds an entry
// for this action and successor. Actions are compared structurally with
// term.Compare, never by hash alone.
func containsTransition(transitions []Transition, action term.Term, successor *Variable) bool {
	for _, tr := range transitions {
		if tr.Successor.Index == successor.Index && term.Compare(tr.Action, action) == 0 {
			return true
		}
	}
	return false
}

func contextOperands(t term.Term) []term.Term {
	if par, ok := t.(term.Parallel); ok {
		return par.Operands()
	}
	return []term.Term{t}
}

// contextConstant is the choice of fully terminating branches: every
// iterating operand commits to zero further unrollings and the remaining
// iteration-free residue closes on its own.
func (r *run) contextConstant(ops []term.Term) (term.Term, error) {
	combos := [][]term.Term{nil}
	for _, op := range ops {
		exits := term.Exits(op)
		if len(exits) == 0 {
			return term.Zero, nil
		}
		next := make([][]term.Term, 0, len(combos)*len(exits))
		for _, combo := range combos {
			for _, exit := range exits {
				branch := make([]term.Term, len(combo), len(combo)+1)
				copy(branch, combo)
				next = append(next, append(branch, exit))
			}
		}
		combos = next
	}
	branches := make([]term.Term, 0, len(combos))
	for _, combo := range combos {
		closed, err := r.close(term.NewParallel(combo...))
		if err != nil {
			return nil, err
		}
		branches = append(branches, closed)
	}
	return term.NewChoice(branches...), nil
}
