package parser

import (
	"github.com/cottand/wcka/term"
	"github.com/cottand/wcka/util"
)

// listener builds terms bottom-up while walking the parse tree: sibling
// operands are pushed in source order, so an exited rule pops one operand
// per child rule and pushes the term it constructs. The grammar puts
// exactly one operand on the stack per child, so Parse never walks a tree
// that underflows it (syntax errors abort before the walk).
type listener struct {
	*BaseWckaListener

	terms util.Stack[term.Term]
}

func (l *listener) popOperands(n int) []term.Term {
	ops := make([]term.Term, n)
	for i := n - 1; i >= 0; i-- {
		ops[i], _ = l.terms.Pop()
	}
	return ops
}

func (l *listener) ExitAtom(ctx *AtomContext) {
	switch {
	case ctx.ZERO() != nil:
		l.terms.Push(term.Zero)
	case ctx.ONE() != nil:
		l.terms.Push(term.Skip)
	case ctx.IDENT() != nil:
		l.terms.Push(term.Prim(ctx.IDENT().GetText()))
	}
	// a parenthesised choice is already on the stack
}

func (l *listener) ExitStarred(ctx *StarredContext) {
	if len(ctx.AllSTAR()) == 0 {
		return
	}
	body, _ := l.terms.Pop()
	l.terms.Push(term.NewStar(body))
}

func (l *listener) ExitSequence(ctx *SequenceContext) {
	l.terms.Push(term.NewSeq(l.popOperands(len(ctx.AllStarred()))...))
}

func (l *listener) ExitParallel(ctx *ParallelContext) {
	l.terms.Push(term.NewParallel(l.popOperands(len(ctx.AllSequence()))...))
}

func (l *listener) ExitChoice(ctx *ChoiceContext) {
	l.terms.Push(term.NewChoice(l.popOperands(len(ctx.AllParallel()))...))
}
