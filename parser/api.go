// Package parser reads the textual notation for terms: '0' and '1' for
// the constants, identifiers for primitives, '*' postfix for iteration,
// juxtaposition for sequencing, '||' (or '‖') for parallel composition
// and '+' for choice, with the usual parentheses. It is the inverse of
// term.Term's String rendering. The lexer and parser are generated from
// Wcka.g4 (see generate.go); this file is the public api over them.
package parser

import (
	"github.com/antlr4-go/antlr/v4"

	"github.com/cottand/wcka/ckaerr"
	"github.com/cottand/wcka/internal/log"
	"github.com/cottand/wcka/term"
)

var logger = log.DefaultLogger.With("section", "parser")

// Parse reads a single term. The whole input must be consumed.
func Parse(input string) (term.Term, error) {
	iStream := antlr.NewInputStream(input)
	lexer := NewWckaLexer(iStream)
	tStream := antlr.NewCommonTokenStream(lexer, antlr.TokenDefaultChannel)
	p := NewWckaParser(tStream)

	el := &errorListener{}
	lexer.RemoveErrorListeners()
	lexer.AddErrorListener(el)
	p.RemoveErrorListeners()
	p.AddErrorListener(el)

	tree := p.Root()
	if len(el.errors) != 0 {
		return nil, el.errors[0]
	}

	l := &listener{}
	antlr.NewIterativeParseTreeWalker().Walk(l, tree)

	t, ok := l.terms.Pop()
	if !ok {
		return nil, ckaerr.New(ckaerr.NewParse{Message: "no term in input"})
	}
	logger.Debug("parsed term", "term", t)
	return t, nil
}
