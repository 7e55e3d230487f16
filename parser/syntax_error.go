package parser

import (
	"github.com/antlr4-go/antlr/v4"

	"github.com/cottand/wcka/ckaerr"
)

// errorListener collects lexer and parser failures as coded errors,
// replacing antlr's default console listener on both recognizers.
type errorListener struct {
	*antlr.DefaultErrorListener // Embed default which ensures we fit the interface
	errors                      []ckaerr.CKAError
}

func (e *errorListener) SyntaxError(recognizer antlr.Recognizer, offendingSymbol interface{}, line, column int, msg string, ex antlr.RecognitionException) {
	e.errors = append(e.errors, ckaerr.New(ckaerr.NewParse{
		Message: msg,
		Offset:  column,
	}))
}
