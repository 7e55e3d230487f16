// Code generated from Wcka.g4 by ANTLR 4.13.1. DO NOT EDIT.

package parser // Wcka
import "github.com/antlr4-go/antlr/v4"

// WckaListener is a complete listener for a parse tree produced by WckaParser.
type WckaListener interface {
	antlr.ParseTreeListener

	// EnterRoot is called when entering the root production.
	EnterRoot(c *RootContext)

	// EnterChoice is called when entering the choice production.
	EnterChoice(c *ChoiceContext)

	// EnterParallel is called when entering the parallel production.
	EnterParallel(c *ParallelContext)

	// EnterSequence is called when entering the sequence production.
	EnterSequence(c *SequenceContext)

	// EnterStarred is called when entering the starred production.
	EnterStarred(c *StarredContext)

	// EnterAtom is called when entering the atom production.
	EnterAtom(c *AtomContext)

	// ExitRoot is called when exiting the root production.
	ExitRoot(c *RootContext)

	// ExitChoice is called when exiting the choice production.
	ExitChoice(c *ChoiceContext)

	// ExitParallel is called when exiting the parallel production.
	ExitParallel(c *ParallelContext)

	// ExitSequence is called when exiting the sequence production.
	ExitSequence(c *SequenceContext)

	// ExitStarred is called when exiting the starred production.
	ExitStarred(c *StarredContext)

	// ExitAtom is called when exiting the atom production.
	ExitAtom(c *AtomContext)
}
