// Code generated from Wcka.g4 by ANTLR 4.13.1. DO NOT EDIT.

package parser // Wcka
import "github.com/antlr4-go/antlr/v4"

// BaseWckaListener is a complete listener for a parse tree produced by WckaParser.
type BaseWckaListener struct{}

var _ WckaListener = &BaseWckaListener{}

// VisitTerminal is called when a terminal node is visited.
func (s *BaseWckaListener) VisitTerminal(node antlr.TerminalNode) {}

// VisitErrorNode is called when an error node is visited.
func (s *BaseWckaListener) VisitErrorNode(node antlr.ErrorNode) {}

// EnterEveryRule is called when any rule is entered.
func (s *BaseWckaListener) EnterEveryRule(ctx antlr.ParserRuleContext) {}

// ExitEveryRule is called when any rule is exited.
func (s *BaseWckaListener) ExitEveryRule(ctx antlr.ParserRuleContext) {}

// EnterRoot is called when production root is entered.
func (s *BaseWckaListener) EnterRoot(ctx *RootContext) {}

// ExitRoot is called when production root is exited.
func (s *BaseWckaListener) ExitRoot(ctx *RootContext) {}

// EnterChoice is called when production choice is entered.
func (s *BaseWckaListener) EnterChoice(ctx *ChoiceContext) {}

// ExitChoice is called when production choice is exited.
func (s *BaseWckaListener) ExitChoice(ctx *ChoiceContext) {}

// EnterParallel is called when production parallel is entered.
func (s *BaseWckaListener) EnterParallel(ctx *ParallelContext) {}

// ExitParallel is called when production parallel is exited.
func (s *BaseWckaListener) ExitParallel(ctx *ParallelContext) {}

// EnterSequence is called when production sequence is entered.
func (s *BaseWckaListener) EnterSequence(ctx *SequenceContext) {}

// ExitSequence is called when production sequence is exited.
func (s *BaseWckaListener) ExitSequence(ctx *SequenceContext) {}

// EnterStarred is called when production starred is entered.
func (s *BaseWckaListener) EnterStarred(ctx *StarredContext) {}

// ExitStarred is called when production starred is exited.
func (s *BaseWckaListener) ExitStarred(ctx *StarredContext) {}

// EnterAtom is called when production atom is entered.
func (s *BaseWckaListener) EnterAtom(ctx *AtomContext) {}

// ExitAtom is called when production atom is exited.
func (s *BaseWckaListener) ExitAtom(ctx *AtomContext) {}
