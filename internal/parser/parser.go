// Package parser implements the two-mode recursive parse described in the
// grammar: literal mode accumulates plain text and watches only for
// "${" to open a code region; code mode has operators, keywords, and
// selectors syntactically active. Control flow is strictly forward, no
// token already consumed is ever revisited; nested regions captured via
// balanced brackets are re-tokenized on a fresh cursor.
package parser

import (
	"strconv"
	"strings"

	"github.com/workerbridge/exprlang/internal/ast"
	"github.com/workerbridge/exprlang/internal/cursor"
	"github.com/workerbridge/exprlang/internal/diagnostics"
	"github.com/workerbridge/exprlang/internal/lexer"
	"github.com/workerbridge/exprlang/internal/parserstate"
	"github.com/workerbridge/exprlang/internal/token"
)

// mode selects which token-acquisition rule the driver applies per
// iteration: code mode skips whitespace and keeps operators/keywords
// structurally active; literal mode treats everything but "${" as text.
type mode int

const (
	modeLiteral mode = iota
	modeCode
)

// Parse tokenizes source and runs the two-mode recursive descent from
// literal mode with an empty accumulator, returning the completed AST or
// the first error encountered.
func Parse(source string) (ast.Expr, error) {
	cur := cursor.New(lexer.Scan(source))
	return goParse(cur, modeLiteral, parserstate.Empty())
}

// goParse is the driver loop: acquire one token per the current mode,
// apply its transition, and recurse (here, loop) with the updated state.
func goParse(cur *cursor.Cursor, m mode, prev parserstate.State) (ast.Expr, error) {
	for {
		tok, ok := acquire(cur, m)
		if !ok {
			if e, isComplete := prev.Expr(); isComplete {
				return e, nil
			}
			return nil, diagnostics.New(diagnostics.CodeTerminalNonComplete,
				"failed expression. Internal logical error")
		}

		next, err := transition(cur, prev, tok)
		if err != nil {
			return nil, err
		}
		prev = next
	}
}

// acquire applies the per-mode token acquisition rule: code mode skips
// whitespace, literal mode projects every token but InterpolationStart to
// a RawString via AsRawStringToken.
func acquire(cur *cursor.Cursor, m mode) (token.Token, bool) {
	if m == modeCode {
		return cur.NextNonEmptyToken()
	}
	tok, ok := cur.NextToken()
	if !ok {
		return token.Token{}, false
	}
	return tok.AsRawStringToken(), true
}

// transition applies one token's effect on the parser state, per the
// grammar's per-token transition table. Mode is preserved across a call:
// every capture-and-reparse case below starts its own Empty accumulator
// in code mode on a fresh cursor, then returns control to the caller's
// existing mode for the next token.
func transition(cur *cursor.Cursor, prev parserstate.State, tok token.Token) (parserstate.State, error) {
	switch tok.Kind {
	case token.RawString:
		return prev.ContinueBuild(&ast.Literal{Value: tok.Text}), nil

	case token.Request:
		return prev.ContinueBuild(&ast.Request{}), nil

	case token.WorkerResponse:
		return prev.ContinueBuild(&ast.WorkerResponse{}), nil

	case token.InterpolationStart:
		inner, err := captureAndParse(cur, token.InterpolationStart, token.ClosedCurlyBrace)
		if err != nil {
			return parserstate.State{}, err
		}
		return prev.ContinueBuild(inner), nil

	case token.OpenParen:
		inner, err := captureAndParse(cur, token.OpenParen, token.CloseParen)
		if err != nil {
			return parserstate.State{}, err
		}
		return prev.ContinueBuild(inner), nil

	case token.Dot:
		return transitionDot(cur, prev)

	case token.OpenSquareBracket:
		return transitionIndex(cur, prev)

	case token.GreaterThan:
		return transitionComparison(prev, parserstate.GreaterThanCtx,
			"GreaterThan (>) is applied to a non existing left expression",
			func(l, r ast.Expr) ast.Expr { return &ast.GreaterThan{Left: l, Right: r} })

	case token.GreaterThanOrEqualTo:
		return transitionComparison(prev, parserstate.GreaterThanOrEqualToCtx,
			"GreaterThanOrEqualTo (>=) is applied to a non existing left expression",
			func(l, r ast.Expr) ast.Expr { return &ast.GreaterThanOrEqualTo{Left: l, Right: r} })

	case token.LessThan:
		return transitionComparison(prev, parserstate.LessThanCtx,
			"LessThan (<) is applied to a non existing left expression",
			func(l, r ast.Expr) ast.Expr { return &ast.LessThan{Left: l, Right: r} })

	case token.LessThanOrEqualTo:
		return transitionComparison(prev, parserstate.LessThanOrEqualToCtx,
			"LessThanOrEqualTo (<=) is applied to a non existing left expression",
			func(l, r ast.Expr) ast.Expr { return &ast.LessThanOrEqualTo{Left: l, Right: r} })

	case token.EqualTo:
		return transitionComparison(prev, parserstate.EqualToCtx,
			"EqualTo (==) is applied to a non existing left expression",
			func(l, r ast.Expr) ast.Expr { return &ast.EqualTo{Left: l, Right: r} })

	case token.If:
		return transitionIf(cur)

	case token.Then:
		return transitionThen(cur, prev)

	case token.Else:
		return transitionElse(cur, prev)

	case token.ClosedCurlyBrace, token.ClosedSquareBracket, token.CloseParen, token.Space, token.NewLine:
		return prev, nil

	default:
		return prev, nil
	}
}

// captureAndParse captures the balanced region between open and close,
// re-tokenizes the captured text, and parses it from scratch in code mode.
func captureAndParse(cur *cursor.Cursor, open, close token.Kind) (ast.Expr, error) {
	captured, ok := cur.CaptureBetween(open, close)
	if !ok {
		return nil, diagnostics.Newf(diagnostics.CodeUnmatchedBracket,
			"unable to find a matching closing symbol for %s", open)
	}
	return parseSubstring(captured)
}

// captureTailAndParse captures every remaining token (used for the else
// branch, which has no explicit closing token) and parses it.
func captureTailAndParse(cur *cursor.Cursor) (ast.Expr, error) {
	return parseSubstring(cur.CaptureTail())
}

// captureUntilAndParse captures up to (but does not consume) the matching
// close token and parses the captured span. Used for the if/then/else
// chain, where the boundary token must remain on the cursor for the
// driver's next iteration to act on.
func captureUntilAndParse(cur *cursor.Cursor, open, close token.Kind) (ast.Expr, error) {
	captured, ok := cur.CaptureUntil(open, close)
	if !ok {
		return nil, diagnostics.Newf(diagnostics.CodeUnmatchedBracket,
			"unable to find a matching closing symbol for %s", open)
	}
	return parseSubstring(captured)
}

func parseSubstring(s string) (ast.Expr, error) {
	innerCursor := cursor.New(lexer.Scan(s))
	return goParse(innerCursor, modeCode, parserstate.Empty())
}

func transitionDot(cur *cursor.Cursor, prev parserstate.State) (parserstate.State, error) {
	fieldTok, ok := cur.NextNonEmptyToken()
	if !ok {
		return parserstate.State{}, diagnostics.New(diagnostics.CodeInvalidField,
			"Expecting a field after dot")
	}
	if fieldTok.Kind != token.RawString {
		return parserstate.State{}, diagnostics.Newf(diagnostics.CodeInvalidField,
			"Expecting a valid field selection after dot instead of %s", fieldTok.Kind)
	}
	e, isComplete := prev.Expr()
	if !isComplete {
		return parserstate.State{}, diagnostics.Newf(diagnostics.CodeFieldOnNonComplete,
			"Invalid token field %s. Make sure expression format is correct", fieldTok.Text)
	}
	return parserstate.Complete(&ast.SelectField{Subject: e, Field: fieldTok.Text}), nil
}

func transitionIndex(cur *cursor.Cursor, prev parserstate.State) (parserstate.State, error) {
	e, isComplete := prev.Expr()
	if !isComplete {
		return parserstate.State{}, diagnostics.New(diagnostics.CodeIndexOnNonComplete, "Invalid token [")
	}
	captured, ok := cur.CaptureBetween(token.OpenSquareBracket, token.ClosedSquareBracket)
	if !ok {
		return parserstate.State{}, diagnostics.New(diagnostics.CodeInvalidIndex,
			"Expecting a valid index inside square brackets near to field")
	}
	n, err := strconv.Atoi(strings.TrimSpace(captured))
	if err != nil || n < 0 {
		return parserstate.State{}, diagnostics.Newf(diagnostics.CodeInvalidIndex,
			"Invalid index %q obtained within square brackets", captured)
	}
	return parserstate.Complete(&ast.SelectIndex{Subject: e, Index: n}), nil
}

// transitionComparison implements the shared shape of every comparison
// token: require a non-Empty, Complete left operand, then defer the right
// operand via an Incomplete continuation.
func transitionComparison(prev parserstate.State, ctx parserstate.Context, emptyMsg string, build func(l, r ast.Expr) ast.Expr) (parserstate.State, error) {
	if prev.IsEmpty() {
		return parserstate.State{}, diagnostics.New(diagnostics.CodeMissingLeftOperand, emptyMsg)
	}
	lhs, isComplete := prev.Expr()
	if !isComplete {
		return parserstate.State{}, diagnostics.New(diagnostics.CodeIncompleteLeftOperand,
			"Cannot apply comparison on top of an incomplete expression")
	}
	return parserstate.Incomplete(ctx, func(rhs ast.Expr) parserstate.State {
		return parserstate.Complete(build(lhs, rhs))
	}), nil
}

// transitionIf installs the three-step continuation chain that will build
// Cond once the then- and else-branches arrive, then immediately captures
// and parses the predicate to feed the first step. The predicate capture
// stops at the next "then" at matching depth (nested "if" tokens count
// toward the depth, so a bare nested conditional inside a predicate is
// captured whole) but does not consume that "then": it is left for the
// driver's next iteration to hand to transitionThen. Whatever state
// preceded "if" is discarded, not merged: a fresh Incomplete(Condition,
// ...) chain always starts here, the same way the source grammar builds it.
func transitionIf(cur *cursor.Cursor) (parserstate.State, error) {
	pending := parserstate.Incomplete(parserstate.Condition, func(predicate ast.Expr) parserstate.State {
		return parserstate.Incomplete(parserstate.Condition, func(thenBranch ast.Expr) parserstate.State {
			return parserstate.Incomplete(parserstate.Condition, func(elseBranch ast.Expr) parserstate.State {
				return parserstate.Complete(&ast.Cond{Predicate: predicate, Then: thenBranch, Else: elseBranch})
			})
		})
	})

	predicate, err := captureUntilAndParse(cur, token.If, token.Then)
	if err != nil {
		return parserstate.State{}, err
	}
	return pending.ContinueBuild(predicate), nil
}

// transitionThen captures the then-branch, stopping at (without consuming)
// the next "else" at matching depth. Depth tracks nested "if" tokens, not
// "then" tokens, since a bare nested conditional inside a then-branch owns
// exactly one "if" and one "else" but may repeat "then" at any depth.
func transitionThen(cur *cursor.Cursor, prev parserstate.State) (parserstate.State, error) {
	if !prev.IsIncomplete() || prev.Context() != parserstate.Condition {
		return parserstate.State{}, diagnostics.New(diagnostics.CodeStrayKeyword,
			"then is a keyword and should be part of a if else condition logic")
	}
	thenBranch, err := captureUntilAndParse(cur, token.If, token.Else)
	if err != nil {
		return parserstate.State{}, err
	}
	return prev.ContinueBuild(thenBranch), nil
}

func transitionElse(cur *cursor.Cursor, prev parserstate.State) (parserstate.State, error) {
	if !prev.IsIncomplete() || prev.Context() != parserstate.Condition {
		return parserstate.State{}, diagnostics.New(diagnostics.CodeStrayKeyword,
			"else is a keyword and should be part of a if else condition logic")
	}
	elseBranch, err := captureTailAndParse(cur)
	if err != nil {
		return parserstate.State{}, err
	}
	return prev.ContinueBuild(elseBranch), nil
}
