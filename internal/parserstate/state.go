// Package parserstate implements the deferred-completion value the parser
// driver threads through its recursive descent: at any point the running
// "previous expression" is Empty, a finished Complete expression, or an
// Incomplete builder waiting on one more operand.
//
// The pending builder is a closure rather than a tagged accumulator: in Go
// a closure is cheap, so Step is simply a func(ast.Expr) State, the direct
// equivalent of the continuation the source grammar builds with nested
// closures for comparisons and for if/then/else.
package parserstate

import "github.com/workerbridge/exprlang/internal/ast"

// Context tags an Incomplete state with the construct it is building. The
// driver checks it to accept "then" and "else" only while a Condition is
// pending.
type Context string

const (
	Condition               Context = "Condition"
	LessThanCtx             Context = "LessThan"
	GreaterThanCtx          Context = "GreaterThan"
	EqualToCtx              Context = "EqualTo"
	LessThanOrEqualToCtx    Context = "LessThanOrEqualTo"
	GreaterThanOrEqualToCtx Context = "GreaterThanOrEqualTo"
)

// Kind enumerates the three shapes a State can take.
type Kind int

const (
	KindEmpty Kind = iota
	KindComplete
	KindIncomplete
)

// Step is the continuation an Incomplete state resumes with once its next
// operand becomes available.
type Step func(ast.Expr) State

// State is the parser intermediate value from the grammar: Empty, a
// Complete expression, or an Incomplete builder awaiting one more operand.
type State struct {
	kind    Kind
	expr    ast.Expr
	context Context
	step    Step
}

// Empty is the zero state: nothing accumulated yet at this nesting level.
func Empty() State { return State{kind: KindEmpty} }

// Complete wraps a finished AST node ready to serve as an operand or be
// concatenated.
func Complete(e ast.Expr) State { return State{kind: KindComplete, expr: e} }

// Incomplete builds a pending state tagged with a context (see Context)
// and a continuation that, given the next complete expression,
// yields the next State.
func Incomplete(ctx Context, step Step) State {
	return State{kind: KindIncomplete, context: ctx, step: step}
}

func (s State) IsEmpty() bool      { return s.kind == KindEmpty }
func (s State) IsComplete() bool   { return s.kind == KindComplete }
func (s State) IsIncomplete() bool { return s.kind == KindIncomplete }

// Expr returns the wrapped expression and true if the state is Complete.
func (s State) Expr() (ast.Expr, bool) {
	if s.kind != KindComplete {
		return nil, false
	}
	return s.expr, true
}

// Context returns the tag of an Incomplete state.
func (s State) Context() Context { return s.context }

// ContinueBuild folds a freshly produced operand into the current state:
//   - Empty        -> Complete(newOperand)
//   - Complete(e)   -> Complete(Concat{e, newOperand}) -- always a fresh
//     pair, never flattened; see ast.Concat's doc comment.
//   - Incomplete(_, step) -> step(newOperand)
func (s State) ContinueBuild(newOperand ast.Expr) State {
	switch s.kind {
	case KindEmpty:
		return Complete(newOperand)
	case KindComplete:
		return Complete(&ast.Concat{Left: s.expr, Right: newOperand})
	default: // KindIncomplete
		return s.step(newOperand)
	}
}
