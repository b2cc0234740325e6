// Package ast defines the expression AST the parser produces. Every
// variant is a leaf or composite Expr; the downstream evaluator (out of
// scope for this module) is expected to accept all of them.
package ast

// Expr is the base interface every AST node satisfies.
type Expr interface {
	Accept(v Visitor)
	exprNode()
}

// Visitor double-dispatches over every Expr variant.
type Visitor interface {
	VisitLiteral(*Literal)
	VisitRequest(*Request)
	VisitWorkerResponse(*WorkerResponse)
	VisitSelectField(*SelectField)
	VisitSelectIndex(*SelectIndex)
	VisitEqualTo(*EqualTo)
	VisitGreaterThan(*GreaterThan)
	VisitGreaterThanOrEqualTo(*GreaterThanOrEqualTo)
	VisitLessThan(*LessThan)
	VisitLessThanOrEqualTo(*LessThanOrEqualTo)
	VisitCond(*Cond)
	VisitConcat(*Concat)
}

// Literal is a run of plain text.
type Literal struct {
	Value string
}

func (*Literal) exprNode()          {}
func (l *Literal) Accept(v Visitor) { v.VisitLiteral(l) }

// Request is the request root.
type Request struct{}

func (*Request) exprNode()          {}
func (r *Request) Accept(v Visitor) { v.VisitRequest(r) }

// WorkerResponse is the worker-response root.
type WorkerResponse struct{}

func (*WorkerResponse) exprNode()          {}
func (w *WorkerResponse) Accept(v Visitor) { v.VisitWorkerResponse(w) }

// SelectField extends a subject expression with a named field access.
type SelectField struct {
	Subject Expr
	Field   string
}

func (*SelectField) exprNode()          {}
func (s *SelectField) Accept(v Visitor) { v.VisitSelectField(s) }

// SelectIndex extends a subject expression with a non-negative index access.
type SelectIndex struct {
	Subject Expr
	Index   int
}

func (*SelectIndex) exprNode()          {}
func (s *SelectIndex) Accept(v Visitor) { v.VisitSelectIndex(s) }

// EqualTo is the "==" comparison.
type EqualTo struct {
	Left, Right Expr
}

func (*EqualTo) exprNode()          {}
func (e *EqualTo) Accept(v Visitor) { v.VisitEqualTo(e) }

// GreaterThan is the ">" comparison.
type GreaterThan struct {
	Left, Right Expr
}

func (*GreaterThan) exprNode()          {}
func (g *GreaterThan) Accept(v Visitor) { v.VisitGreaterThan(g) }

// GreaterThanOrEqualTo is the ">=" comparison.
type GreaterThanOrEqualTo struct {
	Left, Right Expr
}

func (*GreaterThanOrEqualTo) exprNode()          {}
func (g *GreaterThanOrEqualTo) Accept(v Visitor) { v.VisitGreaterThanOrEqualTo(g) }

// LessThan is the "<" comparison.
type LessThan struct {
	Left, Right Expr
}

func (*LessThan) exprNode()          {}
func (l *LessThan) Accept(v Visitor) { v.VisitLessThan(l) }

// LessThanOrEqualTo is the "<=" comparison.
type LessThanOrEqualTo struct {
	Left, Right Expr
}

func (*LessThanOrEqualTo) exprNode()          {}
func (l *LessThanOrEqualTo) Accept(v Visitor) { v.VisitLessThanOrEqualTo(l) }

// Cond is an if/then/else conditional; every Cond has exactly three
// subtrees.
type Cond struct {
	Predicate  Expr
	Then, Else Expr
}

func (*Cond) exprNode()          {}
func (c *Cond) Accept(v Visitor) { v.VisitCond(c) }

// Concat joins two expressions produced by adjacent literal-mode
// accumulation. continueBuild always wraps a new pair rather than
// flattening, so a run of N operands produces a left-leaning chain of
// N-1 binary Concat nodes, not one N-ary node.
type Concat struct {
	Left, Right Expr
}

func (*Concat) exprNode()          {}
func (c *Concat) Accept(v Visitor) { v.VisitConcat(c) }
