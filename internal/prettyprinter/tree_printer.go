// Package prettyprinter renders an Expr as a deterministic, indented tree
// dump. It is used in the parser tests' failure messages and by the
// template cache, whose stored dump the CLI's -print flag writes; it has
// no bearing on parsing semantics.
package prettyprinter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/workerbridge/exprlang/internal/ast"
)

// TreePrinter is an ast.Visitor that accumulates an indented dump.
type TreePrinter struct {
	b      strings.Builder
	indent int
}

// NewTreePrinter returns a fresh TreePrinter.
func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

// Print renders e and returns the dump, trimmed of its trailing newline.
func Print(e ast.Expr) string {
	p := NewTreePrinter()
	e.Accept(p)
	return strings.TrimRight(p.b.String(), "\n")
}

func (p *TreePrinter) line(format string, args ...interface{}) {
	p.b.WriteString(strings.Repeat("  ", p.indent))
	fmt.Fprintf(&p.b, format, args...)
	p.b.WriteByte('\n')
}

func (p *TreePrinter) child(label string, e ast.Expr) {
	p.line("%s:", label)
	p.indent++
	e.Accept(p)
	p.indent--
}

func (p *TreePrinter) VisitLiteral(n *ast.Literal) {
	p.line("Literal(%s)", strconv.Quote(n.Value))
}

func (p *TreePrinter) VisitRequest(*ast.Request) {
	p.line("Request")
}

func (p *TreePrinter) VisitWorkerResponse(*ast.WorkerResponse) {
	p.line("WorkerResponse")
}

func (p *TreePrinter) VisitSelectField(n *ast.SelectField) {
	p.line("SelectField(%s)", strconv.Quote(n.Field))
	p.indent++
	n.Subject.Accept(p)
	p.indent--
}

func (p *TreePrinter) VisitSelectIndex(n *ast.SelectIndex) {
	p.line("SelectIndex(%d)", n.Index)
	p.indent++
	n.Subject.Accept(p)
	p.indent--
}

func (p *TreePrinter) VisitEqualTo(n *ast.EqualTo) {
	p.line("EqualTo")
	p.child("lhs", n.Left)
	p.child("rhs", n.Right)
}

func (p *TreePrinter) VisitGreaterThan(n *ast.GreaterThan) {
	p.line("GreaterThan")
	p.child("lhs", n.Left)
	p.child("rhs", n.Right)
}

func (p *TreePrinter) VisitGreaterThanOrEqualTo(n *ast.GreaterThanOrEqualTo) {
	p.line("GreaterThanOrEqualTo")
	p.child("lhs", n.Left)
	p.child("rhs", n.Right)
}

func (p *TreePrinter) VisitLessThan(n *ast.LessThan) {
	p.line("LessThan")
	p.child("lhs", n.Left)
	p.child("rhs", n.Right)
}

func (p *TreePrinter) VisitLessThanOrEqualTo(n *ast.LessThanOrEqualTo) {
	p.line("LessThanOrEqualTo")
	p.child("lhs", n.Left)
	p.child("rhs", n.Right)
}

func (p *TreePrinter) VisitCond(n *ast.Cond) {
	p.line("Cond")
	p.child("predicate", n.Predicate)
	p.child("then", n.Then)
	p.child("else", n.Else)
}

func (p *TreePrinter) VisitConcat(n *ast.Concat) {
	p.line("Concat")
	p.child("left", n.Left)
	p.child("right", n.Right)
}

var _ ast.Visitor = (*TreePrinter)(nil)
