package prettyprinter_test

import (
	"strings"
	"testing"

	"github.com/workerbridge/exprlang/internal/ast"
	"github.com/workerbridge/exprlang/internal/prettyprinter"
)

func TestPrintLiteral(t *testing.T) {
	got := prettyprinter.Print(&ast.Literal{Value: "hi"})
	if got != `Literal("hi")` {
		t.Fatalf("got %q", got)
	}
}

func TestPrintNestedSelectField(t *testing.T) {
	expr := &ast.SelectField{Subject: &ast.Request{}, Field: "path"}
	got := prettyprinter.Print(expr)
	if !strings.Contains(got, `SelectField("path")`) || !strings.Contains(got, "Request") {
		t.Fatalf("got %q", got)
	}
	// subject line should be indented one level deeper than the SelectField line
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d: %q", len(lines), got)
	}
	if strings.HasPrefix(lines[1], " ") == false {
		t.Fatalf("want indented second line, got %q", lines[1])
	}
}

func TestPrintCondHasThreeLabeledChildren(t *testing.T) {
	expr := &ast.Cond{
		Predicate: &ast.Literal{Value: "p"},
		Then:      &ast.Literal{Value: "t"},
		Else:      &ast.Literal{Value: "e"},
	}
	got := prettyprinter.Print(expr)
	for _, want := range []string{"predicate:", "then:", "else:"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected dump to contain %q, got:\n%s", want, got)
		}
	}
}

func TestPrintHasNoTrailingNewline(t *testing.T) {
	got := prettyprinter.Print(&ast.Literal{Value: "x"})
	if strings.HasSuffix(got, "\n") {
		t.Fatalf("expected no trailing newline, got %q", got)
	}
}
