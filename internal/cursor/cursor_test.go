package cursor_test

import (
	"testing"

	"github.com/workerbridge/exprlang/internal/cursor"
	"github.com/workerbridge/exprlang/internal/lexer"
	"github.com/workerbridge/exprlang/internal/token"
)

func TestNextNonEmptyTokenSkipsWhitespace(t *testing.T) {
	c := cursor.New(lexer.Scan("a  \n b"))
	first, ok := c.NextNonEmptyToken()
	if !ok || first.Text != "a" {
		t.Fatalf("want a, got %v ok=%v", first, ok)
	}
	second, ok := c.NextNonEmptyToken()
	if !ok || second.Text != "b" {
		t.Fatalf("want b, got %v ok=%v", second, ok)
	}
	if _, ok := c.NextNonEmptyToken(); ok {
		t.Fatal("expected exhaustion")
	}
}

func TestCaptureBetweenConsumesClosingToken(t *testing.T) {
	c := cursor.New(lexer.Scan("${inner}after"))
	// consume the InterpolationStart token first, as the parser does
	open, ok := c.NextToken()
	if !ok || open.Kind != token.InterpolationStart {
		t.Fatalf("unexpected first token: %v", open)
	}
	captured, ok := c.CaptureBetween(token.InterpolationStart, token.ClosedCurlyBrace)
	if !ok {
		t.Fatal("expected a match")
	}
	if captured != "inner" {
		t.Fatalf("want %q, got %q", "inner", captured)
	}
	rest, ok := c.NextToken()
	if !ok || rest.Text != "after" {
		t.Fatalf("want leftover 'after', got %v ok=%v", rest, ok)
	}
}

func TestCaptureBetweenRespectsNesting(t *testing.T) {
	c := cursor.New(lexer.Scan("${${nested}}tail"))
	c.NextToken() // consume outer InterpolationStart
	captured, ok := c.CaptureBetween(token.InterpolationStart, token.ClosedCurlyBrace)
	if !ok {
		t.Fatal("expected a match")
	}
	if captured != "${nested}" {
		t.Fatalf("want %q, got %q", "${nested}", captured)
	}
}

func TestCaptureBetweenReportsUnmatched(t *testing.T) {
	c := cursor.New(lexer.Scan("${inner"))
	c.NextToken()
	if _, ok := c.CaptureBetween(token.InterpolationStart, token.ClosedCurlyBrace); ok {
		t.Fatal("expected no match for unbalanced input")
	}
}

func TestCaptureUntilLeavesDelimiterUnconsumed(t *testing.T) {
	c := cursor.New(lexer.Scan("if a then b else c"))
	c.NextToken() // consume "if"
	c.NextToken() // consume Space
	captured, ok := c.CaptureUntil(token.If, token.Then)
	if !ok {
		t.Fatal("expected a match")
	}
	if captured != "a " {
		t.Fatalf("want %q, got %q", "a ", captured)
	}
	next, ok := c.NextToken()
	if !ok || next.Kind != token.Then {
		t.Fatalf("want the Then token still pending, got %v ok=%v", next, ok)
	}
}

func TestCaptureUntilTracksNestedIfDepth(t *testing.T) {
	// Simulates the then-branch scan after a "then" has just been consumed,
	// where the then-branch is itself a bare nested conditional: the first
	// "else" closes the nested if and must not end the outer capture.
	c := cursor.New(lexer.Scan("if b then c else d else e"))
	captured, ok := c.CaptureUntil(token.If, token.Else)
	if !ok {
		t.Fatal("expected a match")
	}
	if captured != "if b then c else d " {
		t.Fatalf("want %q, got %q", "if b then c else d ", captured)
	}
	next, ok := c.NextToken()
	if !ok || next.Kind != token.Else {
		t.Fatalf("want the outer Else still pending, got %v ok=%v", next, ok)
	}
}

func TestCaptureTailDrainsCursor(t *testing.T) {
	c := cursor.New(lexer.Scan("else branch text"))
	c.NextToken() // consume "else"
	tail := c.CaptureTail()
	if tail != " branch text" {
		t.Fatalf("want %q, got %q", " branch text", tail)
	}
	if _, ok := c.NextToken(); ok {
		t.Fatal("expected cursor to be drained")
	}
}
