package lexer_test

import (
	"testing"

	"github.com/workerbridge/exprlang/internal/lexer"
	"github.com/workerbridge/exprlang/internal/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func assertKinds(t *testing.T, got []token.Token, want ...token.Kind) {
	t.Helper()
	gk := kinds(got)
	if len(gk) != len(want) {
		t.Fatalf("kind count mismatch: got %v, want %v", gk, want)
	}
	for i := range want {
		if gk[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s (full: %v)", i, gk[i], want[i], got)
		}
	}
}

func TestScanPlainText(t *testing.T) {
	got := lexer.Scan("hello world")
	assertKinds(t, got, token.RawString, token.Space, token.RawString)
	if got[0].Text != "hello" || got[2].Text != "world" {
		t.Fatalf("want %q and %q, got %q and %q", "hello", "world", got[0].Text, got[2].Text)
	}
}

func TestScanInterpolationMarkers(t *testing.T) {
	got := lexer.Scan("a${b}c")
	assertKinds(t, got,
		token.RawString, token.InterpolationStart, token.RawString,
		token.ClosedCurlyBrace, token.RawString)
}

func TestScanMultiCharOperatorsPreferLongestMatch(t *testing.T) {
	got := lexer.Scan(">= <= ==")
	assertKinds(t, got,
		token.GreaterThanOrEqualTo, token.Space,
		token.LessThanOrEqualTo, token.Space,
		token.EqualTo)
}

func TestScanLoneComparisonCharsAreStandaloneTokens(t *testing.T) {
	got := lexer.Scan("> <")
	assertKinds(t, got, token.GreaterThan, token.Space, token.LessThan)
}

func TestScanLoneEqualsFallsThroughToRawString(t *testing.T) {
	got := lexer.Scan("a=b")
	assertKinds(t, got, token.RawString)
	if got[0].Text != "a=b" {
		t.Fatalf("want %q, got %q", "a=b", got[0].Text)
	}
}

func TestScanBareOpenCurlyFallsThroughToRawString(t *testing.T) {
	got := lexer.Scan("{not interpolation}")
	assertKinds(t, got, token.RawString, token.Space, token.RawString, token.ClosedCurlyBrace)
}

func TestScanKeywordsRequireWordBoundaries(t *testing.T) {
	got := lexer.Scan("if(a)then(b)else(c)")
	assertKinds(t, got,
		token.If, token.OpenParen, token.RawString, token.CloseParen,
		token.Then, token.OpenParen, token.RawString, token.CloseParen,
		token.Else, token.OpenParen, token.RawString, token.CloseParen)
}

func TestScanKeywordSubstringInsideIdentifierStaysRawString(t *testing.T) {
	got := lexer.Scan("thenable")
	assertKinds(t, got, token.RawString)
	if got[0].Text != "thenable" {
		t.Fatalf("want %q, got %q", "thenable", got[0].Text)
	}
}

func TestScanWorkerResponseKeywordConsumesEmbeddedDot(t *testing.T) {
	got := lexer.Scan("worker.response.body")
	assertKinds(t, got, token.WorkerResponse, token.Dot, token.RawString)
}

func TestScanRequestDotField(t *testing.T) {
	got := lexer.Scan("request.path")
	assertKinds(t, got, token.Request, token.Dot, token.RawString)
}

func TestScanIndexBrackets(t *testing.T) {
	got := lexer.Scan("request.items[0]")
	assertKinds(t, got,
		token.Request, token.Dot, token.RawString,
		token.OpenSquareBracket, token.RawString, token.ClosedSquareBracket)
}

func TestScanNewlineIsItsOwnToken(t *testing.T) {
	got := lexer.Scan("a\nb")
	assertKinds(t, got, token.RawString, token.NewLine, token.RawString)
}
