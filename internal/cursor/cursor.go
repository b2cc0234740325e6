// Package cursor implements the forward-only reader over a token sequence
// that the parser driver uses: single-token and whitespace-skipping
// advances, and the three capture primitives (balanced-bracket, stop
// before a delimiter, and tail) that feed nested sub-parses.
package cursor

import (
	"strings"

	"github.com/workerbridge/exprlang/internal/token"
)

// Cursor is a monotonic read position over a token sequence: no token is
// ever revisited once consumed.
type Cursor struct {
	tokens []token.Token
	pos    int
}

// New wraps a token sequence for forward reading.
func New(tokens []token.Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// NextToken returns the next token and advances, or reports false once the
// sequence is drained.
func (c *Cursor) NextToken() (token.Token, bool) {
	if c.pos >= len(c.tokens) {
		return token.Token{}, false
	}
	t := c.tokens[c.pos]
	c.pos++
	return t, true
}

// NextNonEmptyToken skips Space and NewLine tokens, then returns the next
// significant token, advancing past everything it skipped plus the
// returned token. Reports false once the sequence is drained without
// finding a non-whitespace token.
func (c *Cursor) NextNonEmptyToken() (token.Token, bool) {
	for {
		t, ok := c.NextToken()
		if !ok {
			return token.Token{}, false
		}
		if !t.IsWhitespace() {
			return t, true
		}
	}
}

// CaptureBetween assumes the open token has just been consumed by the
// caller. It scans forward, incrementing a depth counter on further open
// occurrences of the same kind and decrementing on close occurrences,
// until depth returns to zero, at which point it returns the surface text
// of every token strictly between the outer open and its match
// (concatenated verbatim) and advances the cursor past the closing token.
// Reports false if the sequence is exhausted before depth returns to zero.
func (c *Cursor) CaptureBetween(open, close token.Kind) (string, bool) {
	var buf strings.Builder
	depth := 0
	for {
		t, ok := c.NextToken()
		if !ok {
			return "", false
		}
		switch t.Kind {
		case close:
			if depth == 0 {
				return buf.String(), true
			}
			depth--
			buf.WriteString(t.Text)
		case open:
			depth++
			buf.WriteString(t.Text)
		default:
			buf.WriteString(t.Text)
		}
	}
}

// CaptureUntil scans forward the same way CaptureBetween does, tracking
// nesting depth on further open occurrences versus close occurrences, but
// stops short of consuming the matching close: the cursor is left
// positioned exactly on it, so the driver's next acquisition sees it as an
// ordinary token. This is how the if/then/else chain works: "then" and
// "else" are both boundaries of one capture and triggers of the next, so
// neither can be swallowed the way a bracket's closing token is.
// Reports false if the sequence is exhausted before a match at depth zero.
func (c *Cursor) CaptureUntil(open, close token.Kind) (string, bool) {
	var buf strings.Builder
	depth := 0
	for {
		mark := c.pos
		t, ok := c.NextToken()
		if !ok {
			return "", false
		}
		switch t.Kind {
		case close:
			if depth == 0 {
				c.pos = mark
				return buf.String(), true
			}
			depth--
			buf.WriteString(t.Text)
		case open:
			depth++
			buf.WriteString(t.Text)
		default:
			buf.WriteString(t.Text)
		}
	}
}

// CaptureTail concatenates the surface text of every remaining token and
// drains the cursor.
func (c *Cursor) CaptureTail() string {
	var buf strings.Builder
	for {
		t, ok := c.NextToken()
		if !ok {
			return buf.String()
		}
		buf.WriteString(t.Text)
	}
}
