// Package token enumerates the terminal kinds produced by the tokenizer
// and the single Token type that carries them, mirroring the token model
// used throughout the worker-bridge expression grammar.
package token

import "fmt"

// Kind identifies the syntactic category of a Token.
type Kind string

const (
	RawString            Kind = "RAW_STRING"
	Request               Kind = "REQUEST"
	WorkerResponse         Kind = "WORKER_RESPONSE"
	InterpolationStart    Kind = "INTERPOLATION_START" // the "${" marker
	OpenParen             Kind = "OPEN_PAREN"
	CloseParen            Kind = "CLOSE_PAREN"
	OpenSquareBracket     Kind = "OPEN_SQUARE_BRACKET"
	ClosedSquareBracket   Kind = "CLOSED_SQUARE_BRACKET"
	ClosedCurlyBrace      Kind = "CLOSED_CURLY_BRACE"
	Dot                   Kind = "DOT"
	If                    Kind = "IF"
	Then                  Kind = "THEN"
	Else                  Kind = "ELSE"
	EqualTo               Kind = "EQUAL_TO"
	GreaterThan           Kind = "GREATER_THAN"
	LessThan              Kind = "LESS_THAN"
	GreaterThanOrEqualTo  Kind = "GREATER_THAN_OR_EQUAL_TO"
	LessThanOrEqualTo     Kind = "LESS_THAN_OR_EQUAL_TO"
	Space                 Kind = "SPACE"
	NewLine               Kind = "NEW_LINE"
)

// Token is a tagged value: Kind identifies the terminal, Text carries the
// raw surface bytes that produced it (verbatim, never trimmed).
type Token struct {
	Kind Kind
	Text string
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}

// IsWhitespace reports whether the token is insignificant in code mode.
func (t Token) IsWhitespace() bool {
	return t.Kind == Space || t.Kind == NewLine
}

// AsRawStringToken projects any token to its surface text wrapped as a
// RawString token. In literal mode the parser treats every token this way
// except InterpolationStart, which keeps its structural meaning.
func (t Token) AsRawStringToken() Token {
	if t.Kind == InterpolationStart {
		return t
	}
	return Token{Kind: RawString, Text: t.Text}
}

// New builds a token of the given kind with the given surface text.
func New(kind Kind, text string) Token {
	return Token{Kind: kind, Text: text}
}
