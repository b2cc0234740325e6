// Package config is the single source of truth for the tokenizer's
// keyword and punctuation tables, so the scan priorities described in the
// grammar live in one place instead of being duplicated as literals
// scattered through the lexer.
package config

import "github.com/workerbridge/exprlang/internal/token"

// Keyword pairs a whole-word surface form with the token kind it produces.
type Keyword struct {
	Text string
	Kind token.Kind
}

// Keywords is scanned in order, so multi-word keywords that share a prefix
// with a shorter one must be listed first. "worker.response" contains a
// dot that is never treated as a separate Dot token because the keyword
// match consumes it whole.
var Keywords = []Keyword{
	{Text: "worker.response", Kind: token.WorkerResponse},
	{Text: "request", Kind: token.Request},
	{Text: "if", Kind: token.If},
	{Text: "then", Kind: token.Then},
	{Text: "else", Kind: token.Else},
}

// Punct pairs a multi-character punctuation spelling with its token kind.
type Punct struct {
	Text string
	Kind token.Kind
}

// MultiChar is tried before any keyword or single-character candidate,
// longest-match first, per the grammar's scan priorities.
var MultiChar = []Punct{
	{Text: "${", Kind: token.InterpolationStart},
	{Text: ">=", Kind: token.GreaterThanOrEqualTo},
	{Text: "<=", Kind: token.LessThanOrEqualTo},
	{Text: "==", Kind: token.EqualTo},
}

// SingleChar maps a lone structural byte to its token kind. Note '{' has
// no entry: this grammar has no standalone-open-brace token (only "${"
// opens interpolation and only "}" closes it), so a bare '{' that is not
// part of "${" falls through to the RawString catch-all, the same way a
// lone '=' that is not part of "==" does.
var SingleChar = map[byte]token.Kind{
	'}':  token.ClosedCurlyBrace,
	'(':  token.OpenParen,
	')':  token.CloseParen,
	'[':  token.OpenSquareBracket,
	']':  token.ClosedSquareBracket,
	'.':  token.Dot,
	'>':  token.GreaterThan,
	'<':  token.LessThan,
	' ':  token.Space,
	'\n': token.NewLine,
}

// boundaryBytes are the bytes that may legally surround a whole-word
// keyword match: whitespace, this grammar's structural punctuation, and
// the characters that begin its multi-character tokens.
var boundaryBytes = map[byte]bool{
	' ': true, '\n': true,
	'{': true, '}': true,
	'(': true, ')': true,
	'[': true, ']': true,
	'.': true, '>': true, '<': true,
	'=': true, '$': true,
}

// IsBoundaryAt reports whether position i in s is a word boundary: before
// the start, at or past the end, or sitting on a boundary byte.
func IsBoundaryAt(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	return boundaryBytes[s[i]]
}
