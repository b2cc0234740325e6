// Package lexer scans an input string into a flat sequence of tokens.
// Scanning never fails: anything not recognized as structural punctuation
// or a whole-word keyword is accumulated into a maximal RawString run.
package lexer

import (
	"strings"

	"github.com/workerbridge/exprlang/internal/config"
	"github.com/workerbridge/exprlang/internal/token"
)

// Scan tokenizes input left to right, applying (in order): multi-character
// punctuation, whole-word keywords, single-character punctuation, and
// finally the RawString catch-all.
func Scan(input string) []token.Token {
	var tokens []token.Token
	var raw strings.Builder

	flush := func() {
		if raw.Len() > 0 {
			tokens = append(tokens, token.New(token.RawString, raw.String()))
			raw.Reset()
		}
	}

	i := 0
	for i < len(input) {
		if kind, width, ok := matchMultiChar(input, i); ok {
			flush()
			tokens = append(tokens, token.New(kind, input[i:i+width]))
			i += width
			continue
		}

		if kind, width, ok := matchKeyword(input, i); ok {
			flush()
			tokens = append(tokens, token.New(kind, input[i:i+width]))
			i += width
			continue
		}

		if kind, ok := config.SingleChar[input[i]]; ok {
			flush()
			tokens = append(tokens, token.New(kind, input[i:i+1]))
			i++
			continue
		}

		raw.WriteByte(input[i])
		i++
	}
	flush()

	return tokens
}

func matchMultiChar(input string, i int) (token.Kind, int, bool) {
	for _, p := range config.MultiChar {
		if strings.HasPrefix(input[i:], p.Text) {
			return p.Kind, len(p.Text), true
		}
	}
	return "", 0, false
}

func matchKeyword(input string, i int) (token.Kind, int, bool) {
	for _, kw := range config.Keywords {
		end := i + len(kw.Text)
		if end > len(input) {
			continue
		}
		if input[i:end] != kw.Text {
			continue
		}
		if !config.IsBoundaryAt(input, i-1) || !config.IsBoundaryAt(input, end) {
			continue
		}
		return kw.Kind, len(kw.Text), true
	}
	return "", 0, false
}
