package pipeline

import (
	"github.com/workerbridge/exprlang/internal/ast"
	"github.com/workerbridge/exprlang/internal/diagnostics"
	"github.com/workerbridge/exprlang/internal/token"
)

// Context holds the data passed between pipeline stages: source text in,
// token sequence and AST (or error) out.
type Context struct {
	SourceCode string
	FilePath   string // path to the source file, if any; empty for stdin/inline input

	Tokens  []token.Token
	AstRoot ast.Expr
	Err     *diagnostics.ParseError
}

// NewContext initializes a Context for the given source text.
func NewContext(source string) *Context {
	return &Context{SourceCode: source}
}
