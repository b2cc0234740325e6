package parser

import (
	"github.com/workerbridge/exprlang/internal/cursor"
	"github.com/workerbridge/exprlang/internal/diagnostics"
	"github.com/workerbridge/exprlang/internal/parserstate"
	"github.com/workerbridge/exprlang/internal/pipeline"
)

// Processor is the parser's pipeline stage: it drives the two-mode
// recursive descent over ctx.Tokens, populating ctx.AstRoot or ctx.Err.
type Processor struct{}

func (Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	cur := cursor.New(ctx.Tokens)
	expr, err := goParse(cur, modeLiteral, parserstate.Empty())
	if err != nil {
		if pe, ok := err.(*diagnostics.ParseError); ok {
			ctx.Err = pe
		} else {
			ctx.Err = diagnostics.New(diagnostics.CodeTerminalNonComplete, err.Error())
		}
		return ctx
	}
	ctx.AstRoot = expr
	return ctx
}

var _ pipeline.Processor = Processor{}
