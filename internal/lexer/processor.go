package lexer

import (
	"github.com/workerbridge/exprlang/internal/pipeline"
)

// Processor is the lexer's pipeline stage: it scans ctx.SourceCode into
// ctx.Tokens. Scanning never fails, so Processor never sets ctx.Err.
type Processor struct{}

func (Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	ctx.Tokens = Scan(ctx.SourceCode)
	return ctx
}

var _ pipeline.Processor = Processor{}
