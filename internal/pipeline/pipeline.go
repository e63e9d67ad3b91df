// Package pipeline orchestrates the assembly workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/twopass/internal/assembler"
	"github.com/retroenv/twopass/internal/loader"
	"github.com/retroenv/twopass/internal/options"
	"github.com/retroenv/twopass/internal/program"
	"github.com/retroenv/twopass/internal/writer"
)

// Pipeline orchestrates the complete assembly workflow.
type Pipeline struct {
	logger    *log.Logger
	loader    *loader.Loader
	assembler *assembler.Assembler
}

// New creates a new assembly pipeline.
func New(logger *log.Logger, asmOpts options.Assembler) *Pipeline {
	return &Pipeline{
		logger:    logger,
		loader:    loader.New(),
		assembler: assembler.New(logger, asmOpts),
	}
}

// Execute reads the source from the reader, assembles it and writes the
// object dump to the output.
func (p *Pipeline) Execute(ctx context.Context, reader io.Reader, output io.Writer) (*program.Object, error) {
	lines, err := p.loader.LoadFromReader(reader)
	if err != nil {
		return nil, fmt.Errorf("loading source: %w", err)
	}
	return p.ExecuteLines(ctx, lines, output)
}

// ExecuteLines assembles the already loaded source lines and writes the
// object dump to the output.
// Nothing is written if the assembly fails.
func (p *Pipeline) ExecuteLines(ctx context.Context, lines []string, output io.Writer) (*program.Object, error) {
	object, err := p.assembler.Assemble(ctx, lines)
	if err != nil {
		return nil, fmt.Errorf("assembling: %w", err)
	}

	if err := writer.New(object, output).Write(); err != nil {
		return nil, fmt.Errorf("writing object: %w", err)
	}
	return object, nil
}
