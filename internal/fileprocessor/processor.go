// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/twopass/internal/app"
	"github.com/retroenv/twopass/internal/assembler"
	"github.com/retroenv/twopass/internal/loader"
	"github.com/retroenv/twopass/internal/options"
	"github.com/retroenv/twopass/internal/pipeline"
)

// Exit statuses of the command.
const (
	ExitOK     = 0
	ExitUsage  = 1
	ExitFile   = 2
	ExitSyntax = 3
)

const outputFileMode = 0o644

// FileError is returned when the input file can not be read or the output
// file can not be written.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("file '%s': %s", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// ProcessFile handles the complete file processing workflow. The output
// file is only written if the source assembled without errors.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, asmOpts options.Assembler) error {
	lines, err := loader.New().Load(opts.Input)
	if err != nil {
		return &FileError{Path: opts.Input, Err: err}
	}

	buf := &bytes.Buffer{}
	p := pipeline.New(logger, asmOpts)
	object, err := p.ExecuteLines(ctx, lines, buf)
	if err != nil {
		return err
	}

	if err := os.WriteFile(opts.Output, buf.Bytes(), outputFileMode); err != nil {
		return &FileError{Path: opts.Output, Err: err}
	}

	app.PrintInfo(logger, opts, object)
	return nil
}

// ExitStatus returns the process exit status for the error returned by
// ProcessFile.
func ExitStatus(err error) int {
	var syntaxErr *assembler.SyntaxError
	var fileErr *FileError

	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &syntaxErr):
		return ExitSyntax
	case errors.As(err, &fileErr):
		return ExitFile
	default:
		return ExitUsage
	}
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("twopass", log.String("version", buildinfo.Version(version, commit, date)))
}
