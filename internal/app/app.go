// Package app provides the main application helper for the assembler.
package app

import (
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/twopass/internal/options"
	"github.com/retroenv/twopass/internal/program"
)

// PrintInfo prints the information about the assembled object.
func PrintInfo(logger *log.Logger, opts options.Program, object *program.Object) {
	if opts.Quiet {
		return
	}

	logger.Info("Assembled source file",
		log.String("input", opts.Input),
		log.String("output", opts.Output),
		log.Int("sections", object.Sections.Len()),
		log.Int("symbols", object.Symbols.Len()),
		log.Int("bytes", object.Size()),
		log.Int("relocations", object.RelocationCount()),
	)
}
