// Package main implements the main entry point for a two pass assembler
// that writes a textual object dump.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/twopass/internal/cli"
	"github.com/retroenv/twopass/internal/config"
	"github.com/retroenv/twopass/internal/fileprocessor"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, asmOpts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			logger.Error(usageErr.Error())
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(fileprocessor.ExitUsage)
	}

	logger := config.CreateLogger(opts)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	if err := fileprocessor.ProcessFile(ctx, logger, opts, asmOpts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			os.Exit(fileprocessor.ExitUsage)
		}
		logger.Error("Assembling failed", log.Err(err))
		os.Exit(fileprocessor.ExitStatus(err))
	}
}
