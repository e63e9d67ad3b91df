// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/twopass/internal/options"
)

// ParseFlags parses command line flags and returns program and assembler options
func ParseFlags() (options.Program, options.Assembler, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var opts options.Program
	asmOpts := options.NewAssembler()
	readOptionFlags(flags, &opts)

	if err := flags.Parse(os.Args[1:]); err != nil {
		return opts, asmOpts, &UsageError{flags: flags, msg: err.Error()}
	}

	args := flags.Args()
	if err := validateArgs(flags, args); err != nil {
		return opts, asmOpts, err
	}
	if opts.Output == "" {
		return opts, asmOpts, &UsageError{flags: flags, msg: "missing output file name"}
	}

	opts.Input = args[0]
	return opts, asmOpts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the command syntax and all flags.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: twopass [options] -o <output file> <input file>\n\n")
	e.flags.SetOutput(os.Stdout)
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks that exactly one input file is passed as last argument
func validateArgs(flags *flag.FlagSet, args []string) error {
	if len(args) == 0 {
		return &UsageError{flags: flags, msg: "missing input file name"}
	}

	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after input file, please pass the input file as last argument", arg),
			}
		}
	}

	if len(args) > 1 {
		return &UsageError{flags: flags, msg: "only a single input file can be assembled"}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the output object dump file")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
