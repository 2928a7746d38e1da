package cmd

import (
	"fmt"
	"os"

	"github.com/mjezek/sol25interp/internal/astxml"
	"github.com/mjezek/sol25interp/internal/interp"
	"github.com/mjezek/sol25interp/internal/interp/errors"
	"github.com/spf13/cobra"
)

var (
	dumpAST bool
	trace   bool
)

var runCmd = &cobra.Command{
	Use:   "run <ast.xml>",
	Short: "Run a SOL25 program from its XML AST",
	Long: `Execute a SOL25 program whose AST has already been parsed into XML.

Examples:
  # Run a program
  sol25 run program.xml

  # Run with a summary of the parsed AST's classes printed to stderr first
  sol25 run --dump-ast program.xml

  # Run with a trace of every message send
  sol25 run --trace program.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runProgram,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print a summary of the parsed AST's classes to stderr before running")
	runCmd.Flags().BoolVar(&trace, "trace", false, "trace every message send to stderr")
}

func runProgram(_ *cobra.Command, args []string) error {
	filename := args[0]
	f, err := os.Open(filename)
	if err != nil {
		exitWithError("failed to open %s: %v", filename, err)
		return nil
	}
	defer f.Close()

	program, err := astxml.Parse(f)
	if err != nil {
		reportAndExit(err)
		return nil
	}

	if dumpAST {
		fmt.Fprintf(os.Stderr, "AST: %d class(es)\n", len(program.Classes))
		for _, c := range program.Classes {
			fmt.Fprintf(os.Stderr, "  class %s parent %s (%d method(s))\n", c.Name, c.Parent, len(c.Methods))
		}
	}

	ev := interp.New(os.Stdout, os.Stdin)
	if trace {
		ev.Trace = true
		ev.TraceFunc = func(selector string, depth int) {
			fmt.Fprintf(os.Stderr, "%*s%s\n", depth*2, "", selector)
		}
	}

	if err := ev.Load(program); err != nil {
		reportAndExit(err)
		return nil
	}
	if err := ev.Run(); err != nil {
		reportAndExit(err)
		return nil
	}
	return nil
}

// reportAndExit prints err to stderr and exits with the error kind's
// stable process exit code (spec §7), or code 99 (INTERNAL) for an
// error this package did not itself produce.
func reportAndExit(err error) {
	if ie, ok := errors.As(err); ok {
		fmt.Fprintln(os.Stderr, ie.Error())
		os.Exit(ie.Code())
	}
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(99)
}
