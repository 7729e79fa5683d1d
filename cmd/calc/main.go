package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			printErr(os.Stderr, err, false)
		}
		os.Exit(1)
	}
}

// newRootCmd creates the calc command with its flags bound to a fresh config.
func newRootCmd() *cobra.Command {
	var cfg config
	cmd := &cobra.Command{
		Use:   "calc [flags] [--] [expression...]",
		Short: "Evaluate arithmetic expressions",
		Long: `Calc evaluates arithmetic expressions over float64.

Positional arguments are joined without separators into a single expression.
With --in, or with no arguments at all, each non-blank input line is a
separate expression. Lines are evaluated in parallel and printed in order.

Expressions use + - * / ^, parentheses, decimal numbers, and named constants.
Adjacent terms multiply, so 2pi is 2*pi and 3(4+5) is 27.

Examples:
  calc 1+2*3/7
  calc --given r=2 '2 pi r'
  calc --fmt %.3f --in expressions.txt
  calc -- -2^2`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&cfg.format, "fmt", "%v", "result formatting verb")
	f.StringArrayVar(&cfg.given, "given", nil, "name=value constant definition (any number of times)")
	f.BoolVar(&cfg.noDefaults, "no-defaults", false, "start without the default constants")
	f.StringVar(&cfg.in, "in", "", "file of expressions, one per line (- for stdin; default stdin if no args given)")
	f.IntVarP(&cfg.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of lines to evaluate at once")
	f.BoolVar(&cfg.echo, "echo", false, "print parse trees")
	f.BoolVarP(&cfg.verbose, "verbose", "v", false, "enable debug logging")
	f.BoolVar(&cfg.noColor, "no-color", false, "disable colored output")
	return cmd
}

// printErr writes an error line to w, in red unless noColor is set or w is
// not a terminal.
func printErr(w io.Writer, err error, noColor bool) {
	c := color.New(color.FgRed)
	if noColor {
		c.DisableColor()
	}
	c.Fprintf(w, "error: %v", err)
	fmt.Fprintln(w)
}
