package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/zephyrtronium/calc"
)

// config holds the command-line options.
type config struct {
	format     string
	given      []string
	noDefaults bool
	in         string
	jobs       int
	echo       bool
	verbose    bool
	noColor    bool
}

// errReported is returned from run when every error has already been
// printed.
var errReported = errors.New("errors reported")

// item is a single expression to evaluate.
type item struct {
	// label identifies the item in error messages. It is empty for the
	// expression given on the command line.
	label string
	src   string

	expr *calc.Expr
	val  float64
	err  error
}

func run(cmd *cobra.Command, cfg config, args []string) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	lvl := slog.LevelWarn
	if cfg.verbose {
		lvl = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))

	if cfg.jobs < 1 {
		return fmt.Errorf("--jobs must be positive, not %d", cfg.jobs)
	}
	consts, err := constants(cfg.noDefaults, cfg.given)
	if err != nil {
		return err
	}
	logger.Debug("constants", "names", consts.Names())

	var items []*item
	if len(args) > 0 {
		items = append(items, &item{src: strings.Join(args, "")})
	}
	if cfg.in != "" || len(args) == 0 {
		r, done, err := infile(cmd, cfg.in)
		if err != nil {
			return err
		}
		lines, err := readLines(r)
		done()
		if err != nil {
			return err
		}
		items = append(items, lines...)
	}
	logger.Debug("evaluating", "expressions", len(items), "jobs", cfg.jobs)

	var g errgroup.Group
	g.SetLimit(cfg.jobs)
	for _, it := range items {
		it := it
		g.Go(func() error {
			it.expr, it.err = calc.Parse(it.src)
			if it.err == nil {
				it.val, it.err = it.expr.Eval(consts)
			}
			logger.Debug("evaluated", "src", it.src, "value", it.val, "err", it.err)
			return nil
		})
	}
	g.Wait()

	verb := cfg.format + "\n"
	failed := false
	for _, it := range items {
		if it.err != nil {
			failed = true
			err := it.err
			if it.label != "" {
				err = fmt.Errorf("%s: %w", it.label, err)
			}
			printErr(stderr, err, cfg.noColor)
			continue
		}
		if cfg.echo {
			fmt.Fprintf(stdout, "%v : ", it.expr)
		}
		fmt.Fprintf(stdout, verb, it.val)
	}
	if failed {
		return errReported
	}
	return nil
}

// constants builds the constant table from name=value definitions. Each value
// is an expression evaluated with the definitions before it.
func constants(noDefaults bool, given []string) (*calc.Constants, error) {
	var opts []calc.ConstOption
	if noDefaults {
		opts = append(opts, calc.NoDefaults())
	}
	c := calc.NewConstants(opts...)
	for _, s := range given {
		name, val, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf(`constant definitions must be "name=value", not %q`, s)
		}
		name = strings.TrimSpace(name)
		if toks, err := calc.Tokenize(name); err != nil || len(toks) != 1 || toks[0].Kind != calc.TokenIdent {
			return nil, fmt.Errorf("constant name %q must be only letters", name)
		}
		v, err := calc.Evaluate(val, c)
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", name, err)
		}
		c = c.Clone(calc.Define(name, v))
	}
	return c, nil
}

// infile opens the named input, or the command's standard input for "" or
// "-". The returned function closes the input.
func infile(cmd *cobra.Command, name string) (io.Reader, func(), error) {
	if name == "" || name == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// readLines reads the non-blank lines of r as items labeled by line number.
func readLines(r io.Reader) ([]*item, error) {
	var items []*item
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, &item{label: fmt.Sprintf("line %d", n), src: line})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return items, nil
}
