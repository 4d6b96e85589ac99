package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/petarvukmirovic/eprover-condensation/clauses"
	"github.com/petarvukmirovic/eprover-condensation/condense"
	"github.com/petarvukmirovic/eprover-condensation/parse"
	"github.com/petarvukmirovic/eprover-condensation/terms"
)

var (
	algorithm string
	showStats bool
	verbose   bool
)

func main() {
	cmd := &cobra.Command{
		Use:   "condense [file...]",
		Short: "condense first-order clauses",
		Long: `condense reads first-order clauses, removes redundant literals by
condensation and prints the simplified clauses back. With no file
arguments it reads from stdin.

Clauses are written one per '.'-terminated line, e.g.:

    p(X) | p(a) | ~q(b).
    f(X)=a | f(Y)=a.`,
		RunE: run,
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "linear", "condensation algorithm: quad, set or linear")
	cmd.Flags().BoolVarP(&showStats, "stats", "s", false, "print attempt/success counters")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace committed reductions")
	cmd.SilenceUsage = true
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := zap.NewNop()
	if verbose {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			return fmt.Errorf("could not set up logging: %v", err)
		}
		defer log.Sync()
	}

	bank := terms.NewBank()
	eng := condense.NewEngine(bank)
	eng.SetLogger(log)

	step, err := pickAlgorithm(eng)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		if err := condenseStream(eng, step, bank, os.Stdin, "stdin"); err != nil {
			return err
		}
	}
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("could not open %q: %v", path, err)
		}
		err = condenseStream(eng, step, bank, f, path)
		f.Close()
		if err != nil {
			return err
		}
	}
	if showStats {
		fmt.Printf("# condensation attempts:  %d\n", eng.Stats.Attempts)
		fmt.Printf("# condensation successes: %d\n", eng.Stats.Successes)
	}
	return nil
}

func pickAlgorithm(eng *condense.Engine) (func(*clauses.Clause) bool, error) {
	switch algorithm {
	case "quad":
		return eng.Condense, nil
	case "set":
		return eng.CondenseSet, nil
	case "linear":
		return eng.CondenseLinear, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q: want quad, set or linear", algorithm)
	}
}

func condenseStream(eng *condense.Engine, step func(*clauses.Clause) bool, bank *terms.Bank, r io.Reader, name string) error {
	p := parse.NewParser(bank, r)
	for {
		c, err := p.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("could not parse %s: %v", name, err)
		}
		step(c)
		fmt.Printf("%s.\n", c)
	}
}
