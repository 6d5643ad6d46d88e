package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"prolom/internal/evaluate"
	"prolom/internal/format"
	"prolom/internal/logging"
	"prolom/internal/scenarios"
)

var evalFlags struct {
	parallel   int
	iterations int
	anneal     bool
	format     string
	list       bool
}

var evalCmd = &cobra.Command{
	Use:   "eval [scenario...]",
	Short: "Run the evaluation scenarios and report recovery accuracy",
	Long: `Encrypts each scenario's known plaintext under its known key, runs the
search on the ciphertext alone, and reports how much of the original text
came back. With no arguments every embedded scenario runs.`,
	Args: cobra.ArbitraryArgs,
	RunE: runEval,
}

func init() {
	f := evalCmd.Flags()
	f.IntVarP(&evalFlags.parallel, "parallel", "p", 1, "Scenarios evaluated at once (each is an independent search)")
	f.IntVarP(&evalFlags.iterations, "iterations", "n", 0, "Override every scenario's iteration budget")
	f.BoolVar(&evalFlags.anneal, "anneal", false, "Guided proposer with a geometric cooling schedule")
	f.StringVar(&evalFlags.format, "format", "ascii", "Table format (ascii, markdown)")
	f.BoolVar(&evalFlags.list, "list", false, "List the embedded scenarios and exit")
}

func runEval(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if evalFlags.list {
		for _, name := range scenarios.ListScenarios() {
			scn, err := scenarios.LoadScenario(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-20s %s\n", name, scn.Description)
		}
		return nil
	}

	opts := evaluate.Options{
		Iterations: evalFlags.iterations,
		Anneal:     evalFlags.anneal,
		Logger:     logging.New("eval"),
	}
	outcomes, err := evaluate.RunAll(cmd.Context(), args, evalFlags.parallel, opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, evaluate.Report(format.ParseMode(evalFlags.format), outcomes))
	return nil
}
