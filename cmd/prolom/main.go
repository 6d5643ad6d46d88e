// prolom breaks monoalphabetic substitution ciphers with a
// Metropolis-Hastings search against a bigram language model.
//
// Usage:
//
//	prolom solve <ciphertext> [--corpus=<name>|--matrix=<csv>] [--iterations=N]
//	prolom encrypt <text> --key=<permutation>
//	prolom train [--corpus=<name>] [<file>...] -o <csv>
//	prolom eval [<scenario>...] [--parallel=N]
//	prolom runs [list|show <id>]
//	prolom serve
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"prolom/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	logLevel  string
	logFormat string
}

var rootCmd = &cobra.Command{
	Use:   "prolom",
	Short: "Substitution-cipher key recovery by MCMC search",
	Long: "Prolom recovers the key of a monoalphabetic substitution cipher by\n" +
		"Metropolis-Hastings search over permutations, scored against the bigram\n" +
		"statistics of a reference corpus.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: func(*cobra.Command, []string) error {
		level, err := logging.ParseLevel(rootFlags.logLevel)
		if err != nil {
			return err
		}
		logging.Init(level, rootFlags.logFormat)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
