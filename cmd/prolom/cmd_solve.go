package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"prolom/internal/corpus"
	"prolom/internal/format"
	"prolom/internal/logging"
	"prolom/internal/store"
	"prolom/pkg/mcmc"
)

var solveFlags struct {
	file       string
	corpus     string
	matrix     string
	iterations int
	startKey   string
	seed       uint64
	anneal     bool
	save       bool
	label      string
	db         string
	trajectory int
	format     string
}

var solveCmd = &cobra.Command{
	Use:   "solve [ciphertext]",
	Short: "Recover the key of a substitution ciphertext",
	Long: `Runs the Metropolis-Hastings search against the bigram model of a
reference corpus (or a matrix CSV from 'prolom train') and prints the best
key, its decryption, and its plausibility score.

The search is a best-effort heuristic: short ciphertexts and rare symbols
may come back partially wrong. More iterations and --anneal usually help.`,
	Args: cobra.ArbitraryArgs,
	RunE: runSolve,
}

func init() {
	f := solveCmd.Flags()
	f.StringVarP(&solveFlags.file, "file", "f", "", "Read ciphertext from file ('-' = stdin)")
	f.StringVar(&solveFlags.corpus, "corpus", corpus.Default, "Embedded reference corpus")
	f.StringVar(&solveFlags.matrix, "matrix", "", "Transition matrix CSV (overrides --corpus)")
	f.IntVarP(&solveFlags.iterations, "iterations", "n", 20000, "Proposal budget")
	f.StringVar(&solveFlags.startKey, "start-key", "", "Starting permutation (default: identity)")
	f.Uint64Var(&solveFlags.seed, "seed", 0, "PRNG seed for a reproducible run (0 = entropy)")
	f.BoolVar(&solveFlags.anneal, "anneal", false, "Guided proposer with a geometric cooling schedule")
	f.BoolVar(&solveFlags.save, "save", false, "Persist the run to the store")
	f.StringVar(&solveFlags.label, "label", "", "Label for the saved run")
	f.StringVar(&solveFlags.db, "db", "", "Store DB path (default $PROLOM_DB or "+store.DefaultDBPath+")")
	f.IntVar(&solveFlags.trajectory, "trajectory", 0, "Print the score trajectory sampled to this many points")
	f.StringVar(&solveFlags.format, "format", "ascii", "Table format (ascii, markdown)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	text, err := readText(args, solveFlags.file)
	if err != nil {
		return err
	}
	m, err := loadMatrix(solveFlags.corpus, solveFlags.matrix)
	if err != nil {
		return err
	}

	ciphertext := m.Alphabet().Normalize(text)
	if ciphertext == "" {
		return fmt.Errorf("ciphertext has no alphabet symbols")
	}

	b := mcmc.NewBreaker().
		Ciphertext(ciphertext).
		Matrix(m).
		Iterations(solveFlags.iterations).
		StartKey(strings.ToUpper(solveFlags.startKey)).
		Logger(logging.New("solve")).
		ProgressEvery(500)
	if solveFlags.seed != 0 {
		b.Rand(mcmc.NewSource(solveFlags.seed))
	}
	if solveFlags.anneal {
		b.Proposer(mcmc.NewGuidedProposer(m)).
			Schedule(mcmc.NewGeometricSchedule(solveFlags.iterations))
	}

	res, err := b.ExecuteContext(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Key:   %s\n", res.Key)
	fmt.Fprintf(out, "Score: %s\n", format.FmtScore(res.Score))
	fmt.Fprintf(out, "Text:  %s\n", res.Plaintext)

	if solveFlags.trajectory > 0 {
		mode := format.ParseMode(solveFlags.format)
		fmt.Fprintf(out, "\n%s\n", format.Spark(res.Trajectory, 60))
		fmt.Fprintln(out, format.TrajectoryTable(mode, res.Trajectory, solveFlags.trajectory))
	}

	if solveFlags.save {
		st, err := store.Open(dbPath(solveFlags.db))
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
		id, err := st.SaveRun(&store.Run{
			Label:      solveFlags.label,
			Corpus:     solveFlags.corpus,
			Ciphertext: ciphertext,
			Key:        res.Key,
			Plaintext:  res.Plaintext,
			Score:      res.Score,
			Iterations: solveFlags.iterations,
			Seed:       solveFlags.seed,
			Trajectory: res.Trajectory,
		})
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		fmt.Fprintf(out, "\nSaved run #%d\n", id)
	}
	return nil
}
