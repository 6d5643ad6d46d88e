package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"prolom/internal/format"
	"prolom/internal/store"
)

var runsFlags struct {
	db         string
	format     string
	trajectory int
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List and inspect saved runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved runs",
	Args:  cobra.NoArgs,
	RunE:  runRunsList,
}

var runsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one saved run with its trajectory",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsShow,
}

func init() {
	pf := runsCmd.PersistentFlags()
	pf.StringVar(&runsFlags.db, "db", "", "Store DB path (default $PROLOM_DB or "+store.DefaultDBPath+")")
	pf.StringVar(&runsFlags.format, "format", "ascii", "Table format (ascii, markdown)")

	runsShowCmd.Flags().IntVar(&runsFlags.trajectory, "trajectory", 20, "Trajectory sample points (0 = skip)")

	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
}

func runRunsList(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(dbPath(runsFlags.db))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	runs, err := st.ListRuns()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No saved runs. Use 'prolom solve --save' to record one.")
		return nil
	}

	tb := format.NewTable(format.ParseMode(runsFlags.format))
	tb.Header("ID", "Label", "Corpus", "Iterations", "Score", "Plaintext", "Created")
	for _, r := range runs {
		tb.Row(r.ID, r.Label, r.Corpus, r.Iterations,
			format.FmtScore(r.Score), format.Truncate(r.Plaintext, 40), r.CreatedAt)
	}
	tb.Columns(
		format.ColumnConfig{Number: 1, Align: format.AlignRight},
		format.ColumnConfig{Number: 4, Align: format.AlignRight},
		format.ColumnConfig{Number: 5, Align: format.AlignRight},
	)
	fmt.Fprintln(out, tb.String())
	return nil
}

func runRunsShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("run id must be a number, got %q", args[0])
	}

	st, err := store.Open(dbPath(runsFlags.db))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	r, err := st.GetRun(id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("run #%d not found", id)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run:        #%d", r.ID)
	if r.Label != "" {
		fmt.Fprintf(out, " (%s)", r.Label)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Created:    %s\n", r.CreatedAt)
	fmt.Fprintf(out, "Corpus:     %s\n", r.Corpus)
	fmt.Fprintf(out, "Iterations: %d\n", r.Iterations)
	if r.Seed != 0 {
		fmt.Fprintf(out, "Seed:       %d\n", r.Seed)
	}
	fmt.Fprintf(out, "Key:        %s\n", r.Key)
	fmt.Fprintf(out, "Score:      %s\n", format.FmtScore(r.Score))
	fmt.Fprintf(out, "Ciphertext: %s\n", r.Ciphertext)
	fmt.Fprintf(out, "Plaintext:  %s\n", r.Plaintext)

	if runsFlags.trajectory > 0 && len(r.Trajectory) > 0 {
		mode := format.ParseMode(runsFlags.format)
		fmt.Fprintf(out, "\n%s\n", format.Spark(r.Trajectory, 60))
		fmt.Fprintln(out, format.TrajectoryTable(mode, r.Trajectory, runsFlags.trajectory))
	}
	return nil
}
