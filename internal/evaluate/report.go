package evaluate

import (
	"prolom/internal/format"
)

// Report renders a suite of outcomes as one table, with an average accuracy
// footer.
func Report(m format.Mode, outcomes []*Outcome) string {
	tb := format.NewTable(m)
	tb.Header("Scenario", "Corpus", "Iterations", "Score", "Accuracy", "Time")

	sum := 0.0
	for _, o := range outcomes {
		tb.Row(o.Name, o.Corpus, o.Iterations,
			format.FmtScore(o.Score),
			format.FmtAccuracy(o.Accuracy),
			format.FmtDuration(o.Elapsed))
		sum += o.Accuracy
	}
	if len(outcomes) > 1 {
		tb.Footer("", "", "", "avg", format.FmtAccuracy(sum/float64(len(outcomes))), "")
	}
	tb.Columns(
		format.ColumnConfig{Number: 3, Align: format.AlignRight},
		format.ColumnConfig{Number: 4, Align: format.AlignRight},
		format.ColumnConfig{Number: 5, Align: format.AlignRight},
	)
	return tb.String()
}
