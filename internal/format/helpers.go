package format

import (
	"fmt"
	"strings"
	"time"
)

// FmtScore formats a plausibility score for table cells.
func FmtScore(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FmtAccuracy formats a 0..1 accuracy as a percentage.
func FmtAccuracy(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

// FmtDuration formats a duration as "Xm Ys" or "Ys".
func FmtDuration(d time.Duration) string {
	s := int(d.Seconds())
	if s >= 60 {
		return fmt.Sprintf("%dm %ds", s/60, s%60)
	}
	return fmt.Sprintf("%ds", s)
}

// Truncate shortens s to maxLen characters, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// TrajectoryPoint is one sampled entry of a score trajectory.
type TrajectoryPoint struct {
	Iteration int
	Score     float64
}

// SampleTrajectory picks at most points evenly spaced entries from a
// trajectory, always keeping the first and the last. It returns nil for an
// empty trajectory.
func SampleTrajectory(traj []float64, points int) []TrajectoryPoint {
	if len(traj) == 0 || points <= 0 {
		return nil
	}
	if points == 1 || len(traj) == 1 {
		return []TrajectoryPoint{{Iteration: len(traj) - 1, Score: traj[len(traj)-1]}}
	}
	if points > len(traj) {
		points = len(traj)
	}
	out := make([]TrajectoryPoint, 0, points)
	last := len(traj) - 1
	for i := 0; i < points; i++ {
		idx := i * last / (points - 1)
		out = append(out, TrajectoryPoint{Iteration: idx, Score: traj[idx]})
	}
	return out
}

// TrajectoryTable renders a sampled trajectory as a two-column table.
func TrajectoryTable(m Mode, traj []float64, points int) string {
	tb := NewTable(m)
	tb.Header("Iteration", "Score")
	for _, p := range SampleTrajectory(traj, points) {
		tb.Row(p.Iteration, FmtScore(p.Score))
	}
	tb.Columns(
		ColumnConfig{Number: 1, Align: AlignRight},
		ColumnConfig{Number: 2, Align: AlignRight},
	)
	return tb.String()
}

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// Spark draws a trajectory as a one-line sparkline of width characters.
// A flat trajectory renders as a line of the lowest block.
func Spark(traj []float64, width int) string {
	if len(traj) == 0 || width <= 0 {
		return ""
	}
	lo, hi := traj[0], traj[0]
	for _, v := range traj {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if width > len(traj) {
		width = len(traj)
	}
	var b strings.Builder
	last := len(traj) - 1
	for i := 0; i < width; i++ {
		idx := i * last / max(width-1, 1)
		level := 0
		if hi > lo {
			level = int(float64(len(sparkLevels)-1) * (traj[idx] - lo) / (hi - lo))
		}
		b.WriteRune(sparkLevels[level])
	}
	return b.String()
}
