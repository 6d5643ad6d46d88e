// Package store persists completed search runs. The engine has no knowledge
// of it; the CLI and the MCP server save results strictly after a run
// terminates.
package store

// DefaultDBPath is the default relative path for the SQLite DB.
// Open() creates the parent directory (.prolom) when missing.
const DefaultDBPath = ".prolom/prolom.db"

// Run is one persisted search run: the inputs that defined it and the
// result triple plus trajectory it produced.
type Run struct {
	ID         int64
	Label      string
	Corpus     string
	Ciphertext string
	Key        string
	Plaintext  string
	Score      float64
	Iterations int
	Seed       uint64
	Trajectory []float64
	CreatedAt  string
}

// Store is the persistence facade. The CLI and MCP layers use only this
// interface; the implementation is SQLite or in-memory.
type Store interface {
	SaveRun(r *Run) (runID int64, err error)
	GetRun(runID int64) (*Run, error)
	ListRuns() ([]*Run, error)
}
