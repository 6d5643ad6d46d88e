package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// nowUTC returns the current UTC time as an ISO 8601 string.
func nowUTC() string { return time.Now().UTC().Format(time.RFC3339) }

// SqlStore implements Store with SQLite.
type SqlStore struct {
	db *sql.DB
}

// Open opens or creates a SQLite DB at path and brings the schema up to
// date. The parent directory is created when missing.
func Open(path string) (*SqlStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	s := &SqlStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SqlStore) migrate() error {
	var tableCount int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableCount)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableCount == 0 {
		// Fresh database.
		if _, err := s.db.Exec(schemaV1); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_version(version) VALUES(?)", schemaVersionV1); err != nil {
			return fmt.Errorf("set schema version: %w", err)
		}
		return nil
	}

	var v int
	if err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&v); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if v != schemaVersionV1 {
		return fmt.Errorf("unknown schema version %d", v)
	}
	return nil
}

// Close closes the database connection.
func (s *SqlStore) Close() error {
	return s.db.Close()
}

// SaveRun inserts a run and returns its id.
func (s *SqlStore) SaveRun(r *Run) (int64, error) {
	if r == nil {
		return 0, errors.New("run is nil")
	}
	traj, err := json.Marshal(r.Trajectory)
	if err != nil {
		return 0, fmt.Errorf("marshal trajectory: %w", err)
	}
	res, err := s.db.Exec(
		`INSERT INTO runs(label, corpus, ciphertext, result_key, plaintext, score,
		                  iterations, seed, trajectory, created_at)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Label, r.Corpus, r.Ciphertext, r.Key, r.Plaintext, r.Score,
		r.Iterations, int64(r.Seed), traj, nowUTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// GetRun returns the run by id, or nil when it does not exist.
func (s *SqlStore) GetRun(runID int64) (*Run, error) {
	var r Run
	var seed int64
	var traj []byte
	err := s.db.QueryRow(
		`SELECT id, label, corpus, ciphertext, result_key, plaintext, score,
		        iterations, seed, trajectory, created_at
		 FROM runs WHERE id = ?`,
		runID,
	).Scan(&r.ID, &r.Label, &r.Corpus, &r.Ciphertext, &r.Key, &r.Plaintext,
		&r.Score, &r.Iterations, &seed, &traj, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	r.Seed = uint64(seed)
	if err := json.Unmarshal(traj, &r.Trajectory); err != nil {
		return nil, fmt.Errorf("unmarshal trajectory: %w", err)
	}
	return &r, nil
}

// ListRuns returns all runs, oldest first. Trajectories are not loaded; use
// GetRun for the full record.
func (s *SqlStore) ListRuns() ([]*Run, error) {
	rows, err := s.db.Query(
		`SELECT id, label, corpus, ciphertext, result_key, plaintext, score,
		        iterations, seed, created_at
		 FROM runs ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()
	var list []*Run
	for rows.Next() {
		var r Run
		var seed int64
		if err := rows.Scan(&r.ID, &r.Label, &r.Corpus, &r.Ciphertext, &r.Key,
			&r.Plaintext, &r.Score, &r.Iterations, &seed, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Seed = uint64(seed)
		list = append(list, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return list, nil
}
