package store

import (
	"errors"
	"sync"
)

// MemStore is the in-memory Store used by tests and the MCP server when no
// database path is configured.
type MemStore struct {
	mu     sync.Mutex
	nextID int64
	runs   map[int64]*Run
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{nextID: 1, runs: make(map[int64]*Run)}
}

func (m *MemStore) SaveRun(r *Run) (int64, error) {
	if r == nil {
		return 0, errors.New("run is nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *r
	cp.ID = m.nextID
	cp.Trajectory = append([]float64(nil), r.Trajectory...)
	if cp.CreatedAt == "" {
		cp.CreatedAt = nowUTC()
	}
	m.runs[cp.ID] = &cp
	m.nextID++
	return cp.ID, nil
}

func (m *MemStore) GetRun(runID int64) (*Run, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.runs[runID]
	if !ok {
		return nil, nil
	}
	cp := *r
	cp.Trajectory = append([]float64(nil), r.Trajectory...)
	return &cp, nil
}

func (m *MemStore) ListRuns() ([]*Run, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := make([]*Run, 0, len(m.runs))
	for id := int64(1); id < m.nextID; id++ {
		if r, ok := m.runs[id]; ok {
			cp := *r
			cp.Trajectory = append([]float64(nil), r.Trajectory...)
			list = append(list, &cp)
		}
	}
	return list, nil
}
