package store

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func sampleRun() *Run {
	return &Run{
		Label:      "first attempt",
		Corpus:     "voyage",
		Ciphertext: "WKH_LVODQG",
		Key:        "QWERTYUIOPASDFGHJKLZXCVBNM_",
		Plaintext:  "THE_ISLAND",
		Score:      -812.44,
		Iterations: 20000,
		Seed:       421,
		Trajectory: []float64{-2000.1, -1500.7, -812.44},
	}
}

// roundTrip exercises one Store implementation through save, get, and list.
func roundTrip(t *testing.T, s Store) {
	t.Helper()

	id, err := s.SaveRun(sampleRun())
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if id == 0 {
		t.Fatal("SaveRun returned id 0")
	}

	got, err := s.GetRun(id)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got == nil {
		t.Fatal("GetRun returned nil for a saved run")
	}
	want := sampleRun()
	want.ID = id
	ignore := cmpopts.IgnoreFields(Run{}, "CreatedAt")
	if diff := cmp.Diff(want, got, ignore); diff != "" {
		t.Errorf("run changed across round trip (-want +got):\n%s", diff)
	}
	if got.CreatedAt == "" {
		t.Error("CreatedAt not set on save")
	}

	if _, err := s.SaveRun(&Run{Ciphertext: "XY", Key: "k", Plaintext: "AB", Iterations: 1}); err != nil {
		t.Fatalf("SaveRun second: %v", err)
	}
	list, err := s.ListRuns()
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("ListRuns returned %d runs, want 2", len(list))
	}
	if list[0].ID >= list[1].ID {
		t.Errorf("ListRuns order = [%d %d], want oldest first", list[0].ID, list[1].ID)
	}

	missing, err := s.GetRun(9999)
	if err != nil {
		t.Fatalf("GetRun(missing): %v", err)
	}
	if missing != nil {
		t.Errorf("GetRun(missing) = %+v, want nil", missing)
	}
}

func TestSqlStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()
	roundTrip(t, s)
}

func TestSqlStore_ListSkipsTrajectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if _, err := s.SaveRun(sampleRun()); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	list, err := s.ListRuns()
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(list) != 1 || list[0].Trajectory != nil {
		t.Errorf("ListRuns loaded trajectories, want the light listing")
	}
}

func TestSqlStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	id, err := s.SaveRun(sampleRun())
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	got, err := s2.GetRun(id)
	if err != nil || got == nil {
		t.Fatalf("GetRun after reopen: got %+v err %v", got, err)
	}
	if got.Plaintext != "THE_ISLAND" {
		t.Errorf("Plaintext = %q after reopen", got.Plaintext)
	}
}

func TestMemStore_RoundTrip(t *testing.T) {
	roundTrip(t, NewMemStore())
}

func TestMemStore_CopiesOnRead(t *testing.T) {
	s := NewMemStore()
	id, err := s.SaveRun(sampleRun())
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	first, err := s.GetRun(id)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	first.Plaintext = "MUTATED"
	first.Trajectory[0] = 0

	second, err := s.GetRun(id)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if second.Plaintext != "THE_ISLAND" || second.Trajectory[0] != -2000.1 {
		t.Error("mutating a returned run leaked into the store")
	}
}
