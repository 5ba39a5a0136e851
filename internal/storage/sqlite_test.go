package storage

import (
	"testing"

	"github.com/zappabad/goldencross/internal/sim"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndLoadRun(t *testing.T) {
	store := openTestStore(t)

	cfg := sim.DefaultConfig()
	res, err := sim.Run(cfg)
	if err != nil {
		t.Fatalf("sim.Run: %v", err)
	}

	runID, err := store.SaveRun(cfg, res)
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	runs, err := store.ListRuns()
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if runs[0].ID != runID {
		t.Errorf("run id %d, want %d", runs[0].ID, runID)
	}
	if runs[0].Config != cfg {
		t.Errorf("config round-trip: got %+v, want %+v", runs[0].Config, cfg)
	}
	if runs[0].FinalValue != res.FinalValue {
		t.Errorf("final value %v, want %v", runs[0].FinalValue, res.FinalValue)
	}

	ledger, err := store.LoadLedger(runID)
	if err != nil {
		t.Fatalf("LoadLedger: %v", err)
	}
	if len(ledger) != len(res.Ledger) {
		t.Fatalf("ledger length %d, want %d", len(ledger), len(res.Ledger))
	}
	for i := range ledger {
		if ledger[i] != res.Ledger[i] {
			t.Fatalf("day %d round-trip:\ngot  %+v\nwant %+v", res.Ledger[i].Day, ledger[i], res.Ledger[i])
		}
	}
}

func TestListRuns_Ordering(t *testing.T) {
	store := openTestStore(t)

	cfg := sim.DefaultConfig()
	res, err := sim.Run(cfg)
	if err != nil {
		t.Fatalf("sim.Run: %v", err)
	}

	var ids []int64
	for i := 0; i < 3; i++ {
		id, err := store.SaveRun(cfg, res)
		if err != nil {
			t.Fatalf("SaveRun %d: %v", i, err)
		}
		ids = append(ids, id)
	}

	runs, err := store.ListRuns()
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}
	// Most recent first.
	for i, r := range runs {
		if want := ids[len(ids)-1-i]; r.ID != want {
			t.Errorf("position %d: run %d, want %d", i, r.ID, want)
		}
	}
}

func TestLoadLedger_Unknown(t *testing.T) {
	store := openTestStore(t)
	ledger, err := store.LoadLedger(999)
	if err != nil {
		t.Fatalf("LoadLedger: %v", err)
	}
	if len(ledger) != 0 {
		t.Fatalf("expected empty ledger for unknown run, got %d rows", len(ledger))
	}
}
