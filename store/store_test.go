package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"boatcloser/transaction"
	"boatcloser/workflow"
)

func startedSnapshot() *Snapshot {
	st := transaction.NewState()
	st.ID = "BC-01TEST"
	st.Role = transaction.RoleBuyer
	st.Vessel.Name = "Sea Breeze"
	st.Parties.Buyer.Name = "Dana Smith"
	return &Snapshot{State: *st, View: workflow.ViewSteps, Step: 2}
}

func TestSaveAndLoad(t *testing.T) {
	fs := NewFileStore(t.TempDir())

	if err := fs.Save(startedSnapshot()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	got, err := fs.Load()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got == nil {
		t.Fatal("expected a snapshot")
	}
	if got.ID != "BC-01TEST" || got.Role != transaction.RoleBuyer {
		t.Errorf("identity not restored: %+v", got.State)
	}
	if got.View != workflow.ViewSteps || got.Step != 2 {
		t.Errorf("position not restored: view=%s step=%d", got.View, got.Step)
	}
	if got.LastSaved.IsZero() {
		t.Error("expected LastSaved to be stamped")
	}
}

func TestSaveSkipsEmptySession(t *testing.T) {
	fs := NewFileStore(t.TempDir())

	s := &Snapshot{State: *transaction.NewState()}
	if err := fs.Save(s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := os.Stat(fs.Path()); !os.IsNotExist(err) {
		t.Error("untouched session must not be written")
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	got, err := fs.Load()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got != nil {
		t.Error("missing file should yield nil snapshot")
	}
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(dir)
	if err := os.WriteFile(fs.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := fs.Load()
	if err != nil {
		t.Fatalf("corrupt file should not error, got %v", err)
	}
	if got != nil {
		t.Error("corrupt file should yield nil snapshot")
	}
}

func TestSnapshotKeys(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	if err := fs.Save(startedSnapshot()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(fs.Path())
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{
		"transactionId", "userRole", "vesselData", "partiesData", "termsData",
		"escrowData", "diligenceItems", "signatures", "currentView", "currentStep", "lastSaved",
	} {
		if _, ok := raw[key]; !ok {
			t.Errorf("snapshot missing key %q", key)
		}
	}
}

func TestHasResumable(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	if fs.HasResumable() {
		t.Error("no file, nothing to resume")
	}

	if err := fs.Save(startedSnapshot()); err != nil {
		t.Fatal(err)
	}
	if !fs.HasResumable() {
		t.Error("saved session should be resumable")
	}
}

func TestReset(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	if err := fs.Save(startedSnapshot()); err != nil {
		t.Fatal(err)
	}
	if err := fs.Reset(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := os.Stat(fs.Path()); !os.IsNotExist(err) {
		t.Error("reset should remove the snapshot")
	}
	// Resetting again is fine.
	if err := fs.Reset(); err != nil {
		t.Fatalf("second reset should be a no-op, got %v", err)
	}
}

func TestSaveCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	fs := NewFileStore(dir)
	if err := fs.Save(startedSnapshot()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := os.Stat(fs.Path()); err != nil {
		t.Errorf("snapshot not written: %v", err)
	}
}
