// Package store persists the one live transaction to disk so a session can
// be resumed. The snapshot mirrors what the user had on screen: the
// transaction data plus the current position in the workflow.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"boatcloser/logger"
	"boatcloser/transaction"
	"boatcloser/workflow"
)

const snapshotFile = "boatcloser_current_transaction.json"

// Snapshot is the saved form of a session.
type Snapshot struct {
	transaction.State
	View      workflow.View `json:"currentView"`
	Step      int           `json:"currentStep"`
	LastSaved time.Time     `json:"lastSaved"`
}

// FileStore saves and loads snapshots under a data directory.
type FileStore struct {
	path string
	log  *logrus.Entry
}

// NewFileStore returns a store writing to dataDir.
func NewFileStore(dataDir string) *FileStore {
	return &FileStore{
		path: filepath.Join(dataDir, snapshotFile),
		log:  logger.NewSublogger("store"),
	}
}

// Path returns the snapshot file location.
func (f *FileStore) Path() string {
	return f.path
}

// worthSaving reports whether the session has anything to come back to.
// Untouched sessions are not written, so a fresh start leaves no file.
func worthSaving(s *Snapshot) bool {
	return s.ID != "" || s.Role != "" || s.Vessel.Name != "" ||
		s.Parties.Buyer.Name != "" || s.Parties.Seller.Name != ""
}

// Save writes the snapshot atomically: a temp file in the same directory,
// then a rename over the target. Empty sessions are skipped.
func (f *FileStore) Save(s *Snapshot) error {
	if !worthSaving(s) {
		return nil
	}
	s.LastSaved = time.Now().UTC()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("store: create data dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), snapshotFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("store: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("store: write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("store: replace snapshot: %w", err)
	}
	return nil
}

// Load reads the saved snapshot. A missing or unreadable file yields nil
// with no error, so startup falls through to a fresh session.
func (f *FileStore) Load() (*Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read snapshot: %w", err)
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		f.log.WithError(err).Warn("Discarding corrupt snapshot")
		return nil, nil
	}
	return &s, nil
}

// HasResumable reports whether a saved session exists that is worth
// offering to continue.
func (f *FileStore) HasResumable() bool {
	s, err := f.Load()
	if err != nil || s == nil {
		return false
	}
	return s.Vessel.Name != "" || s.Parties.Buyer.Name != "" || s.Parties.Seller.Name != ""
}

// Reset deletes the saved snapshot.
func (f *FileStore) Reset() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("store: remove snapshot: %w", err)
	}
	return nil
}
