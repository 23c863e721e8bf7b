// Package signing tracks per-document signature state for a transaction:
// which documents have been signed, by whom, and whether the set of
// required documents is complete enough to close.
package signing

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrMissingName signals a signing attempt without a signer name.
	ErrMissingName = errors.New("signing: signer name required")
	// ErrConsentRequired signals a signing attempt without the explicit
	// consent acknowledgment.
	ErrConsentRequired = errors.New("signing: consent acknowledgment required")
	// ErrAlreadySigned signals a repeat signing attempt; signing is a
	// one-way transition per document.
	ErrAlreadySigned = errors.New("signing: document already signed")
)

// Record captures one applied signature.
type Record struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"docId"`
	SignerName string    `json:"name"`
	Date       string    `json:"date"`
	SignedAt   time.Time `json:"timestamp"`
	Role       string    `json:"role"`
}

// Store is the signature ledger: a signed-flag map and a parallel record
// map. The two are kept consistent — a signed id always has a record.
type Store struct {
	Signed  map[string]bool   `json:"signedDocs"`
	Records map[string]Record `json:"signatureData"`
}

// NewStore returns an empty ledger.
func NewStore() Store {
	return Store{
		Signed:  map[string]bool{},
		Records: map[string]Record{},
	}
}

// ensure re-establishes the maps after a zero-value or partial decode.
func (s *Store) ensure() {
	if s.Signed == nil {
		s.Signed = map[string]bool{}
	}
	if s.Records == nil {
		s.Records = map[string]Record{}
	}
}

// IsSigned reports whether the document id is present and true in the
// signed map.
func (s *Store) IsSigned(docID string) bool {
	return s.Signed[docID]
}

// Sign applies a signature to the document. It requires a non-empty signer
// name and an explicit consent flag; on any failure nothing is mutated.
func (s *Store) Sign(docID, signerName, role string, consented bool, now time.Time) (Record, error) {
	if signerName == "" {
		return Record{}, ErrMissingName
	}
	if !consented {
		return Record{}, ErrConsentRequired
	}
	if s.IsSigned(docID) {
		return Record{}, ErrAlreadySigned
	}

	s.ensure()
	rec := Record{
		ID:         uuid.NewString(),
		DocumentID: docID,
		SignerName: signerName,
		Date:       now.Format("1/2/2006"),
		SignedAt:   now,
		Role:       role,
	}
	s.Records[docID] = rec
	s.Signed[docID] = true
	return rec, nil
}

// Record returns the signature record for a signed document.
func (s *Store) Record(docID string) (Record, bool) {
	rec, ok := s.Records[docID]
	return rec, ok
}

// ReadyToClose reports whether every required document id has been signed.
func (s *Store) ReadyToClose(requiredDocIDs []string) bool {
	for _, id := range requiredDocIDs {
		if !s.Signed[id] {
			return false
		}
	}
	return true
}

// Count returns the number of signed documents.
func (s *Store) Count() int {
	n := 0
	for _, signed := range s.Signed {
		if signed {
			n++
		}
	}
	return n
}
