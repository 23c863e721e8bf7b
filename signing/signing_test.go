package signing

import (
	"errors"
	"testing"
	"time"
)

var signedAt = time.Date(2026, time.August, 29, 15, 30, 0, 0, time.UTC)

func TestSign(t *testing.T) {
	s := NewStore()

	rec, err := s.Sign("purchase-agreement", "Dana Smith", "buyer", true, signedAt)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if rec.ID == "" {
		t.Error("expected record id to be assigned")
	}
	if rec.Date != "8/29/2026" {
		t.Errorf("date = %q, want 8/29/2026", rec.Date)
	}
	if rec.Role != "buyer" {
		t.Errorf("role = %q", rec.Role)
	}
	if !s.IsSigned("purchase-agreement") {
		t.Error("document should be marked signed")
	}

	got, ok := s.Record("purchase-agreement")
	if !ok || got.SignerName != "Dana Smith" {
		t.Errorf("record = %+v, ok = %v", got, ok)
	}
}

func TestSignValidation(t *testing.T) {
	s := NewStore()

	if _, err := s.Sign("bill-of-sale", "", "buyer", true, signedAt); !errors.Is(err, ErrMissingName) {
		t.Errorf("expected ErrMissingName, got %v", err)
	}
	if _, err := s.Sign("bill-of-sale", "Dana Smith", "buyer", false, signedAt); !errors.Is(err, ErrConsentRequired) {
		t.Errorf("expected ErrConsentRequired, got %v", err)
	}
	// The name check comes before consent.
	if _, err := s.Sign("bill-of-sale", "", "buyer", false, signedAt); !errors.Is(err, ErrMissingName) {
		t.Errorf("expected ErrMissingName, got %v", err)
	}
	if s.IsSigned("bill-of-sale") {
		t.Error("failed attempts must not mark the document signed")
	}
	if s.Count() != 0 {
		t.Errorf("count = %d, want 0", s.Count())
	}
}

func TestSignIsOneWay(t *testing.T) {
	s := NewStore()

	first, err := s.Sign("closing-statement", "Dana Smith", "buyer", true, signedAt)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	_, err = s.Sign("closing-statement", "Someone Else", "seller", true, signedAt.Add(time.Hour))
	if !errors.Is(err, ErrAlreadySigned) {
		t.Fatalf("expected ErrAlreadySigned, got %v", err)
	}

	got, _ := s.Record("closing-statement")
	if got != first {
		t.Error("repeat attempt must not replace the original record")
	}
}

func TestReadyToClose(t *testing.T) {
	required := []string{"purchase-agreement", "bill-of-sale", "closing-statement"}
	s := NewStore()

	if s.ReadyToClose(required) {
		t.Error("empty ledger should not be ready to close")
	}
	for _, id := range required[:2] {
		if _, err := s.Sign(id, "Dana Smith", "buyer", true, signedAt); err != nil {
			t.Fatal(err)
		}
	}
	if s.ReadyToClose(required) {
		t.Error("two of three required signed should not be ready")
	}
	if _, err := s.Sign(required[2], "Dana Smith", "buyer", true, signedAt); err != nil {
		t.Fatal(err)
	}
	if !s.ReadyToClose(required) {
		t.Error("all required signed should be ready")
	}
	// Optional documents never factor in.
	if _, err := s.Sign("sea-trial-agreement", "Dana Smith", "buyer", true, signedAt); err != nil {
		t.Fatal(err)
	}
	if s.Count() != 4 {
		t.Errorf("count = %d, want 4", s.Count())
	}
}

func TestSignAfterZeroValueDecode(t *testing.T) {
	// A ledger decoded from a partial snapshot has nil maps.
	var s Store
	if s.IsSigned("purchase-agreement") {
		t.Error("zero-value ledger should report unsigned")
	}
	if _, err := s.Sign("purchase-agreement", "Dana Smith", "buyer", true, signedAt); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !s.IsSigned("purchase-agreement") {
		t.Error("document should be signed")
	}
}
