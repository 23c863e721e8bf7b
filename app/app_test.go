package app

import (
	"errors"
	"strings"
	"testing"

	"boatcloser/config"
	"boatcloser/document"
	"boatcloser/share"
	"boatcloser/signing"
	"boatcloser/transaction"
	"boatcloser/workflow"
)

func testApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	cfg.ShowPaywall = false
	cfg.ShowEscrowStep = true
	return New(cfg)
}

func fillThroughParties(t *testing.T, a *App) {
	t.Helper()
	if err := a.ChooseRole(transaction.RoleBuyer); err != nil {
		t.Fatal(err)
	}
	a.SetVessel(transaction.Vessel{Make: "Catalina", Model: "320", Year: "2005", Name: "Wind Dancer"})
	if err := a.Advance(); err != nil {
		t.Fatal(err)
	}
	a.SetParties(transaction.Parties{
		Buyer:  transaction.Party{Name: "Dana Smith"},
		Seller: transaction.Party{Name: "Lee Jones"},
	})
}

func TestChooseRole(t *testing.T) {
	a := testApp(t)

	if err := a.ChooseRole("broker"); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
	if err := a.ChooseRole(transaction.RoleSeller); err != nil {
		t.Fatal(err)
	}
	if a.Pos.View != workflow.ViewSteps || a.Pos.Step != 0 {
		t.Errorf("expected first step, got %+v", a.Pos)
	}
}

func TestAdvanceBlockedByIncompleteStep(t *testing.T) {
	a := testApp(t)
	if err := a.ChooseRole(transaction.RoleBuyer); err != nil {
		t.Fatal(err)
	}

	err := a.Advance()
	if !errors.Is(err, workflow.ErrStepIncomplete) {
		t.Fatalf("expected ErrStepIncomplete, got %v", err)
	}
	if a.Pos.Step != 0 {
		t.Error("blocked advance must not move")
	}
	if a.State.ID != "" {
		t.Error("identity must not be assigned on a blocked advance")
	}
}

func TestAdvanceAssignsIdentityOnce(t *testing.T) {
	a := testApp(t)
	fillThroughParties(t, a)

	id := a.State.ID
	if !strings.HasPrefix(id, "BC-") {
		t.Fatalf("expected BC- identity after leaving vessel step, got %q", id)
	}

	if err := a.Advance(); err != nil {
		t.Fatal(err)
	}
	if a.State.ID != id {
		t.Error("identity must never be regenerated")
	}
}

func TestCompletionRequiresSignatures(t *testing.T) {
	a := testApp(t)
	fillThroughParties(t, a)
	if err := a.Advance(); err != nil {
		t.Fatal(err)
	}
	a.SetTerms(transaction.Terms{PurchasePrice: "45000", DepositAmount: "4500"})

	// terms -> escrow -> diligence -> documents
	for i := 0; i < 3; i++ {
		if err := a.Advance(); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}
	step, _ := a.CurrentStep()
	if step.ID != workflow.StepDocuments {
		t.Fatalf("expected documents step, got %s", step.ID)
	}

	if err := a.Advance(); !errors.Is(err, workflow.ErrNotReadyToClose) {
		t.Fatalf("expected ErrNotReadyToClose, got %v", err)
	}

	for _, id := range document.RequiredIDs() {
		if _, err := a.Sign(id, "Dana Smith", true); err != nil {
			t.Fatal(err)
		}
	}
	if err := a.Advance(); err != nil {
		t.Fatal(err)
	}
	if a.Pos.View != workflow.ViewComplete {
		t.Errorf("expected completion view, got %s", a.Pos.View)
	}
}

func TestSignValidation(t *testing.T) {
	a := testApp(t)
	fillThroughParties(t, a)

	if _, err := a.Sign("purchase-agreement", "Dana Smith", false); !errors.Is(err, signing.ErrConsentRequired) {
		t.Errorf("expected ErrConsentRequired, got %v", err)
	}
	rec, err := a.Sign("purchase-agreement", "Dana Smith", true)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Role != "buyer" {
		t.Errorf("signature role = %q, want buyer", rec.Role)
	}
	if _, err := a.Sign("purchase-agreement", "Dana Smith", true); !errors.Is(err, signing.ErrAlreadySigned) {
		t.Errorf("expected ErrAlreadySigned, got %v", err)
	}
}

func TestSessionPersistsAcrossRestart(t *testing.T) {
	cfg := config.Default()
	cfg.DataDir = t.TempDir()

	a := New(cfg)
	if err := a.Startup(""); err != nil {
		t.Fatal(err)
	}
	fillThroughParties(t, a)
	id := a.State.ID

	b := New(cfg)
	if err := b.Startup(""); err != nil {
		t.Fatal(err)
	}
	if b.State.ID != id {
		t.Errorf("restored id = %q, want %q", b.State.ID, id)
	}
	if b.State.Parties.Buyer.Name != "Dana Smith" {
		t.Error("parties not restored")
	}
	if b.Pos.View != workflow.ViewSteps || b.Pos.Step != 1 {
		t.Errorf("position not restored: %+v", b.Pos)
	}
}

func TestInviteURLAndJoin(t *testing.T) {
	a := testApp(t)
	fillThroughParties(t, a)
	a.SetTerms(transaction.Terms{PurchasePrice: "45000", DepositAmount: "4500"})

	link, err := a.InviteURL()
	if err != nil {
		t.Fatal(err)
	}

	// The counterparty opens the link in a fresh session.
	b := testApp(t)
	if err := b.Startup(link); err != nil {
		t.Fatal(err)
	}
	if b.Offer == nil {
		t.Fatal("expected a pending invitation")
	}
	if b.Pos.View != workflow.ViewJoin {
		t.Errorf("expected join view, got %s", b.Pos.View)
	}
	if b.Offer.Role != transaction.RoleSeller {
		t.Errorf("offered role = %s, want seller", b.Offer.Role)
	}

	if err := b.AcceptOffer(); err != nil {
		t.Fatal(err)
	}
	if b.State.ID != a.State.ID {
		t.Error("joined session must adopt the shared identity")
	}
	if b.State.Role != transaction.RoleSeller {
		t.Errorf("joined role = %s", b.State.Role)
	}
	if b.State.Vessel.Name != "Wind Dancer" {
		t.Error("vessel data not merged")
	}
	step, ok := b.CurrentStep()
	if !ok || step.ID != workflow.StepParties {
		t.Errorf("expected parties step after joining, got %+v", b.Pos)
	}
}

func TestDeclineOffer(t *testing.T) {
	a := testApp(t)
	fillThroughParties(t, a)
	link, err := a.InviteURL()
	if err != nil {
		t.Fatal(err)
	}

	b := testApp(t)
	if err := b.Startup(link); err != nil {
		t.Fatal(err)
	}
	b.DeclineOffer()
	if b.Offer != nil {
		t.Error("offer should be discarded")
	}
	if b.Pos.View != workflow.ViewWelcome {
		t.Errorf("expected welcome view, got %s", b.Pos.View)
	}
	if b.State.ID != "" || b.State.Role != "" {
		t.Error("declining must not touch the session")
	}
}

func TestDocumentURL(t *testing.T) {
	a := testApp(t)
	fillThroughParties(t, a)

	link, err := a.DocumentURL("bill-of-sale")
	if err != nil {
		t.Fatal(err)
	}
	p := share.ParseDocumentLink(link)
	if p == nil {
		t.Fatal("expected parseable document link")
	}
	if p.DocID != "bill-of-sale" || p.TransactionID != a.State.ID {
		t.Errorf("payload = %+v", p)
	}
}

func TestReset(t *testing.T) {
	a := testApp(t)
	fillThroughParties(t, a)
	if !a.HasResumable() {
		t.Fatal("expected a resumable session")
	}

	if err := a.Reset(); err != nil {
		t.Fatal(err)
	}
	if a.State.ID != "" || a.State.Role != "" {
		t.Error("state not reset")
	}
	if a.State.Terms.InspectionDays != "10" {
		t.Error("defaults not restored")
	}
	if a.Pos.View != workflow.ViewRole {
		t.Errorf("expected role view after reset, got %s", a.Pos.View)
	}
	if a.HasResumable() {
		t.Error("snapshot should be gone")
	}
}

func TestRenderUsesSessionState(t *testing.T) {
	a := testApp(t)
	fillThroughParties(t, a)
	a.SetTerms(transaction.Terms{PurchasePrice: "45000", DepositAmount: "4500"})

	r := a.Render("purchase-agreement")
	if !strings.Contains(r.Body, "Dana Smith") || !strings.Contains(r.Body, "$45,000") {
		t.Error("render missing session data")
	}

	page := a.ExportHTML("purchase-agreement")
	if strings.Contains(page, "DIGITALLY SIGNED") {
		t.Error("unsigned export should not carry the signature note")
	}
	if _, err := a.Sign("purchase-agreement", "Dana Smith", true); err != nil {
		t.Fatal(err)
	}
	page = a.ExportHTML("purchase-agreement")
	if !strings.Contains(page, "DIGITALLY SIGNED via BoatCloser") {
		t.Error("signed export missing the signature note")
	}
}
