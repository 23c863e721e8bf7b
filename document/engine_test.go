package document

import (
	"strings"
	"testing"
	"time"

	"boatcloser/transaction"
)

func fixedClock() func() time.Time {
	at := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func fullState() *transaction.State {
	st := transaction.NewState()
	st.ID = "BC-TEST"
	st.Role = transaction.RoleBuyer
	st.Vessel = transaction.Vessel{
		Name: "Sea Breeze", Make: "Boston Whaler", Model: "Conquest 285",
		Year: "2019", Length: "28", HIN: "BWCE1234H920",
	}
	st.Parties = transaction.Parties{
		Buyer:  transaction.Party{Name: "Dana Smith", Email: "dana@example.com", Address: "1 Dock St"},
		Seller: transaction.Party{Name: "Lee Jones", Email: "lee@example.com", Address: "2 Pier Ave"},
	}
	st.Terms.PurchasePrice = "100000"
	st.Terms.DepositAmount = "10000"
	st.Terms.ClosingDate = "2026-09-15"
	return st
}

func TestRenderIsReproducible(t *testing.T) {
	e := NewEngineAt(fixedClock())
	st := fullState()

	first := e.Render("purchase-agreement", st)
	second := e.Render("purchase-agreement", st)
	if first != second {
		t.Error("expected identical renders under a fixed clock")
	}
	if first.Title != "VESSEL PURCHASE AGREEMENT" {
		t.Errorf("title = %q", first.Title)
	}
}

func TestRenderPurchaseAgreement(t *testing.T) {
	e := NewEngineAt(fixedClock())
	body := e.Render("purchase-agreement", fullState()).Body

	for _, want := range []string{
		"EFFECTIVE DATE: August 29, 2026",
		"TOTAL PURCHASE PRICE:           $100,000",
		"Earnest Money Deposit:       $10,000",
		"Balance Due at Closing:      $90,000",
		"Held by: BoatClosers Escrow Services",
		"Legal Name:    Dana Smith",
		"Legal Name:    Lee Jones",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("purchase agreement missing %q", want)
		}
	}
}

func TestRenderPlaceholders(t *testing.T) {
	e := NewEngineAt(fixedClock())
	st := transaction.NewState()
	body := e.Render("purchase-agreement", st).Body

	for _, want := range []string{
		"[BUYER FULL LEGAL NAME]",
		"[SELLER FULL LEGAL NAME]",
		"TOTAL PURCHASE PRICE:           $[AMOUNT]",
		"Balance Due at Closing:      $[AMOUNT]",
		"[CLOSING DATE]",
		"[VESSEL NAME]",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("empty-state render missing placeholder %q", want)
		}
	}
}

func TestRenderBillOfSaleWords(t *testing.T) {
	e := NewEngineAt(fixedClock())
	body := e.Render("bill-of-sale", fullState()).Body

	if !strings.Contains(body, "(100 THOUSAND  DOLLARS)") {
		t.Errorf("bill of sale amount-in-words not rendered as expected:\n%s", body)
	}
	if !strings.Contains(body, "DOCUMENT NUMBER: BOS-") {
		t.Error("bill of sale missing document number")
	}
}

func TestRenderClosingStatement(t *testing.T) {
	e := NewEngineAt(fixedClock())
	body := e.Render("closing-statement", fullState()).Body

	for _, want := range []string{
		"Escrow Fee (1.5%)                      $1,500",
		"NET TO SELLER                          $98,425",
		"AMOUNT DUE FROM BUYER AT CLOSING         $-8,425",
		"TOTAL DISBURSED:                         $100,000",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("closing statement missing %q", want)
		}
	}
}

func TestRenderDepositReceiptWords(t *testing.T) {
	e := NewEngineAt(fixedClock())
	body := e.Render("deposit-receipt", fullState()).Body

	if !strings.Contains(body, "(10 thousand  dollars)") {
		t.Errorf("deposit receipt words line wrong:\n%s", body)
	}
}

func TestRenderUnknownDocument(t *testing.T) {
	e := NewEngineAt(fixedClock())
	r := e.Render("no-such-doc", fullState())
	if r.Title != "Document" || r.Body != "Document content not available." {
		t.Errorf("unknown doc = %+v", r)
	}
}

func TestRenderPaymentBlocks(t *testing.T) {
	e := NewEngineAt(fixedClock())

	cases := []struct {
		method transaction.PaymentMethod
		want   string
	}{
		{transaction.PayEscrow, "ESCROW SERVICE DETAILS"},
		{transaction.PayWire, "WIRE TRANSFER INSTRUCTIONS"},
		{transaction.PayZelle, "ZELLE INSTRUCTIONS"},
		{transaction.PayCheck, "CASH PAYMENT INSTRUCTIONS"},
		// Unknown methods coerce to escrow, never to an empty block.
		{transaction.PaymentMethod("crypto"), "ESCROW SERVICE DETAILS"},
	}
	for _, c := range cases {
		st := fullState()
		st.Escrow.PaymentMethod = c.method
		body := e.Render("escrow-instructions", st).Body
		if !strings.Contains(body, c.want) {
			t.Errorf("method %q: missing %q", c.method, c.want)
		}
	}
}

func TestRenderWireConfirmation(t *testing.T) {
	e := NewEngineAt(fixedClock())
	st := fullState()
	st.Escrow.PaymentMethod = transaction.PayWire
	body := e.Render("wire-transfer-confirmation", st).Body

	if !strings.Contains(body, "FINAL WIRE AMOUNT:           $90,000") {
		t.Error("wire confirmation missing final amount")
	}
	if !strings.Contains(body, "Transaction ID: BC-TEST") {
		t.Error("wire confirmation missing transaction id")
	}
	// Non-escrow methods address the wire to the seller.
	if !strings.Contains(body, "Name:           Lee Jones") {
		t.Error("wire confirmation missing seller as recipient")
	}
}

func TestExportHTML(t *testing.T) {
	e := NewEngineAt(fixedClock())
	r := e.Render("closing-statement", fullState())

	page := ExportHTML(r, false)
	if !strings.Contains(page, "<pre>") || !strings.Contains(page, "CLOSING STATEMENT") {
		t.Error("export missing document body")
	}
	if strings.Contains(page, "DIGITALLY SIGNED") {
		t.Error("unsigned export should not carry signature note")
	}

	signedPage := ExportHTML(r, true)
	if !strings.Contains(signedPage, "DIGITALLY SIGNED via BoatCloser") {
		t.Error("signed export missing signature note")
	}
}

func TestCatalog(t *testing.T) {
	if got := len(Catalog()); got != 14 {
		t.Fatalf("catalog size = %d, want 14", got)
	}
	required := RequiredIDs()
	want := []string{"purchase-agreement", "bill-of-sale", "closing-statement"}
	if len(required) != len(want) {
		t.Fatalf("required = %v, want %v", required, want)
	}
	for i, id := range want {
		if required[i] != id {
			t.Errorf("required[%d] = %q, want %q", i, required[i], id)
		}
	}
	if _, ok := ByID("sea-trial-agreement"); !ok {
		t.Error("ByID failed for known document")
	}
	if _, ok := ByID("nope"); ok {
		t.Error("ByID matched unknown id")
	}
}
