package transaction

import (
	"strings"
	"testing"
)

func TestNewID(t *testing.T) {
	a := NewID()
	b := NewID()

	if !strings.HasPrefix(a, "BC-") {
		t.Errorf("id %q missing BC- prefix", a)
	}
	if len(a) != len("BC-")+26 {
		t.Errorf("id %q has unexpected length %d", a, len(a))
	}
	if a == b {
		t.Error("ids must be unique")
	}
}

func TestEnsureID(t *testing.T) {
	st := NewState()
	first := st.EnsureID()
	if first == "" {
		t.Fatal("expected an id")
	}
	if st.EnsureID() != first {
		t.Error("EnsureID must be one-shot")
	}
}

func TestRole(t *testing.T) {
	if !RoleBuyer.Valid() || !RoleSeller.Valid() {
		t.Error("known roles must be valid")
	}
	if Role("broker").Valid() || Role("").Valid() {
		t.Error("unknown roles must be invalid")
	}
	if RoleBuyer.Counterpart() != RoleSeller || RoleSeller.Counterpart() != RoleBuyer {
		t.Error("counterparts are swapped sides")
	}
	if RoleBuyer.Label() != "Buyer" || RoleSeller.Label() != "Seller" {
		t.Error("labels wrong")
	}
}

func TestPartiesOwnOther(t *testing.T) {
	p := Parties{
		Buyer:  Party{Name: "Dana Smith"},
		Seller: Party{Name: "Lee Jones"},
	}
	if p.Own(RoleBuyer).Name != "Dana Smith" || p.Other(RoleBuyer).Name != "Lee Jones" {
		t.Error("buyer perspective wrong")
	}
	if p.Own(RoleSeller).Name != "Lee Jones" || p.Other(RoleSeller).Name != "Dana Smith" {
		t.Error("seller perspective wrong")
	}
	if !p.Complete(RoleBuyer) {
		t.Error("both names present should be complete")
	}
	p.Seller.Name = ""
	if p.Complete(RoleBuyer) {
		t.Error("missing counterparty name should be incomplete")
	}
}

func TestVesselComplete(t *testing.T) {
	v := Vessel{Make: "Catalina", Model: "320", Year: "2005"}
	if !v.Complete() {
		t.Error("make/model/year should complete the vessel")
	}
	v.Year = ""
	if v.Complete() {
		t.Error("missing year should be incomplete")
	}
}

func TestParsePaymentMethod(t *testing.T) {
	cases := map[string]PaymentMethod{
		"wire":   PayWire,
		"zelle":  PayZelle,
		"check":  PayCheck,
		"escrow": PayEscrow,
		"":       PayEscrow,
		"crypto": PayEscrow,
	}
	for in, want := range cases {
		if got := ParsePaymentMethod(in); got != want {
			t.Errorf("ParsePaymentMethod(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestPaymentMethodLabel(t *testing.T) {
	cases := map[PaymentMethod]string{
		PayEscrow: "Escrow Service",
		PayWire:   "Wire Transfer",
		PayZelle:  "Zelle",
		PayCheck:  "Cash on the Spot",
	}
	for m, want := range cases {
		if got := m.Label(); got != want {
			t.Errorf("%s.Label() = %q, want %q", m, got, want)
		}
	}
}

func TestDefaults(t *testing.T) {
	st := NewState()
	if st.Terms.InspectionDays != "10" {
		t.Errorf("inspection days default = %q", st.Terms.InspectionDays)
	}
	if st.Terms.EscrowCompany == "" || st.Escrow.EscrowCompanyName == "" {
		t.Error("escrow company defaults missing")
	}
	if st.Escrow.PaymentMethod != PayEscrow {
		t.Errorf("payment method default = %s", st.Escrow.PaymentMethod)
	}
	if st.Payment.PlanID != "standard" {
		t.Errorf("plan default = %q", st.Payment.PlanID)
	}
	if st.ID != "" {
		t.Error("identity must not be assigned up front")
	}
}
