package transaction

import "boatcloser/signing"

// State is the full mutable record set of the one live transaction. It is
// owned by the application controller; nothing else holds a reference.
type State struct {
	ID         string        `json:"transactionId,omitempty"`
	Role       Role          `json:"userRole,omitempty"`
	Vessel     Vessel        `json:"vesselData"`
	Parties    Parties       `json:"partiesData"`
	Terms      Terms         `json:"termsData"`
	Escrow     Escrow        `json:"escrowData"`
	Diligence  Diligence     `json:"diligenceItems"`
	Payment    Payment       `json:"paymentData"`
	Signatures signing.Store `json:"signatures"`
}

// NewState returns a fresh transaction with the session defaults.
func NewState() *State {
	return &State{
		Terms: Terms{
			InspectionDays: "10",
			EscrowCompany:  "BoatClosers Escrow Services",
		},
		Escrow: Escrow{
			PaymentMethod:     PayEscrow,
			EscrowCompanyName: "BoatCloser Escrow Services",
		},
		Payment:    Payment{PlanID: "standard"},
		Signatures: signing.NewStore(),
	}
}

// EnsureID assigns the transaction identity if none exists yet. Assignment
// is lazy and one-shot; an existing identity is never replaced.
func (s *State) EnsureID() string {
	if s.ID == "" {
		s.ID = NewID()
	}
	return s.ID
}
