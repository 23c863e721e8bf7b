// Package document renders the transaction's legal paperwork: a fixed
// catalog of fourteen documents, each produced by substituting the current
// transaction data into a template, with financial figures derived on the
// way in.
package document

// Phase groups documents by the stage of the deal they belong to.
type Phase string

const (
	PhaseAgreement Phase = "agreement"
	PhaseDiligence Phase = "diligence"
	PhaseClosing   Phase = "closing"
)

// Doc describes one catalog entry. Required documents gate transaction
// completion.
type Doc struct {
	ID          string
	Name        string
	Phase       Phase
	Required    bool
	Description string
}

var catalog = []Doc{
	{ID: "purchase-agreement", Name: "Purchase Agreement", Phase: PhaseAgreement, Required: true,
		Description: "The main contract between buyer and seller outlining all terms"},
	{ID: "counter-offer", Name: "Counter Offer Addendum", Phase: PhaseAgreement,
		Description: "Propose modified terms to the original offer"},
	{ID: "deposit-receipt", Name: "Deposit Receipt", Phase: PhaseAgreement,
		Description: "Confirms the earnest money deposit has been received"},
	{ID: "escrow-instructions", Name: "Escrow Instructions", Phase: PhaseAgreement,
		Description: "Payment instructions for the escrow company or direct transfer"},

	{ID: "survey-authorization", Name: "Survey Authorization", Phase: PhaseDiligence,
		Description: "Grants permission for a marine surveyor to inspect the vessel"},
	{ID: "sea-trial-agreement", Name: "Sea Trial Agreement", Phase: PhaseDiligence,
		Description: "Liability waiver for test-running the boat"},
	{ID: "conditional-acceptance", Name: "Conditional Acceptance", Phase: PhaseDiligence,
		Description: "Accept vessel subject to specific repairs or conditions"},
	{ID: "vessel-acceptance", Name: "Vessel Acceptance", Phase: PhaseDiligence,
		Description: "Buyer formally accepts the vessel condition"},
	{ID: "vessel-rejection", Name: "Vessel Rejection", Phase: PhaseDiligence,
		Description: "Reject vessel and request deposit refund"},

	{ID: "bill-of-sale", Name: "Bill of Sale", Phase: PhaseClosing, Required: true,
		Description: "Official legal document transferring ownership"},
	{ID: "closing-statement", Name: "Closing Statement", Phase: PhaseClosing, Required: true,
		Description: "Final financial breakdown of the entire transaction"},
	{ID: "wire-transfer-confirmation", Name: "Wire Transfer Confirmation", Phase: PhaseClosing,
		Description: "Confirms final payment has been sent/received"},
	{ID: "title-transfer", Name: "Title Transfer", Phase: PhaseClosing,
		Description: "State registration and title transfer form"},
	{ID: "lien-release", Name: "Lien Release Affidavit", Phase: PhaseClosing,
		Description: "Seller certifies no liens or debts on the vessel"},
}

// Catalog returns the full document list in presentation order.
func Catalog() []Doc {
	out := make([]Doc, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks up a catalog entry.
func ByID(id string) (Doc, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Doc{}, false
}

// ByPhase returns the catalog entries for one phase, in order.
func ByPhase(phase Phase) []Doc {
	var out []Doc
	for _, d := range catalog {
		if d.Phase == phase {
			out = append(out, d)
		}
	}
	return out
}

// RequiredIDs returns the ids whose signed status gates closing. Required-ness
// is a catalog attribute, not a hard-coded set.
func RequiredIDs() []string {
	var out []string
	for _, d := range catalog {
		if d.Required {
			out = append(out, d.ID)
		}
	}
	return out
}
