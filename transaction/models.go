package transaction

// Role identifies which side of the sale the local user is on.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

// Valid reports whether the role is one of the two known sides.
func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller:
		return true
	default:
		return false
	}
}

// Counterpart returns the opposite side of the transaction.
func (r Role) Counterpart() Role {
	if r == RoleBuyer {
		return RoleSeller
	}
	return RoleBuyer
}

// Label returns the display form ("Buyer" / "Seller").
func (r Role) Label() string {
	if r == RoleBuyer {
		return "Buyer"
	}
	return "Seller"
}

// Vessel describes the boat being sold. Year is kept as a string by
// convention; documents render it verbatim.
type Vessel struct {
	Name        string `json:"name"`
	Make        string `json:"make"`
	Model       string `json:"model"`
	Year        string `json:"year"`
	Length      string `json:"length"`
	HIN         string `json:"hin"`
	AskingPrice string `json:"askingPrice"`
}

// Complete reports whether the vessel step may be left: make, model and
// year are the required fields.
func (v Vessel) Complete() bool {
	return v.Make != "" && v.Model != "" && v.Year != ""
}

// Party holds contact details for one side of the sale.
type Party struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Parties holds both sides. Which one is "self" depends on the session role.
type Parties struct {
	Buyer  Party `json:"buyer"`
	Seller Party `json:"seller"`
}

// Own returns the record belonging to the given role.
func (p Parties) Own(role Role) Party {
	if role == RoleSeller {
		return p.Seller
	}
	return p.Buyer
}

// Other returns the counterparty record for the given role.
func (p Parties) Other(role Role) Party {
	if role == RoleSeller {
		return p.Buyer
	}
	return p.Seller
}

// Complete reports whether the parties step may be left for the given role:
// both the user's own name and the counterparty's name are required.
func (p Parties) Complete(role Role) bool {
	return p.Own(role).Name != "" && p.Other(role).Name != ""
}

// Terms carries the financial terms. Currency amounts are decimal strings;
// the document engine parses them for arithmetic and falls back to bracketed
// placeholders when they do not parse.
type Terms struct {
	PurchasePrice  string `json:"purchasePrice"`
	DepositAmount  string `json:"depositAmount"`
	ClosingDate    string `json:"closingDate"`
	InspectionDays string `json:"inspectionDays"`
	EscrowCompany  string `json:"escrowCompany"`
}

// InspectionDayOptions enumerates the allowed inspection periods.
var InspectionDayOptions = []string{"7", "10", "14", "21", "30"}

// Complete reports whether the terms step may be left.
func (t Terms) Complete() bool {
	return t.PurchasePrice != "" && t.DepositAmount != ""
}

// PaymentMethod is the closed set of ways the balance can change hands.
type PaymentMethod string

const (
	PayEscrow PaymentMethod = "escrow"
	PayWire   PaymentMethod = "wire"
	PayZelle  PaymentMethod = "zelle"
	PayCheck  PaymentMethod = "check"
)

// ParsePaymentMethod maps arbitrary input onto the closed enum. Anything
// unknown or unset resolves to the escrow service, never to a zero branch.
func ParsePaymentMethod(s string) PaymentMethod {
	switch PaymentMethod(s) {
	case PayWire:
		return PayWire
	case PayZelle:
		return PayZelle
	case PayCheck:
		return PayCheck
	default:
		return PayEscrow
	}
}

// Label returns the display name used in documents.
func (m PaymentMethod) Label() string {
	switch m {
	case PayWire:
		return "Wire Transfer"
	case PayZelle:
		return "Zelle"
	case PayCheck:
		return "Cash on the Spot"
	default:
		return "Escrow Service"
	}
}

// Escrow holds the payment-method selection plus the method-specific
// sub-fields. None of them gate workflow progress.
type Escrow struct {
	PaymentMethod       PaymentMethod `json:"paymentMethod"`
	BankName            string        `json:"bankName"`
	AccountName         string        `json:"accountName"`
	RoutingNumber       string        `json:"routingNumber"`
	AccountNumber       string        `json:"accountNumber"`
	ZelleEmail          string        `json:"zelleEmail"`
	ZellePhone          string        `json:"zellePhone"`
	CheckPayableTo      string        `json:"checkPayableTo"`
	CheckMailingAddress string        `json:"checkMailingAddress"`
	EscrowCompanyName   string        `json:"escrowCompanyName"`
	EscrowContact       string        `json:"escrowContact"`
	EscrowPhone         string        `json:"escrowPhone"`
	EscrowEmail         string        `json:"escrowEmail"`
	DepositDueDate      string        `json:"depositDueDate"`
	BalanceDueDate      string        `json:"balanceDueDate"`
}

// Diligence tracks the four advisory inspection items. They never block
// progress.
type Diligence struct {
	Survey      bool `json:"survey"`
	SeaTrial    bool `json:"seaTrial"`
	TitleSearch bool `json:"titleSearch"`
	Insurance   bool `json:"insurance"`
}

// Payment backs the optional paywall step.
type Payment struct {
	PlanID        string `json:"planId"`
	TermsAccepted bool   `json:"termsAccepted"`
}

// Plan describes a purchasable service tier.
type Plan struct {
	ID    string
	Name  string
	Price int
}

// Plans is the paywall catalog.
var Plans = []Plan{
	{ID: "standard", Name: "Standard", Price: 149},
	{ID: "premium", Name: "Premium", Price: 249},
}
