package document

import (
	"math"

	"boatcloser/transaction"
)

// docPrepFee is the flat document preparation charge on the closing
// statement.
const docPrepFee = 75

// escrowFeeRate is the escrow service's cut of the purchase price.
const escrowFeeRate = 0.015

// ClosingFigures is the derived money on the closing statement. Inputs that
// fail to parse are treated as zero, so a partially filled transaction still
// produces a coherent statement.
type ClosingFigures struct {
	PurchasePrice int64
	Deposit       int64
	EscrowFee     int64
	DocFee        int64
	TotalCharges  int64
	AmountDue     int64
	SellerNet     int64
}

// Closing derives the closing-statement figures from the agreed terms.
//
// The escrow fee is the rate applied to the price, rounded to the nearest
// dollar. The amount due from the buyer at closing is the fees less the
// deposit already in escrow; a deposit larger than the fees makes it
// negative, which is rendered as a credit owed back.
func Closing(terms transaction.Terms) ClosingFigures {
	price, _ := parseAmount(terms.PurchasePrice)
	deposit, _ := parseAmount(terms.DepositAmount)
	fee := int64(math.Round(float64(price) * escrowFeeRate))
	f := ClosingFigures{
		PurchasePrice: price,
		Deposit:       deposit,
		EscrowFee:     fee,
		DocFee:        docPrepFee,
		TotalCharges:  fee + docPrepFee,
		AmountDue:     fee + docPrepFee - deposit,
		SellerNet:     price - fee - docPrepFee,
	}
	return f
}

// WireFinal is the balance moved at closing: price less the deposit, with
// unparseable inputs coerced to zero.
func WireFinal(terms transaction.Terms) int64 {
	price, _ := parseAmount(terms.PurchasePrice)
	deposit, _ := parseAmount(terms.DepositAmount)
	return price - deposit
}
