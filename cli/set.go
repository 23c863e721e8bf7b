package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"boatcloser/transaction"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Fill in transaction data",
}

var setVesselCmd = &cobra.Command{
	Use:   "vessel",
	Short: "Set the vessel details",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newSession()
		if err != nil {
			return err
		}
		v := a.State.Vessel
		flagString(cmd, "name", &v.Name)
		flagString(cmd, "make", &v.Make)
		flagString(cmd, "model", &v.Model)
		flagString(cmd, "year", &v.Year)
		flagString(cmd, "length", &v.Length)
		flagString(cmd, "hin", &v.HIN)
		flagString(cmd, "asking-price", &v.AskingPrice)
		a.SetVessel(v)
		fmt.Println("Vessel updated")
		return nil
	},
}

var setPartiesCmd = &cobra.Command{
	Use:   "parties",
	Short: "Set buyer and seller contact details",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newSession()
		if err != nil {
			return err
		}
		p := a.State.Parties
		flagString(cmd, "buyer-name", &p.Buyer.Name)
		flagString(cmd, "buyer-email", &p.Buyer.Email)
		flagString(cmd, "buyer-phone", &p.Buyer.Phone)
		flagString(cmd, "buyer-address", &p.Buyer.Address)
		flagString(cmd, "seller-name", &p.Seller.Name)
		flagString(cmd, "seller-email", &p.Seller.Email)
		flagString(cmd, "seller-phone", &p.Seller.Phone)
		flagString(cmd, "seller-address", &p.Seller.Address)
		a.SetParties(p)
		fmt.Println("Parties updated")
		return nil
	},
}

var setTermsCmd = &cobra.Command{
	Use:   "terms",
	Short: "Set the financial terms",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newSession()
		if err != nil {
			return err
		}
		t := a.State.Terms
		flagString(cmd, "price", &t.PurchasePrice)
		flagString(cmd, "deposit", &t.DepositAmount)
		flagString(cmd, "closing-date", &t.ClosingDate)
		flagString(cmd, "inspection-days", &t.InspectionDays)
		flagString(cmd, "escrow-company", &t.EscrowCompany)
		a.SetTerms(t)
		fmt.Println("Terms updated")
		return nil
	},
}

var setEscrowCmd = &cobra.Command{
	Use:   "escrow",
	Short: "Set the payment method and its details",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newSession()
		if err != nil {
			return err
		}
		e := a.State.Escrow
		if cmd.Flags().Changed("method") {
			method, _ := cmd.Flags().GetString("method")
			e.PaymentMethod = transaction.PaymentMethod(method)
		}
		flagString(cmd, "bank-name", &e.BankName)
		flagString(cmd, "account-name", &e.AccountName)
		flagString(cmd, "routing-number", &e.RoutingNumber)
		flagString(cmd, "account-number", &e.AccountNumber)
		flagString(cmd, "zelle-email", &e.ZelleEmail)
		flagString(cmd, "zelle-phone", &e.ZellePhone)
		flagString(cmd, "payable-to", &e.CheckPayableTo)
		flagString(cmd, "mailing-address", &e.CheckMailingAddress)
		flagString(cmd, "escrow-company", &e.EscrowCompanyName)
		flagString(cmd, "escrow-contact", &e.EscrowContact)
		flagString(cmd, "escrow-phone", &e.EscrowPhone)
		flagString(cmd, "escrow-email", &e.EscrowEmail)
		flagString(cmd, "deposit-due", &e.DepositDueDate)
		flagString(cmd, "balance-due", &e.BalanceDueDate)
		a.SetEscrow(e)
		fmt.Printf("Payment method: %s\n", a.State.Escrow.PaymentMethod.Label())
		return nil
	},
}

var setDiligenceCmd = &cobra.Command{
	Use:   "diligence",
	Short: "Check off due-diligence items",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newSession()
		if err != nil {
			return err
		}
		d := a.State.Diligence
		flagBool(cmd, "survey", &d.Survey)
		flagBool(cmd, "sea-trial", &d.SeaTrial)
		flagBool(cmd, "title-search", &d.TitleSearch)
		flagBool(cmd, "insurance", &d.Insurance)
		a.SetDiligence(d)
		fmt.Println("Due diligence updated")
		return nil
	},
}

var setPaymentCmd = &cobra.Command{
	Use:   "payment",
	Short: "Choose a plan and accept the service terms",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newSession()
		if err != nil {
			return err
		}
		plan, _ := cmd.Flags().GetString("plan")
		a.AcceptTerms(plan)
		fmt.Printf("Plan %s selected, terms accepted\n", plan)
		return nil
	},
}

// flagString copies a changed string flag into its target field, leaving
// untouched flags alone so partial updates do not clear data.
func flagString(cmd *cobra.Command, name string, dst *string) {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		*dst = v
	}
}

func flagBool(cmd *cobra.Command, name string, dst *bool) {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetBool(name)
		*dst = v
	}
}

func init() {
	setVesselCmd.Flags().String("name", "", "vessel name")
	setVesselCmd.Flags().String("make", "", "manufacturer")
	setVesselCmd.Flags().String("model", "", "model")
	setVesselCmd.Flags().String("year", "", "year of manufacture")
	setVesselCmd.Flags().String("length", "", "length overall in feet")
	setVesselCmd.Flags().String("hin", "", "hull identification number")
	setVesselCmd.Flags().String("asking-price", "", "asking price")

	setPartiesCmd.Flags().String("buyer-name", "", "buyer full legal name")
	setPartiesCmd.Flags().String("buyer-email", "", "buyer email")
	setPartiesCmd.Flags().String("buyer-phone", "", "buyer phone")
	setPartiesCmd.Flags().String("buyer-address", "", "buyer address")
	setPartiesCmd.Flags().String("seller-name", "", "seller full legal name")
	setPartiesCmd.Flags().String("seller-email", "", "seller email")
	setPartiesCmd.Flags().String("seller-phone", "", "seller phone")
	setPartiesCmd.Flags().String("seller-address", "", "seller address")

	setTermsCmd.Flags().String("price", "", "purchase price in whole dollars")
	setTermsCmd.Flags().String("deposit", "", "earnest money deposit in whole dollars")
	setTermsCmd.Flags().String("closing-date", "", "closing date")
	setTermsCmd.Flags().String("inspection-days", "", "inspection period in days (7, 10, 14, 21 or 30)")
	setTermsCmd.Flags().String("escrow-company", "", "company holding the deposit")

	setEscrowCmd.Flags().String("method", "", "payment method: escrow, wire, zelle or check")
	setEscrowCmd.Flags().String("bank-name", "", "wire: bank name")
	setEscrowCmd.Flags().String("account-name", "", "wire: account name")
	setEscrowCmd.Flags().String("routing-number", "", "wire: routing number")
	setEscrowCmd.Flags().String("account-number", "", "wire: account number")
	setEscrowCmd.Flags().String("zelle-email", "", "zelle: recipient email")
	setEscrowCmd.Flags().String("zelle-phone", "", "zelle: recipient phone")
	setEscrowCmd.Flags().String("payable-to", "", "cash: recipient")
	setEscrowCmd.Flags().String("mailing-address", "", "cash: closing location")
	setEscrowCmd.Flags().String("escrow-company", "", "escrow: company name")
	setEscrowCmd.Flags().String("escrow-contact", "", "escrow: contact name")
	setEscrowCmd.Flags().String("escrow-phone", "", "escrow: phone")
	setEscrowCmd.Flags().String("escrow-email", "", "escrow: email")
	setEscrowCmd.Flags().String("deposit-due", "", "deposit due date")
	setEscrowCmd.Flags().String("balance-due", "", "balance due date")

	setDiligenceCmd.Flags().Bool("survey", false, "marine survey complete")
	setDiligenceCmd.Flags().Bool("sea-trial", false, "sea trial complete")
	setDiligenceCmd.Flags().Bool("title-search", false, "title search complete")
	setDiligenceCmd.Flags().Bool("insurance", false, "insurance quote obtained")

	setPaymentCmd.Flags().String("plan", "standard", "service plan: standard or premium")

	setCmd.AddCommand(setVesselCmd, setPartiesCmd, setTermsCmd, setEscrowCmd, setDiligenceCmd, setPaymentCmd)
	RootCmd.AddCommand(setCmd)
}
