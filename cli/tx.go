package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"boatcloser/transaction"
)

var newRole string

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a fresh transaction",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newSession()
		if err != nil {
			return err
		}
		if err := a.Reset(); err != nil {
			return err
		}
		if err := a.ChooseRole(transaction.Role(newRole)); err != nil {
			return err
		}
		fmt.Printf("Started a new transaction as %s\n", a.State.Role.Label())
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current transaction and position",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newSession()
		if err != nil {
			return err
		}

		st := a.State
		fmt.Printf("Transaction: %s\n", orDash(st.ID))
		fmt.Printf("Role:        %s\n", orDash(string(st.Role)))
		if st.Vessel.Make != "" || st.Vessel.Model != "" {
			fmt.Printf("Vessel:      %s %s %s %q\n", st.Vessel.Year, st.Vessel.Make, st.Vessel.Model, st.Vessel.Name)
		}
		if st.Terms.PurchasePrice != "" {
			fmt.Printf("Price:       $%s (deposit $%s)\n", st.Terms.PurchasePrice, st.Terms.DepositAmount)
		}
		fmt.Printf("View:        %s\n", a.Pos.View)

		if step, ok := a.CurrentStep(); ok {
			fmt.Printf("Step:        %d/%d (%s)\n", a.Pos.Step+1, len(a.Sequence().Steps()), step.Label)
		}
		fmt.Printf("Signed docs: %d\n", st.Signatures.Count())
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the saved transaction",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newSession()
		if err != nil {
			return err
		}
		if err := a.Reset(); err != nil {
			return err
		}
		fmt.Println("Transaction cleared")
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	newCmd.Flags().StringVar(&newRole, "role", "", "your side of the sale: buyer or seller")
	newCmd.MarkFlagRequired("role")

	RootCmd.AddCommand(newCmd, statusCmd, resetCmd)
}
