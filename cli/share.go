package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Build an invitation link for the counterparty",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newSession()
		if err != nil {
			return err
		}

		docID, _ := cmd.Flags().GetString("doc")
		qrOut, _ := cmd.Flags().GetString("qr")

		var link string
		if docID != "" {
			link, err = a.DocumentURL(docID)
		} else {
			link, err = a.InviteURL()
		}
		if err != nil {
			return err
		}
		fmt.Println(link)

		if qrOut != "" {
			png, err := a.QRCode(cmd.Context(), link)
			if err != nil {
				return err
			}
			if err := os.WriteFile(qrOut, png, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", qrOut, err)
			}
			fmt.Printf("QR code written to %s\n", qrOut)
		}
		return nil
	},
}

var joinCmd = &cobra.Command{
	Use:   "join <url>",
	Short: "Inspect or accept an invitation link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newSession()
		if err != nil {
			return err
		}
		if err := a.Startup(args[0]); err != nil {
			return err
		}
		if a.Offer == nil {
			return fmt.Errorf("not a valid invitation link")
		}

		offer := a.Offer
		fmt.Printf("Transaction: %s\n", offer.TransactionID)
		fmt.Printf("Join as:     %s\n", offer.Role.Label())
		if v := offer.Payload.Vessel; v != nil && v.Make != "" {
			fmt.Printf("Vessel:      %s %s %s\n", v.Year, v.Make, v.Model)
		}
		if t := offer.Payload.Terms; t != nil && t.PurchasePrice != "" {
			fmt.Printf("Price:       $%s\n", t.PurchasePrice)
		}

		accept, _ := cmd.Flags().GetBool("accept")
		decline, _ := cmd.Flags().GetBool("decline")
		switch {
		case accept:
			if err := a.AcceptOffer(); err != nil {
				return err
			}
			fmt.Println("Joined; continue with your information on the parties step")
		case decline:
			a.DeclineOffer()
			fmt.Println("Invitation declined")
		default:
			fmt.Println("Re-run with --accept to join or --decline to dismiss")
		}
		return nil
	},
}

func init() {
	shareCmd.Flags().String("doc", "", "share a single document instead of the transaction")
	shareCmd.Flags().String("qr", "", "also fetch a QR code PNG to this path")

	joinCmd.Flags().Bool("accept", false, "join the shared transaction")
	joinCmd.Flags().Bool("decline", false, "dismiss the invitation")

	RootCmd.AddCommand(shareCmd, joinCmd)
}
