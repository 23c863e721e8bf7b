package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"boatcloser/document"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "List the document catalog with signing status",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newSession()
		if err != nil {
			return err
		}
		for _, phase := range []document.Phase{document.PhaseAgreement, document.PhaseDiligence, document.PhaseClosing} {
			fmt.Printf("%s:\n", phase)
			for _, d := range document.ByPhase(phase) {
				status := " "
				if a.State.Signatures.IsSigned(d.ID) {
					status = "✓"
				}
				req := ""
				if d.Required {
					req = " (required)"
				}
				fmt.Printf("  [%s] %-26s %s%s\n", status, d.ID, d.Name, req)
			}
		}
		return nil
	},
}

var renderCmd = &cobra.Command{
	Use:   "render <doc>",
	Short: "Generate a document from the current transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newSession()
		if err != nil {
			return err
		}

		asHTML, _ := cmd.Flags().GetBool("html")
		out, _ := cmd.Flags().GetString("out")

		var content string
		if asHTML {
			content = a.ExportHTML(args[0])
		} else {
			r := a.Render(args[0])
			content = r.Title + "\n\n" + r.Body + "\n"
		}

		if out == "" {
			fmt.Print(content)
			return nil
		}
		if err := os.WriteFile(out, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Printf("Wrote %s\n", out)
		return nil
	},
}

var signCmd = &cobra.Command{
	Use:   "sign <doc>",
	Short: "Apply your signature to a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newSession()
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		consent, _ := cmd.Flags().GetBool("consent")

		rec, err := a.Sign(args[0], name, consent)
		if err != nil {
			return err
		}
		fmt.Printf("Signed %s as %s on %s\n", rec.DocumentID, rec.SignerName, rec.Date)
		return nil
	},
}

func init() {
	renderCmd.Flags().Bool("html", false, "export as a printable HTML page")
	renderCmd.Flags().String("out", "", "write to a file instead of stdout")

	signCmd.Flags().String("name", "", "your full legal name")
	signCmd.Flags().Bool("consent", false, "acknowledge that the electronic signature is binding")
	signCmd.MarkFlagRequired("name")

	RootCmd.AddCommand(docsCmd, renderCmd, signCmd)
}
