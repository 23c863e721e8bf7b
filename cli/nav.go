package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"boatcloser/workflow"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Advance to the next step",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newSession()
		if err != nil {
			return err
		}
		if err := a.Advance(); err != nil {
			return err
		}
		if a.Pos.View == workflow.ViewComplete {
			fmt.Println("Transaction complete")
			return nil
		}
		if step, ok := a.CurrentStep(); ok {
			fmt.Printf("Now on: %s\n", step.Label)
		}
		return nil
	},
}

var backCmd = &cobra.Command{
	Use:   "back",
	Short: "Return to the previous step",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newSession()
		if err != nil {
			return err
		}
		a.Back()
		if step, ok := a.CurrentStep(); ok {
			fmt.Printf("Now on: %s\n", step.Label)
		} else {
			fmt.Printf("Now on: %s\n", a.Pos.View)
		}
		return nil
	},
}

var gotoCmd = &cobra.Command{
	Use:   "goto <step>",
	Short: "Revisit an earlier step",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newSession()
		if err != nil {
			return err
		}
		if !a.JumpTo(workflow.StepID(args[0])) {
			return fmt.Errorf("cannot jump to %q: only earlier steps can be revisited", args[0])
		}
		if step, ok := a.CurrentStep(); ok {
			fmt.Printf("Now on: %s\n", step.Label)
		}
		return nil
	},
}

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "List the step sequence",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newSession()
		if err != nil {
			return err
		}
		for i, step := range a.Sequence().Steps() {
			marker := "  "
			if a.Pos.View == workflow.ViewSteps && i == a.Pos.Step {
				marker = "> "
			}
			fmt.Printf("%s%d. %s (%s)\n", marker, i+1, step.Label, step.ID)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(nextCmd, backCmd, gotoCmd, stepsCmd)
}
