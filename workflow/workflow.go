// Package workflow drives the transaction through its views and steps: a
// linear step sequence inside the form view, plus the surrounding screens
// (welcome, role selection, sharing, joining, completion).
package workflow

import (
	"errors"

	"boatcloser/transaction"
)

var (
	// ErrStepIncomplete signals a forward move blocked by missing required
	// fields on the current step.
	ErrStepIncomplete = errors.New("workflow: current step incomplete")
	// ErrNotReadyToClose signals a completion attempt with unsigned
	// required documents.
	ErrNotReadyToClose = errors.New("workflow: required documents not signed")
)

// StepID names one step of the form sequence.
type StepID string

const (
	StepVessel    StepID = "vessel"
	StepParties   StepID = "parties"
	StepPayment   StepID = "payment"
	StepTerms     StepID = "terms"
	StepEscrow    StepID = "escrow"
	StepDiligence StepID = "diligence"
	StepDocuments StepID = "documents"
)

// Step pairs a step id with its display label.
type Step struct {
	ID    StepID
	Label string
}

// View names a top-level screen.
type View string

const (
	ViewWelcome  View = "welcome"
	ViewRole     View = "role"
	ViewSteps    View = "steps"
	ViewShare    View = "share"
	ViewJoin     View = "join"
	ViewComplete View = "complete"
)

// Position locates the user in the workflow: which view, and when inside
// the form view, which step.
type Position struct {
	View View
	Step int
}

// Config selects which optional steps appear in the sequence.
type Config struct {
	ShowPaywall    bool
	ShowEscrowStep bool
}

var stepLabels = map[StepID]string{
	StepVessel:    "Vessel Details",
	StepParties:   "Buyer & Seller",
	StepPayment:   "Payment",
	StepTerms:     "Deal Terms",
	StepEscrow:    "Escrow Setup",
	StepDiligence: "Due Diligence",
	StepDocuments: "Sign & Close",
}

// BuildSteps assembles the step sequence for the given configuration. The
// payment step follows parties; the escrow step follows terms.
func BuildSteps(cfg Config) []Step {
	ids := []StepID{StepVessel, StepParties}
	if cfg.ShowPaywall {
		ids = append(ids, StepPayment)
	}
	ids = append(ids, StepTerms)
	if cfg.ShowEscrowStep {
		ids = append(ids, StepEscrow)
	}
	ids = append(ids, StepDiligence, StepDocuments)

	steps := make([]Step, len(ids))
	for i, id := range ids {
		steps[i] = Step{ID: id, Label: stepLabels[id]}
	}
	return steps
}

// Sequence evaluates moves against a fixed step list.
type Sequence struct {
	steps []Step
}

// NewSequence builds the move evaluator for a configuration.
func NewSequence(cfg Config) *Sequence {
	return &Sequence{steps: BuildSteps(cfg)}
}

// Steps returns the full step list.
func (s *Sequence) Steps() []Step {
	out := make([]Step, len(s.steps))
	copy(out, s.steps)
	return out
}

// IndexOf returns the position of a step id, or -1.
func (s *Sequence) IndexOf(id StepID) int {
	for i, st := range s.steps {
		if st.ID == id {
			return i
		}
	}
	return -1
}

// At returns the step at the given index.
func (s *Sequence) At(i int) (Step, bool) {
	if i < 0 || i >= len(s.steps) {
		return Step{}, false
	}
	return s.steps[i], true
}

// canLeave applies the per-step gate for a forward move.
func canLeave(id StepID, st *transaction.State) bool {
	switch id {
	case StepVessel:
		return st.Vessel.Complete()
	case StepParties:
		return st.Parties.Complete(st.Role)
	case StepPayment:
		return st.Payment.TermsAccepted
	case StepTerms:
		return st.Terms.Complete()
	default:
		// escrow and diligence are advisory
		return true
	}
}

// Next computes the position after a forward move from pos. Leaving the
// final step requires every required document to be signed and lands on the
// completion view.
func (s *Sequence) Next(pos Position, st *transaction.State, requiredDocIDs []string) (Position, error) {
	if pos.View != ViewSteps {
		return pos, nil
	}
	step, ok := s.At(pos.Step)
	if !ok {
		return pos, nil
	}

	if step.ID == StepDocuments {
		if !st.Signatures.ReadyToClose(requiredDocIDs) {
			return pos, ErrNotReadyToClose
		}
		return Position{View: ViewComplete}, nil
	}
	if !canLeave(step.ID, st) {
		return pos, ErrStepIncomplete
	}
	return Position{View: ViewSteps, Step: pos.Step + 1}, nil
}

// Prev computes the position after a backward move. Backing out of the
// first step returns to role selection; backward moves are never gated.
func (s *Sequence) Prev(pos Position) Position {
	if pos.View != ViewSteps {
		return pos
	}
	if pos.Step <= 0 {
		return Position{View: ViewRole}
	}
	return Position{View: ViewSteps, Step: pos.Step - 1}
}

// Jump moves directly to an earlier step. Forward jumps are refused; the
// only way forward is through Next.
func (s *Sequence) Jump(pos Position, target StepID) (Position, bool) {
	if pos.View != ViewSteps {
		return pos, false
	}
	i := s.IndexOf(target)
	if i < 0 || i >= pos.Step {
		return pos, false
	}
	return Position{View: ViewSteps, Step: i}, true
}
