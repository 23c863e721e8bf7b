// Package app is the session controller: it owns the transaction state,
// moves it through the workflow, renders documents, and persists a snapshot
// after every mutation.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"boatcloser/config"
	"boatcloser/document"
	"boatcloser/logger"
	"boatcloser/share"
	"boatcloser/signing"
	"boatcloser/store"
	"boatcloser/transaction"
	"boatcloser/workflow"
)

// ErrInvalidRole signals a role outside buyer/seller.
var ErrInvalidRole = errors.New("app: invalid role")

// App drives one user's session over the single live transaction.
type App struct {
	cfg    *config.Config
	log    *logrus.Entry
	store  *store.FileStore
	seq    *workflow.Sequence
	engine *document.Engine
	client *resty.Client
	now    func() time.Time

	State *transaction.State
	Pos   workflow.Position
	Offer *share.JoinOffer
}

// New builds a session controller from configuration.
func New(cfg *config.Config) *App {
	return &App{
		cfg:   cfg,
		log:   logger.NewSublogger("app"),
		store: store.NewFileStore(cfg.DataDir),
		seq: workflow.NewSequence(workflow.Config{
			ShowPaywall:    cfg.ShowPaywall,
			ShowEscrowStep: cfg.ShowEscrowStep,
		}),
		engine: document.NewEngine(),
		client: resty.New(),
		now:    time.Now,
		State:  transaction.NewState(),
		Pos:    workflow.Position{View: workflow.ViewWelcome},
	}
}

// Startup restores the saved session, if any, then checks the entry URL for
// an invitation. An invitation wins: the join screen is shown over whatever
// was restored.
func (a *App) Startup(rawURL string) error {
	snap, err := a.store.Load()
	if err != nil {
		return err
	}
	if snap != nil {
		st := snap.State
		a.State = &st
		a.Pos = workflow.Position{View: snap.View, Step: snap.Step}
		a.log.WithField("transactionId", st.ID).Debug("Restored saved session")
	}

	if rawURL != "" {
		if offer := share.ParseInbound(rawURL); offer != nil {
			a.Offer = offer
			a.Pos = workflow.Position{View: workflow.ViewJoin}
		}
	}
	return nil
}

// Sequence exposes the configured step list.
func (a *App) Sequence() *workflow.Sequence {
	return a.seq
}

// CurrentStep returns the step the session is on, when in the form view.
func (a *App) CurrentStep() (workflow.Step, bool) {
	if a.Pos.View != workflow.ViewSteps {
		return workflow.Step{}, false
	}
	return a.seq.At(a.Pos.Step)
}

// Begin leaves the welcome screen for role selection.
func (a *App) Begin() {
	a.Pos = workflow.Position{View: workflow.ViewRole}
}

// ChooseRole fixes which side of the sale this session is on and enters the
// form sequence.
func (a *App) ChooseRole(r transaction.Role) error {
	if !r.Valid() {
		return ErrInvalidRole
	}
	a.State.Role = r
	a.Pos = workflow.Position{View: workflow.ViewSteps, Step: 0}
	a.persist()
	return nil
}

// SetVessel replaces the vessel record.
func (a *App) SetVessel(v transaction.Vessel) {
	a.State.Vessel = v
	a.persist()
}

// SetParties replaces both party records.
func (a *App) SetParties(p transaction.Parties) {
	a.State.Parties = p
	a.persist()
}

// SetTerms replaces the financial terms.
func (a *App) SetTerms(t transaction.Terms) {
	a.State.Terms = t
	a.persist()
}

// SetEscrow replaces the payment-method details. The method is coerced onto
// the known set.
func (a *App) SetEscrow(e transaction.Escrow) {
	e.PaymentMethod = transaction.ParsePaymentMethod(string(e.PaymentMethod))
	a.State.Escrow = e
	a.persist()
}

// SetDiligence replaces the due-diligence checklist.
func (a *App) SetDiligence(d transaction.Diligence) {
	a.State.Diligence = d
	a.persist()
}

// AcceptTerms records plan selection and the service-terms acknowledgment
// that gates the payment step.
func (a *App) AcceptTerms(planID string) {
	a.State.Payment = transaction.Payment{PlanID: planID, TermsAccepted: true}
	a.persist()
}

// Advance moves one step forward. Leaving the vessel step assigns the
// transaction identity; leaving the final step completes the transaction.
func (a *App) Advance() error {
	step, inSteps := a.seq.At(a.Pos.Step)
	next, err := a.seq.Next(a.Pos, a.State, document.RequiredIDs())
	if err != nil {
		return err
	}
	if inSteps && a.Pos.View == workflow.ViewSteps && step.ID == workflow.StepVessel {
		a.State.EnsureID()
	}
	a.Pos = next
	a.persist()
	return nil
}

// Back moves one step backward. Backward moves are never gated.
func (a *App) Back() {
	a.Pos = a.seq.Prev(a.Pos)
	a.persist()
}

// JumpTo revisits an earlier step. Forward jumps are refused.
func (a *App) JumpTo(id workflow.StepID) bool {
	pos, ok := a.seq.Jump(a.Pos, id)
	if !ok {
		return false
	}
	a.Pos = pos
	a.persist()
	return true
}

// InviteURL builds the link inviting the counterparty into the transaction,
// assigning the transaction identity if needed.
func (a *App) InviteURL() (string, error) {
	a.State.EnsureID()
	a.persist()

	vessel := a.State.Vessel
	terms := a.State.Terms
	parties := a.State.Parties
	payload := share.Payload{
		Vessel:        &vessel,
		Terms:         &terms,
		Parties:       &parties,
		InitiatorRole: a.State.Role,
	}
	return share.BuildInviteURL(a.cfg.BaseURL, a.State.ID, a.State.Role.Counterpart(), payload)
}

// DocumentURL builds a link that opens one document with its context.
func (a *App) DocumentURL(docID string) (string, error) {
	a.State.EnsureID()
	a.persist()

	vessel := a.State.Vessel
	terms := a.State.Terms
	parties := a.State.Parties
	return share.BuildDocumentURL(a.cfg.BaseURL, share.DocumentPayload{
		DocID:         docID,
		Vessel:        &vessel,
		Parties:       &parties,
		Terms:         &terms,
		TransactionID: a.State.ID,
	})
}

// QRCode fetches a QR image for a link.
func (a *App) QRCode(ctx context.Context, link string) ([]byte, error) {
	return share.FetchQR(ctx, a.client, link, 200)
}

// Sign applies the session user's signature to a document.
func (a *App) Sign(docID, name string, consented bool) (signing.Record, error) {
	rec, err := a.State.Signatures.Sign(docID, name, string(a.State.Role), consented, a.now())
	if err != nil {
		return signing.Record{}, err
	}
	a.persist()
	return rec, nil
}

// Render generates a document from the current state.
func (a *App) Render(docID string) document.Rendered {
	return a.engine.Render(docID, a.State)
}

// ExportHTML renders a document as a printable page, carrying the signature
// note when the document is signed.
func (a *App) ExportHTML(docID string) string {
	return document.ExportHTML(a.Render(docID), a.State.Signatures.IsSigned(docID))
}

// AcceptOffer joins the invited transaction: the session adopts the shared
// identity and role, merges the sender's data, and lands on the parties
// step to fill in its own details.
func (a *App) AcceptOffer() error {
	if a.Offer == nil {
		return errors.New("app: no pending invitation")
	}
	offer := a.Offer

	a.State.ID = offer.TransactionID
	a.State.Role = offer.Role
	if offer.Payload.Vessel != nil {
		a.State.Vessel = *offer.Payload.Vessel
	}
	if offer.Payload.Terms != nil {
		a.State.Terms = *offer.Payload.Terms
	}
	if offer.Payload.Parties != nil {
		a.State.Parties = *offer.Payload.Parties
	}

	a.Offer = nil
	parties := a.seq.IndexOf(workflow.StepParties)
	a.Pos = workflow.Position{View: workflow.ViewSteps, Step: parties}
	a.persist()
	return nil
}

// DeclineOffer discards the invitation without touching the session.
func (a *App) DeclineOffer() {
	a.Offer = nil
	a.Pos = workflow.Position{View: workflow.ViewWelcome}
}

// HasResumable reports whether a saved session is worth continuing.
func (a *App) HasResumable() bool {
	return a.store.HasResumable()
}

// Reset discards the saved snapshot and starts a fresh transaction at role
// selection.
func (a *App) Reset() error {
	if err := a.store.Reset(); err != nil {
		return err
	}
	a.State = transaction.NewState()
	a.Pos = workflow.Position{View: workflow.ViewRole}
	a.Offer = nil
	return nil
}

func (a *App) persist() {
	snap := &store.Snapshot{
		State: *a.State,
		View:  a.Pos.View,
		Step:  a.Pos.Step,
	}
	if err := a.store.Save(snap); err != nil {
		a.log.WithError(err).Warn("Failed to save session")
	}
}
