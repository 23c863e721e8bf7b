// Package share builds and parses the links that move a transaction between
// the two parties. The payload travels inside the URL itself: JSON, base64
// encoded, in the data query parameter.
package share

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"

	"boatcloser/transaction"
)

// Payload is the transaction data carried by an invitation link. Sections
// the sender has not filled in yet are omitted.
type Payload struct {
	Vessel        *transaction.Vessel  `json:"vessel,omitempty"`
	Terms         *transaction.Terms   `json:"terms,omitempty"`
	Parties       *transaction.Parties `json:"parties,omitempty"`
	InitiatorRole transaction.Role     `json:"initiatorRole,omitempty"`
}

// JoinOffer is a decoded invitation: the transaction to join, the role the
// recipient is being offered, and the sender's data.
type JoinOffer struct {
	TransactionID string
	Role          transaction.Role
	Payload       Payload
}

// DocumentPayload carries a single document's context in a view link.
type DocumentPayload struct {
	DocID         string               `json:"docId"`
	Vessel        *transaction.Vessel  `json:"vessel,omitempty"`
	Parties       *transaction.Parties `json:"parties,omitempty"`
	Terms         *transaction.Terms   `json:"terms,omitempty"`
	TransactionID string               `json:"transactionId"`
}

func encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("share: encode payload: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

func decode(s string, v any) error {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return fmt.Errorf("share: decode payload: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("share: decode payload: %w", err)
	}
	return nil
}

// BuildInviteURL builds the link that invites the counterparty into the
// transaction as the given role.
func BuildInviteURL(base, txID string, role transaction.Role, p Payload) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("share: parse base url: %w", err)
	}
	data, err := encode(p)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("tx", txID)
	q.Set("role", string(role))
	q.Set("data", data)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// BuildDocumentURL builds a link that opens one document with its context.
func BuildDocumentURL(base string, p DocumentPayload) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("share: parse base url: %w", err)
	}
	data, err := encode(p)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("viewDoc", p.DocID)
	q.Set("data", data)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// ParseInbound inspects a URL for an invitation. It returns nil unless all
// three parameters are present, the role is known, and the payload decodes;
// a malformed link is simply not an invitation.
func ParseInbound(rawURL string) *JoinOffer {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	q := u.Query()
	txID := q.Get("tx")
	role := transaction.Role(q.Get("role"))
	data := q.Get("data")
	if txID == "" || data == "" || !role.Valid() {
		return nil
	}

	var p Payload
	if err := decode(data, &p); err != nil {
		return nil
	}
	return &JoinOffer{TransactionID: txID, Role: role, Payload: p}
}

// ParseDocumentLink inspects a URL for a shared document view. Returns nil
// when the link does not carry one.
func ParseDocumentLink(rawURL string) *DocumentPayload {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	q := u.Query()
	docID := q.Get("viewDoc")
	data := q.Get("data")
	if docID == "" || data == "" {
		return nil
	}

	var p DocumentPayload
	if err := decode(data, &p); err != nil {
		return nil
	}
	if p.DocID == "" {
		p.DocID = docID
	}
	return &p
}
