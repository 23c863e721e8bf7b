package transaction

import "github.com/oklog/ulid/v2"

// NewID mints a transaction identity: a "BC-" prefix over a ULID, so the
// token carries its creation time plus random bits and stays lexically
// sortable. Identities are assigned once and never regenerated.
func NewID() string {
	return "BC-" + ulid.Make().String()
}
