package ident

import (
	"fmt"

	"github.com/google/uuid"
)

// Prefixes keep identifiers recognizable in logs and exports while the UUID
// part makes them collision-resistant under concurrent writers.
const (
	PrefixShelter  = "SH"
	PrefixRequest  = "REQ"
	PrefixSupply   = "SUP"
	PrefixDonation = "DON"
	PrefixUser     = "USR"
)

// New returns an opaque identifier of the form "<prefix>-<uuid>".
func New(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}
