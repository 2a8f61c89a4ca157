package entitlements

import (
	"github.com/getftr/entitlement-index/ident"
	rpc "github.com/getftr/entitlement-index/rpc/entitlements"
)

// NormalizedIdentifier is a caller identifier in its canonical form. Index is
// the position of the identifier in the request.
type NormalizedIdentifier struct {
	Index     int
	Type      rpc.IdentifierType
	Key       string
	Matchable bool
}

// Normalize canonicalises the request identifiers. Identifiers that can never
// match anything are kept but marked as not matchable, so that the indexes of
// the remaining identifiers still point into the request.
func Normalize(identifiers []*rpc.Identifier) []NormalizedIdentifier {
	out := make([]NormalizedIdentifier, len(identifiers))

	for i, id := range identifiers {
		out[i].Index = i

		if id == nil {
			continue
		}

		out[i].Type = id.Type
		out[i].Key, out[i].Matchable = ident.Key(id.Type, id.Value)
	}

	return out
}
