package entitlements

import (
	"context"
	"fmt"
	"slices"

	"github.com/getftr/entitlement-index/ident"
	"github.com/getftr/entitlement-index/rights"
	rpc "github.com/getftr/entitlement-index/rpc/entitlements"
)

// Resolution is the outcome of resolving a single DOI. Found is false when
// the rights index doesn't know the DOI, the DOI is then reported as
// unprocessed.
type Resolution struct {
	Found       bool
	Entitlement *rpc.Entitlement
}

// Resolve decides whether any of the matched institutions is entitled to the
// DOI. Institutions must be sorted by ID, as returned by Matcher.Match().
func Resolve(
	ctx context.Context, view rights.View,
	doi string, institutions []MatchedInstitution,
) (Resolution, error) {
	key, ok := ident.DOI(doi)
	if !ok {
		return Resolution{}, nil
	}

	known, err := view.Known(ctx, key)
	if err != nil {
		return Resolution{}, fmt.Errorf("check if DOI is known: %w", err)
	}

	if !known {
		return Resolution{}, nil
	}

	var (
		granting []MatchedInstitution
		grants   [][]rights.Grant
	)

	for _, inst := range institutions {
		g, err := view.GrantsFor(ctx, inst.ID, key)
		if err != nil {
			return Resolution{}, fmt.Errorf(
				"get grants for %q: %w", inst.ID, err)
		}

		if len(g) == 0 {
			continue
		}

		granting = append(granting, inst)
		grants = append(grants, g)
	}

	ent := &rpc.Entitlement{
		Doi: doi,
	}

	if len(granting) == 0 {
		return Resolution{Found: true, Entitlement: ent}, nil
	}

	ent.Entitled = true

	winner := rpc.AccessType_UNSPECIFIED

	for _, instGrants := range grants {
		for _, g := range instGrants {
			if accessRank(g.AccessType) > accessRank(winner) {
				winner = g.AccessType
			}
		}
	}

	// Grants without an access type don't tell the reader anything.
	if winner != rpc.AccessType_UNSPECIFIED {
		ent.AccessType = &winner
	}

	ent.Document = documentURL(grants, winner)

	seenVOR := make(map[string]bool)

	for _, instGrants := range grants {
		for _, g := range instGrants {
			for _, v := range g.VOR {
				if seenVOR[v.URL] {
					continue
				}

				seenVOR[v.URL] = true

				ent.Vor = append(ent.Vor, &rpc.VOR{
					Url:  v.URL,
					Type: v.Type,
				})
			}
		}
	}

	var sources []int

	for _, inst := range granting {
		sources = append(sources, inst.Sources...)
	}

	slices.Sort(sources)

	for _, idx := range slices.Compact(sources) {
		ent.Identifiers = append(ent.Identifiers, int32(idx))
	}

	return Resolution{Found: true, Entitlement: ent}, nil
}

// The document URL is taken from the first grant with the winning access type
// that has one, and otherwise from the first grant that has one.
func documentURL(grants [][]rights.Grant, winner rpc.AccessType) *string {
	var fallback *string

	for _, instGrants := range grants {
		for _, g := range instGrants {
			if g.DocumentURL == nil {
				continue
			}

			if g.AccessType == winner {
				u := *g.DocumentURL

				return &u
			}

			if fallback == nil {
				u := *g.DocumentURL
				fallback = &u
			}
		}
	}

	return fallback
}

// accessRank orders access types from the least to the most permissive for
// the reader.
func accessRank(t rpc.AccessType) int {
	switch t {
	case rpc.AccessType_UNSPECIFIED:
		return 0
	case rpc.AccessType_PAID:
		return 1
	case rpc.AccessType_FREE:
		return 2
	case rpc.AccessType_OPEN_ACCESS:
		return 3
	case rpc.AccessType_PERMANENTLY_FREE:
		return 4
	default:
		return -1
	}
}
