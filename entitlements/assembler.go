package entitlements

import (
	rpc "github.com/getftr/entitlement-index/rpc/entitlements"
)

// DistinctDOIs returns the DOIs in the order of their first occurrence.
// DOIs are compared by their exact string.
func DistinctDOIs(dois []string) []string {
	seen := make(map[string]bool, len(dois))
	out := make([]string, 0, len(dois))

	for _, doi := range dois {
		if seen[doi] {
			continue
		}

		seen[doi] = true

		out = append(out, doi)
	}

	return out
}

// Assemble builds the response from the resolution results. Every distinct
// DOI ends up either as an item or as unprocessed, in request order. A DOI
// that has no result, or wasn't found, is unprocessed.
func Assemble(
	dois []string, results map[string]Resolution,
) *rpc.EntitlementResponse {
	res := &rpc.EntitlementResponse{
		Items:       []*rpc.Entitlement{},
		Unprocessed: []string{},
	}

	for _, doi := range DistinctDOIs(dois) {
		r, ok := results[doi]
		if !ok || !r.Found || r.Entitlement == nil {
			res.Unprocessed = append(res.Unprocessed, doi)

			continue
		}

		res.Items = append(res.Items, r.Entitlement)
	}

	return res
}
