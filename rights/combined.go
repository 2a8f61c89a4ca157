package rights

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/getftr/entitlement-index/rpc/entitlements"
	"golang.org/x/exp/maps"
)

// Combined aggregates several sources into one. Institutions and grants are
// unioned, and a DOI is known if any source knows it. All sources must be
// available for a snapshot to be taken, a partial view could report a DOI as
// not entitled when it is.
type Combined struct {
	sources []Source
}

var _ Source = &Combined{}

func NewCombined(sources ...Source) *Combined {
	return &Combined{
		sources: sources,
	}
}

func (c *Combined) Snapshot(ctx context.Context) (View, error) {
	views := make([]View, 0, len(c.sources))

	for i, s := range c.sources {
		v, err := s.Snapshot(ctx)
		if err != nil {
			for _, taken := range views {
				taken.Close()
			}

			return nil, fmt.Errorf("source %d: %w", i, err)
		}

		views = append(views, v)
	}

	return combinedView(views), nil
}

type combinedView []View

func (cv combinedView) Version() string {
	versions := make([]string, len(cv))

	for i, v := range cv {
		versions[i] = v.Version()
	}

	return strings.Join(versions, "+")
}

func (cv combinedView) Lookup(
	ctx context.Context, t entitlements.IdentifierType, key string,
) ([]InstitutionID, error) {
	set := make(map[InstitutionID]struct{})

	for _, v := range cv {
		ids, err := v.Lookup(ctx, t, key)
		if err != nil {
			return nil, err
		}

		for _, id := range ids {
			set[id] = struct{}{}
		}
	}

	if len(set) == 0 {
		return nil, nil
	}

	ids := maps.Keys(set)

	slices.Sort(ids)

	return ids, nil
}

func (cv combinedView) Known(ctx context.Context, doi string) (bool, error) {
	for _, v := range cv {
		known, err := v.Known(ctx, doi)
		if err != nil {
			return false, err
		}

		if known {
			return true, nil
		}
	}

	return false, nil
}

func (cv combinedView) GrantsFor(
	ctx context.Context, institution InstitutionID, doi string,
) ([]Grant, error) {
	var grants []Grant

	for _, v := range cv {
		g, err := v.GrantsFor(ctx, institution, doi)
		if err != nil {
			return nil, err
		}

		grants = append(grants, g...)
	}

	return grants, nil
}

func (cv combinedView) Close() {
	for _, v := range cv {
		v.Close()
	}
}
