package entitlements

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/getftr/entitlement-index/rights"
	rpc "github.com/getftr/entitlement-index/rpc/entitlements"
	"github.com/ttab/elephantine"
	"golang.org/x/exp/maps"
	"golang.org/x/sync/errgroup"
)

// MatchedInstitution is an institution that one or more of the request
// identifiers resolved to. Sources holds the ascending request indexes of
// those identifiers.
type MatchedInstitution struct {
	ID      rights.InstitutionID
	Sources []int
}

// Matches is the result of matching the request identifiers. TimedOut holds
// the ascending request indexes of the identifiers whose lookup timed out,
// their institutions are unknown.
type Matches struct {
	Institutions []MatchedInstitution
	TimedOut     []int
}

// Complete returns true if every matchable identifier was looked up.
func (m Matches) Complete() bool {
	return len(m.TimedOut) == 0
}

// Matcher resolves normalised identifiers to institutions.
type Matcher struct {
	Logger        *slog.Logger
	Metrics       *Metrics
	LookupTimeout time.Duration
	Concurrency   int
}

type lookupKey struct {
	Type rpc.IdentifierType
	Key  string
}

// Match looks up every matchable identifier in the view and merges the
// identifiers that resolve to the same institution. The institutions are
// sorted by ID.
//
// A lookup that times out while ctx is still alive is reported in
// Matches.TimedOut, any other lookup error fails the match.
func (m *Matcher) Match(
	ctx context.Context, view rights.View, ids []NormalizedIdentifier,
) (Matches, error) {
	sources := make(map[lookupKey][]int)

	for _, id := range ids {
		if !id.Matchable {
			continue
		}

		k := lookupKey{Type: id.Type, Key: id.Key}

		sources[k] = append(sources[k], id.Index)
	}

	if len(sources) == 0 {
		return Matches{}, nil
	}

	var (
		mu       sync.Mutex
		matched  = make(map[rights.InstitutionID][]int)
		timedOut []int
	)

	grp, gCtx := errgroup.WithContext(ctx)

	if m.Concurrency > 0 {
		grp.SetLimit(m.Concurrency)
	}

	for k, indexes := range sources {
		grp.Go(func() error {
			institutions, ok, err := m.lookup(ctx, gCtx, view, k, indexes)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()

			if !ok {
				timedOut = append(timedOut, indexes...)

				return nil
			}

			for _, inst := range institutions {
				matched[inst] = append(matched[inst], indexes...)
			}

			return nil
		})
	}

	err := grp.Wait()
	if err != nil {
		return Matches{}, err
	}

	insts := maps.Keys(matched)

	slices.Sort(insts)

	result := make([]MatchedInstitution, len(insts))

	for i, inst := range insts {
		s := matched[inst]

		slices.Sort(s)

		result[i] = MatchedInstitution{
			ID:      inst,
			Sources: slices.Compact(s),
		}
	}

	slices.Sort(timedOut)

	return Matches{
		Institutions: result,
		TimedOut:     timedOut,
	}, nil
}

// lookup returns false if the lookup timed out.
func (m *Matcher) lookup(
	reqCtx context.Context, gCtx context.Context,
	view rights.View, k lookupKey, indexes []int,
) ([]rights.InstitutionID, bool, error) {
	lCtx := gCtx

	if m.LookupTimeout > 0 {
		c, cancel := context.WithTimeout(gCtx, m.LookupTimeout)
		defer cancel()

		lCtx = c
	}

	institutions, err := view.Lookup(lCtx, k.Type, k.Key)

	switch {
	case err == nil:
		return institutions, true, nil
	case reqCtx.Err() != nil:
		return nil, false, reqCtx.Err() //nolint:wrapcheck
	case stageTimedOut(reqCtx, lCtx):
		m.Logger.WarnContext(reqCtx,
			"identifier lookup timed out, its institutions are unknown",
			elephantine.LogKeyError, err,
			rights.LogKeyRightsVersion, view.Version(),
			"identifier_type", k.Type.String(),
			"identifier_indexes", indexes)

		m.Metrics.LookupTimeout(StageIdentifier)

		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("look up %s identifier: %w", k.Type, err)
	}
}

// stageTimedOut returns true if the deadline of a lookup stage was exceeded
// while the request is still alive, regardless of the error the rights index
// reported for it.
func stageTimedOut(reqCtx context.Context, stageCtx context.Context) bool {
	return reqCtx.Err() == nil &&
		errors.Is(stageCtx.Err(), context.DeadlineExceeded)
}
