package entitlements

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/getftr/entitlement-index/rights"
	rpc "github.com/getftr/entitlement-index/rpc/entitlements"
	"github.com/ttab/elephantine"
	"github.com/twitchtv/twirp"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultConcurrency    = 8
	DefaultLookupTimeout  = 2 * time.Second
	DefaultMaxDOIs        = 100
	DefaultMaxIdentifiers = 50
)

// Request results used for metrics.
const (
	requestOK          = "ok"
	requestInvalid     = "invalid_argument"
	requestUnavailable = "unavailable"
	requestCanceled    = "canceled"
	requestError       = "error"
)

type ServiceOptions struct {
	Logger  *slog.Logger
	Metrics *Metrics
	Source  rights.Source
	// Concurrency is the maximum number of DOIs, and identifiers, that
	// are resolved in parallel for a single request.
	Concurrency int
	// LookupTimeout is the deadline for resolving a single DOI, or
	// looking up a single identifier.
	LookupTimeout  time.Duration
	MaxDOIs        int
	MaxIdentifiers int
}

// Service resolves entitlements against a rights source.
type Service struct {
	logger  *slog.Logger
	metrics *Metrics
	source  rights.Source
	opts    ServiceOptions
	matcher Matcher
}

var _ rpc.Entitlements = &Service{}

func NewService(opts ServiceOptions) (*Service, error) {
	if opts.Source == nil {
		return nil, errors.New("missing rights source")
	}

	if opts.Metrics == nil {
		return nil, errors.New("missing metrics")
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}

	if opts.LookupTimeout == 0 {
		opts.LookupTimeout = DefaultLookupTimeout
	}

	if opts.MaxDOIs == 0 {
		opts.MaxDOIs = DefaultMaxDOIs
	}

	if opts.MaxIdentifiers == 0 {
		opts.MaxIdentifiers = DefaultMaxIdentifiers
	}

	return &Service{
		logger:  opts.Logger,
		metrics: opts.Metrics,
		source:  opts.Source,
		opts:    opts,
		matcher: Matcher{
			Logger:        opts.Logger,
			Metrics:       opts.Metrics,
			LookupTimeout: opts.LookupTimeout,
			Concurrency:   opts.Concurrency,
		},
	}, nil
}

// GetEntitlements implements rpc.Entitlements.
func (s *Service) GetEntitlements(
	ctx context.Context, req *rpc.EntitlementRequest,
) (_ *rpc.EntitlementResponse, outErr error) {
	start := time.Now()

	defer func() {
		s.metrics.Request(requestResult(outErr), time.Since(start))
	}()

	if s.opts.MaxDOIs > 0 && len(req.Dois) > s.opts.MaxDOIs {
		return nil, twirp.InvalidArgumentError("dois", fmt.Sprintf(
			"a maximum of %d DOIs can be resolved per request",
			s.opts.MaxDOIs))
	}

	if s.opts.MaxIdentifiers > 0 && len(req.Identifiers) > s.opts.MaxIdentifiers {
		return nil, twirp.InvalidArgumentError("identifiers", fmt.Sprintf(
			"a maximum of %d identifiers can be used per request",
			s.opts.MaxIdentifiers))
	}

	view, err := s.source.Snapshot(ctx)
	if err != nil {
		return nil, s.apiError(ctx, "get rights snapshot", err)
	}

	defer view.Close()

	matches, err := s.matcher.Match(ctx, view, Normalize(req.Identifiers))
	if err != nil {
		return nil, s.apiError(ctx, "match institutions", err)
	}

	if !matches.Complete() {
		s.logger.WarnContext(ctx,
			"identifier lookups timed out, DOIs without entitlement will be reported as unprocessed",
			rights.LogKeyRightsVersion, view.Version(),
			"identifier_indexes", matches.TimedOut)
	}

	dois := DistinctDOIs(req.Dois)

	var (
		mu      sync.Mutex
		results = make(map[string]Resolution, len(dois))
	)

	grp, gCtx := errgroup.WithContext(ctx)

	grp.SetLimit(s.opts.Concurrency)

	for _, doi := range dois {
		grp.Go(func() error {
			r, ok, err := s.resolveDOI(ctx, gCtx, view, doi, matches.Institutions)
			if err != nil {
				return err
			}

			if !ok {
				return nil
			}

			// A negative answer can't be given when the institutions of
			// some identifiers are unknown.
			if r.Found && !r.Entitlement.Entitled && !matches.Complete() {
				return nil
			}

			mu.Lock()
			results[doi] = r
			mu.Unlock()

			return nil
		})
	}

	err = grp.Wait()
	if err != nil {
		return nil, s.apiError(ctx, "resolve DOIs", err)
	}

	// Never respond to a cancelled request, even if the view didn't need
	// to observe the cancellation.
	if ctx.Err() != nil {
		return nil, s.apiError(ctx, "resolve DOIs", ctx.Err())
	}

	res := Assemble(req.Dois, results)

	for _, item := range res.Items {
		if item.Entitled {
			s.metrics.DOIResult(ResultEntitled)
		} else {
			s.metrics.DOIResult(ResultNotEntitled)
		}
	}

	for range res.Unprocessed {
		s.metrics.DOIResult(ResultUnprocessed)
	}

	return res, nil
}

// resolveDOI resolves a single DOI with its own deadline. Returns false if
// the resolution timed out and the DOI should be reported as unprocessed.
func (s *Service) resolveDOI(
	reqCtx context.Context, gCtx context.Context, view rights.View,
	doi string, institutions []MatchedInstitution,
) (Resolution, bool, error) {
	dCtx, cancel := context.WithTimeout(gCtx, s.opts.LookupTimeout)
	defer cancel()

	r, err := Resolve(dCtx, view, doi, institutions)

	switch {
	case err == nil:
		return r, true, nil
	case reqCtx.Err() != nil:
		return Resolution{}, false, reqCtx.Err() //nolint:wrapcheck
	case stageTimedOut(reqCtx, dCtx):
		s.logger.WarnContext(reqCtx,
			"DOI resolution timed out, reporting it as unprocessed",
			elephantine.LogKeyError, err,
			rights.LogKeyRightsVersion, view.Version(),
			"doi", doi)

		s.metrics.LookupTimeout(StageDOI)

		return Resolution{}, false, nil
	default:
		return Resolution{}, false, fmt.Errorf("resolve %q: %w", doi, err)
	}
}

// apiError translates errors from the rights index into twirp errors.
func (s *Service) apiError(ctx context.Context, op string, err error) error {
	switch {
	case ctx.Err() != nil:
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return twirp.NewError(twirp.DeadlineExceeded,
				"the request deadline was exceeded")
		}

		return twirp.NewError(twirp.Canceled, "the request was cancelled")
	case errors.Is(err, rights.ErrUnavailable):
		s.logger.ErrorContext(ctx, "rights index unavailable",
			elephantine.LogKeyError, err,
			"operation", op)

		return twirp.NewError(twirp.Unavailable,
			"the rights index is unavailable")
	default:
		s.logger.ErrorContext(ctx, "failed to resolve entitlements",
			elephantine.LogKeyError, err,
			"operation", op)

		return twirp.InternalErrorWith(fmt.Errorf("%s: %w", op, err))
	}
}

func requestResult(err error) string {
	if err == nil {
		return requestOK
	}

	var twErr twirp.Error

	if !errors.As(err, &twErr) {
		return requestError
	}

	switch twErr.Code() { //nolint:exhaustive
	case twirp.InvalidArgument:
		return requestInvalid
	case twirp.Unavailable:
		return requestUnavailable
	case twirp.Canceled, twirp.DeadlineExceeded:
		return requestCanceled
	default:
		return requestError
	}
}
