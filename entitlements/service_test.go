package entitlements_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/getftr/entitlement-index/entitlements"
	"github.com/getftr/entitlement-index/rights"
	rpc "github.com/getftr/entitlement-index/rpc/entitlements"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/ttab/elephantine/test"
	"github.com/twitchtv/twirp"
	"google.golang.org/protobuf/encoding/protojson"
)

func strP(s string) *string {
	return &s
}

func accessP(t rpc.AccessType) *rpc.AccessType {
	return &t
}

func loadRights(t *testing.T) *rights.Snapshot {
	t.Helper()

	snap, err := rights.LoadFixtureFile("testdata/rights.yaml")
	test.Must(t, err, "load rights fixtures")

	return snap
}

func newTestService(
	t *testing.T, source rights.Source, opts entitlements.ServiceOptions,
) (*entitlements.Service, *prometheus.Registry) {
	t.Helper()

	reg := prometheus.NewRegistry()

	metrics, err := entitlements.NewMetrics(reg)
	test.Must(t, err, "set up metrics")

	opts.Logger = slog.New(test.NewLogHandler(t, slog.LevelInfo))
	opts.Metrics = metrics
	opts.Source = source

	svc, err := entitlements.NewService(opts)
	test.Must(t, err, "create service")

	return svc, reg
}

func metricValue(
	t *testing.T, reg *prometheus.Registry,
	name string, labels map[string]string,
) float64 {
	t.Helper()

	families, err := reg.Gather()
	test.Must(t, err, "gather metrics")

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}

	metrics:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue metrics
				}
			}

			return m.GetCounter().GetValue()
		}
	}

	return 0
}

func ids(pairs ...any) []*rpc.Identifier {
	var out []*rpc.Identifier

	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, &rpc.Identifier{
			Type:  pairs[i].(rpc.IdentifierType),
			Value: pairs[i+1].(string),
		})
	}

	return out
}

var paid2222 = &rpc.Entitlement{
	Doi:         "10.10/2222",
	Entitled:    true,
	Document:    strP("https://example.com/10.10/2222"),
	AccessType:  accessP(rpc.AccessType_PAID),
	Identifiers: []int32{0},
	Vor: []*rpc.VOR{
		{Url: "https://example.com/2222.pdf", Type: strP("application/pdf")},
	},
}

func TestGetEntitlements(t *testing.T) {
	source := rights.NewMemorySource(loadRights(t))
	svc, _ := newTestService(t, source, entitlements.ServiceOptions{})

	cases := []struct {
		Name    string
		Request *rpc.EntitlementRequest
		Want    *rpc.EntitlementResponse
	}{
		{
			Name: "paid grant for an IP",
			Request: &rpc.EntitlementRequest{
				Identifiers: ids(rpc.IdentifierType_IPV4, "200.46.32.1"),
				Dois:        []string{"10.10/2222"},
			},
			Want: &rpc.EntitlementResponse{
				Items:       []*rpc.Entitlement{paid2222},
				Unprocessed: []string{},
			},
		},
		{
			Name: "unknown DOI",
			Request: &rpc.EntitlementRequest{
				Identifiers: ids(rpc.IdentifierType_IPV4, "200.46.32.1"),
				Dois:        []string{"10.10/1111", "10.10/2222"},
			},
			Want: &rpc.EntitlementResponse{
				Items:       []*rpc.Entitlement{paid2222},
				Unprocessed: []string{"10.10/1111"},
			},
		},
		{
			Name: "identifiers of the same institution",
			Request: &rpc.EntitlementRequest{
				Identifiers: ids(
					rpc.IdentifierType_IPV4, "200.46.32.1",
					rpc.IdentifierType_ENTITY_ID, " URN:Campus-A ",
				),
				Dois: []string{"10.10/2222"},
			},
			Want: &rpc.EntitlementResponse{
				Items: []*rpc.Entitlement{
					{
						Doi:         "10.10/2222",
						Entitled:    true,
						Document:    strP("https://example.com/10.10/2222"),
						AccessType:  accessP(rpc.AccessType_PAID),
						Identifiers: []int32{0, 1},
						Vor: []*rpc.VOR{
							{Url: "https://example.com/2222.pdf", Type: strP("application/pdf")},
						},
					},
				},
				Unprocessed: []string{},
			},
		},
		{
			Name: "no identifiers",
			Request: &rpc.EntitlementRequest{
				Dois: []string{"10.10/2222", "10.10/3333"},
			},
			Want: &rpc.EntitlementResponse{
				Items: []*rpc.Entitlement{
					{Doi: "10.10/2222"},
					{Doi: "10.10/3333"},
				},
				Unprocessed: []string{},
			},
		},
		{
			Name: "most permissive access type wins",
			Request: &rpc.EntitlementRequest{
				Identifiers: ids(
					rpc.IdentifierType_IPV4, "200.46.32.1",
					rpc.IdentifierType_IPV6, "2001:DB8:0::1",
				),
				Dois: []string{"10.10/2222"},
			},
			Want: &rpc.EntitlementResponse{
				Items: []*rpc.Entitlement{
					{
						Doi:         "10.10/2222",
						Entitled:    true,
						Document:    strP("https://oa.example.com/10.10/2222"),
						AccessType:  accessP(rpc.AccessType_OPEN_ACCESS),
						Identifiers: []int32{0, 1},
						Vor: []*rpc.VOR{
							{Url: "https://example.com/2222.pdf", Type: strP("application/pdf")},
							{Url: "https://oa.example.com/2222.xml", Type: strP("application/xml")},
						},
					},
				},
				Unprocessed: []string{},
			},
		},
		{
			Name: "malformed identifiers never match",
			Request: &rpc.EntitlementRequest{
				Identifiers: ids(
					rpc.IdentifierType_IPV4, "200.46.32.0/24",
					rpc.IdentifierType_IPV6, "200.46.32.1",
					rpc.IdentifierType(42), "200.46.32.1",
					rpc.IdentifierType_IPV4, "200.46.32.1",
				),
				Dois: []string{"10.10/2222"},
			},
			Want: &rpc.EntitlementResponse{
				Items: []*rpc.Entitlement{
					{
						Doi:         "10.10/2222",
						Entitled:    true,
						Document:    strP("https://example.com/10.10/2222"),
						AccessType:  accessP(rpc.AccessType_PAID),
						Identifiers: []int32{3},
						Vor: []*rpc.VOR{
							{Url: "https://example.com/2222.pdf", Type: strP("application/pdf")},
						},
					},
				},
				Unprocessed: []string{},
			},
		},
		{
			Name: "only granting institutions are provenance",
			Request: &rpc.EntitlementRequest{
				Identifiers: ids(
					rpc.IdentifierType_IPV4, "200.46.32.1",
					rpc.IdentifierType_RINGGOLD_ID, "4616",
				),
				Dois: []string{"10.10/5555"},
			},
			Want: &rpc.EntitlementResponse{
				Items: []*rpc.Entitlement{
					{
						Doi:         "10.10/5555",
						Entitled:    true,
						AccessType:  accessP(rpc.AccessType_FREE),
						Identifiers: []int32{1},
					},
				},
				Unprocessed: []string{},
			},
		},
		{
			Name: "duplicate and empty DOIs",
			Request: &rpc.EntitlementRequest{
				Identifiers: ids(rpc.IdentifierType_IPV4, "200.46.32.1"),
				Dois: []string{
					"10.10/2222", " ", "10.10/2222", "", " ",
				},
			},
			Want: &rpc.EntitlementResponse{
				Items:       []*rpc.Entitlement{paid2222},
				Unprocessed: []string{" ", ""},
			},
		},
		{
			Name:    "empty request",
			Request: &rpc.EntitlementRequest{},
			Want: &rpc.EntitlementResponse{
				Items:       []*rpc.Entitlement{},
				Unprocessed: []string{},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			res, err := svc.GetEntitlements(test.Context(t), c.Request)
			test.Must(t, err, "get entitlements")

			test.EqualMessage(t, c.Want, res, "get the expected response")
		})
	}
}

func TestGetEntitlementsPartitionAndIdempotence(t *testing.T) {
	ctx := test.Context(t)
	source := rights.NewMemorySource(loadRights(t))
	svc, _ := newTestService(t, source, entitlements.ServiceOptions{
		Concurrency: 3,
	})

	var dois []string

	for i := range 40 {
		dois = append(dois, fmt.Sprintf("10.10/%d", 1111*(i%9+1)))
	}

	req := rpc.EntitlementRequest{
		Identifiers: ids(
			rpc.IdentifierType_IPV6, "2001:db8::1",
			rpc.IdentifierType_IPV4, "200.46.32.1",
			rpc.IdentifierType_RINGGOLD_ID, "4616",
		),
		Dois: dois,
	}

	first, err := svc.GetEntitlements(ctx, &req)
	test.Must(t, err, "get entitlements")

	seen := make(map[string]int)

	for _, item := range first.Items {
		seen[item.Doi]++
	}

	for _, doi := range first.Unprocessed {
		seen[doi]++
	}

	for _, doi := range entitlements.DistinctDOIs(dois) {
		test.Equal(t, 1, seen[doi], "%q is reported exactly once", doi)
	}

	test.Equal(t, 9, len(seen), "only request DOIs are reported")

	firstJSON, err := protojson.Marshal(first)
	test.Must(t, err, "marshal first response")

	for range 5 {
		again, err := svc.GetEntitlements(ctx, &req)
		test.Must(t, err, "get entitlements again")

		againJSON, err := protojson.Marshal(again)
		test.Must(t, err, "marshal response")

		test.Equal(t, string(firstJSON), string(againJSON),
			"responses are identical for the same snapshot")
	}
}

func TestGetEntitlementsMonotonicOR(t *testing.T) {
	ctx := test.Context(t)
	source := rights.NewMemorySource(loadRights(t))
	svc, _ := newTestService(t, source, entitlements.ServiceOptions{})

	dois := []string{"10.10/2222", "10.10/3333", "10.10/5555"}

	base, err := svc.GetEntitlements(ctx, &rpc.EntitlementRequest{
		Identifiers: ids(rpc.IdentifierType_IPV4, "200.46.32.1"),
		Dois:        dois,
	})
	test.Must(t, err, "get base entitlements")

	more, err := svc.GetEntitlements(ctx, &rpc.EntitlementRequest{
		Identifiers: ids(
			rpc.IdentifierType_IPV4, "200.46.32.1",
			rpc.IdentifierType_ISNI, "no such institution",
			rpc.IdentifierType_RINGGOLD_ID, "4616",
		),
		Dois: dois,
	})
	test.Must(t, err, "get entitlements with more identifiers")

	test.Equal(t, len(base.Items), len(more.Items), "same number of items")

	for i, item := range base.Items {
		if item.Entitled && !more.Items[i].Entitled {
			t.Fatalf("adding identifiers removed the entitlement to %q",
				item.Doi)
		}
	}

	test.Equal(t, true, more.Items[2].Entitled,
		"the added institution grants 10.10/5555")
}

func TestGetEntitlementsNegativeShape(t *testing.T) {
	source := rights.NewMemorySource(loadRights(t))
	svc, _ := newTestService(t, source, entitlements.ServiceOptions{})

	res, err := svc.GetEntitlements(test.Context(t), &rpc.EntitlementRequest{
		Identifiers: ids(rpc.IdentifierType_GRID_ID, "grid.0000.0"),
		Dois:        []string{"10.10/2222", "10.10/3333"},
	})
	test.Must(t, err, "get entitlements")

	test.Equal(t, 2, len(res.Items), "both DOIs are known")

	for _, item := range res.Items {
		test.Equal(t, false, item.Entitled, "%q is not entitled", item.Doi)
		test.EqualMessage(t, &rpc.Entitlement{Doi: item.Doi}, item,
			"negative results only carry the DOI")
	}
}

func TestGetEntitlementsLimits(t *testing.T) {
	source := rights.NewMemorySource(loadRights(t))
	svc, reg := newTestService(t, source, entitlements.ServiceOptions{
		MaxDOIs:        3,
		MaxIdentifiers: 2,
	})

	ctx := test.Context(t)

	_, err := svc.GetEntitlements(ctx, &rpc.EntitlementRequest{
		Dois: []string{"a", "b", "c", "d"},
	})
	test.IsTwirpError(t, err, twirp.InvalidArgument)

	_, err = svc.GetEntitlements(ctx, &rpc.EntitlementRequest{
		Identifiers: ids(
			rpc.IdentifierType_IPV4, "10.0.0.1",
			rpc.IdentifierType_IPV4, "10.0.0.2",
			rpc.IdentifierType_IPV4, "10.0.0.3",
		),
	})
	test.IsTwirpError(t, err, twirp.InvalidArgument)

	_, err = svc.GetEntitlements(ctx, &rpc.EntitlementRequest{
		Identifiers: ids(
			rpc.IdentifierType_IPV4, "10.0.0.1",
			rpc.IdentifierType_IPV4, "10.0.0.2",
		),
		Dois: []string{"a", "b", "c"},
	})
	test.Must(t, err, "accept a request at the limits")

	test.Equal(t, 2.0, metricValue(t, reg, "entitlements_requests_total",
		map[string]string{"result": "invalid_argument"}),
		"count invalid requests")
}

func TestGetEntitlementsMetrics(t *testing.T) {
	source := rights.NewMemorySource(loadRights(t))
	svc, reg := newTestService(t, source, entitlements.ServiceOptions{})

	_, err := svc.GetEntitlements(test.Context(t), &rpc.EntitlementRequest{
		Identifiers: ids(rpc.IdentifierType_IPV4, "200.46.32.1"),
		Dois:        []string{"10.10/2222", "10.10/3333", "10.10/1111"},
	})
	test.Must(t, err, "get entitlements")

	for result, want := range map[string]float64{
		entitlements.ResultEntitled:    1,
		entitlements.ResultNotEntitled: 1,
		entitlements.ResultUnprocessed: 1,
	} {
		test.Equal(t, want, metricValue(t, reg,
			"entitlements_doi_results_total",
			map[string]string{"result": result}),
			"count %s DOIs", result)
	}

	test.Equal(t, 1.0, metricValue(t, reg, "entitlements_requests_total",
		map[string]string{"result": "ok"}),
		"count successful requests")
}

// fakeSource wraps a snapshot to inject delays and errors.
type fakeSource struct {
	view *fakeView
}

func (fs fakeSource) Snapshot(_ context.Context) (rights.View, error) {
	return fs.view, nil
}

type fakeView struct {
	*rights.Snapshot

	knownDelay  map[string]time.Duration
	lookupDelay map[string]time.Duration
	knownErr    error
	lookupErr   error
	closed      int

	// unavailableOnDone makes the view report a done context as the
	// rights index being unavailable.
	unavailableOnDone bool
}

func (v *fakeView) Lookup(
	ctx context.Context, t rpc.IdentifierType, key string,
) ([]rights.InstitutionID, error) {
	err := v.wait(ctx, v.lookupDelay[key])
	if err != nil {
		return nil, err
	}

	if v.lookupErr != nil {
		return nil, v.lookupErr
	}

	return v.Snapshot.Lookup(ctx, t, key)
}

func (v *fakeView) Known(ctx context.Context, doi string) (bool, error) {
	err := v.wait(ctx, v.knownDelay[doi])
	if err != nil {
		return false, err
	}

	if v.knownErr != nil {
		return false, v.knownErr
	}

	return v.Snapshot.Known(ctx, doi)
}

func (v *fakeView) Close() {
	v.closed++
}

func (v *fakeView) wait(ctx context.Context, d time.Duration) error {
	if d == 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		if v.unavailableOnDone {
			return fmt.Errorf("%w: %w", rights.ErrUnavailable, ctx.Err())
		}

		return ctx.Err() //nolint:wrapcheck
	case <-timer.C:
		return nil
	}
}

func TestGetEntitlementsDOITimeout(t *testing.T) {
	view := fakeView{
		Snapshot: loadRights(t),
		knownDelay: map[string]time.Duration{
			"10.10/3333": time.Minute,
		},
	}

	svc, reg := newTestService(t, fakeSource{view: &view},
		entitlements.ServiceOptions{
			LookupTimeout: 50 * time.Millisecond,
		})

	res, err := svc.GetEntitlements(test.Context(t), &rpc.EntitlementRequest{
		Identifiers: ids(rpc.IdentifierType_IPV4, "200.46.32.1"),
		Dois:        []string{"10.10/3333", "10.10/2222"},
	})
	test.Must(t, err, "get entitlements despite the timeout")

	test.EqualMessage(t, &rpc.EntitlementResponse{
		Items:       []*rpc.Entitlement{paid2222},
		Unprocessed: []string{"10.10/3333"},
	}, res, "report the slow DOI as unprocessed")

	test.Equal(t, 1.0, metricValue(t, reg,
		"entitlements_lookup_timeouts_total",
		map[string]string{"stage": entitlements.StageDOI}),
		"count the DOI timeout")

	test.Equal(t, 1, view.closed, "close the view")
}

func TestGetEntitlementsIdentifierTimeout(t *testing.T) {
	t.Run("single identifier", func(t *testing.T) {
		view := fakeView{
			Snapshot: loadRights(t),
			lookupDelay: map[string]time.Duration{
				"200.46.32.1": time.Minute,
			},
		}

		svc, reg := newTestService(t, fakeSource{view: &view},
			entitlements.ServiceOptions{
				LookupTimeout: 50 * time.Millisecond,
			})

		res, err := svc.GetEntitlements(test.Context(t), &rpc.EntitlementRequest{
			Identifiers: ids(rpc.IdentifierType_IPV4, "200.46.32.1"),
			Dois:        []string{"10.10/2222"},
		})
		test.Must(t, err, "get entitlements despite the timeout")

		test.EqualMessage(t, &rpc.EntitlementResponse{
			Items:       []*rpc.Entitlement{},
			Unprocessed: []string{"10.10/2222"},
		}, res, "don't deny access when the identifier couldn't be looked up")

		test.Equal(t, 1.0, metricValue(t, reg,
			"entitlements_lookup_timeouts_total",
			map[string]string{"stage": entitlements.StageIdentifier}),
			"count the identifier timeout")

		test.Equal(t, 1.0, metricValue(t, reg,
			"entitlements_doi_results_total",
			map[string]string{"result": entitlements.ResultUnprocessed}),
			"count the DOI as unprocessed")
	})

	t.Run("another identifier grants access", func(t *testing.T) {
		view := fakeView{
			Snapshot: loadRights(t),
			lookupDelay: map[string]time.Duration{
				"2001:db8::1": time.Minute,
			},
		}

		svc, reg := newTestService(t, fakeSource{view: &view},
			entitlements.ServiceOptions{
				LookupTimeout: 50 * time.Millisecond,
			})

		res, err := svc.GetEntitlements(test.Context(t), &rpc.EntitlementRequest{
			Identifiers: ids(
				rpc.IdentifierType_IPV4, "200.46.32.1",
				rpc.IdentifierType_IPV6, "2001:db8::1",
			),
			Dois: []string{"10.10/2222", "10.10/5555", "10.10/3333"},
		})
		test.Must(t, err, "get entitlements despite the timeout")

		test.EqualMessage(t, &rpc.EntitlementResponse{
			Items:       []*rpc.Entitlement{paid2222},
			Unprocessed: []string{"10.10/5555", "10.10/3333"},
		}, res, "keep entitlements and leave the rest unprocessed")

		test.Equal(t, 1.0, metricValue(t, reg,
			"entitlements_lookup_timeouts_total",
			map[string]string{"stage": entitlements.StageIdentifier}),
			"count the identifier timeout")
	})
}

func TestGetEntitlementsDeadlineReportedAsUnavailable(t *testing.T) {
	view := fakeView{
		Snapshot: loadRights(t),
		lookupDelay: map[string]time.Duration{
			"200.46.32.1": time.Minute,
		},
		knownDelay: map[string]time.Duration{
			"10.10/3333": time.Minute,
		},
		unavailableOnDone: true,
	}

	svc, reg := newTestService(t, fakeSource{view: &view},
		entitlements.ServiceOptions{
			LookupTimeout: 50 * time.Millisecond,
		})

	res, err := svc.GetEntitlements(test.Context(t), &rpc.EntitlementRequest{
		Identifiers: ids(
			rpc.IdentifierType_IPV4, "200.46.32.1",
			rpc.IdentifierType_IPV6, "2001:db8::1",
		),
		Dois: []string{"10.10/2222", "10.10/3333"},
	})
	test.Must(t, err, "degrade both stages instead of failing")

	test.EqualMessage(t, &rpc.EntitlementResponse{
		Items: []*rpc.Entitlement{
			{
				Doi:         "10.10/2222",
				Entitled:    true,
				Document:    strP("https://oa.example.com/10.10/2222"),
				AccessType:  accessP(rpc.AccessType_OPEN_ACCESS),
				Identifiers: []int32{1},
				Vor: []*rpc.VOR{
					{Url: "https://example.com/2222.pdf", Type: strP("text/plain")},
					{Url: "https://oa.example.com/2222.xml", Type: strP("application/xml")},
				},
			},
		},
		Unprocessed: []string{"10.10/3333"},
	}, res, "treat stage deadlines the same in both stages")

	for _, stage := range []string{
		entitlements.StageIdentifier, entitlements.StageDOI,
	} {
		test.Equal(t, 1.0, metricValue(t, reg,
			"entitlements_lookup_timeouts_total",
			map[string]string{"stage": stage}),
			"count the %s timeout", stage)
	}
}

func TestGetEntitlementsCancelled(t *testing.T) {
	view := fakeView{
		Snapshot: loadRights(t),
		knownDelay: map[string]time.Duration{
			"10.10/2222": time.Minute,
		},
	}

	svc, reg := newTestService(t, fakeSource{view: &view},
		entitlements.ServiceOptions{
			LookupTimeout: 2 * time.Minute,
		})

	ctx, cancel := context.WithCancel(test.Context(t))

	time.AfterFunc(50*time.Millisecond, cancel)

	res, err := svc.GetEntitlements(ctx, &rpc.EntitlementRequest{
		Dois: []string{"10.10/2222", "10.10/3333"},
	})

	test.IsTwirpError(t, err, twirp.Canceled)

	if res != nil {
		t.Fatal("expected no response for a cancelled request")
	}

	test.Equal(t, 1.0, metricValue(t, reg, "entitlements_requests_total",
		map[string]string{"result": "canceled"}),
		"count the cancelled request")
}

func TestGetEntitlementsUnavailable(t *testing.T) {
	ctx := test.Context(t)

	svc, reg := newTestService(t, rights.NewMemorySource(nil),
		entitlements.ServiceOptions{})

	_, err := svc.GetEntitlements(ctx, &rpc.EntitlementRequest{
		Dois: []string{"10.10/2222"},
	})
	test.IsTwirpError(t, err, twirp.Unavailable)

	test.Equal(t, 1.0, metricValue(t, reg, "entitlements_requests_total",
		map[string]string{"result": "unavailable"}),
		"count the unavailable request")

	view := fakeView{
		Snapshot: loadRights(t),
		knownErr: fmt.Errorf("get document: %w", rights.ErrUnavailable),
	}

	svc, _ = newTestService(t, fakeSource{view: &view},
		entitlements.ServiceOptions{})

	_, err = svc.GetEntitlements(ctx, &rpc.EntitlementRequest{
		Dois: []string{"10.10/2222", "10.10/3333"},
	})
	test.IsTwirpError(t, err, twirp.Unavailable)

	view = fakeView{
		Snapshot:  loadRights(t),
		lookupErr: fmt.Errorf("get identifier: %w", rights.ErrUnavailable),
	}

	svc, _ = newTestService(t, fakeSource{view: &view},
		entitlements.ServiceOptions{})

	_, err = svc.GetEntitlements(ctx, &rpc.EntitlementRequest{
		Identifiers: ids(rpc.IdentifierType_IPV4, "200.46.32.1"),
		Dois:        []string{"10.10/2222"},
	})
	test.IsTwirpError(t, err, twirp.Unavailable)
}

func TestGetEntitlementsInternalError(t *testing.T) {
	view := fakeView{
		Snapshot: loadRights(t),
		knownErr: errors.New("corrupt document"),
	}

	svc, _ := newTestService(t, fakeSource{view: &view},
		entitlements.ServiceOptions{})

	_, err := svc.GetEntitlements(test.Context(t), &rpc.EntitlementRequest{
		Dois: []string{"10.10/2222"},
	})
	test.IsTwirpError(t, err, twirp.Internal)
}
