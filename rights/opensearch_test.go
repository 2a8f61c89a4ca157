package rights_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/getftr/entitlement-index/rights"
	"github.com/getftr/entitlement-index/rpc/entitlements"
	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/ttab/elephantine/test"
)

// fakeCluster serves the small part of the OpenSearch API that the rights
// source uses.
type fakeCluster struct {
	m       sync.Mutex
	alias   map[string][]string
	docs    map[string]map[string]any
	status  int
	gets    map[string]int
	aliased int
}

func newFakeCluster() *fakeCluster {
	return &fakeCluster{
		alias: make(map[string][]string),
		docs:  make(map[string]map[string]any),
		gets:  make(map[string]int),
	}
}

func (fc *fakeCluster) PutDoc(index string, id string, doc any) {
	fc.m.Lock()
	defer fc.m.Unlock()

	if fc.docs[index] == nil {
		fc.docs[index] = make(map[string]any)
	}

	fc.docs[index][id] = doc
}

func (fc *fakeCluster) SetAlias(name string, indices ...string) {
	fc.m.Lock()
	defer fc.m.Unlock()

	fc.alias[name] = indices
}

func (fc *fakeCluster) Aliased(name string) []string {
	fc.m.Lock()
	defer fc.m.Unlock()

	return slices.Clone(fc.alias[name])
}

func (fc *fakeCluster) SetStatus(status int) {
	fc.m.Lock()
	defer fc.m.Unlock()

	fc.status = status
}

func (fc *fakeCluster) Gets(id string) int {
	fc.m.Lock()
	defer fc.m.Unlock()

	return fc.gets[id]
}

func (fc *fakeCluster) AliasRequests() int {
	fc.m.Lock()
	defer fc.m.Unlock()

	return fc.aliased
}

func (fc *fakeCluster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fc.m.Lock()
	defer fc.m.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if fc.status != 0 {
		w.WriteHeader(fc.status)
		_, _ = w.Write([]byte(`{"error":"unavailable"}`))

		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	switch {
	case len(parts) == 1 && parts[0] == "":
		writeJSON(w, http.StatusOK, map[string]any{
			"version": map[string]any{
				"number":       "2.11.0",
				"distribution": "opensearch",
			},
		})
	case r.Method == http.MethodPut && len(parts) == 1:
		if _, exists := fc.docs[parts[0]]; exists {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error": map[string]any{
					"type": "resource_already_exists_exception",
				},
			})

			return
		}

		fc.docs[parts[0]] = make(map[string]any)

		writeJSON(w, http.StatusOK, map[string]any{
			"acknowledged": true,
			"index":        parts[0],
		})
	case len(parts) == 1 && parts[0] == "_bulk":
		fc.bulk(w, r)
	case len(parts) == 2 && parts[1] == "_refresh":
		writeJSON(w, http.StatusOK, map[string]any{})
	case len(parts) == 1 && parts[0] == "_aliases":
		fc.updateAliases(w, r)
	case len(parts) == 2 && parts[0] == "_alias":
		fc.aliased++

		indices := fc.alias[parts[1]]
		if len(indices) == 0 {
			writeJSON(w, http.StatusNotFound, map[string]any{
				"error":  "alias [" + parts[1] + "] missing",
				"status": 404,
			})

			return
		}

		body := make(map[string]any)

		for _, idx := range indices {
			body[idx] = map[string]any{
				"aliases": map[string]any{
					parts[1]: map[string]any{},
				},
			}
		}

		writeJSON(w, http.StatusOK, body)
	case len(parts) == 3 && parts[1] == "_doc":
		index, id := parts[0], parts[2]

		fc.gets[id]++

		docs, ok := fc.docs[index]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{
				"error": map[string]any{
					"type":   "index_not_found_exception",
					"reason": "no such index [" + index + "]",
				},
				"status": 404,
			})

			return
		}

		doc, ok := docs[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{
				"_index": index,
				"_id":    id,
				"found":  false,
			})

			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"_index":  index,
			"_id":     id,
			"found":   true,
			"_source": doc,
		})
	default:
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": "unexpected request " + r.URL.Path,
		})
	}
}

func (fc *fakeCluster) bulk(w http.ResponseWriter, r *http.Request) {
	var (
		items  []map[string]any
		header map[string]map[string]string
	)

	dec := json.NewDecoder(r.Body)

	for {
		err := dec.Decode(&header)
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error": err.Error(),
			})

			return
		}

		var doc map[string]any

		err = dec.Decode(&doc)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error": err.Error(),
			})

			return
		}

		op := header["index"]

		if fc.docs[op["_index"]] == nil {
			fc.docs[op["_index"]] = make(map[string]any)
		}

		fc.docs[op["_index"]][op["_id"]] = doc

		items = append(items, map[string]any{
			"index": map[string]any{
				"_id":    op["_id"],
				"status": 201,
			},
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"errors": false,
		"items":  items,
	})
}

func (fc *fakeCluster) updateAliases(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Actions []map[string]struct {
			Index string `json:"index"`
			Alias string `json:"alias"`
		} `json:"actions"`
	}

	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": err.Error(),
		})

		return
	}

	for _, action := range body.Actions {
		if add, ok := action["add"]; ok {
			fc.alias[add.Alias] = append(fc.alias[add.Alias], add.Index)
		}

		if rm, ok := action["remove"]; ok {
			fc.alias[rm.Alias] = slices.DeleteFunc(fc.alias[rm.Alias],
				func(idx string) bool {
					return idx == rm.Index
				})
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"acknowledged": true})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func newTestCluster(t *testing.T) (*fakeCluster, *opensearch.Client) {
	t.Helper()

	fc := newFakeCluster()
	srv := httptest.NewServer(fc)

	t.Cleanup(srv.Close)

	client, err := opensearch.NewClient(opensearch.Config{
		Addresses: []string{srv.URL},
	})
	test.Must(t, err, "create opensearch client")

	return fc, client
}

func newTestOpenSearch(
	t *testing.T, opts rights.OpenSearchOptions,
) (*fakeCluster, *rights.OpenSearchSource) {
	t.Helper()

	fc, client := newTestCluster(t)

	opts.Client = client
	opts.Logger = slog.New(test.NewLogHandler(t, slog.LevelInfo))

	source, err := rights.NewOpenSearchSource(opts)
	test.Must(t, err, "create opensearch source")

	return fc, source
}

func seedCluster(fc *fakeCluster, index string) {
	fc.PutDoc(index, rights.IdentifierDocumentID(
		entitlements.IdentifierType_IPV6, "2001:db8::1",
	), rights.IndexedIdentifier{
		Type:         "IPV6",
		Value:        "2001:db8::1",
		Institutions: []rights.InstitutionID{"campus-b"},
	})

	fc.PutDoc(index, rights.DocumentID("10.10/2222"), rights.IndexedDocument{
		DOI: "10.10/2222",
		Grants: []rights.IndexedGrant{
			{
				Institution: "campus-a",
				AccessType:  "PAID",
				DocumentURL: strP("https://example.com/2222"),
				VOR: []rights.IndexedVOR{
					{URL: "https://example.com/2222.pdf", Type: strP("application/pdf")},
				},
			},
			{
				Institution: "campus-b",
				AccessType:  "OPEN_ACCESS",
			},
			{
				Institution: "campus-b",
				AccessType:  "BORROWED",
			},
		},
	})

	fc.PutDoc(index, rights.DocumentID("10.10/3333"), rights.IndexedDocument{
		DOI: "10.10/3333",
	})
}

func TestOpenSearchSource(t *testing.T) {
	ctx := test.Context(t)

	fc, source := newTestOpenSearch(t, rights.OpenSearchOptions{
		AliasTTL: -1,
	})

	seedCluster(fc, "entitlements-v1")
	fc.SetAlias(rights.DefaultAlias, "entitlements-v1")

	test.Must(t, source.Check(ctx), "source is ready")

	view, err := source.Snapshot(ctx)
	test.Must(t, err, "take snapshot")

	defer view.Close()

	test.Equal(t, "entitlements-v1", view.Version(),
		"version is the concrete index")

	ids, err := view.Lookup(ctx, entitlements.IdentifierType_IPV6, "2001:db8::1")
	test.Must(t, err, "look up IPv6")
	test.EqualDiff(t, []rights.InstitutionID{"campus-b"}, ids,
		"find the institution")

	ids, err = view.Lookup(ctx, entitlements.IdentifierType_IPV6, "2001:db8::2")
	test.Must(t, err, "look up unknown IPv6")
	test.Equal(t, 0, len(ids), "no institutions for unknown identifier")

	known, err := view.Known(ctx, "10.10/3333")
	test.Must(t, err, "check known document")
	test.Equal(t, true, known, "document without grants is known")

	known, err = view.Known(ctx, "10.10/1111")
	test.Must(t, err, "check unknown document")
	test.Equal(t, false, known, "missing document is unknown")

	grants, err := view.GrantsFor(ctx, "campus-b", "10.10/2222")
	test.Must(t, err, "get grants")
	test.EqualDiff(t, []rights.Grant{
		{
			DOI:        "10.10/2222",
			AccessType: entitlements.AccessType_OPEN_ACCESS,
		},
	}, grants, "get valid grants for campus B")

	grants, err = view.GrantsFor(ctx, "campus-a", "10.10/2222")
	test.Must(t, err, "get grants")
	test.EqualDiff(t, []rights.Grant{
		{
			DOI:         "10.10/2222",
			AccessType:  entitlements.AccessType_PAID,
			DocumentURL: strP("https://example.com/2222"),
			VOR: []rights.VOR{
				{URL: "https://example.com/2222.pdf", Type: strP("application/pdf")},
			},
		},
	}, grants, "get grants for campus A")

	test.Equal(t, 1, fc.Gets(rights.DocumentID("10.10/2222")),
		"fetch a document once per view")
}

func TestOpenSearchSourcePinsIndex(t *testing.T) {
	ctx := test.Context(t)

	fc, source := newTestOpenSearch(t, rights.OpenSearchOptions{
		AliasTTL: -1,
	})

	seedCluster(fc, "entitlements-v1")
	fc.SetAlias(rights.DefaultAlias, "entitlements-v1")

	pinned, err := source.Snapshot(ctx)
	test.Must(t, err, "take snapshot")

	fc.PutDoc("entitlements-v2", rights.DocumentID("10.10/5555"),
		rights.IndexedDocument{DOI: "10.10/5555"})
	fc.SetAlias(rights.DefaultAlias, "entitlements-v1", "entitlements-v2")

	known, err := pinned.Known(ctx, "10.10/5555")
	test.Must(t, err, "check document in pinned view")
	test.Equal(t, false, known, "pinned view reads the old index")

	current, err := source.Snapshot(ctx)
	test.Must(t, err, "take new snapshot")

	test.Equal(t, "entitlements-v2", current.Version(),
		"use the last index during an alias swap")

	known, err = current.Known(ctx, "10.10/5555")
	test.Must(t, err, "check document in new view")
	test.Equal(t, true, known, "new view reads the new index")
}

func TestOpenSearchSourceAliasCache(t *testing.T) {
	ctx := test.Context(t)

	fc, source := newTestOpenSearch(t, rights.OpenSearchOptions{})

	seedCluster(fc, "entitlements-v1")
	fc.SetAlias(rights.DefaultAlias, "entitlements-v1")

	for range 3 {
		view, err := source.Snapshot(ctx)
		test.Must(t, err, "take snapshot")

		view.Close()
	}

	test.Equal(t, 1, fc.AliasRequests(), "resolve the alias once")
}

func TestOpenSearchSourceUnavailable(t *testing.T) {
	ctx := test.Context(t)

	fc, source := newTestOpenSearch(t, rights.OpenSearchOptions{
		AliasTTL: -1,
	})

	_, err := source.Snapshot(ctx)
	if !errors.Is(err, rights.ErrUnavailable) {
		t.Fatalf("expected missing alias to be unavailable, got: %v", err)
	}

	seedCluster(fc, "entitlements-v1")
	fc.SetAlias(rights.DefaultAlias, "entitlements-v1")

	view, err := source.Snapshot(ctx)
	test.Must(t, err, "take snapshot")

	fc.SetStatus(http.StatusServiceUnavailable)

	_, err = view.Known(ctx, "10.10/2222")
	if !errors.Is(err, rights.ErrUnavailable) {
		t.Fatalf("expected failing cluster to be unavailable, got: %v", err)
	}

	fc.SetStatus(0)
	fc.SetAlias(rights.DefaultAlias, "entitlements-v2")
	fc.PutDoc("entitlements-v2", rights.DocumentID("10.10/3333"),
		rights.IndexedDocument{DOI: "10.10/3333"})

	fc.m.Lock()
	delete(fc.docs, "entitlements-v1")
	fc.m.Unlock()

	_, err = view.Known(ctx, "10.10/1111")
	if !errors.Is(err, rights.ErrUnavailable) {
		t.Fatalf("expected deleted index to be unavailable, got: %v", err)
	}
}
