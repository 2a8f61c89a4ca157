package rights

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/getftr/entitlement-index/rpc/entitlements"
	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/ttab/elephantine"
	"github.com/viccon/sturdyc"
	"golang.org/x/exp/maps"
)

const (
	DefaultAlias    = "entitlements"
	DefaultAliasTTL = 5 * time.Second
)

// IndexedIdentifier is the document stored for an identifier binding, with
// the ID given by IdentifierDocumentID().
type IndexedIdentifier struct {
	Type         string          `json:"type"`
	Value        string          `json:"value"`
	Institutions []InstitutionID `json:"institutions"`
}

// IndexedDocument is the document stored for a DOI, with the ID given by
// DocumentID(). A document without grants is known but not granted to
// anyone.
type IndexedDocument struct {
	DOI    string         `json:"doi"`
	Grants []IndexedGrant `json:"grants"`
}

type IndexedGrant struct {
	Institution InstitutionID `json:"institution"`
	AccessType  string        `json:"access_type"`
	DocumentURL *string       `json:"document_url,omitempty"`
	VOR         []IndexedVOR  `json:"vor,omitempty"`
}

// IndexedVOR is the stored form of a VOR link, it's shared with the vor
// column of the access_grant table.
type IndexedVOR struct {
	URL  string  `json:"url"`
	Type *string `json:"type,omitempty"`
}

// IdentifierDocumentID returns the ID of the identifier document for an
// identifier key, see ident.Key(). Keys are base64 encoded as DOIs and IPv6
// addresses contain characters that aren't safe in a URL path.
func IdentifierDocumentID(t entitlements.IdentifierType, key string) string {
	return "identifier-" + t.String() + "-" +
		base64.RawURLEncoding.EncodeToString([]byte(key))
}

// DocumentID returns the ID of the document for a DOI key, see ident.DOI().
func DocumentID(doi string) string {
	return "doi-" + base64.RawURLEncoding.EncodeToString([]byte(doi))
}

type OpenSearchOptions struct {
	Logger *slog.Logger
	Client *opensearch.Client
	// Alias that points to the current generation of the rights index.
	Alias string
	// AliasTTL controls how long the alias resolution is cached, set to
	// a negative value to disable caching.
	AliasTTL time.Duration
}

// OpenSearchSource reads rights from an OpenSearch index. New generations of
// the index are published by moving the alias, and every snapshot is pinned
// to the concrete index that the alias pointed to when it was taken.
type OpenSearchSource struct {
	logger  *slog.Logger
	client  *opensearch.Client
	alias   string
	aliases *sturdyc.Client[string]
}

var _ Source = &OpenSearchSource{}

func NewOpenSearchSource(opts OpenSearchOptions) (*OpenSearchSource, error) {
	if opts.Client == nil {
		return nil, errors.New("missing opensearch client")
	}

	if opts.Alias == "" {
		opts.Alias = DefaultAlias
	}

	if opts.AliasTTL == 0 {
		opts.AliasTTL = DefaultAliasTTL
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := OpenSearchSource{
		logger: logger,
		client: opts.Client,
		alias:  opts.Alias,
	}

	if opts.AliasTTL > 0 {
		s.aliases = sturdyc.New[string](10, 1, opts.AliasTTL, 10)
	}

	return &s, nil
}

func (s *OpenSearchSource) Snapshot(ctx context.Context) (View, error) {
	index, err := s.currentIndex(ctx)
	if err != nil {
		return nil, err
	}

	return &openSearchView{
		source: s,
		index:  index,
		docs:   make(map[string]*IndexedDocument),
	}, nil
}

// Check is used as a readiness check.
func (s *OpenSearchSource) Check(ctx context.Context) error {
	_, err := s.resolveAlias(ctx)
	if err != nil {
		return err
	}

	return nil
}

func (s *OpenSearchSource) currentIndex(ctx context.Context) (string, error) {
	if s.aliases == nil {
		return s.resolveAlias(ctx)
	}

	index, err := s.aliases.GetOrFetch(ctx, s.alias, s.resolveAlias)
	if err != nil {
		return "", fmt.Errorf("resolve alias %q: %w", s.alias, err)
	}

	return index, nil
}

// resolveAlias returns the concrete index behind the alias. If the alias
// points to more than one index, f.ex. in the middle of a swap, the last
// index in lexical order is used.
func (s *OpenSearchSource) resolveAlias(ctx context.Context) (string, error) {
	get := s.client.Indices.GetAlias

	res, err := get(get.WithName(s.alias), get.WithContext(ctx))
	if err != nil {
		return "", transportError(ctx, "get alias", err)
	}

	defer elephantine.SafeClose(s.logger, "get alias", res.Body)

	switch {
	case res.StatusCode == http.StatusNotFound:
		return "", fmt.Errorf("%w: no index behind the alias %q",
			ErrUnavailable, s.alias)
	case res.StatusCode >= http.StatusInternalServerError:
		return "", fmt.Errorf("%w: get alias: %s",
			ErrUnavailable, res.Status())
	case res.StatusCode != http.StatusOK:
		return "", fmt.Errorf("get alias: %s", res.Status())
	}

	var body map[string]json.RawMessage

	err = json.NewDecoder(res.Body).Decode(&body)
	if err != nil {
		return "", fmt.Errorf("decode alias response: %w", err)
	}

	names := maps.Keys(body)
	if len(names) == 0 {
		return "", fmt.Errorf("%w: no index behind the alias %q",
			ErrUnavailable, s.alias)
	}

	slices.Sort(names)

	return names[len(names)-1], nil
}

type openSearchView struct {
	source *OpenSearchSource
	index  string

	// Documents are fetched once per view, a resolution will ask for the
	// same document once per matched institution.
	m    sync.Mutex
	docs map[string]*IndexedDocument
}

func (v *openSearchView) Version() string {
	return v.index
}

func (v *openSearchView) Lookup(
	ctx context.Context, t entitlements.IdentifierType, key string,
) ([]InstitutionID, error) {
	var doc IndexedIdentifier

	found, err := v.get(ctx, IdentifierDocumentID(t, key), &doc)
	if err != nil {
		return nil, fmt.Errorf("get identifier: %w", err)
	}

	if !found {
		return nil, nil
	}

	return doc.Institutions, nil
}

func (v *openSearchView) Known(ctx context.Context, doi string) (bool, error) {
	doc, err := v.document(ctx, doi)
	if err != nil {
		return false, err
	}

	return doc != nil, nil
}

func (v *openSearchView) GrantsFor(
	ctx context.Context, institution InstitutionID, doi string,
) ([]Grant, error) {
	doc, err := v.document(ctx, doi)
	if err != nil {
		return nil, err
	}

	if doc == nil {
		return nil, nil
	}

	var grants []Grant

	for _, ig := range doc.Grants {
		if ig.Institution != institution {
			continue
		}

		at, err := entitlements.ParseAccessType(ig.AccessType)
		if err != nil {
			v.source.logger.WarnContext(ctx, "ignoring invalid grant",
				elephantine.LogKeyError, err,
				LogKeyRightsVersion, v.index,
				"doi", doc.DOI)

			continue
		}

		g := Grant{
			DOI:         doc.DOI,
			AccessType:  at,
			DocumentURL: ig.DocumentURL,
		}

		for _, sv := range ig.VOR {
			g.VOR = append(g.VOR, VOR(sv))
		}

		grants = append(grants, g)
	}

	return grants, nil
}

func (v *openSearchView) Close() {}

func (v *openSearchView) document(
	ctx context.Context, doi string,
) (*IndexedDocument, error) {
	v.m.Lock()
	doc, ok := v.docs[doi]
	v.m.Unlock()

	if ok {
		return doc, nil
	}

	var d IndexedDocument

	found, err := v.get(ctx, DocumentID(doi), &d)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}

	if found {
		doc = &d
	}

	v.m.Lock()
	v.docs[doi] = doc
	v.m.Unlock()

	return doc, nil
}

type getResponse struct {
	Found  bool            `json:"found"`
	Source json.RawMessage `json:"_source"`
	Error  json.RawMessage `json:"error"`
}

func (v *openSearchView) get(ctx context.Context, id string, out any) (bool, error) {
	client := v.source.client

	res, err := client.Get(v.index, id, client.Get.WithContext(ctx))
	if err != nil {
		return false, transportError(ctx, "get", err)
	}

	defer elephantine.SafeClose(v.source.logger, "get", res.Body)

	if res.StatusCode >= http.StatusInternalServerError {
		return false, fmt.Errorf("%w: get: %s", ErrUnavailable, res.Status())
	}

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusNotFound {
		return false, fmt.Errorf("get: %s", res.Status())
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return false, transportError(ctx, "read response", err)
	}

	var gr getResponse

	err = json.Unmarshal(body, &gr)
	if err != nil {
		return false, fmt.Errorf("decode response: %w", err)
	}

	// A 404 with an error instead of "found": false means that the
	// pinned index has been deleted.
	if len(gr.Error) > 0 {
		return false, fmt.Errorf("%w: index %q: %s",
			ErrUnavailable, v.index, string(gr.Error))
	}

	if !gr.Found {
		return false, nil
	}

	err = json.Unmarshal(gr.Source, out)
	if err != nil {
		return false, fmt.Errorf("decode document %q: %w", id, err)
	}

	return true, nil
}

// A failed request counts as the index being unavailable unless it failed
// because the context was done.
func transportError(ctx context.Context, op string, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}

	return fmt.Errorf("%w: %s: %w", ErrUnavailable, op, err)
}
