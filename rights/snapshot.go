package rights

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/getftr/entitlement-index/ident"
	"github.com/getftr/entitlement-index/rpc/entitlements"
)

type identifierKey struct {
	Type entitlements.IdentifierType
	Key  string
}

type grantKey struct {
	Institution InstitutionID
	DOI         string
}

// Snapshot is an immutable in-memory version of the rights index. It
// implements View.
type Snapshot struct {
	version     string
	identifiers map[identifierKey][]InstitutionID
	documents   map[string]struct{}
	grants      map[grantKey][]Grant
}

var _ View = &Snapshot{}

func (s *Snapshot) Version() string {
	return s.version
}

func (s *Snapshot) Lookup(
	_ context.Context, t entitlements.IdentifierType, key string,
) ([]InstitutionID, error) {
	return slices.Clone(s.identifiers[identifierKey{Type: t, Key: key}]), nil
}

func (s *Snapshot) Known(_ context.Context, doi string) (bool, error) {
	_, ok := s.documents[doi]

	return ok, nil
}

func (s *Snapshot) GrantsFor(
	_ context.Context, institution InstitutionID, doi string,
) ([]Grant, error) {
	return slices.Clone(s.grants[grantKey{
		Institution: institution,
		DOI:         doi,
	}]), nil
}

// Close is a no-op, snapshots don't hold any resources.
func (s *Snapshot) Close() {}

// Stats returns the number of identifier bindings, documents and grants in
// the snapshot.
func (s *Snapshot) Stats() (identifiers int, documents int, grants int) {
	for _, ids := range s.identifiers {
		identifiers += len(ids)
	}

	for _, g := range s.grants {
		grants += len(g)
	}

	return identifiers, len(s.documents), grants
}

// SnapshotBuilder collects index data and builds a Snapshot. Identifier
// values and DOIs are normalised with the ident package as they are added.
type SnapshotBuilder struct {
	identifiers map[identifierKey][]InstitutionID
	documents   map[string]struct{}
	grants      map[grantKey][]Grant
}

func NewSnapshotBuilder() *SnapshotBuilder {
	return &SnapshotBuilder{
		identifiers: make(map[identifierKey][]InstitutionID),
		documents:   make(map[string]struct{}),
		grants:      make(map[grantKey][]Grant),
	}
}

// AddIdentifier binds an identifier to an institution.
func (b *SnapshotBuilder) AddIdentifier(
	institution InstitutionID,
	t entitlements.IdentifierType, value string,
) error {
	key, ok := ident.Key(t, value)
	if !ok {
		return fmt.Errorf("invalid %s identifier %q for %q",
			t, value, institution)
	}

	ik := identifierKey{Type: t, Key: key}

	if slices.Contains(b.identifiers[ik], institution) {
		return nil
	}

	b.identifiers[ik] = append(b.identifiers[ik], institution)

	return nil
}

// AddDocument makes the DOI known to the index without granting access to
// it.
func (b *SnapshotBuilder) AddDocument(doi string) error {
	key, ok := ident.DOI(doi)
	if !ok {
		return fmt.Errorf("invalid DOI %q", doi)
	}

	b.documents[key] = struct{}{}

	return nil
}

// AddGrant grants an institution access to a document, the document becomes
// known as a side effect.
func (b *SnapshotBuilder) AddGrant(institution InstitutionID, g Grant) error {
	key, ok := ident.DOI(g.DOI)
	if !ok {
		return fmt.Errorf("invalid DOI %q in grant for %q",
			g.DOI, institution)
	}

	if !g.AccessType.Valid() {
		return fmt.Errorf("invalid access type %d in grant for %q",
			g.AccessType, institution)
	}

	b.documents[key] = struct{}{}

	gk := grantKey{Institution: institution, DOI: key}

	b.grants[gk] = append(b.grants[gk], g)

	return nil
}

// Build the snapshot. The builder must not be used after calling Build.
func (b *SnapshotBuilder) Build(version string) *Snapshot {
	for k := range b.identifiers {
		slices.Sort(b.identifiers[k])
	}

	s := Snapshot{
		version:     version,
		identifiers: b.identifiers,
		documents:   b.documents,
		grants:      b.grants,
	}

	b.identifiers = nil
	b.documents = nil
	b.grants = nil

	return &s
}

// Export returns the snapshot in the form it's stored in OpenSearch. The
// output is sorted so that repeated exports of a snapshot are identical.
func (s *Snapshot) Export() ([]IndexedIdentifier, []IndexedDocument) {
	identifiers := make([]IndexedIdentifier, 0, len(s.identifiers))

	for k, institutions := range s.identifiers {
		identifiers = append(identifiers, IndexedIdentifier{
			Type:         k.Type.String(),
			Value:        k.Key,
			Institutions: slices.Clone(institutions),
		})
	}

	slices.SortFunc(identifiers, func(a, b IndexedIdentifier) int {
		return cmp.Or(
			cmp.Compare(a.Type, b.Type),
			cmp.Compare(a.Value, b.Value),
		)
	})

	docs := make(map[string]*IndexedDocument, len(s.documents))

	for doi := range s.documents {
		docs[doi] = &IndexedDocument{DOI: doi}
	}

	for gk, grants := range s.grants {
		doc := docs[gk.DOI]

		for _, g := range grants {
			ig := IndexedGrant{
				Institution: gk.Institution,
				AccessType:  g.AccessType.String(),
				DocumentURL: g.DocumentURL,
			}

			for _, v := range g.VOR {
				ig.VOR = append(ig.VOR, IndexedVOR(v))
			}

			doc.Grants = append(doc.Grants, ig)
		}
	}

	documents := make([]IndexedDocument, 0, len(docs))

	for _, doc := range docs {
		// Stable so that an institution's grants keep their order.
		slices.SortStableFunc(doc.Grants, func(a, b IndexedGrant) int {
			return cmp.Compare(a.Institution, b.Institution)
		})

		documents = append(documents, *doc)
	}

	slices.SortFunc(documents, func(a, b IndexedDocument) int {
		return cmp.Compare(a.DOI, b.DOI)
	})

	return identifiers, documents
}
