// Package rights is the read side of the rights index: which institutions an
// identifier belongs to, and which documents an institution has been granted
// access to.
//
// A request pins a View through Source.Snapshot() and uses it for all its
// lookups, so that it sees a single consistent version of the index even if
// the index is refreshed concurrently.
package rights

import (
	"context"

	"github.com/getftr/entitlement-index/rpc/entitlements"
)

// InstitutionID is an opaque institution identifier, it's never exposed on
// the wire.
type InstitutionID string

// VOR is a Version of Record link.
type VOR struct {
	URL  string
	Type *string
}

// Grant gives an institution access to a document.
type Grant struct {
	DOI         string
	AccessType  entitlements.AccessType
	DocumentURL *string
	VOR         []VOR
}

// Source hands out views of the rights index.
type Source interface {
	// Snapshot returns a view of the current version of the index. The
	// view must be closed when the caller is done with it. Returns an
	// error wrapping ErrUnavailable when the index cannot be reached.
	Snapshot(ctx context.Context) (View, error)
}

// View is a read-only, versioned view of the rights index. Views are safe for
// concurrent use.
type View interface {
	// Version identifies the version of the index that the view reads
	// from.
	Version() string
	// Lookup returns the institutions bound to the identifier key, see
	// ident.Key().
	Lookup(
		ctx context.Context,
		t entitlements.IdentifierType, key string,
	) ([]InstitutionID, error)
	// Known returns true if the index has any knowledge of the DOI. The
	// DOI key is the output of ident.DOI().
	Known(ctx context.Context, doi string) (bool, error)
	// GrantsFor returns the grants that the institution holds for the
	// DOI.
	GrantsFor(
		ctx context.Context,
		institution InstitutionID, doi string,
	) ([]Grant, error)
	// Close releases any resources held by the view.
	Close()
}

// Log keys used by the rights sources.
const (
	LogKeyRightsVersion = "rights_version"
	LogKeyRightsSource  = "rights_source"
)
