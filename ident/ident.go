// Package ident canonicalises identifiers and DOIs into comparable keys. The
// same functions are used when building the rights index and when handling
// requests, so that both sides agree on what a match is.
package ident

import (
	"net/netip"
	"strings"
	"unicode"

	"github.com/getftr/entitlement-index/rpc/entitlements"
	"golang.org/x/text/cases"
)

// Key returns the canonical key for an identifier value. Returns false if the
// value can never match anything: malformed IP literals, CIDR ranges, empty
// values and unknown identifier types.
func Key(t entitlements.IdentifierType, value string) (string, bool) {
	switch t {
	case entitlements.IdentifierType_IPV4:
		return ipv4Key(value)
	case entitlements.IdentifierType_IPV6:
		return ipv6Key(value)
	case entitlements.IdentifierType_GETFTR_ID,
		entitlements.IdentifierType_PUBLISHER_ID,
		entitlements.IdentifierType_RINGGOLD_ID,
		entitlements.IdentifierType_ROR_ID,
		entitlements.IdentifierType_GRID_ID,
		entitlements.IdentifierType_ISNI,
		entitlements.IdentifierType_ENTITY_ID:
		return opaqueKey(value)
	default:
		return "", false
	}
}

func ipv4Key(value string) (string, bool) {
	addr, err := netip.ParseAddr(strings.TrimSpace(value))
	if err != nil {
		return "", false
	}

	addr = addr.Unmap()

	if !addr.Is4() {
		return "", false
	}

	return addr.String(), true
}

func ipv6Key(value string) (string, bool) {
	addr, err := netip.ParseAddr(strings.TrimSpace(value))
	if err != nil || !addr.Is6() {
		return "", false
	}

	return addr.WithZone("").String(), true
}

// Opaque identifiers are compared case-insensitively and without whitespace,
// ISNIs f.ex. are commonly written in groups of four digits.
func opaqueKey(value string) (string, bool) {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, value)

	if stripped == "" {
		return "", false
	}

	return cases.Fold().String(stripped), true
}

// DOI returns the key used to look up a DOI. DOIs are case-insensitive.
// Returns false for empty DOIs.
func DOI(doi string) (string, bool) {
	trimmed := strings.TrimSpace(doi)
	if trimmed == "" {
		return "", false
	}

	return cases.Fold().String(trimmed), true
}
