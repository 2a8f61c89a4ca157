package rights

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/getftr/entitlement-index/rpc/entitlements"
	"gopkg.in/yaml.v3"
)

// Fixtures is the file format used to load a rights index from YAML or JSON.
//
//	version: example-1
//	institutions:
//	  - id: campus-a
//	    identifiers:
//	      - {type: IPV4, value: 200.46.32.1}
//	    grants:
//	      - doi: 10.10/2222
//	        access_type: PAID
//	        document_url: https://example.com/10.10/2222
//	        vor:
//	          - {url: https://example.com/2222.pdf, type: application/pdf}
//	documents:
//	  - 10.10/3333
type Fixtures struct {
	Version      string               `yaml:"version"`
	Institutions []FixtureInstitution `yaml:"institutions"`
	Documents    []string             `yaml:"documents"`
}

type FixtureInstitution struct {
	ID          string              `yaml:"id"`
	Identifiers []FixtureIdentifier `yaml:"identifiers"`
	Grants      []FixtureGrant      `yaml:"grants"`
}

type FixtureIdentifier struct {
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
}

type FixtureGrant struct {
	DOI         string       `yaml:"doi"`
	AccessType  string       `yaml:"access_type"`
	DocumentURL *string      `yaml:"document_url"`
	VOR         []FixtureVOR `yaml:"vor"`
}

type FixtureVOR struct {
	URL  string  `yaml:"url"`
	Type *string `yaml:"type"`
}

// LoadFixtureFile reads a fixture file and builds a snapshot from it.
func LoadFixtureFile(name string) (*Snapshot, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read fixture file: %w", err)
	}

	return ParseFixtures(data)
}

// ParseFixtures builds a snapshot from fixture data. If the fixtures don't
// specify a version a content hash is used.
func ParseFixtures(data []byte) (*Snapshot, error) {
	var f Fixtures

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("unmarshal fixtures: %w", err)
	}

	version := f.Version
	if version == "" {
		sum := sha256.Sum256(data)
		version = "fixtures-" + hex.EncodeToString(sum[:6])
	}

	return f.Snapshot(version)
}

// Snapshot builds a snapshot from the fixtures.
func (f Fixtures) Snapshot(version string) (*Snapshot, error) {
	b := NewSnapshotBuilder()

	for _, inst := range f.Institutions {
		if inst.ID == "" {
			return nil, fmt.Errorf("institution without an ID")
		}

		id := InstitutionID(inst.ID)

		for _, fi := range inst.Identifiers {
			t, err := entitlements.ParseIdentifierType(fi.Type)
			if err != nil {
				return nil, fmt.Errorf("institution %q: %w", inst.ID, err)
			}

			err = b.AddIdentifier(id, t, fi.Value)
			if err != nil {
				return nil, err
			}
		}

		for _, fg := range inst.Grants {
			grant, err := fg.grant()
			if err != nil {
				return nil, fmt.Errorf("institution %q: %w", inst.ID, err)
			}

			err = b.AddGrant(id, grant)
			if err != nil {
				return nil, err
			}
		}
	}

	for _, doi := range f.Documents {
		err := b.AddDocument(doi)
		if err != nil {
			return nil, err
		}
	}

	return b.Build(version), nil
}

func (fg FixtureGrant) grant() (Grant, error) {
	at := entitlements.AccessType_UNSPECIFIED

	if fg.AccessType != "" {
		t, err := entitlements.ParseAccessType(fg.AccessType)
		if err != nil {
			return Grant{}, fmt.Errorf("grant for %q: %w", fg.DOI, err)
		}

		at = t
	}

	g := Grant{
		DOI:         fg.DOI,
		AccessType:  at,
		DocumentURL: fg.DocumentURL,
	}

	for _, v := range fg.VOR {
		g.VOR = append(g.VOR, VOR(v))
	}

	return g, nil
}
