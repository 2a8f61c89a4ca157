package entitlements

import "fmt"

//go:generate protoc --go_out=paths=source_relative:.. --twirp_out=paths=source_relative:.. --proto_path=.. entitlements/entitlements.proto

// IdentifierTypes returns all known identifier types in wire number order.
func IdentifierTypes() []IdentifierType {
	types := make([]IdentifierType, len(IdentifierType_name))

	for n := range IdentifierType_name {
		types[n] = IdentifierType(n)
	}

	return types
}

// Valid returns true if x is a member of the closed set of identifier types.
func (x IdentifierType) Valid() bool {
	_, ok := IdentifierType_name[int32(x)]

	return ok
}

// ParseIdentifierType parses an identifier type name as used on the wire.
func ParseIdentifierType(name string) (IdentifierType, error) {
	n, ok := IdentifierType_value[name]
	if !ok {
		return 0, fmt.Errorf("unknown identifier type %q", name)
	}

	return IdentifierType(n), nil
}

// Valid returns true if x is a member of the closed set of access types.
func (x AccessType) Valid() bool {
	_, ok := AccessType_name[int32(x)]

	return ok
}

// ParseAccessType parses an access type name as used on the wire.
func ParseAccessType(name string) (AccessType, error) {
	n, ok := AccessType_value[name]
	if !ok {
		return 0, fmt.Errorf("unknown access type %q", name)
	}

	return AccessType(n), nil
}
