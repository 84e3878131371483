package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// EntityKind – immutable value object
// ---------------------------------------------------------------------------

// EntityKind distinguishes natural persons (CURP identifiers) from
// companies (RFC tax identifiers) in the relationship graph.
type EntityKind struct {
	value string
}

const (
	entityKindPerson  = "PERSON"
	entityKindCompany = "COMPANY"
)

var (
	EntityKindPerson  = EntityKind{value: entityKindPerson}
	EntityKindCompany = EntityKind{value: entityKindCompany}
)

var validEntityKinds = map[string]EntityKind{
	entityKindPerson:  EntityKindPerson,
	entityKindCompany: EntityKindCompany,
}

// NewEntityKind creates an EntityKind from a raw string.
func NewEntityKind(s string) (EntityKind, error) {
	v, ok := validEntityKinds[s]
	if !ok {
		return EntityKind{}, fmt.Errorf("invalid entity kind: %q", s)
	}
	return v, nil
}

// String returns the string representation of the kind.
func (k EntityKind) String() string { return k.value }

// IsZero returns true if the kind has not been initialised.
func (k EntityKind) IsZero() bool { return k.value == "" }

// Equal returns true when both kinds carry the same value.
func (k EntityKind) Equal(other EntityKind) bool { return k.value == other.value }

// IsPerson reports whether the entity is a natural person.
func (k EntityKind) IsPerson() bool { return k.value == entityKindPerson }

// IsCompany reports whether the entity is a company.
func (k EntityKind) IsCompany() bool { return k.value == entityKindCompany }
