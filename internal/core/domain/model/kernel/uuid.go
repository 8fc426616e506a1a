package kernel

import (
	"fmt"

	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating the zero UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies partners, appointments, vehicles, exceptions and every other
// aggregate of the dispatch domain. It wraps github.com/google/uuid and is
// compared by value.
//
// The zero value is not a valid identifier: Validate reports
// ErrUUIDIsNotConstructed, which is how aggregates detect ids that were never set.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses an identifier received from a client or a query row.
// Braced, urn-prefixed and unhyphenated forms are accepted. Malformed input is
// reported as errs.ErrValueIsInvalid and the nil UUID as ErrUUIDIsNotConstructed.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", fmt.Errorf("invalid UUID format: %w", err))
	}
	return fromUUID(id)
}

// UUIDFromBytes rebuilds an identifier from a 16-byte uuid column.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", fmt.Errorf("invalid UUID format: %w", err))
	}
	return fromUUID(id)
}

// UUIDsFromStrings parses a batch of identifiers, keeping their order. The error
// names the position of the first malformed entry.
func UUIDsFromStrings(raw []string) ([]UUID, error) {
	ids := make([]UUID, 0, len(raw))
	for i, s := range raw {
		id, err := UUIDFromString(s)
		if err != nil {
			return nil, fmt.Errorf("id #%d: %w", i, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func fromUUID(id uuid.UUID) (UUID, error) {
	u := UUID{id: id}
	if err := u.Validate(); err != nil {
		return UUID{}, err
	}
	return u, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns a copy of the underlying uuid.UUID, which is what the gorm
// DTOs store.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate reports ErrUUIDIsNotConstructed for the zero UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
