// Package identifier is the only place where external string identifiers
// become typed record references.
package identifier

import (
	"github.com/Kilat-Pet-Delivery/service-walking/internal/domain"
	"github.com/google/uuid"
)

// New mints a fresh random identifier for a record about to be inserted.
func New() uuid.UUID {
	return uuid.New()
}

// Parse converts a raw string into an identifier. The nil UUID is rejected
// since no record is ever stored under it.
func Parse(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewInvalidIdentifierError(raw, err)
	}
	if id == uuid.Nil {
		return uuid.Nil, domain.NewInvalidIdentifierError(raw, nil)
	}
	return id, nil
}

// Format returns the canonical string form accepted by Parse.
func Format(id uuid.UUID) string {
	return id.String()
}
