package dog

import (
	"errors"
	"testing"

	"github.com/Kilat-Pet-Delivery/service-walking/internal/domain"
	"github.com/Kilat-Pet-Delivery/service-walking/internal/domain/identifier"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func strPtr(s string) *string { return &s }

func TestNew_ResolvesOwnerReference(t *testing.T) {
	ownerID := uuid.New()
	age := uint8(4)

	d, err := New(ownerID.String(), strPtr("Rex"), &age, strPtr("Beagle"))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, d.ID())
	assert.Equal(t, ownerID, d.OwnerID())
	assert.Equal(t, "Rex", *d.Name())
	assert.Equal(t, uint8(4), *d.Age())
	assert.Equal(t, "Beagle", *d.Breed())
	assert.False(t, d.CreatedAt().IsZero())
}

func TestNew_OptionalFieldsMayBeAbsent(t *testing.T) {
	d, err := New(uuid.New().String(), nil, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, d.Name())
	assert.Nil(t, d.Age())
	assert.Nil(t, d.Breed())
}

func TestNew_MalformedOwner(t *testing.T) {
	d, err := New("not-an-id", strPtr("Rex"), nil, nil)
	require.Error(t, err)
	assert.Nil(t, d)
	assert.True(t, errors.Is(err, domain.ErrInvalidOwnerReference))
	assert.True(t, errors.Is(err, domain.ErrInvalidIdentifier), "cause should stay reachable")

	var derr *domain.Error
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, "not-an-id", derr.Value)
}

func TestNew_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ownerID := uuid.New()
		name := rapid.Ptr(rapid.String(), true).Draw(t, "name")
		age := rapid.Ptr(rapid.Uint8(), true).Draw(t, "age")
		breed := rapid.Ptr(rapid.String(), true).Draw(t, "breed")

		d, err := New(identifier.Format(ownerID), name, age, breed)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		back, err := identifier.Parse(identifier.Format(d.OwnerID()))
		if err != nil || back != ownerID {
			t.Fatalf("owner reference did not round trip: %v %v", back, err)
		}
		if d.Name() != name || d.Age() != age || d.Breed() != breed {
			t.Fatalf("optional fields were not copied verbatim")
		}
	})
}

func TestNew_MalformedOwnerProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.String().Filter(func(s string) bool {
			_, err := uuid.Parse(s)
			return err != nil
		}).Draw(t, "owner")

		d, err := New(raw, nil, nil, nil)
		if d != nil {
			t.Fatalf("expected no dog for owner %q", raw)
		}
		if !errors.Is(err, domain.ErrInvalidOwnerReference) {
			t.Fatalf("expected invalid owner reference for %q, got %v", raw, err)
		}
	})
}
