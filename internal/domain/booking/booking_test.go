package booking

import (
	"testing"
	"time"

	"github.com/Kilat-Pet-Delivery/service-walking/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	ownerID := uuid.New()
	loc := time.FixedZone("UTC+8", 8*60*60)
	start := time.Date(2030, 5, 1, 9, 0, 0, 0, loc)

	bk, err := New(ownerID.String(), start, 45, "leash reactive")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, bk.ID())
	assert.Equal(t, ownerID, bk.OwnerID())
	assert.True(t, bk.StartTime().Equal(start))
	assert.Equal(t, time.UTC, bk.StartTime().Location())
	assert.Equal(t, 45, bk.DurationMinutes())
	assert.Equal(t, "leash reactive", bk.Notes())
	assert.False(t, bk.Cancelled())
}

func TestNew_InvalidOwner(t *testing.T) {
	bk, err := New("owner-1", time.Now().Add(time.Hour), 30, "")
	assert.Nil(t, bk)
	assert.ErrorIs(t, err, domain.ErrInvalidOwnerReference)
}

func TestNew_RequiresStartTime(t *testing.T) {
	_, err := New(uuid.NewString(), time.Time{}, 30, "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestIsActiveAt(t *testing.T) {
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	id := uuid.New()

	tests := []struct {
		name      string
		start     time.Time
		cancelled bool
		want      bool
	}{
		{"future", now.Add(time.Hour), false, true},
		{"starting now", now, false, true},
		{"past", now.Add(-time.Minute), false, false},
		{"cancelled future", now.Add(time.Hour), true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bk := Reconstruct(id, id, tt.start, 30, "", tt.cancelled, now, now)
			assert.Equal(t, tt.want, bk.IsActiveAt(now))
		})
	}
}
