package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/mbastos/acervo/models"
)

func TestMemorySessionStore_RoundTrip(t *testing.T) {
	s := NewMemorySessionStore()
	ctx := context.Background()

	session := models.Session{
		ID:          "sid-1",
		MemberID:    42,
		DisplayName: "Maria Souza",
		CreatedAt:   time.Now(),
	}

	require.NoError(t, s.Create(ctx, session, time.Minute))

	got, err := s.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.MemberID)
	assert.Equal(t, "Maria Souza", got.DisplayName)
}

func TestMemorySessionStore_GetMissing(t *testing.T) {
	s := NewMemorySessionStore()

	_, err := s.Get(context.Background(), "never-issued")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionStore_Expiry(t *testing.T) {
	s := NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, models.Session{ID: "sid-2", MemberID: 1}, -time.Second))

	_, err := s.Get(ctx, "sid-2")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionStore_DeleteIsIdempotent(t *testing.T) {
	s := NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, models.Session{ID: "sid-3", MemberID: 1}, time.Minute))
	require.NoError(t, s.Delete(ctx, "sid-3"))
	require.NoError(t, s.Delete(ctx, "sid-3"))

	_, err := s.Get(ctx, "sid-3")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
