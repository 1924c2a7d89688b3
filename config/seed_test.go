package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homestay-backend/models"
	"homestay-backend/store"
)

func TestSeedStorePopulatesEmptyStore(t *testing.T) {
	st := store.New(store.NewMemoryBackend())
	require.NoError(t, SeedStore(st))

	users, err := st.Users.All()
	require.NoError(t, err)
	assert.Len(t, users, 3)

	rooms, err := st.Rooms.All()
	require.NoError(t, err)
	assert.Len(t, rooms, 6)

	bookings, err := st.Bookings.All()
	require.NoError(t, err)
	assert.Len(t, bookings, 3)

	reviews, err := st.Reviews.All()
	require.NoError(t, err)
	assert.Len(t, reviews, 3)

	employees, err := st.Employees.All()
	require.NoError(t, err)
	assert.Len(t, employees, 4)

	// empty collections are still marked present
	for _, col := range []interface{ Key() string }{st.Payments, st.Notifications, st.Notes} {
		raw, ok, err := st.Backend().Get(col.Key())
		require.NoError(t, err)
		assert.True(t, ok, "slot %s should exist", col.Key())
		assert.JSONEq(t, "[]", string(raw))
	}
}

func TestSeedStoreIsIdempotent(t *testing.T) {
	backend := store.NewMemoryBackend()
	st := store.New(backend)
	require.NoError(t, SeedStore(st))

	before, ok, err := backend.Get(store.KeyRooms)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, SeedStore(st))

	after, ok, err := backend.Get(store.KeyRooms)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, before, after, "second seed run must not rewrite collections")
}

func TestSeedSkippedWhenMarkerPresent(t *testing.T) {
	st := store.New(store.NewMemoryBackend())
	// users slot present, everything else missing
	require.NoError(t, st.Users.Replace([]*models.User{{ID: "u-1", Email: "x@example.com", Role: models.RoleGuest}}))

	require.NoError(t, SeedStore(st))

	rooms, err := st.Rooms.All()
	require.NoError(t, err)
	assert.Empty(t, rooms, "marker slot present means no re-seed, even for cleared collections")
}

func TestSeededAdminHasHashedPassword(t *testing.T) {
	st := store.New(store.NewMemoryBackend())
	require.NoError(t, SeedStore(st))

	admins, err := st.Users.Find(func(u *models.User) bool { return u.Role == models.RoleAdmin })
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.NotEmpty(t, admins[0].PasswordHash)
	assert.NotEqual(t, "admin123", admins[0].PasswordHash)
}
