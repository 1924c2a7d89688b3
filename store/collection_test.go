package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homestay-backend/models"
)

func newTestRooms(t *testing.T) (*Collection[*models.Room], Backend) {
	t.Helper()
	backend := NewMemoryBackend()
	return NewCollection[*models.Room](backend, KeyRooms), backend
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	rooms, _ := newTestRooms(t)

	created, err := rooms.Create(&models.Room{
		Name:      "Standard Comfort Room",
		Type:      models.RoomStandard,
		Price:     2100,
		Capacity:  2,
		Amenities: []string{"WiFi", "AC"},
		Status:    models.RoomAvailable,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, ok, err := rooms.Get(created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Standard Comfort Room", got.Name)
	assert.Equal(t, models.RoomStandard, got.Type)
	assert.Equal(t, 2100, got.Price)
	assert.Equal(t, 2, got.Capacity)
	assert.Equal(t, []string{"WiFi", "AC"}, got.Amenities)
}

func TestCreateStampsIdentifierAndTimestamp(t *testing.T) {
	backend := NewMemoryBackend()
	bookings := NewCollection[*models.Booking](backend, KeyBookings)

	before := time.Now().UTC().Add(-time.Second)
	created, err := bookings.Create(&models.Booking{GuestName: "Priya Sharma"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.True(t, created.CreatedAt.After(before))

	other, err := bookings.Create(&models.Booking{GuestName: "Rahul Reddy"})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, other.ID)
}

func TestGetMissingReturnsFalse(t *testing.T) {
	rooms, _ := newTestRooms(t)
	_, ok, err := rooms.Get("nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAllOnMissingSlotIsEmpty(t *testing.T) {
	rooms, _ := newTestRooms(t)
	items, err := rooms.All()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAllOnCorruptSlotIsEmpty(t *testing.T) {
	rooms, backend := newTestRooms(t)
	require.NoError(t, backend.Set(KeyRooms, []byte("{not json")))

	items, err := rooms.All()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpdateMergesShallowly(t *testing.T) {
	rooms, _ := newTestRooms(t)
	created, err := rooms.Create(&models.Room{Name: "Executive Suite", Price: 4000, Status: models.RoomAvailable})
	require.NoError(t, err)

	updated, ok, err := rooms.Update(created.ID, map[string]any{"status": "cleaning", "price": 4200})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.RoomCleaning, updated.Status)
	assert.Equal(t, 4200, updated.Price)
	// untouched fields survive the merge
	assert.Equal(t, "Executive Suite", updated.Name)
}

func TestUpdateCannotOverwriteProtectedFields(t *testing.T) {
	rooms, _ := newTestRooms(t)
	created, err := rooms.Create(&models.Room{Name: "Deluxe Garden View"})
	require.NoError(t, err)

	updated, ok, err := rooms.Update(created.ID, map[string]any{"id": "hijacked", "name": "Renamed"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestUpdateMissLeavesSlotUntouched(t *testing.T) {
	rooms, backend := newTestRooms(t)
	_, err := rooms.Create(&models.Room{Name: "The Royal Tirumala Suite", Price: 4500})
	require.NoError(t, err)

	before, ok, err := backend.Get(KeyRooms)
	require.NoError(t, err)
	require.True(t, ok)

	_, found, err := rooms.Update("missing-id", map[string]any{"price": 9999})
	require.NoError(t, err)
	assert.False(t, found)

	after, ok, err := backend.Get(KeyRooms)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, before, after, "a lookup miss must not rewrite the slot")
}

func TestUpdateTouchesNoteTimestamp(t *testing.T) {
	backend := NewMemoryBackend()
	notes := NewCollection[*models.Note](backend, KeyNotes)

	created, err := notes.Create(&models.Note{Title: "Housekeeping", Content: "Restock room 3"})
	require.NoError(t, err)

	updated, ok, err := notes.Update(created.ID, map[string]any{"content": "Restock rooms 3 and 4"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	assert.Equal(t, "Restock rooms 3 and 4", updated.Content)
}

func TestDeleteTwice(t *testing.T) {
	rooms, _ := newTestRooms(t)
	created, err := rooms.Create(&models.Room{Name: "Mountain View Deluxe"})
	require.NoError(t, err)

	removed, err := rooms.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = rooms.Delete(created.ID)
	require.NoError(t, err)
	assert.False(t, removed, "second delete of the same id must be a no-op")
}

func TestFind(t *testing.T) {
	rooms, _ := newTestRooms(t)
	_, err := rooms.Create(&models.Room{Name: "A", Status: models.RoomAvailable})
	require.NoError(t, err)
	_, err = rooms.Create(&models.Room{Name: "B", Status: models.RoomOccupied})
	require.NoError(t, err)
	_, err = rooms.Create(&models.Room{Name: "C", Status: models.RoomAvailable})
	require.NoError(t, err)

	available, err := rooms.Find(func(r *models.Room) bool { return r.Status == models.RoomAvailable })
	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, "A", available[0].Name)
	assert.Equal(t, "C", available[1].Name)
}

func TestExistsDistinguishesEmptyFromMissing(t *testing.T) {
	rooms, _ := newTestRooms(t)

	exists, err := rooms.Exists()
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, rooms.Replace(nil))

	exists, err = rooms.Exists()
	require.NoError(t, err)
	assert.True(t, exists, "an empty slot still marks the collection as present")
}

func TestCurrentUserSlot(t *testing.T) {
	st := New(NewMemoryBackend())

	u, err := st.CurrentUser()
	require.NoError(t, err)
	assert.Nil(t, u)

	require.NoError(t, st.SetCurrentUser(&models.User{ID: "admin-1", Email: "admin@srihari.com", Role: models.RoleAdmin}))

	u, err = st.CurrentUser()
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "admin-1", u.ID)

	require.NoError(t, st.SetCurrentUser(nil))
	u, err = st.CurrentUser()
	require.NoError(t, err)
	assert.Nil(t, u)
}
