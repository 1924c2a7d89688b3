package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homestay-backend/config"
	"homestay-backend/models"
	"homestay-backend/store"
)

// recordingNotifier captures the rendered message instead of building a
// deep link.
type recordingNotifier struct {
	lastText string
}

func (r *recordingNotifier) Send(text string) string {
	r.lastText = text
	return "link://" + text
}

func newBookingFixture(t *testing.T) (*BookingService, *store.Store, *recordingNotifier) {
	t.Helper()
	st := store.New(store.NewMemoryBackend())
	notifier := &recordingNotifier{}
	site := config.Site{Name: "Sri Hari Home Stay", WhatsAppNumber: "918639058016", DefaultNightlyRate: 4000, GSTPercent: 5}
	return NewBookingService(st, site, notifier), st, notifier
}

func seedRoom(t *testing.T, st *store.Store, room *models.Room) *models.Room {
	t.Helper()
	created, err := st.Rooms.Create(room)
	require.NoError(t, err)
	return created
}

func TestCreateBookingEndToEnd(t *testing.T) {
	svc, st, notifier := newBookingFixture(t)
	room := seedRoom(t, st, &models.Room{Name: "Executive Suite", Price: 4000, Status: models.RoomAvailable})

	result, err := svc.CreateBooking(CreateBookingInput{
		GuestName:  "Priya Sharma",
		GuestEmail: "priya@example.com",
		GuestPhone: "98-765 43210x",
		RoomID:     room.ID,
		CheckIn:    "2025-03-01",
		CheckOut:   "2025-03-04",
		Guests:     2,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Quote.Nights)
	assert.Equal(t, 12000, result.Quote.Subtotal)
	assert.Equal(t, 600, result.Quote.GST)
	assert.Equal(t, 12600, result.Quote.Total)

	booking := result.Booking
	assert.Equal(t, "9876543210", booking.GuestPhone, "phone stored sanitized")
	assert.Equal(t, room.ID, booking.RoomID)
	assert.Equal(t, "Executive Suite", booking.RoomName, "room name denormalized at creation")
	assert.Equal(t, 12600, booking.TotalAmount)
	assert.Equal(t, models.BookingPending, booking.Status)

	// rendered message carries the breakdown verbatim
	assert.Contains(t, notifier.lastText, "12000")
	assert.Contains(t, notifier.lastText, "600")
	assert.Contains(t, notifier.lastText, "12600")
	assert.Equal(t, "link://"+notifier.lastText, result.WhatsAppLink)

	// intake leaves a persisted booking and an unread notification behind
	stored, ok, err := st.Bookings.Get(booking.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, booking.TotalAmount, stored.TotalAmount)

	notifications, err := st.Notifications.All()
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.False(t, notifications[0].Read)
}

func TestCreateBookingSnapshotSurvivesPriceChange(t *testing.T) {
	svc, st, _ := newBookingFixture(t)
	room := seedRoom(t, st, &models.Room{Name: "Deluxe Garden View", Price: 3200, Status: models.RoomAvailable})

	result, err := svc.CreateBooking(CreateBookingInput{
		GuestName:  "Rahul Reddy",
		GuestEmail: "rahul@example.com",
		GuestPhone: "9876543210",
		RoomID:     room.ID,
		CheckIn:    "2025-04-01",
		CheckOut:   "2025-04-03",
		Guests:     2,
	})
	require.NoError(t, err)
	total := result.Booking.TotalAmount

	_, ok, err := st.Rooms.Update(room.ID, map[string]any{"price": 9000})
	require.NoError(t, err)
	require.True(t, ok)

	stored, ok, err := st.Bookings.Get(result.Booking.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, total, stored.TotalAmount, "total is a creation-time snapshot")
}

func TestCreateBookingRejectsBadDateRange(t *testing.T) {
	svc, st, _ := newBookingFixture(t)
	room := seedRoom(t, st, &models.Room{Name: "Standard Comfort Room", Price: 2100, Status: models.RoomAvailable})

	base := CreateBookingInput{
		GuestName:  "Priya Sharma",
		GuestEmail: "priya@example.com",
		GuestPhone: "9876543210",
		RoomID:     room.ID,
		Guests:     2,
	}

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{name: "checkout equals checkin", checkIn: "2025-03-01", checkOut: "2025-03-01"},
		{name: "checkout before checkin", checkIn: "2025-03-04", checkOut: "2025-03-01"},
		{name: "unparsable checkin", checkIn: "tomorrow", checkOut: "2025-03-04"},
		{name: "empty checkout", checkIn: "2025-03-01", checkOut: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			in.CheckIn = tt.checkIn
			in.CheckOut = tt.checkOut
			_, err := svc.CreateBooking(in)
			assert.ErrorIs(t, err, ErrInvalidDateRange)
		})
	}

	bookings, err := st.Bookings.All()
	require.NoError(t, err)
	assert.Empty(t, bookings, "rejected intake must not persist anything")
}

func TestCreateBookingRejectsShortPhone(t *testing.T) {
	svc, st, _ := newBookingFixture(t)
	room := seedRoom(t, st, &models.Room{Name: "Standard Comfort Room", Price: 2100, Status: models.RoomAvailable})

	_, err := svc.CreateBooking(CreateBookingInput{
		GuestName:  "Priya Sharma",
		GuestEmail: "priya@example.com",
		GuestPhone: "987654321",
		RoomID:     room.ID,
		CheckIn:    "2025-03-01",
		CheckOut:   "2025-03-02",
		Guests:     1,
	})
	assert.ErrorIs(t, err, ErrInvalidPhone)
}

func TestCreateBookingRoomErrors(t *testing.T) {
	svc, st, _ := newBookingFixture(t)
	occupied := seedRoom(t, st, &models.Room{Name: "Mountain View Deluxe", Price: 3500, Status: models.RoomOccupied})

	in := CreateBookingInput{
		GuestName:  "Priya Sharma",
		GuestEmail: "priya@example.com",
		GuestPhone: "9876543210",
		CheckIn:    "2025-03-01",
		CheckOut:   "2025-03-02",
		Guests:     1,
	}

	in.RoomID = "missing"
	_, err := svc.CreateBooking(in)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	in.RoomID = occupied.ID
	_, err = svc.CreateBooking(in)
	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestCreateBookingReusesGuestByEmail(t *testing.T) {
	svc, st, _ := newBookingFixture(t)
	room := seedRoom(t, st, &models.Room{Name: "Executive Suite", Price: 4000, Status: models.RoomAvailable})

	first, err := svc.CreateBooking(CreateBookingInput{
		GuestName:  "Priya Sharma",
		GuestEmail: "priya@example.com",
		GuestPhone: "9876543210",
		RoomID:     room.ID,
		CheckIn:    "2025-03-01",
		CheckOut:   "2025-03-02",
		Guests:     1,
	})
	require.NoError(t, err)

	second, err := svc.CreateBooking(CreateBookingInput{
		GuestName:  "Priya S",
		GuestEmail: "PRIYA@EXAMPLE.COM",
		GuestPhone: "9876543210",
		RoomID:     room.ID,
		CheckIn:    "2025-05-01",
		CheckOut:   "2025-05-02",
		Guests:     1,
	})
	require.NoError(t, err)

	assert.Equal(t, first.Booking.GuestID, second.Booking.GuestID, "email lookup is case-insensitive")

	users, err := st.Users.All()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestQuoteForStayDefaults(t *testing.T) {
	svc, _, _ := newBookingFixture(t)

	q := svc.QuoteForStay(0, 3)
	assert.Equal(t, 4000, q.NightlyRate, "zero rate falls back to the site default")
	assert.Equal(t, 12600, q.Total)

	q = svc.QuoteForStay(2100, 0)
	assert.Equal(t, 1, q.Nights, "night count floors at one")
}

func TestUpdateStatus(t *testing.T) {
	svc, st, _ := newBookingFixture(t)
	created, err := st.Bookings.Create(&models.Booking{GuestName: "Rahul Reddy", Status: models.BookingPending})
	require.NoError(t, err)

	updated, ok, err := svc.UpdateStatus(created.ID, models.BookingConfirmed)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.BookingConfirmed, updated.Status)

	_, _, err = svc.UpdateStatus(created.ID, "teleported")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, ok, err = svc.UpdateStatus("missing", models.BookingCancelled)
	require.NoError(t, err)
	assert.False(t, ok)
}
