package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"homestay-backend/config"
	"homestay-backend/models"
	"homestay-backend/store"
	"homestay-backend/utils"
)

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomUnavailable  = errors.New("room is not available for booking")
	ErrInvalidDateRange = errors.New("check-out must be after check-in")
	ErrInvalidPhone     = errors.New("phone number must have exactly 10 digits")
	ErrInvalidStatus    = errors.New("unknown booking status")
)

// BookingService turns validated intake into persisted bookings and outbound
// booking-request links.
type BookingService struct {
	store    *store.Store
	site     config.Site
	notifier Notifier
}

func NewBookingService(st *store.Store, site config.Site, notifier Notifier) *BookingService {
	return &BookingService{store: st, site: site, notifier: notifier}
}

// CreateBookingInput is the already-schema-validated form payload.
type CreateBookingInput struct {
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	RoomID          string
	CheckIn         string
	CheckOut        string
	Guests          int
	SpecialRequests string
}

// BookingResult carries the stored booking, its quote and the deep link the
// client opens to deliver the request.
type BookingResult struct {
	Booking      *models.Booking `json:"booking"`
	Quote        Quote           `json:"quote"`
	WhatsAppLink string          `json:"whatsappLink"`
}

// CreateBooking validates the date range, prices the stay against the room's
// current rate, persists the booking with a denormalized guest/room snapshot
// and returns the WhatsApp deep link for the request message.
func (s *BookingService) CreateBooking(in CreateBookingInput) (*BookingResult, error) {
	phone := utils.SanitizePhone(in.GuestPhone)
	if len(phone) != 10 {
		return nil, ErrInvalidPhone
	}

	ci, err := time.Parse(dateLayout, in.CheckIn)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	co, err := time.Parse(dateLayout, in.CheckOut)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	if !co.After(ci) {
		return nil, ErrInvalidDateRange
	}

	room, ok, err := s.store.Rooms.Get(in.RoomID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRoomNotFound
	}
	if room.Status != models.RoomAvailable {
		return nil, ErrRoomUnavailable
	}

	nights := NightsBetween(in.CheckIn, in.CheckOut, 0)
	quote := NewQuote(room.Price, nights)

	guest := s.resolveGuest(in.GuestName, in.GuestEmail, phone)

	booking := &models.Booking{
		GuestID:         guest,
		GuestName:       in.GuestName,
		GuestEmail:      in.GuestEmail,
		GuestPhone:      phone,
		RoomID:          room.ID,
		RoomName:        room.Name,
		CheckIn:         in.CheckIn,
		CheckOut:        in.CheckOut,
		Guests:          in.Guests,
		TotalAmount:     quote.Total,
		Status:          models.BookingPending,
		SpecialRequests: in.SpecialRequests,
	}
	booking, err = s.store.Bookings.Create(booking)
	if err != nil {
		return nil, err
	}

	// Best-effort: a failed notification row never fails the booking.
	_, _ = s.store.Notifications.Create(&models.Notification{
		Title:   "New booking request",
		Message: fmt.Sprintf("%s requested %s, %s to %s", in.GuestName, room.Name, in.CheckIn, in.CheckOut),
		Type:    models.NotifyBooking,
	})

	text := utils.FormatBookingMessage(s.site.Name, utils.BookingMessage{
		GuestName:       in.GuestName,
		GuestPhone:      phone,
		GuestEmail:      in.GuestEmail,
		RoomName:        room.Name,
		CheckIn:         in.CheckIn,
		CheckOut:        in.CheckOut,
		Guests:          in.Guests,
		Nights:          quote.Nights,
		NightlyRate:     quote.NightlyRate,
		Subtotal:        quote.Subtotal,
		GST:             quote.GST,
		Total:           quote.Total,
		SpecialRequests: in.SpecialRequests,
	})

	return &BookingResult{
		Booking:      booking,
		Quote:        quote,
		WhatsAppLink: s.notifier.Send(text),
	}, nil
}

// resolveGuest reuses an existing user record by email, or registers a new
// guest. Failures fall back to an empty guest id: the booking carries its
// own denormalized snapshot either way.
func (s *BookingService) resolveGuest(name, email, phone string) string {
	if email == "" {
		return ""
	}
	existing, err := s.store.Users.Find(func(u *models.User) bool {
		return strings.EqualFold(u.Email, email)
	})
	if err == nil && len(existing) > 0 {
		return existing[0].ID
	}
	u, err := s.store.Users.Create(&models.User{
		Email: email,
		Name:  name,
		Role:  models.RoleGuest,
		Phone: phone,
	})
	if err != nil {
		return ""
	}
	return u.ID
}

// QuoteForStay prices an explicit night count, for quote previews before a
// form is submitted. Rate zero falls back to the site default, matching the
// widget flow where no specific room is selected yet.
func (s *BookingService) QuoteForStay(rate, nights int) Quote {
	if rate <= 0 {
		rate = s.site.DefaultNightlyRate
	}
	if nights < 1 {
		nights = 1
	}
	return NewQuote(rate, nights)
}

func (s *BookingService) Get(id string) (*models.Booking, bool, error) {
	return s.store.Bookings.Get(id)
}

// List returns bookings newest first.
func (s *BookingService) List() ([]*models.Booking, error) {
	bookings, err := s.store.Bookings.All()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings, nil
}

var validBookingStatuses = map[models.BookingStatus]bool{
	models.BookingPending:    true,
	models.BookingConfirmed:  true,
	models.BookingCheckedIn:  true,
	models.BookingCheckedOut: true,
	models.BookingCancelled:  true,
}

// UpdateStatus moves a booking through its lifecycle. Returns false on a
// lookup miss.
func (s *BookingService) UpdateStatus(id string, status models.BookingStatus) (*models.Booking, bool, error) {
	if !validBookingStatuses[status] {
		return nil, false, ErrInvalidStatus
	}
	return s.store.Bookings.Update(id, map[string]any{"status": status})
}

func (s *BookingService) Delete(id string) (bool, error) {
	return s.store.Bookings.Delete(id)
}
