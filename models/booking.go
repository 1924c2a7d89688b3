package models

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked-in"
	BookingCheckedOut BookingStatus = "checked-out"
	BookingCancelled  BookingStatus = "cancelled"
)

// Booking keeps a denormalized snapshot of the guest and room at creation
// time. TotalAmount is fixed when the booking is made and is not recomputed
// if the room price changes later.
type Booking struct {
	ID string `json:"id"`

	GuestID    string `json:"guestId"`
	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail"`
	GuestPhone string `json:"guestPhone"`

	RoomID   string `json:"roomId"`
	RoomName string `json:"roomName"`

	// Calendar dates, YYYY-MM-DD.
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`

	Guests          int           `json:"guests"`
	TotalAmount     int           `json:"totalAmount"`
	Status          BookingStatus `json:"status"`
	SpecialRequests string        `json:"specialRequests,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (b *Booking) RecordID() string { return b.ID }

func (b *Booking) StampNew(id string, at time.Time) {
	b.ID = id
	b.CreatedAt = at
}
