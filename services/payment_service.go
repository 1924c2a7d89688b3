package services

import (
	"errors"

	"homestay-backend/models"
	"homestay-backend/store"
)

var ErrBookingNotFound = errors.New("booking not found")

type PaymentService struct {
	store *store.Store
}

func NewPaymentService(st *store.Store) *PaymentService {
	return &PaymentService{store: st}
}

func (s *PaymentService) List() ([]*models.Payment, error) {
	return s.store.Payments.All()
}

// Create records a payment against an existing booking.
func (s *PaymentService) Create(p *models.Payment) (*models.Payment, error) {
	if _, ok, err := s.store.Bookings.Get(p.BookingID); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrBookingNotFound
	}
	if p.Status == "" {
		p.Status = models.PaymentPending
	}
	return s.store.Payments.Create(p)
}

// GetByBookingID returns the payment for a booking, or false when none was
// recorded yet.
func (s *PaymentService) GetByBookingID(bookingID string) (*models.Payment, bool, error) {
	matches, err := s.store.Payments.Find(func(p *models.Payment) bool {
		return p.BookingID == bookingID
	})
	if err != nil {
		return nil, false, err
	}
	if len(matches) == 0 {
		return nil, false, nil
	}
	return matches[0], true, nil
}
