package models

import "time"

type PaymentMethod string

const (
	PayCard PaymentMethod = "card"
	PayUPI  PaymentMethod = "upi"
	PayCash PaymentMethod = "cash"
	PayBank PaymentMethod = "bank"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

type Payment struct {
	ID            string        `json:"id"`
	BookingID     string        `json:"bookingId"`
	Amount        int           `json:"amount"`
	Method        PaymentMethod `json:"method"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transactionId,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

func (p *Payment) RecordID() string { return p.ID }

func (p *Payment) StampNew(id string, at time.Time) {
	p.ID = id
	p.CreatedAt = at
}
