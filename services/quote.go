package services

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// Quote is the priced breakdown for a prospective stay. All amounts are
// whole rupees, computed with integer arithmetic.
type Quote struct {
	NightlyRate int `json:"nightlyRate"`
	Nights      int `json:"nights"`
	Subtotal    int `json:"subtotal"`
	GST         int `json:"gst"`
	Total       int `json:"total"`
}

// NewQuote prices nights at rate with 5% GST on top, rounded half-up to the
// rupee. Total always covers the subtotal.
func NewQuote(rate, nights int) Quote {
	subtotal := rate * nights
	gst := (subtotal*gstPercent + 50) / 100
	return Quote{
		NightlyRate: rate,
		Nights:      nights,
		Subtotal:    subtotal,
		GST:         gst,
		Total:       subtotal + gst,
	}
}

const gstPercent = 5

// NightsBetween computes the whole-night count between two YYYY-MM-DD dates,
// rounding partial days up. When either date fails to parse, or checkOut is
// not after checkIn, the previously held count is retained: mid-edit a user
// routinely has checkout before checkin for a moment, and the displayed
// quote should not collapse to zero.
func NightsBetween(checkIn, checkOut string, prev int) int {
	ci, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return prev
	}
	co, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return prev
	}
	nights := int(math.Ceil(co.Sub(ci).Hours() / 24))
	if nights <= 0 {
		return prev
	}
	return nights
}
