package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewQuote(t *testing.T) {
	tests := []struct {
		name     string
		rate     int
		nights   int
		subtotal int
		gst      int
		total    int
	}{
		{name: "three nights at 4000", rate: 4000, nights: 3, subtotal: 12000, gst: 600, total: 12600},
		{name: "single night", rate: 2100, nights: 1, subtotal: 2100, gst: 105, total: 2205},
		{name: "rounds half up", rate: 1010, nights: 1, subtotal: 1010, gst: 51, total: 1061},
		{name: "week in the family suite", rate: 5500, nights: 7, subtotal: 38500, gst: 1925, total: 40425},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuote(tt.rate, tt.nights)
			assert.Equal(t, tt.subtotal, q.Subtotal)
			assert.Equal(t, tt.gst, q.GST)
			assert.Equal(t, tt.total, q.Total)
			assert.GreaterOrEqual(t, q.Total, q.Subtotal)
		})
	}
}

func TestNewQuoteSubtotalExact(t *testing.T) {
	for _, rate := range []int{1, 999, 2100, 4500, 100000} {
		for _, nights := range []int{1, 2, 14, 30} {
			q := NewQuote(rate, nights)
			assert.Equal(t, rate*nights, q.Subtotal, "rate %d nights %d", rate, nights)
			assert.Equal(t, q.Subtotal+q.GST, q.Total)
		}
	}
}

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		prev     int
		want     int
	}{
		{name: "three nights", checkIn: "2025-03-01", checkOut: "2025-03-04", prev: 1, want: 3},
		{name: "one night", checkIn: "2025-03-01", checkOut: "2025-03-02", prev: 1, want: 1},
		{name: "same day keeps previous", checkIn: "2025-03-01", checkOut: "2025-03-01", prev: 2, want: 2},
		{name: "reversed range keeps previous", checkIn: "2025-03-04", checkOut: "2025-03-01", prev: 5, want: 5},
		{name: "unparsable checkin keeps previous", checkIn: "soon", checkOut: "2025-03-04", prev: 4, want: 4},
		{name: "unparsable checkout keeps previous", checkIn: "2025-03-01", checkOut: "", prev: 1, want: 1},
		{name: "across month boundary", checkIn: "2025-01-30", checkOut: "2025-02-02", prev: 1, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NightsBetween(tt.checkIn, tt.checkOut, tt.prev)
			assert.Equal(t, tt.want, got)

			// recomputing with the same inputs never changes the answer
			assert.Equal(t, got, NightsBetween(tt.checkIn, tt.checkOut, got))
		})
	}
}
