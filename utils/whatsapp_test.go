package utils

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBookingMessage(t *testing.T) {
	msg := FormatBookingMessage("Sri Hari Home Stay", BookingMessage{
		GuestName:   "Priya Sharma",
		GuestPhone:  "9876543210",
		GuestEmail:  "priya@example.com",
		RoomName:    "Executive Suite",
		CheckIn:     "2025-03-01",
		CheckOut:    "2025-03-04",
		Guests:      2,
		Nights:      3,
		NightlyRate: 4000,
		Subtotal:    12000,
		GST:         600,
		Total:       12600,
	})

	assert.Contains(t, msg, "Sri Hari Home Stay")
	assert.Contains(t, msg, "Priya Sharma")
	assert.Contains(t, msg, "Executive Suite")
	// the pricing breakdown appears verbatim
	assert.Contains(t, msg, "12000")
	assert.Contains(t, msg, "600")
	assert.Contains(t, msg, "12600")
	// dates render in day-first form
	assert.Contains(t, msg, "01/03/2025")
	assert.Contains(t, msg, "04/03/2025")
	assert.NotContains(t, msg, "Special Requests")
}

func TestFormatBookingMessageWithRequests(t *testing.T) {
	msg := FormatBookingMessage("Sri Hari Home Stay", BookingMessage{
		GuestName:       "Rahul Reddy",
		RoomName:        "The Royal Tirumala Suite",
		Nights:          1,
		SpecialRequests: "Late check-in around 11 PM",
	})
	assert.Contains(t, msg, "Special Requests")
	assert.Contains(t, msg, "Late check-in around 11 PM")
	assert.Contains(t, msg, "(1 night)")
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("+91 8639058016", "Hello there & welcome")

	assert.True(t, strings.HasPrefix(link, "https://api.whatsapp.com/send?phone=918639058016&text="))
	// spaces are percent-encoded, not plus-encoded
	assert.Contains(t, link, "Hello%20there%20%26%20welcome")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "918639058016", parsed.Query().Get("phone"))
	assert.Equal(t, "Hello there & welcome", parsed.Query().Get("text"))
}

func TestWhatsAppChatLink(t *testing.T) {
	assert.Equal(t, "https://wa.me/918639058016", WhatsAppChatLink("+91 8639058016"))
}
