package utils

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// WhatsAppSendBase is the deep-link endpoint that opens a chat with a
// pre-filled message. Nothing is awaited: "sent" only ever means the link
// was produced and opened by the client.
const WhatsAppSendBase = "https://api.whatsapp.com/send"

// BookingMessage is the payload rendered into the owner-facing booking
// request. All amounts are whole rupees.
type BookingMessage struct {
	GuestName       string
	GuestPhone      string
	GuestEmail      string
	RoomName        string
	CheckIn         string
	CheckOut        string
	Guests          int
	Nights          int
	NightlyRate     int
	Subtotal        int
	GST             int
	Total           int
	SpecialRequests string
}

// InquiryMessage is the contact-page variant: no room or pricing, just a
// visit date and a free-text question.
type InquiryMessage struct {
	Name      string
	Phone     string
	Email     string
	VisitDate string
	Message   string
}

// FormatBookingMessage renders a booking request as the structured text the
// property owner receives on WhatsApp.
func FormatBookingMessage(siteName string, m BookingMessage) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🏨 *New Booking Request at %s*\n\n", siteName)

	fmt.Fprintf(&b, "👤 *Guest Details:*\n")
	fmt.Fprintf(&b, "Name: %s\n", m.GuestName)
	if m.GuestEmail != "" {
		fmt.Fprintf(&b, "Email: %s\n", m.GuestEmail)
	}
	fmt.Fprintf(&b, "Phone: %s\n\n", m.GuestPhone)

	fmt.Fprintf(&b, "🛏️ *Room Details:*\n")
	fmt.Fprintf(&b, "Room: %s\n", m.RoomName)
	fmt.Fprintf(&b, "Guests: %d\n", m.Guests)
	fmt.Fprintf(&b, "Check-in: %s\n", formatDisplayDate(m.CheckIn))
	fmt.Fprintf(&b, "Check-out: %s\n\n", formatDisplayDate(m.CheckOut))

	fmt.Fprintf(&b, "💰 *Pricing Details:*\n")
	fmt.Fprintf(&b, "Room rate: ₹%d/night\n", m.NightlyRate)
	nightWord := "nights"
	if m.Nights == 1 {
		nightWord = "night"
	}
	fmt.Fprintf(&b, "Subtotal (%d %s): ₹%d\n", m.Nights, nightWord, m.Subtotal)
	fmt.Fprintf(&b, "GST (5%%): ₹%d\n", m.GST)
	fmt.Fprintf(&b, "*Total Amount: ₹%d*\n", m.Total)

	if m.SpecialRequests != "" {
		fmt.Fprintf(&b, "\n📝 *Special Requests:*\n%s\n", m.SpecialRequests)
	}

	b.WriteString("\nPlease confirm this booking by replying to this message.")
	return b.String()
}

// FormatInquiryMessage renders a contact-page inquiry.
func FormatInquiryMessage(siteName string, m InquiryMessage) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🏨 *Inquiry for %s*\n\n", siteName)
	fmt.Fprintf(&b, "Name: %s\n", m.Name)
	fmt.Fprintf(&b, "Phone: %s\n", m.Phone)
	if m.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", m.Email)
	}
	if m.VisitDate != "" {
		fmt.Fprintf(&b, "Planned visit: %s\n", formatDisplayDate(m.VisitDate))
	}
	fmt.Fprintf(&b, "\n%s\n", m.Message)
	b.WriteString("\nPlease reply to this message to get in touch.")
	return b.String()
}

// WhatsAppLink builds the deep link that opens a chat with phone (digits
// only, country code included, no plus) and the message pre-filled.
// Malformed input still yields a link; the messaging client reports the
// failure on its side, this system cannot detect it.
func WhatsAppLink(phone, text string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return fmt.Sprintf("%s?phone=%s&text=%s", WhatsAppSendBase, SanitizePhone(phone), encoded)
}

// WhatsAppChatLink is the shareable plain-chat link with no message body.
func WhatsAppChatLink(phone string) string {
	return "https://wa.me/" + SanitizePhone(phone)
}

// formatDisplayDate renders a YYYY-MM-DD date as DD/MM/YYYY for the message
// body. Anything unparsable passes through untouched.
func formatDisplayDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}
