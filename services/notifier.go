package services

import "homestay-backend/utils"

// Notifier is the outbound-message port. The production implementation
// builds a WhatsApp deep link; tests substitute a recorder. Nothing is
// delivered or confirmed through this interface — the returned link is
// handed to the client, which opens it (or doesn't).
type Notifier interface {
	Send(text string) (link string)
}

// WhatsAppNotifier targets the property owner's WhatsApp number.
type WhatsAppNotifier struct {
	Phone string
}

func NewWhatsAppNotifier(phone string) *WhatsAppNotifier {
	return &WhatsAppNotifier{Phone: phone}
}

func (n *WhatsAppNotifier) Send(text string) string {
	return utils.WhatsAppLink(n.Phone, text)
}
