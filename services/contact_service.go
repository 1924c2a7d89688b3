package services

import (
	"homestay-backend/config"
	"homestay-backend/utils"
)

// ContactService converts contact-page inquiries into outbound message
// links. Nothing is persisted: an inquiry lives only in the opened chat.
type ContactService struct {
	site     config.Site
	notifier Notifier
}

func NewContactService(site config.Site, notifier Notifier) *ContactService {
	return &ContactService{site: site, notifier: notifier}
}

type InquiryInput struct {
	Name      string
	Phone     string
	Email     string
	VisitDate string
	Message   string
}

// Inquiry validates the phone and returns the deep link for the rendered
// inquiry message.
func (s *ContactService) Inquiry(in InquiryInput) (string, error) {
	phone := utils.SanitizePhone(in.Phone)
	if len(phone) != 10 {
		return "", ErrInvalidPhone
	}
	text := utils.FormatInquiryMessage(s.site.Name, utils.InquiryMessage{
		Name:      in.Name,
		Phone:     phone,
		Email:     in.Email,
		VisitDate: in.VisitDate,
		Message:   in.Message,
	})
	return s.notifier.Send(text), nil
}
