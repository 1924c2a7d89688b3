package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"homestay-backend/services"
	"homestay-backend/utils"
)

type ContactController struct {
	service *services.ContactService
}

func NewContactController(service *services.ContactService) *ContactController {
	return &ContactController{service: service}
}

type inquiryPayload struct {
	Name      string `json:"name" binding:"required,min=2"`
	Phone     string `json:"phone" binding:"required,phone10"`
	Email     string `json:"email" binding:"omitempty,email"`
	VisitDate string `json:"visitDate"`
	Message   string `json:"message" binding:"required"`
}

// SubmitInquiry handles POST /api/contact. No record is kept; the response
// is the deep link the client opens.
func (cc *ContactController) SubmitInquiry(c *gin.Context) {
	var payload inquiryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid inquiry payload", "details": err.Error()})
		return
	}

	link, err := cc.service.Inquiry(services.InquiryInput{
		Name:      payload.Name,
		Phone:     payload.Phone,
		Email:     payload.Email,
		VisitDate: payload.VisitDate,
		Message:   payload.Message,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidPhone) {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"whatsappLink": link})
}
