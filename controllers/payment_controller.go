package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"homestay-backend/models"
	"homestay-backend/services"
	"homestay-backend/utils"
)

type PaymentController struct {
	service *services.PaymentService
}

func NewPaymentController(service *services.PaymentService) *PaymentController {
	return &PaymentController{service: service}
}

func (pc *PaymentController) GetPayments(c *gin.Context) {
	payments, err := pc.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payments)
}

type createPaymentPayload struct {
	BookingID     string               `json:"bookingId" binding:"required"`
	Amount        int                  `json:"amount" binding:"required,gt=0"`
	Method        models.PaymentMethod `json:"method" binding:"required,oneof=card upi cash bank"`
	TransactionID string               `json:"transactionId"`
}

func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var payload createPaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid payment payload", "details": err.Error()})
		return
	}

	payment, err := pc.service.Create(&models.Payment{
		BookingID:     payload.BookingID,
		Amount:        payload.Amount,
		Method:        payload.Method,
		TransactionID: payload.TransactionID,
	})
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONNotFound(c, err.Error())
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	utils.JSONCreated(c, payment)
}

func (pc *PaymentController) GetPaymentByBooking(c *gin.Context) {
	payment, ok, err := pc.service.GetByBookingID(c.Param("bookingId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	if !ok {
		utils.JSONNotFound(c, "no payment recorded for this booking")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payment)
}
