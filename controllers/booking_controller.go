package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"homestay-backend/models"
	"homestay-backend/services"
	"homestay-backend/utils"
)

type BookingController struct {
	service *services.BookingService
}

func NewBookingController(service *services.BookingService) *BookingController {
	return &BookingController{service: service}
}

type createBookingPayload struct {
	GuestName       string `json:"guestName" binding:"required,min=2"`
	GuestEmail      string `json:"guestEmail" binding:"required,email"`
	GuestPhone      string `json:"guestPhone" binding:"required,phone10"`
	RoomID          string `json:"roomId" binding:"required"`
	CheckIn         string `json:"checkIn" binding:"required"`
	CheckOut        string `json:"checkOut" binding:"required"`
	Guests          int    `json:"guests" binding:"required,min=1,max=10"`
	SpecialRequests string `json:"specialRequests"`
}

// CreateBooking handles POST /api/bookings: the full intake flow from form
// payload to stored booking plus the WhatsApp request link.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("❌ booking payload rejected: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid booking payload",
			"details": err.Error(),
		})
		return
	}

	result, err := bc.service.CreateBooking(services.CreateBookingInput{
		GuestName:       payload.GuestName,
		GuestEmail:      payload.GuestEmail,
		GuestPhone:      payload.GuestPhone,
		RoomID:          payload.RoomID,
		CheckIn:         payload.CheckIn,
		CheckOut:        payload.CheckOut,
		Guests:          payload.Guests,
		SpecialRequests: payload.SpecialRequests,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDateRange), errors.Is(err, services.ErrInvalidPhone):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		case errors.Is(err, services.ErrRoomNotFound):
			utils.JSONNotFound(c, err.Error())
		case errors.Is(err, services.ErrRoomUnavailable):
			c.JSON(http.StatusConflict, gin.H{"status": "error", "message": err.Error()})
		default:
			log.Printf("❌ booking create failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to create booking"})
		}
		return
	}

	utils.JSONCreated(c, result)
}

type quotePayload struct {
	NightlyRate int `json:"nightlyRate"`
	Nights      int `json:"nights" binding:"required,min=1"`
}

// Quote handles POST /api/bookings/quote: a price preview for an explicit
// night count before any form is submitted.
func (bc *BookingController) Quote(c *gin.Context) {
	var payload quotePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid quote payload", "details": err.Error()})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bc.service.QuoteForStay(payload.NightlyRate, payload.Nights))
}

func (bc *BookingController) GetBooking(c *gin.Context) {
	booking, ok, err := bc.service.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	if !ok {
		utils.JSONNotFound(c, "booking not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

type bookingStatusPayload struct {
	Status models.BookingStatus `json:"status" binding:"required"`
}

func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	var payload bookingStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid status payload", "details": err.Error()})
		return
	}

	booking, ok, err := bc.service.UpdateStatus(c.Param("id"), payload.Status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	if !ok {
		utils.JSONNotFound(c, "booking not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id := c.Param("id")
	removed, err := bc.service.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to delete booking"})
		return
	}
	if !removed {
		utils.JSONNotFound(c, "booking not found")
		return
	}
	log.Printf("✅ Booking %s deleted", id)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
