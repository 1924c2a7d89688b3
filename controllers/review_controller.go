package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"homestay-backend/models"
	"homestay-backend/services"
	"homestay-backend/utils"
)

type ReviewController struct {
	service *services.ReviewService
}

func NewReviewController(service *services.ReviewService) *ReviewController {
	return &ReviewController{service: service}
}

func (rc *ReviewController) GetReviews(c *gin.Context) {
	reviews, err := rc.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reviews)
}

func (rc *ReviewController) GetFeaturedReviews(c *gin.Context) {
	reviews, err := rc.service.Featured()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reviews)
}

type createReviewPayload struct {
	GuestID   string `json:"guestId"`
	GuestName string `json:"guestName" binding:"required,min=2"`
	RoomID    string `json:"roomId" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment" binding:"required"`
}

func (rc *ReviewController) CreateReview(c *gin.Context) {
	var payload createReviewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid review payload", "details": err.Error()})
		return
	}

	review, err := rc.service.Create(&models.Review{
		GuestID:   payload.GuestID,
		GuestName: payload.GuestName,
		RoomID:    payload.RoomID,
		Rating:    payload.Rating,
		Comment:   payload.Comment,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidRating) {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	utils.JSONCreated(c, review)
}

type replyPayload struct {
	Reply string `json:"reply" binding:"required"`
}

func (rc *ReviewController) ReplyToReview(c *gin.Context) {
	var payload replyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid reply payload", "details": err.Error()})
		return
	}

	review, ok, err := rc.service.Reply(c.Param("id"), payload.Reply)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	if !ok {
		utils.JSONNotFound(c, "review not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, review)
}

type featurePayload struct {
	Featured *bool `json:"featured" binding:"required"`
}

func (rc *ReviewController) SetReviewFeatured(c *gin.Context) {
	var payload featurePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid payload", "details": err.Error()})
		return
	}

	review, ok, err := rc.service.SetFeatured(c.Param("id"), *payload.Featured)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	if !ok {
		utils.JSONNotFound(c, "review not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, review)
}
