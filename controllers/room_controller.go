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

type RoomController struct {
	service *services.RoomService
}

func NewRoomController(service *services.RoomService) *RoomController {
	return &RoomController{service: service}
}

// GetRooms handles GET /api/rooms. ?featured=true narrows to the home-page
// selection.
func (rc *RoomController) GetRooms(c *gin.Context) {
	var (
		rooms []*models.Room
		err   error
	)
	if c.Query("featured") == "true" {
		rooms, err = rc.service.Featured()
	} else {
		rooms, err = rc.service.List()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GetAvailableRooms handles GET /api/rooms/available, the booking page's
// room picker.
func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	rooms, err := rc.service.Available()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (rc *RoomController) GetRoomByID(c *gin.Context) {
	room, ok, err := rc.service.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	if !ok {
		utils.JSONNotFound(c, "room not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

type createRoomPayload struct {
	Name        string            `json:"name" binding:"required,min=2"`
	Type        models.RoomType   `json:"type" binding:"required,oneof=standard deluxe suite family"`
	Description string            `json:"description"`
	Price       int               `json:"price" binding:"required,gt=0"`
	Capacity    int               `json:"capacity" binding:"required,min=1"`
	Amenities   []string          `json:"amenities"`
	Images      []string          `json:"images"`
	FloorNumber int               `json:"floorNumber"`
	Status      models.RoomStatus `json:"status" binding:"omitempty,oneof=available occupied cleaning maintenance"`
	Featured    bool              `json:"featured"`
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var payload createRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("❌ room payload rejected: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid room payload",
			"details": err.Error(),
		})
		return
	}

	room, err := rc.service.Create(&models.Room{
		Name:        payload.Name,
		Type:        payload.Type,
		Description: payload.Description,
		Price:       payload.Price,
		Capacity:    payload.Capacity,
		Amenities:   payload.Amenities,
		Images:      payload.Images,
		FloorNumber: payload.FloorNumber,
		Status:      payload.Status,
		Featured:    payload.Featured,
	})
	if err != nil {
		if errors.Is(err, services.ErrRoomNameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	utils.JSONCreated(c, room)
}

// UpdateRoom handles PATCH/PUT /api/admin/rooms/:id with a partial field
// merge. Identifier and creation fields are protected by the store.
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	var partial map[string]any
	if err := c.ShouldBindJSON(&partial); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	room, ok, err := rc.service.Update(c.Param("id"), partial)
	if err != nil {
		log.Printf("❌ room update failed for %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Update failed"})
		return
	}
	if !ok {
		utils.JSONNotFound(c, "room not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id := c.Param("id")
	removed, err := rc.service.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to delete room"})
		return
	}
	if !removed {
		utils.JSONNotFound(c, "room not found")
		return
	}
	log.Printf("✅ Room %s deleted", id)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
