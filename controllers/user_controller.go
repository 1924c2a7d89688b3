package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"homestay-backend/services"
	"homestay-backend/utils"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

type registerPayload struct {
	Name  string `json:"name" binding:"required,min=2"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"omitempty,phone10"`
}

// Register handles POST /api/users/register for guest accounts.
func (uc *UserController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid registration payload", "details": err.Error()})
		return
	}

	user, err := uc.service.Register(payload.Name, payload.Email, utils.SanitizePhone(payload.Phone))
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"status": "error", "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	utils.JSONCreated(c, user)
}

func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, users)
}
