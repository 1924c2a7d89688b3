package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homestay-backend/services"
	"homestay-backend/utils"
)

type NotificationController struct {
	service *services.NotificationService
}

func NewNotificationController(service *services.NotificationService) *NotificationController {
	return &NotificationController{service: service}
}

func (nc *NotificationController) GetNotifications(c *gin.Context) {
	items, err := nc.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

func (nc *NotificationController) MarkNotificationRead(c *gin.Context) {
	ok, err := nc.service.MarkRead(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	if !ok {
		utils.JSONNotFound(c, "notification not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"read": true})
}

func (nc *NotificationController) GetUnreadCount(c *gin.Context) {
	count, err := nc.service.UnreadCount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"unread": count})
}
