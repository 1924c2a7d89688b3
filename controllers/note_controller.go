package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homestay-backend/models"
	"homestay-backend/services"
	"homestay-backend/utils"
)

type NoteController struct {
	service *services.NoteService
}

func NewNoteController(service *services.NoteService) *NoteController {
	return &NoteController{service: service}
}

func (nc *NoteController) GetNotes(c *gin.Context) {
	notes, err := nc.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, notes)
}

type notePayload struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (nc *NoteController) CreateNote(c *gin.Context) {
	var payload notePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid note payload", "details": err.Error()})
		return
	}

	note, err := nc.service.Create(&models.Note{Title: payload.Title, Content: payload.Content})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	utils.JSONCreated(c, note)
}

func (nc *NoteController) UpdateNote(c *gin.Context) {
	var partial map[string]any
	if err := c.ShouldBindJSON(&partial); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	note, ok, err := nc.service.Update(c.Param("id"), partial)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Update failed"})
		return
	}
	if !ok {
		utils.JSONNotFound(c, "note not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, note)
}

func (nc *NoteController) DeleteNote(c *gin.Context) {
	removed, err := nc.service.Delete(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to delete note"})
		return
	}
	if !removed {
		utils.JSONNotFound(c, "note not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
