package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homestay-backend/models"
	"homestay-backend/services"
	"homestay-backend/utils"
)

type EmployeeController struct {
	service *services.EmployeeService
}

func NewEmployeeController(service *services.EmployeeService) *EmployeeController {
	return &EmployeeController{service: service}
}

func (ec *EmployeeController) GetEmployees(c *gin.Context) {
	employees, err := ec.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, employees)
}

type createEmployeePayload struct {
	Name   string                `json:"name" binding:"required,min=2"`
	Email  string                `json:"email" binding:"required,email"`
	Phone  string                `json:"phone" binding:"required"`
	Role   models.EmployeeRole   `json:"role" binding:"required,oneof=housekeeping concierge kitchen security front-desk"`
	Status models.EmployeeStatus `json:"status" binding:"omitempty,oneof=on-shift off-duty on-leave on-break"`
	Shift  string                `json:"shift"`
}

func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var payload createEmployeePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid employee payload", "details": err.Error()})
		return
	}

	employee, err := ec.service.Create(&models.Employee{
		Name:   payload.Name,
		Email:  payload.Email,
		Phone:  payload.Phone,
		Role:   payload.Role,
		Status: payload.Status,
		Shift:  payload.Shift,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	utils.JSONCreated(c, employee)
}

func (ec *EmployeeController) UpdateEmployee(c *gin.Context) {
	var partial map[string]any
	if err := c.ShouldBindJSON(&partial); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	employee, ok, err := ec.service.Update(c.Param("id"), partial)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Update failed"})
		return
	}
	if !ok {
		utils.JSONNotFound(c, "employee not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, employee)
}

func (ec *EmployeeController) DeleteEmployee(c *gin.Context) {
	removed, err := ec.service.Delete(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to delete employee"})
		return
	}
	if !removed {
		utils.JSONNotFound(c, "employee not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
