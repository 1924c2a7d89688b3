package models

import "time"

type EmployeeRole string

const (
	EmpHousekeeping EmployeeRole = "housekeeping"
	EmpConcierge    EmployeeRole = "concierge"
	EmpKitchen      EmployeeRole = "kitchen"
	EmpSecurity     EmployeeRole = "security"
	EmpFrontDesk    EmployeeRole = "front-desk"
)

type EmployeeStatus string

const (
	EmpOnShift EmployeeStatus = "on-shift"
	EmpOffDuty EmployeeStatus = "off-duty"
	EmpOnLeave EmployeeStatus = "on-leave"
	EmpOnBreak EmployeeStatus = "on-break"
)

type Employee struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Email  string         `json:"email"`
	Phone  string         `json:"phone"`
	Role   EmployeeRole   `json:"role"`
	Status EmployeeStatus `json:"status"`
	Avatar string         `json:"avatar,omitempty"`
	Rating float64        `json:"rating,omitempty"`
	Shift  string         `json:"shift,omitempty"`
}

func (e *Employee) RecordID() string { return e.ID }

func (e *Employee) StampNew(id string, _ time.Time) { e.ID = id }
