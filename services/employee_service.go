package services

import (
	"homestay-backend/models"
	"homestay-backend/store"
)

type EmployeeService struct {
	store *store.Store
}

func NewEmployeeService(st *store.Store) *EmployeeService {
	return &EmployeeService{store: st}
}

func (s *EmployeeService) List() ([]*models.Employee, error) {
	return s.store.Employees.All()
}

func (s *EmployeeService) Create(e *models.Employee) (*models.Employee, error) {
	if e.Status == "" {
		e.Status = models.EmpOffDuty
	}
	return s.store.Employees.Create(e)
}

func (s *EmployeeService) Update(id string, partial map[string]any) (*models.Employee, bool, error) {
	return s.store.Employees.Update(id, partial)
}

func (s *EmployeeService) Delete(id string) (bool, error) {
	return s.store.Employees.Delete(id)
}
