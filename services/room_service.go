package services

import (
	"errors"
	"strings"

	"homestay-backend/models"
	"homestay-backend/store"
)

var ErrRoomNameRequired = errors.New("room name is required")

type RoomService struct {
	store *store.Store
}

func NewRoomService(st *store.Store) *RoomService {
	return &RoomService{store: st}
}

func (s *RoomService) List() ([]*models.Room, error) {
	return s.store.Rooms.All()
}

func (s *RoomService) Get(id string) (*models.Room, bool, error) {
	return s.store.Rooms.Get(id)
}

// Available returns only rooms that can take a booking right now. Status
// drives eligibility; occupied, cleaning and maintenance rooms are skipped.
func (s *RoomService) Available() ([]*models.Room, error) {
	return s.store.Rooms.Find(func(r *models.Room) bool {
		return r.Status == models.RoomAvailable
	})
}

func (s *RoomService) Featured() ([]*models.Room, error) {
	return s.store.Rooms.Find(func(r *models.Room) bool { return r.Featured })
}

func (s *RoomService) Create(room *models.Room) (*models.Room, error) {
	room.Name = strings.TrimSpace(room.Name)
	if room.Name == "" {
		return nil, ErrRoomNameRequired
	}
	if room.Status == "" {
		room.Status = models.RoomAvailable
	}
	return s.store.Rooms.Create(room)
}

// Update applies a partial field merge. The merged record is not re-validated
// beyond the protected-field rules in the store.
func (s *RoomService) Update(id string, partial map[string]any) (*models.Room, bool, error) {
	return s.store.Rooms.Update(id, partial)
}

func (s *RoomService) Delete(id string) (bool, error) {
	return s.store.Rooms.Delete(id)
}
