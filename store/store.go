package store

import (
	"encoding/json"
	"sync"

	"homestay-backend/models"
)

// Slot keys, one per collection. The names carry over from the site the data
// originally lived in, so an exported dataset stays readable.
const (
	KeyUsers         = "sri_hari_users"
	KeyCurrentUser   = "sri_hari_current_user"
	KeyRooms         = "sri_hari_rooms"
	KeyBookings      = "sri_hari_bookings"
	KeyPayments      = "sri_hari_payments"
	KeyReviews       = "sri_hari_reviews"
	KeyEmployees     = "sri_hari_employees"
	KeyNotifications = "sri_hari_notifications"
	KeyNotes         = "sri_hari_notes"
)

// Store bundles the typed collections over one backend. All relationships
// between records are by identifier lookup, re-resolved on each read; no
// record holds a live reference to another.
type Store struct {
	backend Backend

	Users         *Collection[*models.User]
	Rooms         *Collection[*models.Room]
	Bookings      *Collection[*models.Booking]
	Payments      *Collection[*models.Payment]
	Reviews       *Collection[*models.Review]
	Employees     *Collection[*models.Employee]
	Notifications *Collection[*models.Notification]
	Notes         *Collection[*models.Note]

	curMu sync.Mutex
}

func New(backend Backend) *Store {
	return &Store{
		backend:       backend,
		Users:         NewCollection[*models.User](backend, KeyUsers),
		Rooms:         NewCollection[*models.Room](backend, KeyRooms),
		Bookings:      NewCollection[*models.Booking](backend, KeyBookings),
		Payments:      NewCollection[*models.Payment](backend, KeyPayments),
		Reviews:       NewCollection[*models.Review](backend, KeyReviews),
		Employees:     NewCollection[*models.Employee](backend, KeyEmployees),
		Notifications: NewCollection[*models.Notification](backend, KeyNotifications),
		Notes:         NewCollection[*models.Note](backend, KeyNotes),
	}
}

func (s *Store) Backend() Backend { return s.backend }

// CurrentUser reads the single-object session slot. Missing or unparsable
// reads as nil, never an error to the caller's flow.
func (s *Store) CurrentUser() (*models.User, error) {
	s.curMu.Lock()
	defer s.curMu.Unlock()
	raw, ok, err := s.backend.Get(KeyCurrentUser)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, nil
	}
	return &u, nil
}

func (s *Store) SetCurrentUser(u *models.User) error {
	s.curMu.Lock()
	defer s.curMu.Unlock()
	if u == nil {
		return s.backend.Delete(KeyCurrentUser)
	}
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.backend.Set(KeyCurrentUser, raw)
}
