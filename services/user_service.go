package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"homestay-backend/models"
	"homestay-backend/store"
)

var (
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UserService struct {
	store *store.Store
}

func NewUserService(st *store.Store) *UserService {
	return &UserService{store: st}
}

func (s *UserService) List() ([]*models.User, error) {
	users, err := s.store.Users.All()
	if err != nil {
		return nil, err
	}
	out := make([]*models.User, 0, len(users))
	for _, u := range users {
		pub := u.Public()
		out = append(out, &pub)
	}
	return out, nil
}

// GetByEmail resolves a user case-insensitively; email is the unique key.
func (s *UserService) GetByEmail(email string) (*models.User, bool, error) {
	matches, err := s.store.Users.Find(func(u *models.User) bool {
		return strings.EqualFold(u.Email, email)
	})
	if err != nil {
		return nil, false, err
	}
	if len(matches) == 0 {
		return nil, false, nil
	}
	return matches[0], true, nil
}

// Register creates a guest account. Uniqueness is the only invariant
// enforced here.
func (s *UserService) Register(name, email, phone string) (*models.User, error) {
	if _, exists, err := s.GetByEmail(email); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrEmailTaken
	}
	u, err := s.store.Users.Create(&models.User{
		Email: email,
		Name:  name,
		Role:  models.RoleGuest,
		Phone: phone,
	})
	if err != nil {
		return nil, err
	}
	pub := u.Public()
	return &pub, nil
}

// Authenticate checks an admin login. On success the session slot is updated
// so the most recent admin sign-in survives a restart alongside the records.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	u, ok, err := s.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if !ok || u.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	_ = s.store.SetCurrentUser(u)
	pub := u.Public()
	return &pub, nil
}

// Current returns the most recently authenticated user, or nil.
func (s *UserService) Current() (*models.User, error) {
	u, err := s.store.CurrentUser()
	if err != nil || u == nil {
		return nil, err
	}
	pub := u.Public()
	return &pub, nil
}
