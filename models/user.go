package models

import "time"

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleGuest UserRole = "guest"
	RoleStaff UserRole = "staff"
)

type User struct {
	ID     string   `json:"id"`
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	Role   UserRole `json:"role"`
	Phone  string   `json:"phone,omitempty"`
	Avatar string   `json:"avatar,omitempty"`

	// Records round-trip through JSON slots, so the hash must keep a tag.
	// Public strips it before anything leaves the API.
	PasswordHash string `json:"passwordHash,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) RecordID() string { return u.ID }

func (u *User) StampNew(id string, at time.Time) {
	u.ID = id
	u.CreatedAt = at
}

// Public returns a copy safe to hand to clients.
func (u *User) Public() User {
	pub := *u
	pub.PasswordHash = ""
	return pub
}
