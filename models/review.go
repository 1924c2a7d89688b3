package models

import "time"

type Review struct {
	ID          string    `json:"id"`
	GuestID     string    `json:"guestId"`
	GuestName   string    `json:"guestName"`
	GuestAvatar string    `json:"guestAvatar,omitempty"`
	RoomID      string    `json:"roomId"`
	RoomName    string    `json:"roomName"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	Reply       string    `json:"reply,omitempty"`
	Featured    bool      `json:"featured,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (r *Review) RecordID() string { return r.ID }

func (r *Review) StampNew(id string, at time.Time) {
	r.ID = id
	r.CreatedAt = at
}
