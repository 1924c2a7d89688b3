package models

import "time"

type NotificationType string

const (
	NotifyBooking NotificationType = "booking"
	NotifyReview  NotificationType = "review"
	NotifySystem  NotificationType = "system"
	NotifyAlert   NotificationType = "alert"
)

type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}

func (n *Notification) RecordID() string { return n.ID }

func (n *Notification) StampNew(id string, at time.Time) {
	n.ID = id
	n.CreatedAt = at
}
