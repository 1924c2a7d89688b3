package models

import "time"

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (n *Note) RecordID() string { return n.ID }

func (n *Note) StampNew(id string, at time.Time) {
	n.ID = id
	n.CreatedAt = at
	n.UpdatedAt = at
}

func (n *Note) Touch(at time.Time) { n.UpdatedAt = at }
