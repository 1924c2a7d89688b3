package models

import "time"

type RoomType string

const (
	RoomStandard RoomType = "standard"
	RoomDeluxe   RoomType = "deluxe"
	RoomSuite    RoomType = "suite"
	RoomFamily   RoomType = "family"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomCleaning    RoomStatus = "cleaning"
	RoomMaintenance RoomStatus = "maintenance"
)

type Room struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        RoomType   `json:"type"`
	Description string     `json:"description"`
	Price       int        `json:"price"`
	Capacity    int        `json:"capacity"`
	Amenities   []string   `json:"amenities"`
	Images      []string   `json:"images"`
	FloorNumber int        `json:"floorNumber"`
	Status      RoomStatus `json:"status"`
	Featured    bool       `json:"featured,omitempty"`
}

func (r *Room) RecordID() string { return r.ID }

func (r *Room) StampNew(id string, _ time.Time) { r.ID = id }
