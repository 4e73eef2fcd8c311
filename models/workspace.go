package models

import "time"

// Workspace types.
const (
	WorkspaceTypeDesk        = "desk"
	WorkspaceTypeMeetingRoom = "meeting_room"
	WorkspaceTypeOffice      = "office"
)

// Coordinates place a workspace on the office floor plan.
type Coordinates struct {
	X float64 `bson:"x" json:"x"`
	Y float64 `bson:"y" json:"y"`
}

// Workspace is a bookable physical resource.
type Workspace struct {
	ID           string      `bson:"id" json:"id"`
	Name         string      `bson:"name" json:"name"`
	Description  string      `bson:"description,omitempty" json:"description,omitempty"`
	Type         string      `bson:"type" json:"type"`
	Location     string      `bson:"location,omitempty" json:"location,omitempty"` // e.g. "Floor 1"
	PricePerHour float64     `bson:"price_per_hour" json:"pricePerHour"`
	Capacity     int         `bson:"capacity" json:"capacity"`
	Images       []string    `bson:"images" json:"images"`
	Features     []string    `bson:"features" json:"features"` // e.g. ["projector", "Wi-Fi"]
	Coordinates  Coordinates `bson:"coordinates" json:"coordinates"`
	IsActive     bool        `bson:"is_active" json:"isActive"`
	CreatedAt    time.Time   `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time   `bson:"updated_at" json:"updatedAt"`
}

// WorkspaceInput is the writable part of a workspace.
type WorkspaceInput struct {
	Name         string      `json:"name" binding:"required"`
	Description  string      `json:"description"`
	Type         string      `json:"type"`
	Location     string      `json:"location"`
	PricePerHour float64     `json:"pricePerHour" binding:"required"`
	Capacity     int         `json:"capacity"`
	Images       []string    `json:"images"`
	Features     []string    `json:"features"`
	Coordinates  Coordinates `json:"coordinates"`
}

// WorkspaceFilter narrows a workspace listing. Zero values mean "no constraint".
type WorkspaceFilter struct {
	ActiveOnly  bool
	Type        string
	Features    []string
	PriceMin    *float64
	PriceMax    *float64
	CapacityMin *int
	CapacityMax *int
	Sort        string // "price_asc" or "price_desc"
}
