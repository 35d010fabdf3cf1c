package domain

import (
	"time"

	"github.com/google/uuid"
)

// Room is a bookable meeting room.
type Room struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoomUpdateParams holds the fields of a partial room update. nil = keep.
type RoomUpdateParams struct {
	Name   *string
	Active *bool
}
