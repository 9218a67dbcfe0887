package entity

import "github.com/google/uuid"

// GroupMember is a user's latest position inside an epoch group.
type GroupMember struct {
	UserID      uuid.UUID
	Coordinates Coordinates
}
