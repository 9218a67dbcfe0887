package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a named location owned by a user.
type Address struct {
	ID           uuid.UUID   `json:"id"`            // The Global Unique Identifier (GUID) for the address.
	OwnerID      uuid.UUID   `json:"owner_id"`      // The owning user.
	Kind         AddressKind `json:"kind"`          // Home or privacy zone.
	Label        string      `json:"label"`         // A user-defined label, e.g., "Home", "Office".
	FullAddress  string      `json:"full_address"`  // The free-text address as entered by the user.
	Latitude     float64     `json:"latitude"`      // The geographic latitude.
	Longitude    float64     `json:"longitude"`     // The geographic longitude.
	RadiusMeters float64     `json:"radius_meters"` // Radius of a privacy zone; unused for home.
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Coordinates returns the address position.
func (a *Address) Coordinates() Coordinates {
	return Coordinates{Longitude: a.Longitude, Latitude: a.Latitude}
}

// Covers reports whether c lies inside the privacy zone.
func (a *Address) Covers(c Coordinates) bool {
	return a.Kind == AddressKindPrivacyZone && a.Coordinates().DistanceMeters(c) <= a.RadiusMeters
}
