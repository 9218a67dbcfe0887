// Package entity contains the core business objects of the crossing engine.
package entity

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Coordinates is a WGS84 position.
type Coordinates struct {
	Longitude float64 `msgpack:"lon" json:"longitude"`
	Latitude  float64 `msgpack:"lat" json:"latitude"`
}

// Point converts the coordinates to an orb point (lon, lat order).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// DistanceMeters returns the great-circle distance to o.
func (c Coordinates) DistanceMeters(o Coordinates) float64 {
	return geo.DistanceHaversine(c.Point(), o.Point())
}

// DistanceKm returns the great-circle distance to o in kilometers.
func (c Coordinates) DistanceKm(o Coordinates) float64 {
	return c.DistanceMeters(o) / 1000
}
