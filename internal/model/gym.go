package model

import "time"

// Gym mirrors the `gyms` table. Coordinates are stored as
// DECIMAL(10,8)/DECIMAL(11,8) so persisted values do not drift between
// writes and reads; on the Go side they stay float64 for the distance
// math. Description and Phone are optional and nullable in the schema.
type Gym struct {
	ID          string    // gyms.id (UUID)
	Title       string    // gyms.title
	Description *string   // gyms.description (nullable)
	Phone       *string   // gyms.phone (nullable)
	Latitude    float64   // gyms.latitude, range [-90, 90]
	Longitude   float64   // gyms.longitude, range [-180, 180]
	CreatedAt   time.Time // gyms.created_at
}
