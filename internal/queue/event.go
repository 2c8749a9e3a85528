// Package queue defines message payloads exchanged over the message broker.
package queue

// CheckInRegisteredEvent is published when a check-in is successfully
// recorded. It contains enough information for downstream consumers to
// log, notify, or trigger analytics without querying the primary database.
type CheckInRegisteredEvent struct {
	CheckInID string `json:"check_in_id"`
	UserID    string `json:"user_id"`
	GymID     string `json:"gym_id"`
	CreatedAt string `json:"created_at"`
}
