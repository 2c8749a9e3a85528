package model

import "time"

// CheckIn mirrors the `check_ins` table. A row is written exactly once
// per successful check-in and never mutated afterwards except for
// ValidatedAt, which staff set through the validate endpoint. CreatedAt
// doubles as the check-in instant used for the one-per-day rule.
//
// Fields:
//  ID          – primary key (UUID string).
//  UserID      – owner of the check-in.
//  GymID       – gym the user checked in at.
//  CreatedAt   – when the check-in happened.
//  ValidatedAt – when staff validated it (null until then).
type CheckIn struct {
	ID          string     // check_ins.id
	UserID      string     // check_ins.user_id
	GymID       string     // check_ins.gym_id
	CreatedAt   time.Time  // check_ins.created_at
	ValidatedAt *time.Time // check_ins.validated_at (nullable)
}
