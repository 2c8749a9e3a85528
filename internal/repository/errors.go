// Package repository defines the persistence contracts consumed by the use
// cases, plus their MySQL implementations. Error values declared here are
// sentinels shared by every implementation: the in-memory repositories used
// in tests return the exact same values, so callers branch with errors.Is
// regardless of the backing store.
package repository

import "errors"

// ErrNotFound is returned by lookups when no row matches. Use cases
// translate it into their own not-found error so transport code never
// depends on this package directly.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateEmail is returned when an insert violates the unique email
// constraint on users.
var ErrDuplicateEmail = errors.New("email already exists")

// ErrDuplicateCheckIn is returned when an insert violates the unique
// (user_id, check_in_day) constraint on check_ins. This is the storage-side
// guarantee that closes the race between two concurrent check-in attempts
// for the same user on the same day.
var ErrDuplicateCheckIn = errors.New("check-in already exists for this day")
