// Package usecase implements the application operations: registration,
// authentication, gym management and the check-in flow. Every use case
// takes its repository collaborators and a clock through its constructor,
// holds no other state, and reports failures through the closed set of
// sentinel errors below so handlers can branch exhaustively with errors.Is.
package usecase

import "errors"

// ErrResourceNotFound is returned when a referenced entity (gym, user or
// check-in) does not exist. Handlers map it to HTTP 404.
var ErrResourceNotFound = errors.New("resource not found")

// ErrUserAlreadyExists is returned by Register when the email is taken.
// Handlers map it to HTTP 409.
var ErrUserAlreadyExists = errors.New("user already exists")

// ErrInvalidCredentials is returned by Authenticate for a wrong email or
// password; callers cannot tell which. Handlers map it to HTTP 401.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrMaxDistance is returned by CheckIn when the user is farther from the
// gym than the configured threshold. Handlers map it to HTTP 400.
var ErrMaxDistance = errors.New("max distance reached")

// ErrMaxNumberOfCheckIns is returned by CheckIn when the user already
// checked in on the current calendar day. Handlers map it to HTTP 409.
var ErrMaxNumberOfCheckIns = errors.New("max number of check-ins reached")

// ErrLateCheckInValidation is returned by ValidateCheckIn when more than
// the allowed interval has passed since the check-in was created.
// Handlers map it to HTTP 422.
var ErrLateCheckInValidation = errors.New("check-in validation window expired")
