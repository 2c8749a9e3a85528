package model

import "time"

// Role values stored in users.role and carried in the JWT "role" claim.
// MEMBER is the default for self-registration; ADMIN accounts may create
// gyms and validate check-ins.
const (
	RoleAdmin  = "ADMIN"
	RoleMember = "MEMBER"
)

// User represents an application user record as stored in the `users`
// table. Each field corresponds to a column. The password is never kept
// in plain text; PasswordHash holds the bcrypt digest computed at
// registration. Handlers define separate response types with JSON tags,
// so none are declared here.
//
// Fields:
//  ID           – primary key (UUID string).
//  Name         – display name given at registration.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  Role         – ADMIN or MEMBER.
//  CreatedAt    – timestamp of creation.
type User struct {
	ID           string    // users.id
	Name         string    // users.name
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	Role         string    // users.role
	CreatedAt    time.Time // users.created_at
}

// RefreshToken models an entry in the `refresh_tokens` table. Each
// refresh token belongs to a user and contains metadata for expiry and
// revocation. The plain token is not stored; only its SHA-256 hash.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the token.
//  TokenHash – SHA-256 hex digest of the token value.
//  ExpiresAt – expiration timestamp of the token.
//  RevokedAt – when the token was revoked (null if still active).
//  CreatedAt – timestamp of creation.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    string     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
