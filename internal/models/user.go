package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleWriter = "writer"
	RoleAdmin  = "admin"
)

// User is a stored credential record. PwdHash is an argon2id hash of the
// password with SaltAuth.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	PwdHash   []byte    `json:"-"`
	SaltAuth  []byte    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
