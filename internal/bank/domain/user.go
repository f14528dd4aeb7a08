package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a bank customer or operator. Email is the token subject.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string // argon2 encoded
	Role         Role
	CreatedAt    time.Time
}
