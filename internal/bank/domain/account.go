package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is the single bank account owned by a user.
type Account struct {
	ID         uuid.UUID
	OwnerEmail string
	Balance    decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
