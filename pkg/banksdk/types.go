package banksdk

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrorResponse is the wire form of an APIError.
type ErrorResponse struct {
	Error            string `json:"error" example:"invalid_token"`
	ErrorDescription string `json:"error_description" example:"Your token is either expired or black-listed."`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" example:"cedric@efrei.net"`
	Password string `json:"password" example:"password"`
}

// LoginResponse carries a bearer token and its lifetime in milliseconds.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn" example:"3600000"`
}

// MeResponse describes the authenticated user.
type MeResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name" example:"Cedric"`
	Email string    `json:"email" example:"cedric@efrei.net"`
	Role  string    `json:"role" example:"CLIENT"`
}

// AccountResponse describes a bank account. Balance is encoded as a decimal
// string so no precision is lost.
type AccountResponse struct {
	ID         uuid.UUID       `json:"id"`
	OwnerEmail string          `json:"ownerEmail" example:"cedric@efrei.net"`
	Balance    decimal.Decimal `json:"balance" swaggertype:"string" example:"250.00"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of each backing dependency.
type HealthChecks struct {
	Database   string `json:"database"`
	Revocation string `json:"revocation"`
}
