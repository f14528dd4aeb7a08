package banksdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/aussiebroadwan/bankgate/pkg/httpx"
)

// Error codes carried in the "error" field of every error body.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeForbidden          = "forbidden"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeAlreadyExists      = "already_exists"
	ErrorCodeTooManyRequests    = "too_many_requests"
	ErrorCodeUnavailable        = "temporarily_unavailable"
	ErrorCodeServerError        = "server_error"
)

// APIError is the error body returned by the bank API. The server writes it
// with WriteError and the client decodes it back from failed responses.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is one of the ErrorCode constants
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`

	// RetryAfter is set on 429 responses.
	RetryAfter time.Duration `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WithDescription returns a copy of e carrying a different description.
func (e *APIError) WithDescription(description string) *APIError {
	cp := *e
	cp.Description = description
	return &cp
}

// WriteError writes e to an HTTP response. A RetryAfter is sent as a
// Retry-After header in whole seconds.
func (e *APIError) WriteError(w http.ResponseWriter) {
	if e.RetryAfter > 0 {
		httpx.SetRetryAfter(w, int((e.RetryAfter+time.Second-1)/time.Second))
	}
	if e.StatusCode == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="bank"`)
	}
	httpx.WriteJSON(w, e.StatusCode, ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
	})
}

var (
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "Invalid email or password.",
	}

	// ErrInvalidToken covers missing, malformed, expired and revoked tokens
	// alike so callers cannot tell which check failed.
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "Your token is either expired or black-listed.",
	}

	ErrAuthenticationRequired = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "Full authentication is required to access this resource.",
	}

	ErrForbidden = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeForbidden,
		Description: "Access denied.",
	}

	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "resource not found",
	}

	ErrAlreadyExists = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeAlreadyExists,
		Description: "resource already exists",
	}

	ErrTooManyRequests = &APIError{
		StatusCode:  http.StatusTooManyRequests,
		Code:        ErrorCodeTooManyRequests,
		Description: "Too many requests.",
	}

	ErrUnavailable = &APIError{
		StatusCode:  http.StatusServiceUnavailable,
		Code:        ErrorCodeUnavailable,
		Description: "a backing service is unavailable, try again later",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// parseErrorResponse turns a non-2xx response into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	if s := resp.Header.Get("Retry-After"); s != "" {
		if secs, err := strconv.Atoi(s); err == nil {
			apiErr.RetryAfter = time.Duration(secs) * time.Second
		}
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		apiErr.Code = errResp.Error
		apiErr.Description = errResp.ErrorDescription
		return apiErr
	}

	// Fallback: create generic error from status code
	apiErr.Code = ErrorCodeServerError
	apiErr.Description = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	return apiErr
}
