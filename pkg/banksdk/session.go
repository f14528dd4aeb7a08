package banksdk

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Session performs requests as a logged-in user. Tokens are not refreshed;
// log in again once ExpiresAt has passed.
type Session struct {
	client    *Client
	token     string
	expiresAt time.Time
}

// Token returns the bearer token.
func (s *Session) Token() string { return s.token }

// ExpiresAt returns the approximate token expiry, or the zero time when
// unknown.
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

// Logout revokes the session token on the server.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/auth/logout", nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// Me returns the user behind the session.
func (s *Session) Me(ctx context.Context) (*MeResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/auth/me", nil)
	if err != nil {
		return nil, err
	}

	var me MeResponse
	if err := decodeJSON(resp, &me, http.StatusOK); err != nil {
		return nil, err
	}
	return &me, nil
}

// Mine returns the caller's own account.
func (s *Session) Mine(ctx context.Context) (*AccountResponse, error) {
	return s.account(ctx, http.MethodGet, "/bank/accounts/mine", http.StatusOK)
}

// All lists every account. Admin only.
func (s *Session) All(ctx context.Context) ([]AccountResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/bank/accounts/all", nil)
	if err != nil {
		return nil, err
	}

	var accounts []AccountResponse
	if err := decodeJSON(resp, &accounts, http.StatusOK); err != nil {
		return nil, err
	}
	return accounts, nil
}

// CreateAccount opens an account for ownerEmail. Admin only.
func (s *Session) CreateAccount(ctx context.Context, ownerEmail string) (*AccountResponse, error) {
	q := url.Values{"ownerEmail": {ownerEmail}}
	return s.account(ctx, http.MethodPost, "/bank/accounts/create?"+q.Encode(), http.StatusCreated)
}

// Credit adds amount to account id.
func (s *Session) Credit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*AccountResponse, error) {
	return s.transact(ctx, id, "credit", amount)
}

// Debit subtracts amount from account id.
func (s *Session) Debit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*AccountResponse, error) {
	return s.transact(ctx, id, "debit", amount)
}

func (s *Session) transact(ctx context.Context, id uuid.UUID, op string, amount decimal.Decimal) (*AccountResponse, error) {
	q := url.Values{"amount": {amount.String()}}
	path := fmt.Sprintf("/bank/accounts/%s/%s?%s", id, op, q.Encode())
	return s.account(ctx, http.MethodPatch, path, http.StatusOK)
}

func (s *Session) account(ctx context.Context, method, path string, expected int) (*AccountResponse, error) {
	resp, err := s.doAuthRequest(ctx, method, path, nil)
	if err != nil {
		return nil, err
	}

	var account AccountResponse
	if err := decodeJSON(resp, &account, expected); err != nil {
		return nil, err
	}
	return &account, nil
}

// doAuthRequest performs a request carrying the session's bearer token.
func (s *Session) doAuthRequest(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, s.client.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}
