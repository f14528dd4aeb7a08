package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/bankgate/internal/bank/service"
	"github.com/aussiebroadwan/bankgate/pkg/banksdk"
	"github.com/aussiebroadwan/bankgate/pkg/httpx"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleLogin exchanges credentials for a bearer token.
//
//	@Summary		Log in
//	@Description	Checks email and password and returns a signed bearer token. The lifetime is in milliseconds.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		banksdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	banksdk.LoginResponse
//	@Failure		400		{object}	banksdk.ErrorResponse	"Malformed body"
//	@Failure		401		{object}	banksdk.ErrorResponse	"Invalid email or password"
//	@Failure		429		{object}	banksdk.ErrorResponse	"Too many login attempts"
//	@Router			/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req banksdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		badRequest(w, "request body must be a JSON object with email and password")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		badRequest(w, "email and password are required")
		return
	}

	res, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, banksdk.LoginResponse{
		Token:     res.Token,
		ExpiresIn: res.ExpiresIn.Milliseconds(),
	})
}

// HandleLogout revokes the caller's token.
//
//	@Summary		Log out
//	@Description	Revokes the presented token for the rest of its lifetime.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Success		204
//	@Failure		401	{object}	banksdk.ErrorResponse	"Missing, invalid or revoked token"
//	@Failure		503	{object}	banksdk.ErrorResponse	"Revocation store unavailable"
//	@Router			/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	token, ok := h.AuthService.ExtractBearer(r.Header.Get("Authorization"))
	if !ok {
		banksdk.ErrAuthenticationRequired.WriteError(w)
		return
	}

	if err := h.AuthService.Logout(r.Context(), token); err != nil {
		writeError(w, r, err)
		return
	}

	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

// HandleMe returns the authenticated user.
//
//	@Summary		Current user
//	@Description	Returns the user behind the bearer token.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	banksdk.MeResponse
//	@Failure		401	{object}	banksdk.ErrorResponse	"Missing, invalid or revoked token"
//	@Router			/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())

	user, err := h.AuthService.Me(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, banksdk.MeResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role.String(),
	})
}
