package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/bankgate/internal/bank/domain"
	"github.com/aussiebroadwan/bankgate/internal/bank/service"
	"github.com/aussiebroadwan/bankgate/pkg/banksdk"
	"github.com/aussiebroadwan/bankgate/pkg/httpx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AccountsHandler struct {
	AccountService *service.AccountService
}

// HandleCreate opens an account for an existing user.
//
//	@Summary		Create account
//	@Description	Opens a zero-balance account for the user with the given email. Admin only.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			ownerEmail	query		string	true	"Owner email"
//	@Success		201			{object}	banksdk.AccountResponse
//	@Failure		400			{object}	banksdk.ErrorResponse	"Missing email or account already exists"
//	@Failure		401			{object}	banksdk.ErrorResponse	"Not authenticated"
//	@Failure		403			{object}	banksdk.ErrorResponse	"Not an admin"
//	@Failure		404			{object}	banksdk.ErrorResponse	"No such user"
//	@Router			/bank/accounts/create [post].
func (h *AccountsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	account, err := h.AccountService.Create(r.Context(), r.URL.Query().Get("ownerEmail"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toAccountResponse(account))
}

// HandleAll lists every account.
//
//	@Summary		List accounts
//	@Description	Lists every bank account. Admin only.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		banksdk.AccountResponse
//	@Failure		401	{object}	banksdk.ErrorResponse	"Not authenticated"
//	@Failure		403	{object}	banksdk.ErrorResponse	"Not an admin"
//	@Router			/bank/accounts/all [get].
func (h *AccountsHandler) HandleAll(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.AccountService.All(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]banksdk.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountResponse(a))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleMine returns the caller's own account.
//
//	@Summary		My account
//	@Description	Returns the account owned by the authenticated user.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	banksdk.AccountResponse
//	@Failure		401	{object}	banksdk.ErrorResponse	"Not authenticated"
//	@Failure		404	{object}	banksdk.ErrorResponse	"The caller has no account"
//	@Router			/bank/accounts/mine [get].
func (h *AccountsHandler) HandleMine(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())

	account, err := h.AccountService.ByOwner(r.Context(), id.Subject)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAccountResponse(account))
}

// HandleCredit adds money to an account.
//
//	@Summary		Credit account
//	@Description	Adds amount to the account. Clients may move at most 1000, admins only more than 1000.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id		path		string	true	"Account id (UUID)"
//	@Param			amount	query		string	true	"Non-negative decimal amount with at most 2 decimal places"
//	@Success		200		{object}	banksdk.AccountResponse
//	@Failure		400		{object}	banksdk.ErrorResponse	"Bad id or amount"
//	@Failure		401		{object}	banksdk.ErrorResponse	"Not authenticated"
//	@Failure		403		{object}	banksdk.ErrorResponse	"Amount not allowed for the caller's role"
//	@Failure		404		{object}	banksdk.ErrorResponse	"No such account"
//	@Failure		429		{object}	banksdk.ErrorResponse	"Too many requests"
//	@Router			/bank/accounts/{id}/credit [patch].
func (h *AccountsHandler) HandleCredit(w http.ResponseWriter, r *http.Request) {
	h.transact(w, r, h.AccountService.Credit)
}

// HandleDebit takes money from an account.
//
//	@Summary		Debit account
//	@Description	Subtracts amount from the account. Clients may move at most 1000, admins only more than 1000.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id		path		string	true	"Account id (UUID)"
//	@Param			amount	query		string	true	"Non-negative decimal amount with at most 2 decimal places"
//	@Success		200		{object}	banksdk.AccountResponse
//	@Failure		400		{object}	banksdk.ErrorResponse	"Bad id or amount"
//	@Failure		401		{object}	banksdk.ErrorResponse	"Not authenticated"
//	@Failure		403		{object}	banksdk.ErrorResponse	"Amount not allowed for the caller's role"
//	@Failure		404		{object}	banksdk.ErrorResponse	"No such account"
//	@Failure		429		{object}	banksdk.ErrorResponse	"Too many requests"
//	@Router			/bank/accounts/{id}/debit [patch].
func (h *AccountsHandler) HandleDebit(w http.ResponseWriter, r *http.Request) {
	h.transact(w, r, h.AccountService.Debit)
}

const maxAmountLength = 32

type transactFunc func(ctx context.Context, id uuid.UUID, amount decimal.Decimal, who domain.Identity) (domain.Account, error)

func (h *AccountsHandler) transact(w http.ResponseWriter, r *http.Request, fn transactFunc) {
	accountID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		badRequest(w, "account id must be a UUID")
		return
	}

	raw := r.URL.Query().Get("amount")
	if raw == "" {
		badRequest(w, "amount is required")
		return
	}
	if len(raw) > maxAmountLength {
		badRequest(w, "amount is out of range")
		return
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		badRequest(w, "amount must be a decimal number")
		return
	}

	who, _ := IdentityFromContext(r.Context())
	account, err := fn(r.Context(), accountID, amount, who)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAccountResponse(account))
}

func toAccountResponse(a domain.Account) banksdk.AccountResponse {
	return banksdk.AccountResponse{
		ID:         a.ID,
		OwnerEmail: a.OwnerEmail,
		Balance:    a.Balance,
	}
}
