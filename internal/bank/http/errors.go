package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/bankgate/internal/bank/service"
	"github.com/aussiebroadwan/bankgate/pkg/banksdk"
	"github.com/aussiebroadwan/bankgate/pkg/slogx"
)

// writeError translates a service error into an API error response.
// Anything unrecognised is logged and reported as a bare 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var tooMany *service.TooManyRequestsError
	if errors.As(err, &tooMany) {
		e := banksdk.ErrTooManyRequests.WithDescription(tooMany.Error())
		e.RetryAfter = tooMany.RetryAfter
		e.WriteError(w)
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		banksdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrInvalidToken):
		banksdk.ErrInvalidToken.WriteError(w)
	case errors.Is(err, service.ErrForbidden):
		describe(banksdk.ErrForbidden, err).WriteError(w)
	case errors.Is(err, service.ErrNotFound):
		describe(banksdk.ErrNotFound, err).WriteError(w)
	case errors.Is(err, service.ErrAlreadyExists):
		describe(banksdk.ErrAlreadyExists, err).WriteError(w)
	case errors.Is(err, service.ErrInvalidAmount), errors.Is(err, service.ErrInvalidRequest):
		describe(banksdk.ErrInvalidRequest, err).WriteError(w)
	case errors.Is(err, service.ErrUnavailable):
		slogx.FromContext(r.Context()).Error("backing store unavailable", "err", err)
		banksdk.ErrUnavailable.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		banksdk.ErrServerError.WriteError(w)
	}
}

func describe(base *banksdk.APIError, err error) *banksdk.APIError {
	if d := service.Detail(err); d != "" {
		return base.WithDescription(d)
	}
	return base
}

func badRequest(w http.ResponseWriter, description string) {
	banksdk.ErrInvalidRequest.WithDescription(description).WriteError(w)
}
