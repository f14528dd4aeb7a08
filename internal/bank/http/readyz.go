package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aussiebroadwan/bankgate/pkg/banksdk"
	"github.com/aussiebroadwan/bankgate/pkg/httpx"
)

// Pinger is a dependency that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe reporting the status of the database and the revocation store.
//	@Description	A revocation store outage makes every authenticated request fail, so it is reported as not ready.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	banksdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	banksdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, db, revocation Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		checks := &banksdk.HealthChecks{
			Database:   "ok",
			Revocation: "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := db.Ping(ctx); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if err := revocation.Ping(ctx); err != nil {
			checks.Revocation = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, banksdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
