package http

import (
	"net/http"
	"time"

	"github.com/openchapter/chapter/internal/chapter/store"
	"github.com/openchapter/chapter/pkg/chaptersdk"
	"github.com/openchapter/chapter/pkg/httpx"
	"github.com/openchapter/chapter/pkg/slogx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Probe
//	@Description	Reports whether the service can take traffic. Checks database connectivity.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	chaptersdk.HealthResponse	"status, version, uptime"
//	@Failure		503	{object}	chaptersdk.ErrorResponse	"message"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Error("readiness ping failed", "err", err)
			httpx.WriteJSON(w, http.StatusServiceUnavailable, chaptersdk.ErrorResponse{
				Message: "Database is not reachable.",
			})
			return
		}

		httpx.WriteJSON(w, http.StatusOK, chaptersdk.HealthResponse{
			Status:  "ok",
			Version: version,
			Uptime:  time.Since(startTime).Truncate(time.Second).String(),
		})
	})
}
