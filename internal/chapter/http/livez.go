package http

import (
	"net/http"
	"time"

	"github.com/openchapter/chapter/pkg/chaptersdk"
	"github.com/openchapter/chapter/pkg/httpx"
)

// LivezHandler godoc
//
//	@Summary		Liveness Probe
//	@Description	Reports that the process is up. No dependencies are checked.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	chaptersdk.HealthResponse	"status, version, uptime"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, chaptersdk.HealthResponse{
			Status:  "ok",
			Version: version,
			Uptime:  time.Since(startTime).Truncate(time.Second).String(),
		})
	})
}
