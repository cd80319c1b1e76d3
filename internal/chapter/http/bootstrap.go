package http

import (
	"net/http"

	"github.com/openchapter/chapter/internal/chapter/service"
	"github.com/openchapter/chapter/pkg/chaptersdk"
	"github.com/openchapter/chapter/pkg/httpx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP godoc
//
//	@Summary		Bootstrap First Admin
//	@Description	Create the first admin account on a fresh database. Requires the configured bootstrap token and works exactly once.
//	@Tags			System
//	@Accept			json
//	@Produce		json
//	@Param			request	body		chaptersdk.BootstrapRequest	true	"Bootstrap token and admin details"
//	@Success		201		{object}	chaptersdk.Member			"The created admin"
//	@Failure		401		{object}	chaptersdk.ErrorResponse	"message"
//	@Failure		409		{object}	chaptersdk.ErrorResponse	"message"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req chaptersdk.BootstrapRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON body.")
		return
	}

	member, err := h.BootstrapService.Bootstrap(r.Context(), req.BootstrapToken, service.BootstrapInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toMemberDTO(member))
}
