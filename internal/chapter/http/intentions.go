package http

import (
	"net/http"

	"github.com/openchapter/chapter/internal/chapter/service"
	"github.com/openchapter/chapter/pkg/chaptersdk"
	"github.com/openchapter/chapter/pkg/httpx"
)

type IntentionHandler struct {
	IntentionService *service.IntentionService
}

// ServeHTTP godoc
//
//	@Summary		Submit Membership Intention
//	@Description	Submit a public intention to join the chapter. Lands in the admin review queue as pending.
//	@Tags			Intentions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		chaptersdk.IntentionRequest	true	"Intention details"
//	@Success		201		{object}	chaptersdk.Intention		"The recorded intention"
//	@Failure		400		{object}	chaptersdk.ErrorResponse	"message, errors"
//	@Failure		409		{object}	chaptersdk.ErrorResponse	"message"
//	@Failure		500		{object}	chaptersdk.ErrorResponse	"message"
//	@Router			/v1/intentions [post].
func (h *IntentionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req chaptersdk.IntentionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON body.")
		return
	}

	intention, err := h.IntentionService.SubmitIntention(r.Context(), service.SubmitIntentionInput{
		FullName: req.FullName,
		Email:    req.Email,
		Company:  req.Company,
		Phone:    req.Phone,
		Notes:    req.Notes,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toIntentionDTO(intention))
}
