package http

import (
	"net/http"

	"github.com/openchapter/chapter/internal/chapter/service"
	"github.com/openchapter/chapter/pkg/chaptersdk"
	"github.com/openchapter/chapter/pkg/httpx"
)

type ThanksHandler struct {
	ThanksService *service.ThanksService
}

// HandleCreate godoc
//
//	@Summary		Give Thanks
//	@Description	Publicly acknowledge another active member, typically for closed business.
//	@Tags			Thanks
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		chaptersdk.ThanksRequest	true	"Thanks details"
//	@Success		201		{object}	chaptersdk.Thanks			"The recorded thanks"
//	@Failure		400		{object}	chaptersdk.ErrorResponse	"message, errors"
//	@Failure		404		{object}	chaptersdk.ErrorResponse	"message"
//	@Router			/v1/thanks [post].
func (h *ThanksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req chaptersdk.ThanksRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON body.")
		return
	}

	thanks, err := h.ThanksService.GiveThanks(r.Context(), httpx.MemberIDFromCtx(r.Context()), service.GiveThanksInput{
		ToMemberID: req.ToMemberID,
		Message:    req.Message,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toThanksDTO(thanks))
}

// HandleList godoc
//
//	@Summary		List Thanks
//	@Description	Return the caller's thanks, split into sent and received, newest first.
//	@Tags			Thanks
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	chaptersdk.ThanksList		"sent, received"
//	@Failure		401	{object}	chaptersdk.ErrorResponse	"message"
//	@Router			/v1/thanks [get].
func (h *ThanksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	sent, received, err := h.ThanksService.ListThanks(r.Context(), httpx.MemberIDFromCtx(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, chaptersdk.ThanksList{
		Sent:     toThanksDTOs(sent),
		Received: toThanksDTOs(received),
	})
}
