package http

import (
	"net/http"

	"github.com/openchapter/chapter/internal/chapter/service"
	"github.com/openchapter/chapter/pkg/chaptersdk"
	"github.com/openchapter/chapter/pkg/httpx"
)

type ReferralsHandler struct {
	ReferralService *service.ReferralService
}

// HandleCreate godoc
//
//	@Summary		Create Referral
//	@Description	Send business to another active member. Self-referrals are refused; unknown and inactive targets get the same 404.
//	@Tags			Referrals
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		chaptersdk.ReferralRequest	true	"Referral details"
//	@Success		201		{object}	chaptersdk.Referral			"The created referral"
//	@Failure		400		{object}	chaptersdk.ErrorResponse	"message, errors"
//	@Failure		404		{object}	chaptersdk.ErrorResponse	"message"
//	@Router			/v1/referrals [post].
func (h *ReferralsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req chaptersdk.ReferralRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON body.")
		return
	}

	referral, err := h.ReferralService.CreateReferral(r.Context(), httpx.MemberIDFromCtx(r.Context()), service.CreateReferralInput{
		ToMemberID:  req.ToMemberID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toReferralDTO(referral))
}

// HandleList godoc
//
//	@Summary		List Referrals
//	@Description	Return the caller's referrals, split into sent and received, newest first.
//	@Tags			Referrals
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	chaptersdk.ReferralList		"sent, received"
//	@Failure		401	{object}	chaptersdk.ErrorResponse	"message"
//	@Router			/v1/referrals [get].
func (h *ReferralsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	sent, received, err := h.ReferralService.ListReferrals(r.Context(), httpx.MemberIDFromCtx(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, chaptersdk.ReferralList{
		Sent:     toReferralDTOs(sent),
		Received: toReferralDTOs(received),
	})
}

// HandleUpdateStatus godoc
//
//	@Summary		Update Referral Status
//	@Description	Set a referral's status. Only the sender or the recipient may do this; any of pending, in_progress, won, lost may be set at any time.
//	@Tags			Referrals
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Referral ID"
//	@Param			request	body		chaptersdk.ReferralStatusRequest	true	"New status"
//	@Success		200		{object}	chaptersdk.Referral				"The updated referral"
//	@Failure		400		{object}	chaptersdk.ErrorResponse		"message"
//	@Failure		403		{object}	chaptersdk.ErrorResponse		"message"
//	@Failure		404		{object}	chaptersdk.ErrorResponse		"message"
//	@Router			/v1/referrals/{id} [patch].
func (h *ReferralsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req chaptersdk.ReferralStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON body.")
		return
	}

	referral, err := h.ReferralService.UpdateStatus(r.Context(), httpx.MemberIDFromCtx(r.Context()), r.PathValue("id"), req.Status)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toReferralDTO(referral))
}
