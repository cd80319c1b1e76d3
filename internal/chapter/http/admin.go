package http

import (
	"net/http"

	"github.com/openchapter/chapter/internal/chapter/service"
	"github.com/openchapter/chapter/pkg/chaptersdk"
	"github.com/openchapter/chapter/pkg/httpx"
)

type AdminIntentionsHandler struct {
	IntentionService *service.IntentionService
	AdmissionService *service.AdmissionService
}

// HandleList godoc
//
//	@Summary		List Intentions
//	@Description	Return the full review queue, newest first. Admin only.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		chaptersdk.Intention		"All intentions"
//	@Failure		401	{object}	chaptersdk.ErrorResponse	"message"
//	@Failure		403	{object}	chaptersdk.ErrorResponse	"message"
//	@Router			/v1/admin/intentions [get].
func (h *AdminIntentionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	intentions, err := h.IntentionService.ListIntentions(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]chaptersdk.Intention, 0, len(intentions))
	for _, in := range intentions {
		out = append(out, toIntentionDTO(in))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleDecide godoc
//
//	@Summary		Decide Intention
//	@Description	Approve or reject an intention. Approval mints a single-use invite token, returned once in this response. Repeating the current status is a no-op.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Intention ID"
//	@Param			request	body		chaptersdk.DecisionRequest	true	"approved or rejected"
//	@Success		200		{object}	chaptersdk.DecisionResponse	"intention, inviteToken when minted"
//	@Failure		400		{object}	chaptersdk.ErrorResponse	"message"
//	@Failure		404		{object}	chaptersdk.ErrorResponse	"message"
//	@Router			/v1/admin/intentions/{id} [patch].
func (h *AdminIntentionsHandler) HandleDecide(w http.ResponseWriter, r *http.Request) {
	var req chaptersdk.DecisionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON body.")
		return
	}

	res, err := h.AdmissionService.Decide(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := chaptersdk.DecisionResponse{
		Intention:   toIntentionDTO(res.Intention),
		InviteToken: res.InviteToken,
	}
	if res.InviteToken != "" {
		out.InviteExpiresAt = &res.InviteExpiresAt
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

type DashboardHandler struct {
	DashboardService *service.DashboardService
}

// ServeHTTP godoc
//
//	@Summary		Admin Dashboard
//	@Description	Headline counters: active members plus referrals and thanks for the current calendar month.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	chaptersdk.Dashboard		"Counters"
//	@Failure		401	{object}	chaptersdk.ErrorResponse	"message"
//	@Failure		403	{object}	chaptersdk.ErrorResponse	"message"
//	@Router			/v1/admin/dashboard [get].
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d, err := h.DashboardService.Metrics(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, chaptersdk.Dashboard{
		ActiveMembers:      d.ActiveMembers,
		ReferralsThisMonth: d.ReferralsThisMonth,
		ThanksThisMonth:    d.ThanksThisMonth,
		MonthStartsAt:      d.MonthStartsAt,
	})
}
