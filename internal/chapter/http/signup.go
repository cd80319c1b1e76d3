package http

import (
	"net/http"

	"github.com/openchapter/chapter/internal/chapter/service"
	"github.com/openchapter/chapter/pkg/chaptersdk"
	"github.com/openchapter/chapter/pkg/httpx"
)

type SignupHandler struct {
	SignupService *service.SignupService
}

// HandlePrefill godoc
//
//	@Summary		Signup Prefill
//	@Description	Look up the approved intention behind an invite token so the signup form can be prefilled. Unknown, used and expired tokens all get the same 404.
//	@Tags			Signup
//	@Produce		json
//	@Param			token	query		string						true	"Invite token from the approval email"
//	@Success		200		{object}	chaptersdk.SignupPrefill	"fullName, email, company, phone"
//	@Failure		404		{object}	chaptersdk.ErrorResponse	"message"
//	@Router			/v1/signup [get].
func (h *SignupHandler) HandlePrefill(w http.ResponseWriter, r *http.Request) {
	intention, err := h.SignupService.Prefill(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, chaptersdk.SignupPrefill{
		FullName: intention.FullName,
		Email:    intention.Email,
		Company:  intention.Company,
		Phone:    intention.Phone,
	})
}

// HandleComplete godoc
//
//	@Summary		Complete Signup
//	@Description	Redeem an invite token and create the member account. The token is single-use and the email must match the approved intention.
//	@Tags			Signup
//	@Accept			json
//	@Produce		json
//	@Param			token	query		string						true	"Invite token from the approval email"
//	@Param			request	body		chaptersdk.SignupRequest	true	"Account details"
//	@Success		201		{object}	chaptersdk.Member			"The created member"
//	@Failure		400		{object}	chaptersdk.ErrorResponse	"message, errors"
//	@Failure		404		{object}	chaptersdk.ErrorResponse	"message"
//	@Failure		409		{object}	chaptersdk.ErrorResponse	"message"
//	@Router			/v1/signup [post].
func (h *SignupHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	var req chaptersdk.SignupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON body.")
		return
	}

	member, err := h.SignupService.CompleteSignup(r.Context(), r.URL.Query().Get("token"), service.CompleteSignupInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Company:  req.Company,
		Phone:    req.Phone,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toMemberDTO(member))
}
