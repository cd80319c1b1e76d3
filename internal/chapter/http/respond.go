package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/openchapter/chapter/internal/chapter/domain"
	"github.com/openchapter/chapter/internal/chapter/service"
	"github.com/openchapter/chapter/pkg/chaptersdk"
	"github.com/openchapter/chapter/pkg/httpx"
	"github.com/openchapter/chapter/pkg/slogx"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// decodeJSON reads a JSON request body into dst with a hard size cap.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	httpx.WriteJSON(w, http.StatusBadRequest, chaptersdk.ErrorResponse{Message: msg})
}

// writeServiceError maps service errors onto HTTP responses with the shared
// {"message": ..., "errors": {...}} body. Anything unrecognized is a 500
// with a generic message; details stay in the log.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if fe, ok := service.AsFieldErrors(err); ok {
		httpx.WriteJSON(w, http.StatusBadRequest, chaptersdk.ErrorResponse{
			Message: "Validation failed.",
			Errors:  fe,
		})
		return
	}

	var (
		status int
		msg    string
	)
	switch {
	case errors.Is(err, service.ErrIntentionExists):
		status, msg = http.StatusConflict, "An intention already exists for this email."
	case errors.Is(err, service.ErrIntentionNotFound):
		status, msg = http.StatusNotFound, "Intention not found."
	case errors.Is(err, service.ErrInvalidDecision):
		status, msg = http.StatusBadRequest, "Status must be approved or rejected."
	case errors.Is(err, service.ErrInviteInvalid):
		status, msg = http.StatusNotFound, "Invite link is invalid or expired."
	case errors.Is(err, service.ErrIntentionNotApproved):
		status, msg = http.StatusConflict, "This intention is not approved."
	case errors.Is(err, service.ErrSignupEmailMismatch):
		status, msg = http.StatusConflict, "Email does not match the approved intention."
	case errors.Is(err, service.ErrMemberExists):
		status, msg = http.StatusConflict, "An account already exists for this email."
	case errors.Is(err, service.ErrInvalidCredentials):
		status, msg = http.StatusUnauthorized, "Invalid email or password."
	case errors.Is(err, service.ErrMemberInactive):
		status, msg = http.StatusForbidden, "Account is inactive."
	case errors.Is(err, service.ErrMemberNotFound):
		status, msg = http.StatusNotFound, "Member not found."
	case errors.Is(err, service.ErrSelfReferral):
		status, msg = http.StatusBadRequest, "You cannot refer business to yourself."
	case errors.Is(err, service.ErrReferralNotFound):
		status, msg = http.StatusNotFound, "Referral not found."
	case errors.Is(err, service.ErrNotReferralParty):
		status, msg = http.StatusForbidden, "Only the sender or recipient may update this referral."
	case errors.Is(err, service.ErrInvalidReferralState):
		status, msg = http.StatusBadRequest, "Invalid referral status."
	case errors.Is(err, service.ErrSelfThanks):
		status, msg = http.StatusBadRequest, "You cannot thank yourself."
	case errors.Is(err, service.ErrBootstrapDisabled):
		status, msg = http.StatusNotFound, "Not found."
	case errors.Is(err, service.ErrBootstrapBadToken):
		status, msg = http.StatusUnauthorized, "Invalid bootstrap token."
	case errors.Is(err, service.ErrAlreadyBootstrapped):
		status, msg = http.StatusConflict, "Bootstrap has already been completed."
	default:
		slogx.FromContext(r.Context()).Error("unhandled service error", "err", err)
		status, msg = http.StatusInternalServerError, "Something went wrong."
	}

	httpx.WriteJSON(w, status, chaptersdk.ErrorResponse{Message: msg})
}

func toIntentionDTO(in domain.Intention) chaptersdk.Intention {
	return chaptersdk.Intention{
		ID:        in.ID,
		FullName:  in.FullName,
		Email:     in.Email,
		Company:   in.Company,
		Phone:     in.Phone,
		Notes:     in.Notes,
		Status:    in.Status,
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}
}

func toMemberDTO(m domain.Member) chaptersdk.Member {
	return chaptersdk.Member{
		ID:        m.ID,
		FullName:  m.FullName,
		Email:     m.Email,
		Company:   m.Company,
		Phone:     m.Phone,
		Admin:     m.Admin,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
}

func toSummaryDTO(s domain.MemberSummary) chaptersdk.MemberSummary {
	return chaptersdk.MemberSummary{
		ID:       s.ID,
		FullName: s.FullName,
		Company:  s.Company,
	}
}

func toReferralDTO(r domain.Referral) chaptersdk.Referral {
	return chaptersdk.Referral{
		ID:          r.ID,
		FromMember:  toSummaryDTO(r.FromMember),
		ToMember:    toSummaryDTO(r.ToMember),
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toReferralDTOs(rs []domain.Referral) []chaptersdk.Referral {
	out := make([]chaptersdk.Referral, 0, len(rs))
	for _, r := range rs {
		out = append(out, toReferralDTO(r))
	}
	return out
}

func toThanksDTO(t domain.Thanks) chaptersdk.Thanks {
	return chaptersdk.Thanks{
		ID:         t.ID,
		FromMember: toSummaryDTO(t.FromMember),
		ToMember:   toSummaryDTO(t.ToMember),
		Message:    t.Message,
		CreatedAt:  t.CreatedAt,
	}
}

func toThanksDTOs(ts []domain.Thanks) []chaptersdk.Thanks {
	out := make([]chaptersdk.Thanks, 0, len(ts))
	for _, t := range ts {
		out = append(out, toThanksDTO(t))
	}
	return out
}
