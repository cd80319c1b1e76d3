package http

import (
	"net/http"

	"github.com/openchapter/chapter/internal/chapter/service"
	"github.com/openchapter/chapter/pkg/chaptersdk"
	"github.com/openchapter/chapter/pkg/httpx"
	"github.com/openchapter/chapter/pkg/jwtx"
)

// SessionCookieName is the httpOnly cookie carrying the session JWT for
// browser clients. API clients send the same token as a bearer token.
const SessionCookieName = "chapter_session"

type AuthHandler struct {
	SessionService *service.SessionService

	// SecureCookies marks session cookies Secure; off for local HTTP dev.
	SecureCookies bool
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// HandleLogin godoc
//
//	@Summary		Login
//	@Description	Authenticate with email and password. Sets the session cookie and returns the same token for API clients. Unknown emails and wrong passwords get an identical 401.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		chaptersdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	chaptersdk.LoginResponse	"member, token"
//	@Failure		401		{object}	chaptersdk.ErrorResponse	"message"
//	@Failure		403		{object}	chaptersdk.ErrorResponse	"message"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req chaptersdk.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON body.")
		return
	}

	member, token, err := h.SessionService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.setSessionCookie(w, token, int(jwtx.DefaultSessionTTL.Seconds()))
	httpx.WriteJSON(w, http.StatusOK, chaptersdk.LoginResponse{
		Member: toMemberDTO(member),
		Token:  token,
	})
}

// HandleLogout godoc
//
//	@Summary		Logout
//	@Description	Clear the session cookie. Sessions are stateless, so the token itself simply ages out.
//	@Tags			Auth
//	@Success		204	"No content"
//	@Router			/v1/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.setSessionCookie(w, "", -1)
	w.WriteHeader(http.StatusNoContent)
}

// HandleMe godoc
//
//	@Summary		Current Member
//	@Description	Return the member behind the current session.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	chaptersdk.Member			"The authenticated member"
//	@Failure		401	{object}	chaptersdk.ErrorResponse	"message"
//	@Failure		403	{object}	chaptersdk.ErrorResponse	"message"
//	@Router			/v1/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	member, err := h.SessionService.Me(r.Context(), httpx.MemberIDFromCtx(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMemberDTO(member))
}
