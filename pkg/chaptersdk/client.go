package chaptersdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a client for the chapter membership service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

// NewClient creates a client against the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetToken sets the session token used for authenticated calls. Login does
// this automatically.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the current session token, empty when logged out.
func (c *Client) Token() string { return c.token }

func (c *Client) do(ctx context.Context, method, path string, in, out any, expectedStatus int) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// SubmitIntention submits a public intention to join.
func (c *Client) SubmitIntention(ctx context.Context, req IntentionRequest) (Intention, error) {
	var out Intention
	err := c.do(ctx, http.MethodPost, "/v1/intentions", req, &out, http.StatusCreated)
	return out, err
}

// ListIntentions returns the full admin review queue, newest first.
func (c *Client) ListIntentions(ctx context.Context) ([]Intention, error) {
	var out []Intention
	err := c.do(ctx, http.MethodGet, "/v1/admin/intentions", nil, &out, http.StatusOK)
	return out, err
}

// DecideIntention approves or rejects an intention. When the decision mints
// a fresh invite, the raw token is in the response and nowhere else.
func (c *Client) DecideIntention(ctx context.Context, intentionID, status string) (DecisionResponse, error) {
	var out DecisionResponse
	path := "/v1/admin/intentions/" + url.PathEscape(intentionID)
	err := c.do(ctx, http.MethodPatch, path, DecisionRequest{Status: status}, &out, http.StatusOK)
	return out, err
}

// GetDashboard returns the admin overview counters.
func (c *Client) GetDashboard(ctx context.Context) (Dashboard, error) {
	var out Dashboard
	err := c.do(ctx, http.MethodGet, "/v1/admin/dashboard", nil, &out, http.StatusOK)
	return out, err
}

// SignupPrefill returns the intention behind a live invite token.
func (c *Client) SignupPrefill(ctx context.Context, token string) (SignupPrefill, error) {
	var out SignupPrefill
	err := c.do(ctx, http.MethodGet, "/v1/signup?token="+url.QueryEscape(token), nil, &out, http.StatusOK)
	return out, err
}

// CompleteSignup redeems an invite token and creates the member account.
func (c *Client) CompleteSignup(ctx context.Context, token string, req SignupRequest) (Member, error) {
	var out Member
	err := c.do(ctx, http.MethodPost, "/v1/signup?token="+url.QueryEscape(token), req, &out, http.StatusCreated)
	return out, err
}

// Login authenticates and stores the session token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/login", LoginRequest{Email: email, Password: password}, &out, http.StatusOK)
	if err != nil {
		return LoginResponse{}, err
	}
	c.token = out.Token
	return out, nil
}

// Logout drops the session on both sides.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/v1/auth/logout", nil, nil, http.StatusNoContent)
	if err != nil {
		return err
	}
	c.token = ""
	return nil
}

// Me returns the member behind the current session.
func (c *Client) Me(ctx context.Context) (Member, error) {
	var out Member
	err := c.do(ctx, http.MethodGet, "/v1/auth/me", nil, &out, http.StatusOK)
	return out, err
}

// ListMembers returns the directory of active members, excluding the caller.
func (c *Client) ListMembers(ctx context.Context) ([]MemberSummary, error) {
	var out []MemberSummary
	err := c.do(ctx, http.MethodGet, "/v1/members", nil, &out, http.StatusOK)
	return out, err
}

// CreateReferral sends business to another member.
func (c *Client) CreateReferral(ctx context.Context, req ReferralRequest) (Referral, error) {
	var out Referral
	err := c.do(ctx, http.MethodPost, "/v1/referrals", req, &out, http.StatusCreated)
	return out, err
}

// ListReferrals returns the caller's referrals, split by direction.
func (c *Client) ListReferrals(ctx context.Context) (ReferralList, error) {
	var out ReferralList
	err := c.do(ctx, http.MethodGet, "/v1/referrals", nil, &out, http.StatusOK)
	return out, err
}

// UpdateReferralStatus sets the status of a referral the caller is party to.
func (c *Client) UpdateReferralStatus(ctx context.Context, referralID, status string) (Referral, error) {
	var out Referral
	path := "/v1/referrals/" + url.PathEscape(referralID)
	err := c.do(ctx, http.MethodPatch, path, ReferralStatusRequest{Status: status}, &out, http.StatusOK)
	return out, err
}

// GiveThanks publicly acknowledges another member.
func (c *Client) GiveThanks(ctx context.Context, req ThanksRequest) (Thanks, error) {
	var out Thanks
	err := c.do(ctx, http.MethodPost, "/v1/thanks", req, &out, http.StatusCreated)
	return out, err
}

// ListThanks returns the caller's thanks, split by direction.
func (c *Client) ListThanks(ctx context.Context) (ThanksList, error) {
	var out ThanksList
	err := c.do(ctx, http.MethodGet, "/v1/thanks", nil, &out, http.StatusOK)
	return out, err
}

// Bootstrap creates the first admin account on a fresh install.
func (c *Client) Bootstrap(ctx context.Context, req BootstrapRequest) (Member, error) {
	var out Member
	err := c.do(ctx, http.MethodPost, "/v1/bootstrap", req, &out, http.StatusCreated)
	return out, err
}

// Livez checks process liveness.
func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/livez", nil, &out, http.StatusOK)
	return out, err
}

// Readyz checks readiness, including database connectivity.
func (c *Client) Readyz(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/readyz", nil, &out, http.StatusOK)
	return out, err
}
