package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/openchapter/chapter/internal/chapter/service"
	"github.com/openchapter/chapter/internal/chapter/store"
	"github.com/openchapter/chapter/pkg/httpx"
	"github.com/openchapter/chapter/pkg/jwtx"
	"github.com/openchapter/chapter/pkg/slogx"

	_ "github.com/openchapter/chapter/api/chapter" // Swagger docs
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	// SecureCookies marks session cookies Secure. Disable for local HTTP dev.
	SecureCookies bool

	IntentionService *service.IntentionService
	AdmissionService *service.AdmissionService
	SignupService    *service.SignupService
	SessionService   *service.SessionService
	DirectoryService *service.DirectoryService
	ReferralService  *service.ReferralService
	ThanksService    *service.ThanksService
	DashboardService *service.DashboardService
	BootstrapService *service.BootstrapService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	corsOrigins []string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain. CORS runs outermost so preflights never
	// hit auth or rate limiting.
	r.middlewares = []httpx.Middleware{
		cors.Handler(cors.Options{
			AllowedOrigins:   corsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerIntentions()
	r.registerAdmin()
	r.registerSignup()
	r.registerAuth()
	r.registerMembers()
	r.registerReferrals()
	r.registerThanks()
	r.registerBootstrap()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Chapter Membership Service API
//	@version		0.1.0
//	@description	Membership service for a business networking chapter: public intake of
//	@description	membership intentions, admin review with single-use invite tokens,
//	@description	invite-only signup, and member-to-member referrals and thanks.
//
//	@contact.name				OpenChapter
//	@contact.url				https://github.com/openchapter/chapter
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session JWT. Format: "Bearer {token}". Browsers may use the session cookie instead.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) authn() httpx.Middleware {
	return httpx.AuthnMiddleware(r.verifier, SessionCookieName)
}

func (r *Router) registerIntentions() {
	h := &IntentionHandler{IntentionService: r.IntentionService}

	// POST /intentions - strict rate limit by IP (public write endpoint)
	r.Mux.Handle("POST /v1/intentions",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	intentions := &AdminIntentionsHandler{
		IntentionService: r.IntentionService,
		AdmissionService: r.AdmissionService,
	}
	dashboard := &DashboardHandler{DashboardService: r.DashboardService}

	adminOnly := func(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
		return httpx.Chain(h,
			r.authn(),
			httpx.RequireRole(jwtx.RoleAdmin),
			httpx.RateLimitByMember(limit),
		)
	}

	r.Mux.Handle("GET /v1/admin/intentions",
		adminOnly(http.HandlerFunc(intentions.HandleList), httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/admin/intentions/{id}",
		adminOnly(http.HandlerFunc(intentions.HandleDecide), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/admin/dashboard",
		adminOnly(dashboard, httpx.LenientLimit))
}

func (r *Router) registerSignup() {
	h := &SignupHandler{SignupService: r.SignupService}

	// GET prefill is lenient; POST creates accounts so it gets the strict
	// brute-force profile.
	r.Mux.Handle("GET /v1/signup",
		httpx.Chain(http.HandlerFunc(h.HandlePrefill),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/signup",
		httpx.Chain(http.HandlerFunc(h.HandleComplete),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		SessionService: r.SessionService,
		SecureCookies:  r.SecureCookies,
	}

	// POST /login - strict rate limit by IP (credential endpoint)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /v1/auth/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			r.authn(),
			httpx.RateLimitByMember(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerMembers() {
	h := &MembersHandler{DirectoryService: r.DirectoryService}

	r.Mux.Handle("GET /v1/members",
		httpx.Chain(h,
			r.authn(),
			httpx.RateLimitByMember(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerReferrals() {
	h := &ReferralsHandler{ReferralService: r.ReferralService}

	r.Mux.Handle("POST /v1/referrals",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			r.authn(),
			httpx.RateLimitByMember(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/referrals",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.authn(),
			httpx.RateLimitByMember(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PATCH /v1/referrals/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdateStatus),
			r.authn(),
			httpx.RateLimitByMember(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerThanks() {
	h := &ThanksHandler{ThanksService: r.ThanksService}

	r.Mux.Handle("POST /v1/thanks",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			r.authn(),
			httpx.RateLimitByMember(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/thanks",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.authn(),
			httpx.RateLimitByMember(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerBootstrap() {
	// POST /bootstrap - very strict rate limit by IP (one-time setup endpoint)
	h := &BootstrapHandler{BootstrapService: r.BootstrapService}
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
