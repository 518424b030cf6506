package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/tuiterhq/tuiter/internal/tuiter/service"
	"github.com/tuiterhq/tuiter/internal/tuiter/store"
	"github.com/tuiterhq/tuiter/pkg/httpx"
	"github.com/tuiterhq/tuiter/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers. Services are wired in
// by the app at startup; there is no global registry.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AuthService     *service.AuthService
	UserService     *service.UserService
	TuitService     *service.TuitService
	FollowService   *service.FollowService
	BookmarkService *service.BookmarkService
	MessageService  *service.MessageService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerTuits()
	r.registerFollows()
	r.registerBookmarks()
	r.registerMessages()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Rate limits are generous on purpose: the auth flow does not model
	// lockout or attempt counting, only infrastructure-level abuse control.
	r.Mux.Handle("POST /auth/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignup),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /auth/profile",
		httpx.Chain(http.HandlerFunc(h.HandleProfile),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle("GET /api/users",
		httpx.Chain(http.HandlerFunc(h.HandleList), httpx.RateLimitByIP(httpx.PublicLimit)))
	r.Mux.Handle("GET /api/users/{uid}",
		httpx.Chain(http.HandlerFunc(h.HandleGet), httpx.RateLimitByIP(httpx.PublicLimit)))
	r.Mux.Handle("POST /api/users",
		httpx.Chain(http.HandlerFunc(h.HandleCreate), httpx.RateLimitByIP(httpx.ModerateLimit)))
	r.Mux.Handle("PUT /api/users/{uid}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate), httpx.RateLimitByIP(httpx.ModerateLimit)))
	r.Mux.Handle("DELETE /api/users/{uid}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete), httpx.RateLimitByIP(httpx.ModerateLimit)))
}

func (r *Router) registerTuits() {
	h := &TuitsHandler{
		TuitService: r.TuitService,
		AuthService: r.AuthService,
	}

	r.Mux.Handle("POST /api/tuits",
		httpx.Chain(http.HandlerFunc(h.HandleCreate), httpx.RateLimitByIP(httpx.ModerateLimit)))
	r.Mux.Handle("POST /api/users/{uid}/tuits",
		httpx.Chain(http.HandlerFunc(h.HandleCreateByUser), httpx.RateLimitByIP(httpx.ModerateLimit)))
	r.Mux.Handle("GET /api/tuits",
		httpx.Chain(http.HandlerFunc(h.HandleList), httpx.RateLimitByIP(httpx.PublicLimit)))
	r.Mux.Handle("GET /api/tuits/{tid}",
		httpx.Chain(http.HandlerFunc(h.HandleGet), httpx.RateLimitByIP(httpx.PublicLimit)))
	r.Mux.Handle("GET /api/users/{uid}/tuits",
		httpx.Chain(http.HandlerFunc(h.HandleListByUser), httpx.RateLimitByIP(httpx.PublicLimit)))
	r.Mux.Handle("PUT /api/tuits/{tid}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate), httpx.RateLimitByIP(httpx.ModerateLimit)))
	r.Mux.Handle("DELETE /api/tuits/{tid}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete), httpx.RateLimitByIP(httpx.ModerateLimit)))
}

func (r *Router) registerFollows() {
	h := &FollowsHandler{FollowService: r.FollowService}

	// Followers live under the {uid} segment rather than the original's
	// /api/users/follows/{uid}: a literal in the second segment is ambiguous
	// against the /api/users/{uid}/... family for ServeMux, which rejects
	// patterns where neither is more specific.
	r.Mux.Handle("GET /api/users/{uid}/follows",
		httpx.Chain(http.HandlerFunc(h.HandleListFollowing), httpx.RateLimitByIP(httpx.PublicLimit)))
	r.Mux.Handle("GET /api/users/{uid}/followers",
		httpx.Chain(http.HandlerFunc(h.HandleListFollowers), httpx.RateLimitByIP(httpx.PublicLimit)))
	r.Mux.Handle("POST /api/users/{uid}/follows/{uidf}",
		httpx.Chain(http.HandlerFunc(h.HandleFollow), httpx.RateLimitByIP(httpx.ModerateLimit)))
	r.Mux.Handle("DELETE /api/users/{uid}/unfollows/{uidf}",
		httpx.Chain(http.HandlerFunc(h.HandleUnfollow), httpx.RateLimitByIP(httpx.ModerateLimit)))
}

func (r *Router) registerBookmarks() {
	h := &BookmarksHandler{BookmarkService: r.BookmarkService}

	r.Mux.Handle("GET /api/users/{uid}/bookmarks",
		httpx.Chain(http.HandlerFunc(h.HandleListByUser), httpx.RateLimitByIP(httpx.PublicLimit)))
	r.Mux.Handle("GET /api/tuits/{tid}/bookmarks",
		httpx.Chain(http.HandlerFunc(h.HandleListByTuit), httpx.RateLimitByIP(httpx.PublicLimit)))
	r.Mux.Handle("GET /api/bookmarks",
		httpx.Chain(http.HandlerFunc(h.HandleListAll), httpx.RateLimitByIP(httpx.PublicLimit)))
	r.Mux.Handle("POST /api/users/{uid}/bookmarks/{tid}",
		httpx.Chain(http.HandlerFunc(h.HandleBookmark), httpx.RateLimitByIP(httpx.ModerateLimit)))
	r.Mux.Handle("DELETE /api/users/{uid}/unbookmark/{tid}",
		httpx.Chain(http.HandlerFunc(h.HandleUnbookmark), httpx.RateLimitByIP(httpx.ModerateLimit)))
}

func (r *Router) registerMessages() {
	h := &MessagesHandler{MessageService: r.MessageService}

	r.Mux.Handle("GET /api/users/{uid}/messages/sent",
		httpx.Chain(http.HandlerFunc(h.HandleListSent), httpx.RateLimitByIP(httpx.LenientLimit)))
	r.Mux.Handle("GET /api/users/{uid}/messages/received",
		httpx.Chain(http.HandlerFunc(h.HandleListReceived), httpx.RateLimitByIP(httpx.LenientLimit)))
	r.Mux.Handle("GET /api/messages",
		httpx.Chain(http.HandlerFunc(h.HandleListAll), httpx.RateLimitByIP(httpx.LenientLimit)))
	r.Mux.Handle("GET /api/users/{uid}/messages/sent/{uidf}",
		httpx.Chain(http.HandlerFunc(h.HandleListSentTo), httpx.RateLimitByIP(httpx.LenientLimit)))
	r.Mux.Handle("GET /api/users/{uid}/messages/received/{uidf}",
		httpx.Chain(http.HandlerFunc(h.HandleListReceivedFrom), httpx.RateLimitByIP(httpx.LenientLimit)))
	r.Mux.Handle("POST /api/users/{uid}/messages/{uidf}",
		httpx.Chain(http.HandlerFunc(h.HandleSend), httpx.RateLimitByIP(httpx.ModerateLimit)))
	r.Mux.Handle("DELETE /api/messages/{mid}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete), httpx.RateLimitByIP(httpx.ModerateLimit)))
}

func (r *Router) registerSystem() {
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
