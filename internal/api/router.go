package api

import (
	"net/http"
	"time"

	"dsa_tracker/internal/api/handler"
	"dsa_tracker/internal/api/middleware"
	"dsa_tracker/internal/app/service"
	"dsa_tracker/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
	"github.com/rs/zerolog"
)

type Services struct {
	Auth          *service.AuthService
	Questions     *service.QuestionService
	Contests      *service.ContestService
	Sheets        *service.SheetService
	Overview      *service.OverviewService
	Notifications *service.NotificationService
}

type RouterOptions struct {
	Tokens      *security.TokenIssuer
	AuthEnabled bool
	Limiter     *middleware.IPRateLimiter // nil disables rate limiting
	Logger      zerolog.Logger
}

func NewRouter(svc Services, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	if opts.Limiter != nil {
		r.Use(middleware.RateLimit(opts.Limiter, opts.Logger))
	}
	// Puts the bearer token, if any, in the request context.
	r.Use(jwtauth.Verifier(opts.Tokens.Auth))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	owner := handler.Middleware(middleware.RequireOwner(opts.AuthEnabled))

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Route("/auth", handler.NewAuthHandler(svc.Auth).RegisterRoutes)
		v1.Route("/overview", handler.NewOverviewHandler(svc.Overview).RegisterRoutes)
		v1.Route("/questions", handler.NewQuestionHandler(svc.Questions, owner).RegisterRoutes)
		v1.Route("/sheets", handler.NewSheetHandler(svc.Sheets, owner).RegisterRoutes)
		v1.Route("/contests", handler.NewContestHandler(svc.Contests, owner).RegisterRoutes)
		v1.Route("/notifications", handler.NewNotificationHandler(svc.Notifications).RegisterRoutes)
	})

	return r
}
