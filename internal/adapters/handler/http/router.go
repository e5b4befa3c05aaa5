package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/vncsmyrnk/barvote/internal/core/ports"
)

type Handlers struct {
	Auth  *AuthHandler
	User  *UserHandler
	Bar   *BarHandler
	Vote  *VoteHandler
	Visit *VisitHandler
}

type RouterOptions struct {
	AllowedOrigins    []string
	AuthRatePerMinute int
	RequestTimeout    time.Duration
	Tokens            ports.TokenVerifier
	Logger            *zap.Logger
}

func NewHandler(h Handlers, opts RouterOptions) http.Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(AccessLog(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	limiter := NewRateLimiter(opts.AuthRatePerMinute)
	requireAuth := Authenticate(opts.Tokens)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(limiter.Middleware).Post("/register", h.Auth.Register)
			r.With(limiter.Middleware).Post("/login", h.Auth.Login)
			r.With(requireAuth).Get("/me", h.User.GetMe)
			r.Post("/logout", h.Auth.Logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Route("/bars", func(r chi.Router) {
				r.Get("/", h.Bar.List)
				r.Post("/", h.Bar.Create)
				r.Get("/{id}", h.Bar.Get)
				r.Put("/{id}", h.Bar.Update)
				r.Delete("/{id}", h.Bar.Delete)
			})

			r.Route("/votes", func(r chi.Router) {
				r.Get("/current", h.Vote.Current)
				r.Get("/my-votes", h.Vote.MyVotes)
				r.Post("/", h.Vote.Cast)
				r.Delete("/{barId}", h.Vote.Retract)
			})

			r.Route("/visits", func(r chi.Router) {
				r.Get("/", h.Visit.List)
				r.Get("/range", h.Visit.ListByRange)
				r.Post("/", h.Visit.Record)
				r.Put("/{id}", h.Visit.UpdateNotes)
				r.Delete("/{id}", h.Visit.Delete)
			})
		})
	})

	return r
}
