package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/skisyula/jobify-be/internal/api/handlers"
	"github.com/skisyula/jobify-be/internal/auth"
	"github.com/skisyula/jobify-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	userService services.UserServiceProvider,
	jobService services.JobServiceProvider,
	tokenService *auth.TokenService,
	corsOrigin string,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Unknown routes and wrong methods answer JSON like everything else.
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeMsg(w, http.StatusNotFound, "Route does not exist")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeMsg(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, tokenService)
	jobHandler := handlers.NewJobHandler(jobService)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeMsg(w, http.StatusOK, "Welcome to the Job Board")
	})

	// API versioning
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.Authenticator(tokenService))
				r.Patch("/updateUser", authHandler.Update)
			})
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Use(auth.Authenticator(tokenService))
			r.Get("/", jobHandler.GetAll)
			r.Post("/", jobHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Patch("/", jobHandler.Update)
				r.Delete("/", jobHandler.Delete)
			})
		})
	})

	return r
}

func writeMsg(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"msg": msg})
}
