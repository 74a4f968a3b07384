package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"overlysocial/internal/config"
	"overlysocial/internal/service"
	"overlysocial/internal/transport/rest/handler"
	"overlysocial/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router.
type Container struct {
	Config     *config.Config
	SessionSvc *service.SessionService
	TokenSvc   *service.TokenService
}

// NewRouter creates the API router with all endpoints.
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	assessmentHandler := handler.NewAssessmentHandler(c.SessionSvc, c.TokenSvc)
	catalogHandler := handler.NewCatalogHandler(c.SessionSvc.Questions())

	// Initialize middleware
	sessionMW := middleware.NewSessionMiddleware(c.TokenSvc)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.Config))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/questions", catalogHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/assessments", assessmentHandler.Create).Methods("POST", "OPTIONS")

	// Session routes (require session token)
	sessionRoutes := v1.NewRoute().Subrouter()
	sessionRoutes.Use(sessionMW.RequireSession)

	sessionRoutes.HandleFunc("/assessments/current", assessmentHandler.Get).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/assessments/current/start", assessmentHandler.Start).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/assessments/current/answer", assessmentHandler.SelectAnswer).Methods("PUT", "OPTIONS")
	sessionRoutes.HandleFunc("/assessments/current/next", assessmentHandler.Next).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/assessments/current/previous", assessmentHandler.Previous).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/assessments/current/submit", assessmentHandler.Submit).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/assessments/current/restart", assessmentHandler.Restart).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(cfg *config.Config) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", cfg.CORSAllowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", cfg.CORSAllowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", cfg.CORSAllowedHeaders)

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
