package rest

import (
	"context"
	"net/http"

	core_port "listing-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// mutationRoles are the roles allowed to create and modify listings.
var mutationRoles = []string{
	core_port.RoleAgent,
	core_port.RoleAgency,
	core_port.RoleBuilder,
	core_port.RoleDeveloper,
	core_port.RoleAdmin,
}

func NewServer(port string,
	listingsHandler *ListingsHandler,
	sessionHandler *SessionHandler,
	viewsHandler *ViewsHandler,
	authMiddleware *AuthMiddleware,
	allowedOrigins []string,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Session-ID", "X-Trace-ID"},
		AllowCredentials: true,
	}))
	r.Use(LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		// Public catalogue and derived views.
		r.Get("/listings", listingsHandler.FindListings)
		r.Get("/listings/{listingID}", listingsHandler.GetListing)
		r.Get("/companies/{companySlug}/listings", viewsHandler.CompanyListings)
		r.Get("/map/pins", viewsHandler.MapPins)

		// Per-session filter state.
		r.Get("/session/filters", sessionHandler.GetFilters)
		r.Put("/session/filters", sessionHandler.ReplaceFilters)
		r.Delete("/session/filters/{field}", sessionHandler.ClearFilter)
		r.Get("/session/listings", sessionHandler.SessionListings)

		// Mutations require a professional role.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(authMiddleware.RequireAnyRole(mutationRoles...))

			r.Post("/listings", listingsHandler.AddListing)
			r.Put("/listings/{listingID}", listingsHandler.UpdateListing)
			r.Post("/listings/{listingID}/agents", listingsHandler.AttachAgent)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
