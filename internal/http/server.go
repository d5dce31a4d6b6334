package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"roomdesk-backend-go/internal/config"
	"roomdesk-backend-go/internal/services"
	"roomdesk-backend-go/internal/store"
)

type Server struct {
	Store      store.Store
	Config     config.Config
	Tokens     services.TokenService
	SignageHub *services.SignageHub
}

func NewServer(st store.Store, cfg config.Config, hub *services.SignageHub) *Server {
	tokens := services.TokenService{
		Secret:    []byte(cfg.JWTSecret),
		Issuer:    cfg.JWTIssuer,
		AccessTTL: time.Duration(cfg.AccessTTLSeconds) * time.Second,
	}
	return &Server{
		Store:      st,
		Config:     cfg,
		Tokens:     tokens,
		SignageHub: hub,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Post("/login", s.Login)

		api.Route("/rooms", func(rooms chi.Router) {
			rooms.Get("/", s.ListRooms)
			rooms.Post("/", s.CreateRoom)
			rooms.Get("/{roomID}", s.GetRoom)
			rooms.Put("/{roomID}", s.UpdateRoom)
			rooms.Delete("/{roomID}", s.DeleteRoom)
		})

		api.Route("/bookings", func(bookings chi.Router) {
			bookings.Get("/", s.ListBookings)
			bookings.Get("/active", s.ListActiveBookings)
			bookings.Post("/", s.CreateBooking)
			bookings.Put("/{bookingID}", s.UpdateBooking)
			bookings.Patch("/{bookingID}/status", s.UpdateBookingStatus)
		})

		api.Route("/ads", func(ads chi.Router) {
			ads.Get("/", s.ListAds)
			ads.Post("/", s.CreateAd)
			ads.Delete("/{adID}", s.DeleteAd)
		})

		api.Route("/settings", func(settings chi.Router) {
			settings.Get("/running-text", s.GetRunningText)
			settings.Post("/running-text", s.SetRunningText)
		})

		api.Get("/reports", s.Reports)

		api.Route("/users", func(users chi.Router) {
			users.Get("/", s.ListUsers)
			users.Post("/", s.CreateUser)
			users.Delete("/{userID}", s.DeleteUser)
		})

		api.Post("/upload", s.Upload)

		api.With(WithAuth(s.Tokens), RequireAnyRole("admin", "super_admin")).
			Get("/metrics/history", s.MetricsHistory)
	})

	r.Get("/ws/signage", s.SignageSocket)
	r.Handle("/uploads/*", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(s.Config.UploadStoragePath))))
	return r
}
