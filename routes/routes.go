package routes

import (
	"net/http"

	_ "github.com/Dosada05/swiss-tournament/docs" // swagger spec registration
	"github.com/Dosada05/swiss-tournament/handlers"
	"github.com/Dosada05/swiss-tournament/middleware"
	"github.com/Dosada05/swiss-tournament/models"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Player    *handlers.PlayerHandler
	Match     *handlers.MatchHandler
	Standings *handlers.StandingsHandler
	Dashboard *handlers.DashboardHandler
	WebSocket *handlers.WebSocketHandler
	Metrics   http.Handler
}

type Options struct {
	JWTSecret      []byte
	AllowedOrigins []string
}

func SetupRoutes(router chi.Router, h Handlers, opts Options) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Post("/auth/login", h.Auth.Login)

	// Публичные маршруты для просмотра турнира
	router.Get("/players/count", h.Player.Count)
	router.Get("/standings", h.Standings.Standings)
	router.Get("/pairings", h.Standings.Pairings)
	router.Get("/stats", h.Dashboard.Stats)
	router.Get("/ws", h.WebSocket.ServeWs)

	// Защищенные маршруты только для директора турнира
	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(opts.JWTSecret))
		r.Use(middleware.Authorize(models.RoleDirector))

		r.Post("/players", h.Player.Register)
		r.Delete("/players", h.Player.DeleteAll)
		r.Post("/matches", h.Match.Report)
		r.Delete("/matches", h.Match.DeleteAll)
		r.Post("/standings/publish", h.Standings.Publish)
	})

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	if h.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.Metrics)
	}
}
