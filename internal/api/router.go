package api

import (
	_ "github.com/igdimer/currency-converter/docs"
	authhandler "github.com/igdimer/currency-converter/internal/auth/handler"
	currencyhandler "github.com/igdimer/currency-converter/internal/currency/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(currencyHandler *currencyhandler.Handler, authHandler *authhandler.Handler, authService Authenticator) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/users/signup", authHandler.Signup)
		r.Post("/users/login", authHandler.Login)
		r.Post("/users/refresh_token", authHandler.RefreshToken)

		r.Get("/rate", currencyHandler.GetRate)

		r.Group(func(protected chi.Router) {
			protected.Use(AuthMiddleware(authService))
			protected.Post("/favorite_rates", currencyHandler.AddFavorites)
			protected.Get("/favorite_rates", currencyHandler.GetFavorites)
			protected.Delete("/favorite_rates", currencyHandler.DeleteFavorites)
		})
	})
	return router
}
