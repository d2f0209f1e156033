package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"piggybank/internal/http/family"
	"piggybank/internal/http/ledger"
	"piggybank/internal/http/payout"
	"piggybank/internal/http/saver"
)

func New(
	auth func(http.Handler) http.Handler,
	ledgerV1 *ledger.Handler,
	saversV1 *saver.Handler,
	payoutsV1 *payout.Handler,
	familiesV1 *family.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth)

		r.Route("/children", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			ledgerV1.Routes(r)
			saversV1.Routes(r)
		})

		r.Route("/payouts", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			payoutsV1.Routes(r)
		})

		r.Route("/families", familiesV1.FamilyRoutes)
		r.Route("/completions", familiesV1.CompletionRoutes)
	})

	return router
}
