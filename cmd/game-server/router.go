package main

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"rps-arena/internal/app/arena"
	"rps-arena/internal/captcha"
	"rps-arena/internal/config"
	"rps-arena/internal/store"
)

func newRouter(st *store.Store, cfg config.ServerConfig, svc *arena.Service, verifier *captcha.Verifier) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(apiLogMiddleware()).Get("/healthz", healthHandler(st))

	r.Route("/api", func(r chi.Router) {
		r.Use(apiLogMiddleware())
		r.Get("/leaderboard", leaderboardHandler(svc))
		r.Post("/games", startGameHandler(svc, verifier, cfg))
		r.Post("/games/moves", playRoundHandler(svc, cfg))
		r.Post("/games/reset", resetGameHandler(svc, cfg))
	})

	return r
}
