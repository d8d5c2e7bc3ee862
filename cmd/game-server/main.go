package main

import (
	"context"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"rps-arena/internal/app/arena"
	"rps-arena/internal/captcha"
	"rps-arena/internal/config"
	"rps-arena/internal/logging"
	"rps-arena/internal/session"
	"rps-arena/internal/store"
)

func main() {
	_ = godotenv.Load()

	appCfg, err := config.LoadApp()
	if err != nil {
		panic(err)
	}
	logging.Init(appCfg.Log)
	cfg := appCfg.Server

	ctx := context.Background()
	st, err := store.New(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("store init failed")
	}
	if err := st.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("db ping failed")
	}
	if err := st.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensure schema failed")
	}

	sessions := session.NewManager(cfg.SessionInactivityTimeout)
	sessions.StartJanitor(ctx, time.Minute)

	svc := arena.NewService(st, sessions, arena.LimitsFromConfig(cfg))
	verifier := captcha.NewVerifier(cfg.CaptchaVerifyURL, cfg.CaptchaSecret, cfg.CaptchaMinScore)
	if !verifier.Enabled() {
		log.Warn().Msg("captcha verification disabled: no secret configured")
	}

	sched, err := startPurgeScheduler(st)
	if err != nil {
		log.Fatal().Err(err).Msg("purge scheduler failed")
	}
	defer func() { _ = sched.Shutdown() }()

	r := newRouter(st, cfg, svc, verifier)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Info().Str("addr", cfg.HTTPAddr).Msg("http listening")
	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}
