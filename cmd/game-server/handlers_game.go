package main

import (
	"net"
	"net/http"

	"rps-arena/internal/app/arena"
	"rps-arena/internal/captcha"
	"rps-arena/internal/config"
)

type startGameRequest struct {
	PlayerName   string `json:"player_name"`
	CaptchaToken string `json:"captcha_token"`
}

type playRoundRequest struct {
	PlayerName string `json:"player_name"`
	UserChoice string `json:"user_choice"`
}

type resetGameRequest struct {
	PlayerName string `json:"player_name"`
}

func startGameHandler(svc *arena.Service, verifier *captcha.Verifier, cfg config.ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req startGameRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		ip := clientIP(r)
		if err := verifier.Verify(r.Context(), req.CaptchaToken, ip); err != nil {
			writeArenaError(w, err)
			return
		}
		token := clientID(w, r, cfg.JWTSecret)
		if err := svc.StartNewGame(r.Context(), token, req.PlayerName, ip); err != nil {
			writeArenaError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"message": "Game started"})
	}
}

func playRoundHandler(svc *arena.Service, cfg config.ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req playRoundRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		token := clientID(w, r, cfg.JWTSecret)
		result, err := svc.PlayRound(r.Context(), token, req.PlayerName, req.UserChoice)
		if err != nil {
			writeArenaError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func resetGameHandler(svc *arena.Service, cfg config.ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req resetGameRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		token := clientID(w, r, cfg.JWTSecret)
		svc.ResetGame(token)
		writeJSON(w, http.StatusOK, map[string]any{"message": "Game reset"})
	}
}

// clientIP trusts RealIP middleware having already rewritten RemoteAddr
// from X-Forwarded-For / X-Real-IP when present.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
