package main

import (
	"encoding/json"
	"net/http"

	"rps-arena/internal/app/arena"
	"rps-arena/internal/store"
)

func healthHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			writeHTTPError(w, http.StatusServiceUnavailable, "store_unavailable")
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "ok"})
	}
}

func leaderboardHandler(svc *arena.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := svc.Leaderboard(r.Context())
		if err != nil {
			writeArenaError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}
