package store

import "context"

// Round records, leaderboard rows and ip-start rows are append-only; nothing
// updates them after insert.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS rounds (
	id TEXT PRIMARY KEY,
	game_id TEXT NOT NULL,
	player_name TEXT NOT NULL,
	user_choice TEXT NOT NULL,
	opponent_choice TEXT NOT NULL,
	outcome TEXT NOT NULL,
	played_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS rounds_game_player_played_at
	ON rounds (game_id, player_name, played_at DESC);

CREATE TABLE IF NOT EXISTS leaderboard (
	id TEXT PRIMARY KEY,
	player_name TEXT NOT NULL,
	wins INT NOT NULL,
	played_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS leaderboard_rank
	ON leaderboard (wins DESC, played_at ASC);

CREATE TABLE IF NOT EXISTS ip_game_starts (
	id TEXT PRIMARY KEY,
	ip TEXT NOT NULL,
	started_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ip_game_starts_ip_started_at
	ON ip_game_starts (ip, started_at);
`

// EnsureSchema creates the three tables on startup if they are missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.Pool.Exec(ctx, schemaDDL)
	return err
}
