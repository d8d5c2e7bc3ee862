package store

import "context"

func (s *Store) InsertScore(ctx context.Context, playerName string, wins int) error {
	_, err := s.Pool.Exec(ctx,
		`INSERT INTO leaderboard (id, player_name, wins) VALUES ($1,$2,$3)`,
		NewID(), playerName, wins)
	return err
}

// TopScores lists finalized scores, best first; equal scores rank the earlier
// finish higher.
func (s *Store) TopScores(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.Pool.Query(ctx,
		`SELECT player_name, wins, played_at FROM leaderboard ORDER BY wins DESC, played_at ASC LIMIT $1`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []LeaderboardEntry{}
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.PlayerName, &e.Wins, &e.PlayedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
