package store

import (
	"context"
	"time"
)

func (s *Store) InsertRound(ctx context.Context, gameID, playerName, userChoice, opponentChoice, outcome string) error {
	_, err := s.Pool.Exec(ctx,
		`INSERT INTO rounds (id, game_id, player_name, user_choice, opponent_choice, outcome) VALUES ($1,$2,$3,$4,$5,$6)`,
		NewID(), gameID, playerName, userChoice, opponentChoice, outcome)
	return err
}

// CountRoundsSince counts the game's persisted rounds newer than since. Used
// by the move-frequency gate.
func (s *Store) CountRoundsSince(ctx context.Context, gameID, playerName string, since time.Time) (int, error) {
	row := s.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM rounds WHERE game_id = $1 AND player_name = $2 AND played_at > $3`,
		gameID, playerName, since)
	var c int
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

// RecentChoices returns the player's last choices for the game, newest first.
func (s *Store) RecentChoices(ctx context.Context, gameID, playerName string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.Pool.Query(ctx,
		`SELECT user_choice FROM rounds WHERE game_id = $1 AND player_name = $2 ORDER BY played_at DESC LIMIT $3`,
		gameID, playerName, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
