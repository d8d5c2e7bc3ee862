package store

import (
	"context"
	"time"
)

func (s *Store) InsertIPStart(ctx context.Context, ip string) error {
	_, err := s.Pool.Exec(ctx,
		`INSERT INTO ip_game_starts (id, ip) VALUES ($1,$2)`, NewID(), ip)
	return err
}

func (s *Store) CountIPStartsSince(ctx context.Context, ip string, since time.Time) (int, error) {
	row := s.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM ip_game_starts WHERE ip = $1 AND started_at > $2`, ip, since)
	var c int
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

// PurgeIPStartsBefore drops throttle rows older than cutoff.
func (s *Store) PurgeIPStartsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.Pool.Exec(ctx,
		`DELETE FROM ip_game_starts WHERE started_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
