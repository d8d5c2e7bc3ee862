package session

import "time"

// Session binds one client token to one in-progress game. All fields are
// owned by the Manager; callers receive copies.
type Session struct {
	GameID       string
	PlayerName   string
	Round        int
	Wins         int
	LastActivity time.Time
	LastMoveTime time.Time // zero until the first accepted move
}

func (s *Session) HasMoved() bool {
	return !s.LastMoveTime.IsZero()
}
