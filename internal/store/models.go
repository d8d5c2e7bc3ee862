package store

import "time"

type RoundRecord struct {
	ID             string
	GameID         string
	PlayerName     string
	UserChoice     string
	OpponentChoice string
	Outcome        string
	PlayedAt       time.Time
}

type LeaderboardEntry struct {
	PlayerName string
	Wins       int
	PlayedAt   time.Time
}

type IPStart struct {
	ID        string
	IP        string
	StartedAt time.Time
}
