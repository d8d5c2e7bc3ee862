package arena

import (
	"time"

	"rps-arena/internal/game"
)

type RoundResult struct {
	OpponentChoice game.Choice  `json:"opponent_choice"`
	Outcome        game.Outcome `json:"outcome"`
	Round          int          `json:"round"`
	Wins           int          `json:"wins"`
	GameOver       bool         `json:"game_over"`
}

type LeaderboardResponse struct {
	Items []LeaderboardItem `json:"items"`
}

type LeaderboardItem struct {
	PlayerName string    `json:"player_name"`
	Wins       int       `json:"wins"`
	PlayedAt   time.Time `json:"played_at"`
}
