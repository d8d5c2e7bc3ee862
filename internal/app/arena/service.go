package arena

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"rps-arena/internal/config"
	"rps-arena/internal/game"
	"rps-arena/internal/session"
	"rps-arena/internal/store"
)

// A game ends after this many non-draw rounds.
const gameRounds = 10

const leaderboardSize = 20

// Store is the slice of the persistence layer the service needs. *store.Store
// satisfies it; tests plug in memory fakes.
type Store interface {
	InsertRound(ctx context.Context, gameID, playerName, userChoice, opponentChoice, outcome string) error
	CountRoundsSince(ctx context.Context, gameID, playerName string, since time.Time) (int, error)
	RecentChoices(ctx context.Context, gameID, playerName string, limit int) ([]string, error)
	InsertScore(ctx context.Context, playerName string, wins int) error
	TopScores(ctx context.Context, limit int) ([]store.LeaderboardEntry, error)
	InsertIPStart(ctx context.Context, ip string) error
	CountIPStartsSince(ctx context.Context, ip string, since time.Time) (int, error)
}

// Limits carries the abuse-mitigation thresholds. Three independent gates at
// different time scales: a 1s cooldown against bursts, a 10s frequency window
// against sustained rates, a 60s per-IP window against start spam.
type Limits struct {
	MoveCooldown   time.Duration
	MoveWindow     time.Duration
	MoveWindowMax  int
	StartWindow    time.Duration
	StartWindowMax int
}

func LimitsFromConfig(cfg config.ServerConfig) Limits {
	return Limits{
		MoveCooldown:   cfg.MoveCooldown,
		MoveWindow:     cfg.MoveWindow,
		MoveWindowMax:  cfg.MoveWindowMax,
		StartWindow:    cfg.StartWindow,
		StartWindowMax: cfg.StartWindowMax,
	}
}

type Service struct {
	store    Store
	sessions *session.Manager
	opponent *game.Opponent
	limits   Limits
	now      func() time.Time
}

func NewService(st Store, sessions *session.Manager, limits Limits) *Service {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Service{
		store:    st,
		sessions: sessions,
		opponent: game.NewOpponent(&historySource{rounds: st}, rng),
		limits:   limits,
		now:      time.Now,
	}
}

// StartNewGame opens a session for the token after the per-IP start throttle
// and the single-active-game check pass.
func (s *Service) StartNewGame(ctx context.Context, token, playerName, ip string) error {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return ErrEmptyName
	}

	count, err := s.store.CountIPStartsSince(ctx, ip, s.now().Add(-s.limits.StartWindow))
	if err != nil {
		log.Error().Err(err).Msg("ip start count failed")
		return ErrStoreFailure
	}
	if count >= s.limits.StartWindowMax {
		return ErrTooManyStarts
	}

	gameID := store.NewID()
	if _, err := s.sessions.StartNew(token, gameID, playerName); err != nil {
		if errors.Is(err, session.ErrConflict) {
			return ErrSessionConflict
		}
		return err
	}
	if err := s.store.InsertIPStart(ctx, ip); err != nil {
		// keep session creation and throttle log consistent
		s.sessions.Reset(token)
		log.Error().Err(err).Msg("ip start insert failed")
		return ErrStoreFailure
	}
	log.Info().Str("game_id", gameID).Str("player", playerName).Msg("game started")
	return nil
}

// PlayRound resolves one move. Draws change nothing and are never persisted;
// the tenth non-draw round finalizes the game.
func (s *Service) PlayRound(ctx context.Context, token, playerName, userChoice string) (*RoundResult, error) {
	choice, err := game.ParseChoice(userChoice)
	if err != nil {
		return nil, ErrInvalidChoice
	}

	sess, ok := s.sessions.Resolve(token)
	if !ok || sess.PlayerName != playerName {
		return nil, ErrInvalidSession
	}

	// Cooldown gate. The stamp lands as soon as the gate passes, before the
	// round resolves, so a rejected frequency check still arms the cooldown.
	now := s.now()
	err = s.sessions.Update(token, func(ss *session.Session) error {
		if ss.HasMoved() && now.Sub(ss.LastMoveTime) < s.limits.MoveCooldown {
			return ErrTooFast
		}
		ss.LastMoveTime = now
		return nil
	})
	if errors.Is(err, session.ErrNoSession) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, err
	}

	moves, err := s.store.CountRoundsSince(ctx, sess.GameID, playerName, now.Add(-s.limits.MoveWindow))
	if err != nil {
		log.Error().Err(err).Msg("move frequency count failed")
		return nil, ErrStoreFailure
	}
	if moves >= s.limits.MoveWindowMax {
		return nil, ErrTooManyMoves
	}

	opponentChoice, err := s.opponent.ChooseMove(ctx, sess.GameID, playerName)
	if err != nil {
		log.Error().Err(err).Msg("opponent history fetch failed")
		return nil, ErrStoreFailure
	}

	outcome := game.Resolve(choice, opponentChoice)
	if outcome == game.OutcomeDraw {
		return &RoundResult{
			OpponentChoice: opponentChoice,
			Outcome:        outcome,
			Round:          sess.Round,
			Wins:           sess.Wins,
		}, nil
	}

	if err := s.store.InsertRound(ctx, sess.GameID, playerName, string(choice), string(opponentChoice), string(outcome)); err != nil {
		log.Error().Err(err).Msg("round insert failed")
		return nil, ErrStoreFailure
	}

	round := sess.Round + 1
	wins := sess.Wins
	if outcome == game.OutcomeWin {
		wins++
	}

	if round >= gameRounds {
		// The score must be durable before the session dies or the caller
		// hears game_over; otherwise the session keeps its old counters and
		// the move can be retried.
		if err := s.store.InsertScore(ctx, playerName, wins); err != nil {
			log.Error().Err(err).Msg("leaderboard insert failed")
			return nil, ErrStoreFailure
		}
		s.sessions.Reset(token)
		log.Info().Str("game_id", sess.GameID).Str("player", playerName).Int("wins", wins).Msg("game finalized")
		return &RoundResult{
			OpponentChoice: opponentChoice,
			Outcome:        outcome,
			Round:          round,
			Wins:           wins,
			GameOver:       true,
		}, nil
	}

	err = s.sessions.Update(token, func(ss *session.Session) error {
		ss.Round = round
		ss.Wins = wins
		return nil
	})
	if errors.Is(err, session.ErrNoSession) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, err
	}

	return &RoundResult{
		OpponentChoice: opponentChoice,
		Outcome:        outcome,
		Round:          round,
		Wins:           wins,
	}, nil
}

// ResetGame tears the session down unconditionally. Absent sessions are fine.
func (s *Service) ResetGame(token string) {
	s.sessions.Reset(token)
}

func (s *Service) Leaderboard(ctx context.Context) (*LeaderboardResponse, error) {
	entries, err := s.store.TopScores(ctx, leaderboardSize)
	if err != nil {
		log.Error().Err(err).Msg("leaderboard read failed")
		return nil, ErrStoreFailure
	}
	items := make([]LeaderboardItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, LeaderboardItem{
			PlayerName: e.PlayerName,
			Wins:       e.Wins,
			PlayedAt:   e.PlayedAt,
		})
	}
	return &LeaderboardResponse{Items: items}, nil
}

// historySource adapts the store's string rows to the opponent's typed view.
type historySource struct {
	rounds Store
}

func (h *historySource) RecentChoices(ctx context.Context, gameID, playerName string, limit int) ([]game.Choice, error) {
	raw, err := h.rounds.RecentChoices(ctx, gameID, playerName, limit)
	if err != nil {
		return nil, err
	}
	out := make([]game.Choice, 0, len(raw))
	for _, r := range raw {
		c, err := game.ParseChoice(r)
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}
