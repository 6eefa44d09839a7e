package score

import (
	"context"
	"log"
	"time"

	"github.com/twisterdot/leaderboard/internal/apperrors"
)

const (
	DefaultLimit   = 10
	storageTimeout = 3 * time.Second
)

// Notifier pushes a fresh leaderboard to live subscribers. Implemented by the
// websocket hub; delivery is best-effort.
type Notifier interface {
	BroadcastLeaderboard(entries []LeaderboardEntry)
}

type ScoreService struct {
	repo     Repository
	cache    LeaderboardCache
	notifier Notifier
}

func NewScoreService(repo Repository, cache LeaderboardCache, notifier Notifier) *ScoreService {
	return &ScoreService{repo: repo, cache: cache, notifier: notifier}
}

// SubmitScore appends one record for the account identified by the verified
// token. The caller must never pass an identity taken from the request body.
func (s *ScoreService) SubmitScore(ctx context.Context, userID uint, points *int) error {
	if points == nil || *points < 0 {
		return apperrors.InvalidInput("score must be a non-negative integer")
	}

	storeCtx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	if err := s.repo.AppendScore(storeCtx, userID, *points); err != nil {
		return err
	}

	s.cache.Invalidate(ctx)
	s.refreshSubscribers(ctx)
	return nil
}

func (s *ScoreService) GetLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}

	if entries, ok := s.cache.Get(ctx); ok {
		return truncate(entries, limit), nil
	}

	storeCtx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	entries, err := s.repo.TopScores(storeCtx, DefaultLimit)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, entries)
	return truncate(entries, limit), nil
}

// refreshSubscribers recomputes the top list after an accepted submission and
// fans it out. Failures are logged, never surfaced to the submitter.
func (s *ScoreService) refreshSubscribers(ctx context.Context) {
	if s.notifier == nil {
		return
	}

	storeCtx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	entries, err := s.repo.TopScores(storeCtx, DefaultLimit)
	if err != nil {
		log.Println("Error refreshing leaderboard for subscribers:", err)
		return
	}

	s.cache.Set(ctx, entries)
	s.notifier.BroadcastLeaderboard(entries)
}

func truncate(entries []LeaderboardEntry, limit int) []LeaderboardEntry {
	if len(entries) > limit {
		return entries[:limit]
	}
	return entries
}
