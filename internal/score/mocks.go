package score

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockScoreRepository struct {
	mock.Mock
}

func (m *MockScoreRepository) AppendScore(ctx context.Context, userID uint, points int) error {
	args := m.Called(ctx, userID, points)
	return args.Error(0)
}

func (m *MockScoreRepository) TopScores(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]LeaderboardEntry), args.Error(1)
}

type MockLeaderboardCache struct {
	mock.Mock
}

func (m *MockLeaderboardCache) Get(ctx context.Context) ([]LeaderboardEntry, bool) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]LeaderboardEntry), args.Bool(1)
}

func (m *MockLeaderboardCache) Set(ctx context.Context, entries []LeaderboardEntry) {
	m.Called(ctx, entries)
}

func (m *MockLeaderboardCache) Invalidate(ctx context.Context) {
	m.Called(ctx)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) BroadcastLeaderboard(entries []LeaderboardEntry) {
	m.Called(entries)
}
