//go:build !production

package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/palemoky/draw-and-guess/internal/storage"
)

// MockScoreboard 积分榜 mock
type MockScoreboard struct {
	mock.Mock
}

func (m *MockScoreboard) RecordMatchResult(ctx context.Context, username string, points int, won bool) error {
	args := m.Called(ctx, username, points, won)
	return args.Error(0)
}

func (m *MockScoreboard) GetPlayerStats(ctx context.Context, username string) (*storage.PlayerStats, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.PlayerStats), args.Error(1)
}

func (m *MockScoreboard) GetTopPlayers(ctx context.Context, limit int) ([]storage.ScoreboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.ScoreboardEntry), args.Error(1)
}

func (m *MockScoreboard) GetPlayerRank(ctx context.Context, username string) (int64, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(int64), args.Error(1)
}
