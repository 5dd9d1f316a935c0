package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key
	playerStatsKey = "player:stats:"
	scoreboardKey  = "scoreboard:points"
)

// PlayerStats 玩家的跨场次统计数据
type PlayerStats struct {
	Username string `json:"username"`

	MatchesPlayed int `json:"matches_played"` // 总场次
	Wins          int `json:"wins"`           // 第一名次数
	TotalPoints   int `json:"total_points"`   // 累计积分

	LastPlayedAt int64 `json:"last_played_at"` // 最后游戏时间
	CreatedAt    int64 `json:"created_at"`     // 首次游戏时间
}

// ScoreboardEntry 总积分榜条目
type ScoreboardEntry struct {
	Rank        int    `json:"rank"`
	Username    string `json:"username"`
	TotalPoints int    `json:"total_points"`
}

// Scoreboard 跨场次积分榜
type Scoreboard struct {
	redis *redis.Client
}

// NewScoreboard 创建积分榜
func NewScoreboard(client *redis.Client) *Scoreboard {
	return &Scoreboard{redis: client}
}

// GetPlayerStats 获取玩家统计，没有记录时返回 nil
func (sb *Scoreboard) GetPlayerStats(ctx context.Context, username string) (*PlayerStats, error) {
	key := playerStatsKey + username
	data, err := sb.redis.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// RecordMatchResult 记录一名玩家的单场结果并累加总积分榜
func (sb *Scoreboard) RecordMatchResult(ctx context.Context, username string, points int, won bool) error {
	stats, err := sb.GetPlayerStats(ctx, username)
	if err != nil {
		return err
	}

	now := time.Now().Unix()
	if stats == nil {
		stats = &PlayerStats{
			Username:  username,
			CreatedAt: now,
		}
	}

	stats.MatchesPlayed++
	stats.TotalPoints += points
	if won {
		stats.Wins++
	}
	stats.LastPlayedAt = now

	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	pipe := sb.redis.Pipeline()
	pipe.Set(ctx, playerStatsKey+username, data, 0)
	pipe.ZIncrBy(ctx, scoreboardKey, float64(points), username)
	_, err = pipe.Exec(ctx)
	return err
}

// GetTopPlayers 返回总积分榜前 limit 名
func (sb *Scoreboard) GetTopPlayers(ctx context.Context, limit int) ([]ScoreboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	members, err := sb.redis.ZRevRangeWithScores(ctx, scoreboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]ScoreboardEntry, 0, len(members))
	for i, m := range members {
		username, _ := m.Member.(string)
		entries = append(entries, ScoreboardEntry{
			Rank:        i + 1,
			Username:    username,
			TotalPoints: int(m.Score),
		})
	}
	return entries, nil
}

// GetPlayerRank 返回玩家在总积分榜上的名次（从 1 开始），无记录时返回 0
func (sb *Scoreboard) GetPlayerRank(ctx context.Context, username string) (int64, error) {
	rank, err := sb.redis.ZRevRank(ctx, scoreboardKey, username).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return rank + 1, nil
}
