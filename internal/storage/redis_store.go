package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key 前缀
	roomKeyPrefix = "room:"

	// 房间数据过期时间
	roomExpiration = 2 * time.Hour
)

// RoomData 房间快照（用于 Redis 序列化）
type RoomData struct {
	Name         string       `json:"name"`
	Owner        string       `json:"owner"`
	IsPrivate    bool         `json:"is_private"`
	MaxPlayers   int          `json:"max_players"`
	Theme        string       `json:"theme,omitempty"`
	Players      []PlayerData `json:"players"`
	TurnOrder    []string     `json:"turn_order,omitempty"`
	PlayerInTurn string       `json:"player_in_turn,omitempty"`
	CurrentRound int          `json:"current_round"`
	TotalRounds  int          `json:"total_rounds"`
	MatchEnded   bool         `json:"match_ended"`
	CreatedAt    int64        `json:"created_at"`
}

// PlayerData 玩家快照
type PlayerData struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Avatar    string `json:"avatar,omitempty"`
	Points    int    `json:"points"`
	Connected bool   `json:"connected"`
}

// RedisStore Redis 存储
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 创建 Redis 存储
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// SaveRoom 保存房间快照到 Redis
func (rs *RedisStore) SaveRoom(ctx context.Context, data *RoomData) error {
	if data == nil {
		return nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("序列化房间数据失败: %w", err)
	}

	key := roomKeyPrefix + data.Name
	return rs.client.Set(ctx, key, jsonData, roomExpiration).Err()
}

// LoadRoom 从 Redis 读取房间快照，不存在时返回 nil
func (rs *RedisStore) LoadRoom(ctx context.Context, name string) (*RoomData, error) {
	key := roomKeyPrefix + name
	data, err := rs.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // 房间不存在
		}
		return nil, err
	}

	var roomData RoomData
	if err := json.Unmarshal(data, &roomData); err != nil {
		return nil, fmt.Errorf("反序列化房间数据失败: %w", err)
	}

	return &roomData, nil
}

// DeleteRoom 从 Redis 删除房间快照
func (rs *RedisStore) DeleteRoom(ctx context.Context, name string) error {
	key := roomKeyPrefix + name
	return rs.client.Del(ctx, key).Err()
}

// GetAllRoomNames 获取所有已镜像的房间名
func (rs *RedisStore) GetAllRoomNames(ctx context.Context) ([]string, error) {
	keys, err := rs.client.Keys(ctx, roomKeyPrefix+"*").Result()
	if err != nil {
		return nil, err
	}

	names := make([]string, len(keys))
	for i, key := range keys {
		names[i] = key[len(roomKeyPrefix):]
	}
	return names, nil
}
