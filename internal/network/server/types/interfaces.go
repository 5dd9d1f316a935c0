package types

import (
	"context"

	"github.com/palemoky/draw-and-guess/internal/game/room"
	"github.com/palemoky/draw-and-guess/internal/protocol"
	"github.com/palemoky/draw-and-guess/internal/storage"
)

// ServerContext 服务器上下文接口 - 避免循环依赖
type ServerContext interface {
	GetRegistry() *room.Registry
	GetScoreboard() ScoreboardInterface
	GetOnlineCount() int
	BroadcastToRoom(roomName string, msg *protocol.Message)
	GetClientByID(id string) ClientInterface
	GetClientByName(username string) ClientInterface
	UnregisterClient(id string)
}

// ScoreboardInterface 跨场次积分榜接口
type ScoreboardInterface interface {
	RecordMatchResult(ctx context.Context, username string, points int, won bool) error
	GetPlayerStats(ctx context.Context, username string) (*storage.PlayerStats, error)
	GetTopPlayers(ctx context.Context, limit int) ([]storage.ScoreboardEntry, error)
	GetPlayerRank(ctx context.Context, username string) (int64, error)
}

// ClientInterface 客户端接口
type ClientInterface interface {
	GetID() string
	GetName() string
	SetName(username string)
	GetRoom() string
	SetRoom(roomName string)
	GetColor() string
	SendMessage(msg *protocol.Message)
	Close()
}
