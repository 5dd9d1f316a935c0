//go:build !production

package testutil

import (
	"github.com/palemoky/draw-and-guess/internal/game/room"
	"github.com/palemoky/draw-and-guess/internal/network/server/types"
	"github.com/palemoky/draw-and-guess/internal/protocol"
)

// RoomMessage 一条按房间投递的广播记录
type RoomMessage struct {
	RoomName string
	Msg      *protocol.Message
}

// FakeServer 实现 types.ServerContext，持有真实注册表并记录广播
// 处理器测试用它代替完整的 WebSocket 服务器
type FakeServer struct {
	Registry   *room.Registry
	Scoreboard types.ScoreboardInterface
	Clients    map[string]types.ClientInterface
	Broadcasts []RoomMessage
}

// NewFakeServer 创建测试服务器
func NewFakeServer(reg *room.Registry) *FakeServer {
	return &FakeServer{
		Registry: reg,
		Clients:  make(map[string]types.ClientInterface),
	}
}

// AddClient 注册一个测试客户端
func (s *FakeServer) AddClient(client types.ClientInterface) {
	s.Clients[client.GetID()] = client
}

func (s *FakeServer) GetRegistry() *room.Registry              { return s.Registry }
func (s *FakeServer) GetScoreboard() types.ScoreboardInterface { return s.Scoreboard }

func (s *FakeServer) GetOnlineCount() int { return len(s.Clients) }

func (s *FakeServer) BroadcastToRoom(roomName string, msg *protocol.Message) {
	s.Broadcasts = append(s.Broadcasts, RoomMessage{RoomName: roomName, Msg: msg})
	for _, client := range s.Clients {
		if client.GetRoom() == roomName {
			client.SendMessage(msg)
		}
	}
}

func (s *FakeServer) GetClientByID(id string) types.ClientInterface {
	if c, ok := s.Clients[id]; ok {
		return c
	}
	return nil
}

func (s *FakeServer) GetClientByName(username string) types.ClientInterface {
	for _, client := range s.Clients {
		if client.GetName() == username {
			return client
		}
	}
	return nil
}

func (s *FakeServer) UnregisterClient(id string) {
	delete(s.Clients, id)
}

// BroadcastsOfType 返回指定类型的广播记录
func (s *FakeServer) BroadcastsOfType(msgType protocol.MessageType) []RoomMessage {
	var out []RoomMessage
	for _, b := range s.Broadcasts {
		if b.Msg.Type == msgType {
			out = append(out, b)
		}
	}
	return out
}
