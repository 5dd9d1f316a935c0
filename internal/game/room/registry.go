package room

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/palemoky/draw-and-guess/internal/apperrors"
	"github.com/palemoky/draw-and-guess/internal/config"
	"github.com/palemoky/draw-and-guess/internal/protocol"
	"github.com/palemoky/draw-and-guess/internal/storage"
)

// Store 房间快照的只写镜像，持久化失败不影响游戏进行
type Store interface {
	SaveRoom(ctx context.Context, data *storage.RoomData) error
	DeleteRoom(ctx context.Context, name string) error
}

// Registry 房间注册表：以房间名为键创建和查找房间
type Registry struct {
	cfg         config.GameConfig
	source      WordSource
	store       Store // 可以为 nil
	roomTimeout time.Duration
	rooms       map[string]*Room
	mu          sync.RWMutex
}

// NewRegistry 创建房间注册表
func NewRegistry(cfg config.GameConfig, source WordSource, store Store) *Registry {
	reg := &Registry{
		cfg:         cfg,
		source:      source,
		store:       store,
		roomTimeout: cfg.RoomTimeoutDuration(),
		rooms:       make(map[string]*Room),
	}

	// 启动空房间清理协程
	go reg.cleanupLoop()

	return reg
}

// Create 创建房间
// 检查与插入在同一把锁内完成，同名房间直接拒绝，绝不覆盖已有房间
func (reg *Registry) Create(name string, isPrivate bool, owner string) (*Room, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, exists := reg.rooms[name]; exists {
		return nil, apperrors.ErrRoomNameTaken
	}

	room := NewRoom(name, isPrivate, owner, reg.cfg, reg.source)
	reg.rooms[name] = room

	reg.syncLocked(room)

	log.Printf("🏠 房间 %s 已创建，房主 %s", name, owner)

	return room, nil
}

// Find 按名称查找房间，不存在时返回 nil
func (reg *Registry) Find(name string) *Room {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return reg.rooms[name]
}

// Exists 判断房间是否存在
func (reg *Registry) Exists(name string) bool {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	_, ok := reg.rooms[name]
	return ok
}

// ListJoinable 返回可加入的房间：公开且未满员，附带当前人数
func (reg *Registry) ListJoinable() []protocol.RoomSummary {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	var rooms []protocol.RoomSummary
	for _, room := range reg.rooms {
		if room.IsPrivate {
			continue
		}
		count := room.PlayerCount()
		if count >= room.MaxPlayers {
			continue
		}
		rooms = append(rooms, protocol.RoomSummary{
			Name:        room.Name,
			Theme:       room.Theme(),
			PlayerCount: count,
			MaxPlayers:  room.MaxPlayers,
		})
	}
	return rooms
}

// Remove 删除房间
func (reg *Registry) Remove(name string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, ok := reg.rooms[name]; !ok {
		return
	}
	delete(reg.rooms, name)

	if reg.store != nil {
		go func() { _ = reg.store.DeleteRoom(context.Background(), name) }()
	}

	log.Printf("🏠 房间 %s 已解散", name)
}

// Sync 把房间最新快照异步写入镜像存储，在状态变更后由调用方触发
func (reg *Registry) Sync(room *Room) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	reg.syncLocked(room)
}

func (reg *Registry) syncLocked(room *Room) {
	if reg.store == nil || room == nil {
		return
	}
	data := room.Snapshot()
	go func() { _ = reg.store.SaveRoom(context.Background(), data) }()
}

// cleanupLoop 定期回收空置房间
func (reg *Registry) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		reg.cleanup()
	}
}

// cleanup 回收超时且没有在线玩家的房间
// 超时从最后一次玩家活动算起，而不是创建时间
// 刚掉线的玩家在超时窗口内重连时，房间和积分还在
func (reg *Registry) cleanup() {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	now := time.Now()

	for name, room := range reg.rooms {
		if room.PlayerCount() > 0 {
			continue
		}
		if now.Sub(room.LastActive()) < reg.roomTimeout {
			continue
		}
		delete(reg.rooms, name)
		if reg.store != nil {
			roomName := name
			go func() { _ = reg.store.DeleteRoom(context.Background(), roomName) }()
		}
		log.Printf("🏠 房间 %s 空置超时已清理", name)
	}
}
