package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/palemoky/draw-and-guess/internal/config"
	"github.com/palemoky/draw-and-guess/internal/game/room"
	"github.com/palemoky/draw-and-guess/internal/game/words"
	"github.com/palemoky/draw-and-guess/internal/network/server/handlers"
	"github.com/palemoky/draw-and-guess/internal/network/server/types"
	"github.com/palemoky/draw-and-guess/internal/protocol"
	"github.com/palemoky/draw-and-guess/internal/storage"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 允许所有来源，生产环境需要限制
	},
}

// Server WebSocket 服务器
type Server struct {
	config     *config.Config
	redis      *redis.Client
	scoreboard types.ScoreboardInterface
	registry   *room.Registry
	clients    map[string]*Client
	clientsMu  sync.RWMutex
	handler    *handlers.Handler
}

// NewServer 创建服务器实例
// Redis 只是积分榜和房间快照的镜像，连不上时降级为纯内存模式继续服务
func NewServer(cfg *config.Config) *Server {
	s := &Server{
		config:  cfg,
		clients: make(map[string]*Client),
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var store room.Store
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis 连接失败，降级为纯内存模式: %v", err)
		_ = rdb.Close()
	} else {
		s.redis = rdb
		s.scoreboard = storage.NewScoreboard(rdb)
		store = storage.NewRedisStore(rdb)
	}

	// 初始化房间注册表
	s.registry = room.NewRegistry(cfg.Game, words.Bank{}, store)

	// 初始化消息处理器
	s.handler = handlers.NewHandler(s)

	return s
}

// Start 启动服务器
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	s.registerAPIRoutes(mux)

	log.Printf("🚀 服务器启动在 ws://%s/ws (CPU核心数: %d)", addr, runtime.NumCPU())
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second, // 防止 Slowloris 攻击
	}
	return server.ListenAndServe()
}

// handleWebSocket 处理 WebSocket 连接
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket 升级失败: %v", err)
		return
	}

	// 创建客户端
	client := NewClient(s, conn)
	client.IP = r.RemoteAddr
	s.registerClient(client)

	// 发送连接成功消息
	client.SendMessage(protocol.MustNewMessage(protocol.MsgConnected, protocol.ConnectedPayload{
		ClientID: client.ID,
		Nickname: client.GetName(),
	}))

	log.Printf("✅ 玩家 %s (%s) 已连接", client.GetName(), client.ID)

	// 启动客户端读写协程
	go client.ReadPump()
	go client.WritePump()
}

// handleHealth 健康检查接口
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// registerClient 注册客户端
func (s *Server) registerClient(client *Client) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	s.clients[client.ID] = client
}

// unregisterClient 注销客户端
func (s *Server) unregisterClient(client *Client) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	if _, ok := s.clients[client.ID]; ok {
		delete(s.clients, client.ID)
		log.Printf("❌ 玩家 %s (%s) 已断开", client.GetName(), client.ID)
	}
}

// GetOnlineCount 获取在线人数
func (s *Server) GetOnlineCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

// BroadcastToRoom 广播消息给指定房间内的所有客户端
func (s *Server) BroadcastToRoom(roomName string, msg *protocol.Message) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	for _, client := range s.clients {
		if client.GetRoom() == roomName {
			client.SendMessage(msg)
		}
	}
}

// Shutdown 关闭服务器
func (s *Server) Shutdown() {
	// 关闭所有客户端连接
	s.clientsMu.Lock()
	for _, client := range s.clients {
		client.Close()
	}
	s.clientsMu.Unlock()

	// 关闭 Redis
	if s.redis != nil {
		_ = s.redis.Close()
	}

	log.Println("服务器已关闭")
}

// Interface implementations for types.ServerContext
func (s *Server) GetRegistry() *room.Registry              { return s.registry }
func (s *Server) GetScoreboard() types.ScoreboardInterface { return s.scoreboard }

func (s *Server) GetClientByID(id string) types.ClientInterface {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	if c, ok := s.clients[id]; ok {
		return c
	}
	return nil
}

// GetClientByName 按用户名查找客户端，画家专属消息靠它投递
func (s *Server) GetClientByName(username string) types.ClientInterface {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	for _, client := range s.clients {
		if client.GetName() == username {
			return client
		}
	}
	return nil
}

func (s *Server) UnregisterClient(id string) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	delete(s.clients, id)
}
