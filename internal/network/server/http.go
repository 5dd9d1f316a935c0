package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/palemoky/draw-and-guess/internal/game/words"
)

// registerAPIRoutes 注册 HTTP 查询接口
// 大厅页面在建立 WebSocket 连接前用这些接口做房间发现
func (s *Server) registerAPIRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/rooms", s.handleListRooms)
	mux.HandleFunc("GET /api/rooms/{name}", s.handleRoomInfo)
	mux.HandleFunc("GET /api/rooms/{name}/exists", s.handleRoomExists)
	mux.HandleFunc("GET /api/themes", s.handleThemes)
	mux.HandleFunc("GET /api/scoreboard", s.handleScoreboard)
	mux.HandleFunc("GET /api/online", s.handleOnline)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("HTTP 响应编码失败: %v", err)
	}
}

func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"rooms": s.registry.ListJoinable(),
	})
}

func (s *Server) handleRoomInfo(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	room := s.registry.Find(name)
	if room == nil {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "房间不存在"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"room": room.View()})
}

func (s *Server) handleRoomExists(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	writeJSON(w, http.StatusOK, map[string]any{
		"room_name": name,
		"exists":    s.registry.Exists(name),
	})
}

func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"themes": words.Themes(),
	})
}

func (s *Server) handleScoreboard(w http.ResponseWriter, r *http.Request) {
	if s.scoreboard == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"error": "积分榜不可用"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	entries, err := s.scoreboard.GetTopPlayers(ctx, 10)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "获取积分榜失败"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

func (s *Server) handleOnline(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"online": s.GetOnlineCount(),
	})
}
