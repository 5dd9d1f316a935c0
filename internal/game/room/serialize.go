package room

import (
	"github.com/palemoky/draw-and-guess/internal/storage"
)

// Snapshot 把房间状态转换为可序列化的 storage.RoomData
// 只用于镜像存储，不包含当前词语
func (r *Room) Snapshot() *storage.RoomData {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := &storage.RoomData{
		Name:         r.Name,
		Owner:        r.owner,
		IsPrivate:    r.IsPrivate,
		MaxPlayers:   r.MaxPlayers,
		Theme:        r.theme,
		CurrentRound: r.currentRound,
		TotalRounds:  r.totalRounds,
		MatchEnded:   r.matchEnded,
		TurnOrder:    append([]string(nil), r.turnOrder...),
		CreatedAt:    r.CreatedAt.Unix(),
	}
	if r.playerInTurn != nil {
		data.PlayerInTurn = r.playerInTurn.Username
	}

	for _, name := range r.rosterOrder {
		if p, ok := r.active[name]; ok {
			data.Players = append(data.Players, storage.PlayerData{
				ID:        p.ID,
				Username:  p.Username,
				Avatar:    p.Avatar,
				Points:    p.Points(),
				Connected: true,
			})
		}
	}
	for _, p := range r.disconnected {
		data.Players = append(data.Players, storage.PlayerData{
			ID:        p.ID,
			Username:  p.Username,
			Avatar:    p.Avatar,
			Points:    p.Points(),
			Connected: false,
		})
	}

	return data
}
