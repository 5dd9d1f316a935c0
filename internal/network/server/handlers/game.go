package handlers

import (
	"context"
	"log"

	"github.com/palemoky/draw-and-guess/internal/apperrors"
	"github.com/palemoky/draw-and-guess/internal/game/room"
	"github.com/palemoky/draw-and-guess/internal/network/server/types"
	"github.com/palemoky/draw-and-guess/internal/protocol"
)

// handleStartGame 处理开始游戏，仅房主可以发起
func (h *Handler) handleStartGame(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.StartGamePayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	r := h.roomOf(client)
	if r == nil {
		h.sendError(client, apperrors.ErrNotInRoom)
		return
	}

	if r.Owner() != client.GetName() {
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "只有房主可以开始游戏"))
		return
	}

	if err := r.StartGame(payload.Theme); err != nil {
		h.sendError(client, err)
		return
	}

	log.Printf("🎮 房间 %s 开始游戏，主题 %s", r.Name, payload.Theme)
	h.broadcastTurn(r)
	h.server.GetRegistry().Sync(r)
}

// handlePlayAgain 处理再来一局，任何在房玩家都可以发起
func (h *Handler) handlePlayAgain(client types.ClientInterface) {
	r := h.roomOf(client)
	if r == nil {
		h.sendError(client, apperrors.ErrNotInRoom)
		return
	}

	if err := r.PlayAgain(); err != nil {
		h.sendError(client, err)
		return
	}

	log.Printf("🎮 房间 %s 再来一局", r.Name)
	h.broadcastTurn(r)
	h.server.GetRegistry().Sync(r)
}

// roomOf 返回客户端所在房间，不在房间或房间已解散时返回 nil
func (h *Handler) roomOf(client types.ClientInterface) *room.Room {
	roomName := client.GetRoom()
	if roomName == "" {
		return nil
	}
	return h.server.GetRegistry().Find(roomName)
}

// broadcastTurn 广播新回合；比赛已结束时转为结算
// 词语只发给画家本人，公开投影永远不携带它
func (h *Handler) broadcastTurn(r *room.Room) {
	if r.IsEnded() {
		h.finishMatch(r)
		return
	}

	h.server.BroadcastToRoom(r.Name, protocol.MustNewMessage(
		protocol.MsgNewTurn, protocol.NewTurnPayload{Room: r.View()}))

	if drawer := h.server.GetClientByName(r.PlayerInTurn()); drawer != nil {
		drawer.SendMessage(protocol.MustNewMessage(
			protocol.MsgYourWord, protocol.YourWordPayload{Word: r.SecretWord()}))
	}
}

// finishMatch 广播结算并把结果记入跨场次积分榜
func (h *Handler) finishMatch(r *room.Room) {
	results := r.MatchResults()

	h.server.BroadcastToRoom(r.Name, protocol.MustNewMessage(
		protocol.MsgEndGame, protocol.EndGamePayload{
			Room:    r.View(),
			Results: results,
		}))

	log.Printf("🏁 房间 %s 比赛结束", r.Name)

	sb := h.server.GetScoreboard()
	if sb == nil {
		return
	}

	// 积分榜只是镜像，写入失败不影响游戏
	go func() {
		for _, res := range results {
			won := res.Placement == 1
			if err := sb.RecordMatchResult(context.Background(), res.Username, res.Points, won); err != nil {
				log.Printf("积分榜写入失败 (%s): %v", res.Username, err)
			}
		}
	}()
}
