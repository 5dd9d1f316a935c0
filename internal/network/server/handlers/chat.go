package handlers

import (
	"log"
	"time"

	"github.com/palemoky/draw-and-guess/internal/apperrors"
	"github.com/palemoky/draw-and-guess/internal/game/room"
	"github.com/palemoky/draw-and-guess/internal/network/server/types"
	"github.com/palemoky/draw-and-guess/internal/protocol"
)

// handleChat 处理聊天消息，比赛进行中的猜词也从这里进来
func (h *Handler) handleChat(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.ChatPayload](msg)
	if err != nil {
		return
	}

	r := h.roomOf(client)
	if r == nil {
		h.sendError(client, apperrors.ErrNotInRoom)
		return
	}

	// 填充发送者信息
	payload.Author = client.GetName()
	payload.Color = client.GetColor()
	payload.Time = time.Now().Unix()

	if payload.Guess && r.CurrentRound() > 0 && !r.IsEnded() {
		h.handleGuess(client, r, payload)
		return
	}

	h.server.BroadcastToRoom(r.Name, protocol.MustNewMessage(protocol.MsgChat, payload))
}

// handleGuess 按猜词处理一条消息
// 猜对的消息绝不广播原文，否则会把词语泄露给其他玩家
func (h *Handler) handleGuess(client types.ClientInterface, r *room.Room, payload *protocol.ChatPayload) {
	username := client.GetName()

	// 画家不能猜自己的词，直接丢弃
	if username == r.PlayerInTurn() {
		return
	}

	result := r.EvaluateGuess(payload.Text)

	if result.Matched {
		client.SendMessage(protocol.MustNewMessage(protocol.MsgAttempt, protocol.AttemptPayload{
			Text:    payload.Text,
			Matched: true,
			Hint:    result.Hint,
		}))

		// 同一回合重复猜对不再计分
		if !r.AwardGuess(username) {
			return
		}

		h.server.BroadcastToRoom(r.Name, protocol.MustNewMessage(
			protocol.MsgCorrectGuess, protocol.CorrectGuessPayload{Username: username}))
		h.server.BroadcastToRoom(r.Name, protocol.MustNewMessage(
			protocol.MsgUpdatePlayers, protocol.UpdatePlayersPayload{Players: r.Players()}))

		// 所有人都猜对了就提前进入下一回合
		if r.AllGuessedCorrectly() {
			if err := r.NextTurn(); err != nil {
				log.Printf("房间 %s 推进回合失败: %v", r.Name, err)
			}
			h.broadcastTurn(r)
		}

		h.server.GetRegistry().Sync(r)
		return
	}

	// 接近的猜测只提示本人，原文也不进聊天，不然等于把近似词发给了所有人
	if result.Hint != "" {
		client.SendMessage(protocol.MustNewMessage(protocol.MsgAttempt, protocol.AttemptPayload{
			Text:    payload.Text,
			Matched: false,
			Hint:    result.Hint,
		}))
		return
	}

	// 差得远的猜测当普通聊天广播
	h.server.BroadcastToRoom(r.Name, protocol.MustNewMessage(protocol.MsgChat, payload))
}
