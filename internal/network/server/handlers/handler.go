package handlers

import (
	"errors"
	"log"

	"github.com/palemoky/draw-and-guess/internal/apperrors"
	"github.com/palemoky/draw-and-guess/internal/network/server/types"
	"github.com/palemoky/draw-and-guess/internal/protocol"
)

// Handler 消息处理器
type Handler struct {
	server types.ServerContext
}

// NewHandler 创建处理器
func NewHandler(s types.ServerContext) *Handler {
	return &Handler{server: s}
}

// Handle 处理消息
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	switch msg.Type {
	// 连接操作
	case protocol.MsgPing:
		h.handlePing(client, msg)

	// 房间操作
	case protocol.MsgCreateRoom:
		h.handleCreateRoom(client, msg)
	case protocol.MsgJoinRoom:
		h.handleJoinRoom(client, msg)
	case protocol.MsgLeaveRoom:
		h.handleLeaveRoom(client)
	case protocol.MsgGetRoomList:
		h.handleGetRoomList(client)
	case protocol.MsgGetRoomInfo:
		h.handleGetRoomInfo(client, msg)
	case protocol.MsgRoomExists:
		h.handleRoomExists(client, msg)

	// 游戏操作
	case protocol.MsgStartGame:
		h.handleStartGame(client, msg)
	case protocol.MsgPlayAgain:
		h.handlePlayAgain(client)
	case protocol.MsgChat:
		h.handleChat(client, msg)

	default:
		log.Printf("⚠️  未知消息类型: '%s' (来自玩家: %s, ID: %s)", msg.Type, client.GetName(), client.GetID())
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
	}
}

// sendError 把游戏错误翻译成协议错误发给客户端
func (h *Handler) sendError(client types.ClientInterface, err error) {
	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		client.SendMessage(protocol.NewErrorMessage(gameErr.Code))
		return
	}
	client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
}
