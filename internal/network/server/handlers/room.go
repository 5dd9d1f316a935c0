package handlers

import (
	"log"

	"github.com/palemoky/draw-and-guess/internal/apperrors"
	"github.com/palemoky/draw-and-guess/internal/network/server/types"
	"github.com/palemoky/draw-and-guess/internal/protocol"
)

// handleCreateRoom 处理创建房间
func (h *Handler) handleCreateRoom(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.CreateRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	room, err := h.server.GetRegistry().Create(payload.RoomName, payload.IsPrivate, payload.Owner)
	if err != nil {
		h.sendError(client, err)
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomCreated, protocol.RoomCreatedPayload{
		Room: room.View(),
	}))
}

// handleJoinRoom 处理加入房间
// 重复加入和掉线重连都走这里，房间层保证幂等
func (h *Handler) handleJoinRoom(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.JoinRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	room := h.server.GetRegistry().Find(payload.RoomName)
	if room == nil {
		h.sendError(client, apperrors.ErrRoomNotFound)
		return
	}

	if !room.Join(payload.Username, client.GetID(), payload.Avatar) {
		h.sendError(client, apperrors.ErrRoomFull)
		return
	}

	client.SetName(payload.Username)
	client.SetRoom(payload.RoomName)
	h.server.GetRegistry().Sync(room)

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomJoined, protocol.RoomJoinedPayload{
		Room: room.View(),
	}))

	h.server.BroadcastToRoom(payload.RoomName, protocol.MustNewMessage(
		protocol.MsgUpdatePlayers, protocol.UpdatePlayersPayload{Players: room.Players()}))

	log.Printf("👤 玩家 %s 加入房间 %s", payload.Username, payload.RoomName)
}

// handleLeaveRoom 处理离开房间
func (h *Handler) handleLeaveRoom(client types.ClientInterface) {
	roomName := client.GetRoom()
	if roomName == "" {
		h.sendError(client, apperrors.ErrNotInRoom)
		return
	}

	room := h.server.GetRegistry().Find(roomName)
	client.SetRoom("")

	if room == nil {
		return
	}

	if room.Disconnect(client.GetName()) {
		h.server.BroadcastToRoom(roomName, protocol.MustNewMessage(
			protocol.MsgPlayerDisconnected, protocol.PlayerDisconnectedPayload{Username: client.GetName()}))
		h.server.BroadcastToRoom(roomName, protocol.MustNewMessage(
			protocol.MsgUpdatePlayers, protocol.UpdatePlayersPayload{Players: room.Players()}))
		h.server.GetRegistry().Sync(room)
	}
}

// handleGetRoomList 处理获取房间列表
func (h *Handler) handleGetRoomList(client types.ClientInterface) {
	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomListResult, protocol.RoomListPayload{
		Rooms: h.server.GetRegistry().ListJoinable(),
	}))
}

// handleGetRoomInfo 处理获取房间信息
func (h *Handler) handleGetRoomInfo(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.RoomNamePayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	room := h.server.GetRegistry().Find(payload.RoomName)
	if room == nil {
		h.sendError(client, apperrors.ErrRoomNotFound)
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomInfoResult, protocol.RoomInfoPayload{
		Room: room.View(),
	}))
}

// handleRoomExists 处理房间存在性查询
func (h *Handler) handleRoomExists(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.RoomNamePayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomExistence, protocol.RoomExistencePayload{
		RoomName: payload.RoomName,
		Exists:   h.server.GetRegistry().Exists(payload.RoomName),
	}))
}
