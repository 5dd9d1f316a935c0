package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/palemoky/draw-and-guess/internal/config"
	"github.com/palemoky/draw-and-guess/internal/game/room"
	"github.com/palemoky/draw-and-guess/internal/game/words"
	"github.com/palemoky/draw-and-guess/internal/protocol"
	"github.com/palemoky/draw-and-guess/internal/testutil"
)

// newTestHandler wires a handler to a fake server backed by a real registry.
func newTestHandler() (*testutil.FakeServer, *Handler) {
	cfg := config.GameConfig{
		TotalRounds:   2,
		MaxPlayers:    4,
		GuesserBudget: 300,
		DrawerBudget:  90,
		RoomTimeout:   10,
	}
	reg := room.NewRegistry(cfg, words.Bank{}, nil)
	srv := testutil.NewFakeServer(reg)
	return srv, NewHandler(srv)
}

// createRoom drives the create_room flow and fails the test on error replies.
func createRoom(t *testing.T, h *Handler, srv *testutil.FakeServer, roomName, owner string) {
	t.Helper()

	c := &testutil.SimpleClient{ID: "creator-" + owner}
	h.Handle(c, protocol.MustNewMessage(protocol.MsgCreateRoom, protocol.CreateRoomPayload{
		RoomName: roomName,
		Owner:    owner,
	}))

	last := c.LastMessage()
	require.NotNil(t, last)
	require.Equal(t, protocol.MsgRoomCreated, last.Type)
}

// joinRoom connects a fresh client and joins it into the room.
func joinRoom(t *testing.T, h *Handler, srv *testutil.FakeServer, roomName, username string) *testutil.SimpleClient {
	t.Helper()

	c := &testutil.SimpleClient{ID: "id-" + username, Color: "#3182CE"}
	srv.AddClient(c)

	h.Handle(c, protocol.MustNewMessage(protocol.MsgJoinRoom, protocol.JoinRoomPayload{
		RoomName: roomName,
		Username: username,
	}))

	last := c.LastMessage()
	require.NotNil(t, last)
	require.NotEqual(t, protocol.MsgError, last.Type)
	return c
}

func TestHandle_UnknownMessageType(t *testing.T) {
	_, h := newTestHandler()

	c := &testutil.SimpleClient{ID: "c1", Name: "alice"}
	h.Handle(c, &protocol.Message{Type: "no_such_type"})

	require.Len(t, c.Messages, 1)
	require.Equal(t, protocol.MsgError, c.Messages[0].Type)

	payload, err := protocol.ParsePayload[protocol.ErrorPayload](c.Messages[0])
	require.NoError(t, err)
	require.Equal(t, protocol.ErrCodeInvalidMsg, payload.Code)
}

func TestHandle_Ping(t *testing.T) {
	_, h := newTestHandler()

	c := &testutil.SimpleClient{ID: "c1"}
	h.Handle(c, protocol.MustNewMessage(protocol.MsgPing, protocol.PingPayload{Timestamp: 12345}))

	require.Len(t, c.Messages, 1)
	require.Equal(t, protocol.MsgPong, c.Messages[0].Type)

	payload, err := protocol.ParsePayload[protocol.PongPayload](c.Messages[0])
	require.NoError(t, err)
	require.Equal(t, int64(12345), payload.ClientTimestamp)
	require.NotZero(t, payload.ServerTimestamp)
}
