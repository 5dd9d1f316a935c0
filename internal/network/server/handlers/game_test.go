package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/draw-and-guess/internal/game/words"
	"github.com/palemoky/draw-and-guess/internal/protocol"
	"github.com/palemoky/draw-and-guess/internal/testutil"
)

// startMatch creates a room with alice and bob and starts a game with alice as owner.
func startMatch(t *testing.T, h *Handler, srv *testutil.FakeServer) (alice, bob *testutil.SimpleClient) {
	t.Helper()

	createRoom(t, h, srv, "客厅", "alice")
	alice = joinRoom(t, h, srv, "客厅", "alice")
	bob = joinRoom(t, h, srv, "客厅", "bob")

	h.Handle(alice, protocol.MustNewMessage(protocol.MsgStartGame, protocol.StartGamePayload{
		Theme: words.ThemeAnimals,
	}))

	r := srv.Registry.Find("客厅")
	require.Equal(t, 1, r.CurrentRound())
	return alice, bob
}

func TestHandleStartGame(t *testing.T) {
	srv, h := newTestHandler()
	alice, bob := startMatch(t, h, srv)

	// Both players see the new turn
	require.Len(t, srv.BroadcastsOfType(protocol.MsgNewTurn), 1)

	// The drawer is the first player in join order and only they get the word
	r := srv.Registry.Find("客厅")
	assert.Equal(t, "alice", r.PlayerInTurn())

	aliceWords := alice.MessagesOfType(protocol.MsgYourWord)
	require.Len(t, aliceWords, 1)

	payload, err := protocol.ParsePayload[protocol.YourWordPayload](aliceWords[0])
	require.NoError(t, err)
	assert.Equal(t, r.SecretWord(), payload.Word)

	assert.Empty(t, bob.MessagesOfType(protocol.MsgYourWord))

	// The broadcast view never carries the word
	turn := srv.BroadcastsOfType(protocol.MsgNewTurn)[0]
	assert.NotContains(t, string(turn.Msg.Payload), r.SecretWord())
}

func TestHandleStartGame_NotOwner(t *testing.T) {
	srv, h := newTestHandler()
	createRoom(t, h, srv, "客厅", "alice")
	joinRoom(t, h, srv, "客厅", "alice")
	bob := joinRoom(t, h, srv, "客厅", "bob")

	h.Handle(bob, protocol.MustNewMessage(protocol.MsgStartGame, protocol.StartGamePayload{
		Theme: words.ThemeAnimals,
	}))

	require.Equal(t, protocol.MsgError, bob.LastMessage().Type)
	assert.Equal(t, 0, srv.Registry.Find("客厅").CurrentRound())
}

func TestHandleStartGame_UnknownTheme(t *testing.T) {
	srv, h := newTestHandler()
	createRoom(t, h, srv, "客厅", "alice")
	alice := joinRoom(t, h, srv, "客厅", "alice")

	h.Handle(alice, protocol.MustNewMessage(protocol.MsgStartGame, protocol.StartGamePayload{
		Theme: "不存在的主题",
	}))

	require.Equal(t, protocol.MsgError, alice.LastMessage().Type)

	payload, err := protocol.ParsePayload[protocol.ErrorPayload](alice.LastMessage())
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeUnknownTheme, payload.Code)
}

func TestHandleStartGame_NotInRoom(t *testing.T) {
	_, h := newTestHandler()

	c := &testutil.SimpleClient{ID: "c1", Name: "alice"}
	h.Handle(c, protocol.MustNewMessage(protocol.MsgStartGame, protocol.StartGamePayload{
		Theme: words.ThemeAnimals,
	}))

	require.Equal(t, protocol.MsgError, c.LastMessage().Type)

	payload, err := protocol.ParsePayload[protocol.ErrorPayload](c.LastMessage())
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeNotInRoom, payload.Code)
}

func TestHandlePlayAgain_BeforeFirstGame(t *testing.T) {
	srv, h := newTestHandler()
	createRoom(t, h, srv, "客厅", "alice")
	alice := joinRoom(t, h, srv, "客厅", "alice")

	h.Handle(alice, protocol.MustNewMessage(protocol.MsgPlayAgain, nil))

	require.Equal(t, protocol.MsgError, alice.LastMessage().Type)

	payload, err := protocol.ParsePayload[protocol.ErrorPayload](alice.LastMessage())
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeGameNotStart, payload.Code)
}

func TestHandlePlayAgain_MidMatch(t *testing.T) {
	srv, h := newTestHandler()
	_, bob := startMatch(t, h, srv)
	r := srv.Registry.Find("客厅")
	word := r.SecretWord()

	h.Handle(bob, protocol.MustNewMessage(protocol.MsgPlayAgain, nil))

	// The running match is untouched
	require.Equal(t, protocol.MsgError, bob.LastMessage().Type)
	payload, err := protocol.ParsePayload[protocol.ErrorPayload](bob.LastMessage())
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeGameStarted, payload.Code)
	assert.Equal(t, 1, r.CurrentRound())
	assert.Equal(t, word, r.SecretWord())
}

func TestFullMatch_EndsWithResults(t *testing.T) {
	srv, h := newTestHandler()
	alice, bob := startMatch(t, h, srv)
	r := srv.Registry.Find("客厅")

	clients := map[string]*testutil.SimpleClient{"alice": alice, "bob": bob}

	// Each turn the sole guesser answers correctly, which advances the match.
	// 2 rounds x 2 drawers = 4 turns in total.
	for range 4 {
		require.False(t, r.IsEnded())

		drawer := r.PlayerInTurn()
		guesser := "alice"
		if drawer == "alice" {
			guesser = "bob"
		}

		h.Handle(clients[guesser], protocol.MustNewMessage(protocol.MsgChat, protocol.ChatPayload{
			Text:  r.SecretWord(),
			Guess: true,
		}))
	}

	require.True(t, r.IsEnded())

	ends := srv.BroadcastsOfType(protocol.MsgEndGame)
	require.Len(t, ends, 1)

	payload, err := protocol.ParsePayload[protocol.EndGamePayload](ends[0].Msg)
	require.NoError(t, err)
	require.Len(t, payload.Results, 2)

	// Placements are 1-based and points are descending
	assert.Equal(t, 1, payload.Results[0].Placement)
	assert.Equal(t, 2, payload.Results[1].Placement)
	assert.GreaterOrEqual(t, payload.Results[0].Points, payload.Results[1].Points)
}

func TestHandlePlayAgain_AfterMatch(t *testing.T) {
	srv, h := newTestHandler()
	alice, bob := startMatch(t, h, srv)
	r := srv.Registry.Find("客厅")

	clients := map[string]*testutil.SimpleClient{"alice": alice, "bob": bob}
	for range 4 {
		drawer := r.PlayerInTurn()
		guesser := "alice"
		if drawer == "alice" {
			guesser = "bob"
		}
		h.Handle(clients[guesser], protocol.MustNewMessage(protocol.MsgChat, protocol.ChatPayload{
			Text:  r.SecretWord(),
			Guess: true,
		}))
	}
	require.True(t, r.IsEnded())

	// start_game on a finished match is refused; only play_again resets scores
	h.Handle(alice, protocol.MustNewMessage(protocol.MsgStartGame, protocol.StartGamePayload{
		Theme: words.ThemeAnimals,
	}))
	require.Equal(t, protocol.MsgError, alice.LastMessage().Type)
	errPayload, err := protocol.ParsePayload[protocol.ErrorPayload](alice.LastMessage())
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeGameStarted, errPayload.Code)
	require.True(t, r.IsEnded())

	h.Handle(bob, protocol.MustNewMessage(protocol.MsgPlayAgain, nil))

	assert.False(t, r.IsEnded())
	assert.Equal(t, 1, r.CurrentRound())

	// Points reset for the fresh match
	for _, p := range r.Players() {
		assert.Zero(t, p.Points)
	}
}
