package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/draw-and-guess/internal/protocol"
	"github.com/palemoky/draw-and-guess/internal/testutil"
)

func TestHandleChat_PlainMessage(t *testing.T) {
	srv, h := newTestHandler()
	createRoom(t, h, srv, "客厅", "alice")
	alice := joinRoom(t, h, srv, "客厅", "alice")
	bob := joinRoom(t, h, srv, "客厅", "bob")

	alice.Color = "#E53E3E"
	h.Handle(alice, protocol.MustNewMessage(protocol.MsgChat, protocol.ChatPayload{
		Text: "大家好",
	}))

	chats := bob.MessagesOfType(protocol.MsgChat)
	require.Len(t, chats, 1)

	payload, err := protocol.ParsePayload[protocol.ChatPayload](chats[0])
	require.NoError(t, err)
	assert.Equal(t, "大家好", payload.Text)
	assert.Equal(t, "alice", payload.Author)
	assert.Equal(t, "#E53E3E", payload.Color)
	assert.NotZero(t, payload.Time)
}

func TestHandleChat_NotInRoom(t *testing.T) {
	_, h := newTestHandler()

	c := &testutil.SimpleClient{ID: "c1", Name: "alice"}
	h.Handle(c, protocol.MustNewMessage(protocol.MsgChat, protocol.ChatPayload{Text: "hi"}))

	require.Equal(t, protocol.MsgError, c.LastMessage().Type)

	payload, err := protocol.ParsePayload[protocol.ErrorPayload](c.LastMessage())
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeNotInRoom, payload.Code)
}

func TestHandleChat_CorrectGuess(t *testing.T) {
	srv, h := newTestHandler()
	_, bob := startMatch(t, h, srv)
	r := srv.Registry.Find("客厅")
	secret := r.SecretWord()

	h.Handle(bob, protocol.MustNewMessage(protocol.MsgChat, protocol.ChatPayload{
		Text:  secret,
		Guess: true,
	}))

	// The guesser gets a private confirmation
	attempts := bob.MessagesOfType(protocol.MsgAttempt)
	require.Len(t, attempts, 1)
	attempt, err := protocol.ParsePayload[protocol.AttemptPayload](attempts[0])
	require.NoError(t, err)
	assert.True(t, attempt.Matched)

	// Everyone learns who guessed right, but never the word itself
	correct := srv.BroadcastsOfType(protocol.MsgCorrectGuess)
	require.Len(t, correct, 1)
	assert.NotContains(t, string(correct[0].Msg.Payload), secret)

	assert.Empty(t, srv.BroadcastsOfType(protocol.MsgChat))

	// Both sides scored
	updates := srv.BroadcastsOfType(protocol.MsgUpdatePlayers)
	require.NotEmpty(t, updates)
	for _, p := range r.Players() {
		assert.Positive(t, p.Points)
	}
}

func TestHandleChat_CorrectGuess_OncePerTurn(t *testing.T) {
	srv, h := newTestHandler()
	alice, bob := startMatch(t, h, srv)
	_ = alice
	r := srv.Registry.Find("客厅")

	// Third player so the turn does not auto-advance after bob's guess
	joinRoom(t, h, srv, "客厅", "carol")
	secret := r.SecretWord()

	h.Handle(bob, protocol.MustNewMessage(protocol.MsgChat, protocol.ChatPayload{Text: secret, Guess: true}))
	h.Handle(bob, protocol.MustNewMessage(protocol.MsgChat, protocol.ChatPayload{Text: secret, Guess: true}))

	// Only the first correct guess counts
	assert.Len(t, srv.BroadcastsOfType(protocol.MsgCorrectGuess), 1)
	assert.Equal(t, 1, r.CurrentRound())
	assert.Equal(t, "alice", r.PlayerInTurn())
}

func TestHandleChat_DrawerGuessIgnored(t *testing.T) {
	srv, h := newTestHandler()
	alice, _ := startMatch(t, h, srv)
	r := srv.Registry.Find("客厅")
	before := len(alice.Messages)

	h.Handle(alice, protocol.MustNewMessage(protocol.MsgChat, protocol.ChatPayload{
		Text:  r.SecretWord(),
		Guess: true,
	}))

	assert.Len(t, alice.Messages, before)
	assert.Empty(t, srv.BroadcastsOfType(protocol.MsgCorrectGuess))
	for _, p := range r.Players() {
		assert.Zero(t, p.Points)
	}
}

func TestHandleChat_NearMissHintIsPrivate(t *testing.T) {
	srv, h := newTestHandler()
	alice, bob := startMatch(t, h, srv)
	r := srv.Registry.Find("客厅")

	// One extra rune puts the guess within hint distance
	nearMiss := r.SecretWord() + "呀"
	h.Handle(bob, protocol.MustNewMessage(protocol.MsgChat, protocol.ChatPayload{
		Text:  nearMiss,
		Guess: true,
	}))

	attempts := bob.MessagesOfType(protocol.MsgAttempt)
	require.Len(t, attempts, 1)
	attempt, err := protocol.ParsePayload[protocol.AttemptPayload](attempts[0])
	require.NoError(t, err)
	assert.False(t, attempt.Matched)
	assert.NotEmpty(t, attempt.Hint)

	// Nothing reaches the rest of the room: no hint, and no chat echo
	// that would hand everyone a string one edit away from the word
	assert.Empty(t, alice.MessagesOfType(protocol.MsgAttempt))
	assert.Empty(t, srv.BroadcastsOfType(protocol.MsgChat))
	assert.Empty(t, alice.MessagesOfType(protocol.MsgChat))

	// No points for a near miss
	for _, p := range r.Players() {
		assert.Zero(t, p.Points)
	}
}

func TestHandleChat_SilentMiss(t *testing.T) {
	srv, h := newTestHandler()
	_, bob := startMatch(t, h, srv)

	h.Handle(bob, protocol.MustNewMessage(protocol.MsgChat, protocol.ChatPayload{
		Text:  "完全不沾边的一句话",
		Guess: true,
	}))

	// A distant guess gets no feedback at all, only the chat broadcast
	assert.Empty(t, bob.MessagesOfType(protocol.MsgAttempt))
	assert.Len(t, srv.BroadcastsOfType(protocol.MsgChat), 1)
}

func TestHandleChat_GuessBeforeStartIsChat(t *testing.T) {
	srv, h := newTestHandler()
	createRoom(t, h, srv, "客厅", "alice")
	alice := joinRoom(t, h, srv, "客厅", "alice")
	bob := joinRoom(t, h, srv, "客厅", "bob")
	_ = alice

	h.Handle(bob, protocol.MustNewMessage(protocol.MsgChat, protocol.ChatPayload{
		Text:  "老虎",
		Guess: true,
	}))

	// Before the match starts a guess is just a chat message
	assert.Len(t, srv.BroadcastsOfType(protocol.MsgChat), 1)
	assert.Empty(t, bob.MessagesOfType(protocol.MsgAttempt))
}
