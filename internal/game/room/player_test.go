package room

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayer_AddPoints(t *testing.T) {
	t.Parallel()

	p := NewPlayer("alice", "id-1", "avatar-1")
	assert.Zero(t, p.Points())

	p.AddPoints(30)
	assert.Equal(t, 30, p.Points())

	p.AddPoints(15)
	assert.Equal(t, 45, p.Points())
}

func TestPlayer_AddPoints_IgnoresNonPositive(t *testing.T) {
	t.Parallel()

	p := NewPlayer("alice", "id-1", "")
	p.AddPoints(10)
	p.AddPoints(0)
	p.AddPoints(-5)
	assert.Equal(t, 10, p.Points())
}

func TestPlayer_AddPoints_Saturates(t *testing.T) {
	t.Parallel()

	p := NewPlayer("alice", "id-1", "")
	p.AddPoints(math.MaxInt - 1)
	p.AddPoints(100)
	assert.Equal(t, math.MaxInt, p.Points())
}

func TestPlayer_ResetPoints(t *testing.T) {
	t.Parallel()

	p := NewPlayer("alice", "id-1", "")
	p.AddPoints(99)
	p.ResetPoints()
	assert.Zero(t, p.Points())
}
