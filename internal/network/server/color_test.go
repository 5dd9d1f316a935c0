package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomChatColor(t *testing.T) {
	for range 20 {
		color := RandomChatColor()
		assert.Contains(t, chatColors, color)
		assert.Regexp(t, `^#[0-9A-F]{6}$`, color)
	}
}
