package server

import (
	"math/rand"
)

// 聊天颜色池，加入房间时随机分配一个，用于前端区分发言者
var chatColors = []string{
	"#E53E3E", "#DD6B20", "#D69E2E", "#38A169", "#319795",
	"#3182CE", "#5A67D8", "#805AD5", "#D53F8C", "#718096",
}

// RandomChatColor 随机返回一个聊天颜色
func RandomChatColor() string {
	return chatColors[rand.Intn(len(chatColors))]
}
