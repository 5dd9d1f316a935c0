package apperrors

import (
	"github.com/palemoky/draw-and-guess/internal/protocol"
)

// GameError 游戏错误（房间和词库共享）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrRoomNotFound      = &GameError{Code: protocol.ErrCodeRoomNotFound, Message: "房间不存在"}
	ErrRoomFull          = &GameError{Code: protocol.ErrCodeRoomFull, Message: "房间已满"}
	ErrRoomNameTaken     = &GameError{Code: protocol.ErrCodeRoomNameTaken, Message: "房间名已被占用"}
	ErrNotInRoom         = &GameError{Code: protocol.ErrCodeNotInRoom, Message: "您不在房间中"}
	ErrGameStarted       = &GameError{Code: protocol.ErrCodeGameStarted, Message: "游戏已开始"}
	ErrGameNotStart      = &GameError{Code: protocol.ErrCodeGameNotStart, Message: "游戏尚未开始"}
	ErrUnknownTheme      = &GameError{Code: protocol.ErrCodeUnknownTheme, Message: "未知的词库主题"}
	ErrWordPoolExhausted = &GameError{Code: protocol.ErrCodeWordPoolExhausted, Message: "词库数量不足以完成本场比赛"}
	ErrNoActivePlayers   = &GameError{Code: protocol.ErrCodeNoActivePlayers, Message: "没有在线玩家可以作画"}
)
