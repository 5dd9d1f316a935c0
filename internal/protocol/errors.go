package protocol

// 错误码定义
const (
	// 通用错误 1xxx
	ErrCodeUnknown    = 1000 // 未知错误
	ErrCodeInvalidMsg = 1001 // 无效消息格式

	// 房间错误 2xxx
	ErrCodeRoomNotFound  = 2001 // 房间不存在
	ErrCodeRoomFull      = 2002 // 房间已满
	ErrCodeRoomNameTaken = 2003 // 房间名已被占用
	ErrCodeNotInRoom     = 2004 // 不在房间中
	ErrCodeGameStarted   = 2005 // 游戏已开始
	ErrCodeGameNotStart  = 2006 // 游戏尚未开始

	// 词库错误 3xxx
	ErrCodeUnknownTheme      = 3001 // 未知主题
	ErrCodeWordPoolExhausted = 3002 // 词库数量不足
	ErrCodeNoActivePlayers   = 3003 // 没有可作画的在线玩家
)

// ErrorMessages 错误码对应的提示文案
var ErrorMessages = map[int]string{
	ErrCodeUnknown:           "未知错误",
	ErrCodeInvalidMsg:        "无效的消息格式",
	ErrCodeRoomNotFound:      "房间不存在",
	ErrCodeRoomFull:          "房间已满",
	ErrCodeRoomNameTaken:     "房间名已被占用",
	ErrCodeNotInRoom:         "您不在房间中",
	ErrCodeGameStarted:       "游戏已开始",
	ErrCodeGameNotStart:      "游戏尚未开始",
	ErrCodeUnknownTheme:      "未知的词库主题",
	ErrCodeWordPoolExhausted: "词库数量不足以完成本场比赛",
	ErrCodeNoActivePlayers:   "没有在线玩家可以作画",
}

// ErrorPayload 错误消息负载
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
