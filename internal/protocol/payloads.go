package protocol

// PlayerInfo 玩家公开信息（不包含词语等私密状态）
type PlayerInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
	Points   int    `json:"points"`
}

// RoomView 房间的公开投影，用于广播给所有客户端
// 注意: 永远不要在这里携带当前词语，画家通过 MsgYourWord 单独获取
type RoomView struct {
	Name         string       `json:"name"`
	Owner        string       `json:"owner"`
	IsPrivate    bool         `json:"is_private"`
	MaxPlayers   int          `json:"max_players"`
	Theme        string       `json:"theme,omitempty"`
	Players      []PlayerInfo `json:"players"`
	CurrentRound int          `json:"current_round"`
	TotalRounds  int          `json:"total_rounds"`
	PlayerInTurn string       `json:"player_in_turn,omitempty"`
	MatchEnded   bool         `json:"match_ended"`
}

// RoomSummary 房间列表条目
type RoomSummary struct {
	Name        string `json:"name"`
	Theme       string `json:"theme,omitempty"`
	PlayerCount int    `json:"player_count"`
	MaxPlayers  int    `json:"max_players"`
}

// MatchResult 单个玩家的比赛结果
type MatchResult struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Points    int    `json:"points"`
	Placement int    `json:"placement"`
}

// --- 客户端 → 服务端 ---

// PingPayload 心跳请求
type PingPayload struct {
	Timestamp int64 `json:"timestamp"`
}

// CreateRoomPayload 创建房间请求
type CreateRoomPayload struct {
	RoomName  string `json:"room_name"`
	IsPrivate bool   `json:"is_private"`
	Owner     string `json:"owner"`
}

// JoinRoomPayload 加入房间请求
type JoinRoomPayload struct {
	RoomName string `json:"room_name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

// RoomNamePayload 仅携带房间名的请求
type RoomNamePayload struct {
	RoomName string `json:"room_name"`
}

// StartGamePayload 开始游戏请求
type StartGamePayload struct {
	Theme string `json:"theme"`
}

// ChatPayload 聊天消息，Guess 为 true 时按猜词处理
type ChatPayload struct {
	Author string `json:"author"`
	Text   string `json:"text"`
	Guess  bool   `json:"guess,omitempty"`
	Color  string `json:"color,omitempty"`
	Time   int64  `json:"time,omitempty"`
}

// --- 服务端 → 客户端 ---

// ConnectedPayload 连接成功
type ConnectedPayload struct {
	ClientID string `json:"client_id"`
	Nickname string `json:"nickname"`
}

// PongPayload 心跳响应
type PongPayload struct {
	ClientTimestamp int64 `json:"client_timestamp"`
	ServerTimestamp int64 `json:"server_timestamp"`
}

// RoomCreatedPayload 房间创建成功
type RoomCreatedPayload struct {
	Room RoomView `json:"room"`
}

// RoomJoinedPayload 加入房间成功
type RoomJoinedPayload struct {
	Room RoomView `json:"room"`
}

// RoomInfoPayload 房间信息结果
type RoomInfoPayload struct {
	Room RoomView `json:"room"`
}

// RoomListPayload 房间列表结果
type RoomListPayload struct {
	Rooms []RoomSummary `json:"rooms"`
}

// RoomExistencePayload 房间存在性结果
type RoomExistencePayload struct {
	RoomName string `json:"room_name"`
	Exists   bool   `json:"exists"`
}

// UpdatePlayersPayload 玩家列表更新
type UpdatePlayersPayload struct {
	Players []PlayerInfo `json:"players"`
}

// NewTurnPayload 新回合开始
type NewTurnPayload struct {
	Room RoomView `json:"room"`
}

// YourWordPayload 画家专属：当前回合词语
type YourWordPayload struct {
	Word string `json:"word"`
}

// AttemptPayload 猜词反馈
type AttemptPayload struct {
	Text    string `json:"text"`
	Matched bool   `json:"matched"`
	Hint    string `json:"hint,omitempty"`
}

// CorrectGuessPayload 猜对通知
type CorrectGuessPayload struct {
	Username string `json:"username"`
}

// PlayerDisconnectedPayload 玩家掉线通知
type PlayerDisconnectedPayload struct {
	Username string `json:"username"`
}

// EndGamePayload 比赛结束
type EndGamePayload struct {
	Room    RoomView      `json:"room"`
	Results []MatchResult `json:"results"`
}
