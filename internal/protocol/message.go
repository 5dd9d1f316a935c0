package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	// 连接操作
	MsgPing MessageType = "ping" // 心跳 ping

	// 房间操作
	MsgCreateRoom  MessageType = "create_room"   // 创建房间
	MsgJoinRoom    MessageType = "join_room"     // 加入房间
	MsgLeaveRoom   MessageType = "leave_room"    // 离开房间
	MsgGetRoomList MessageType = "get_room_list" // 获取可加入房间列表
	MsgGetRoomInfo MessageType = "get_room_info" // 获取房间信息
	MsgRoomExists  MessageType = "room_exists"   // 查询房间是否存在

	// 游戏操作
	MsgStartGame MessageType = "start_game" // 开始游戏
	MsgPlayAgain MessageType = "play_again" // 再来一局
	MsgChat      MessageType = "chat"       // 聊天消息（含猜词）
)

// 服务端 → 客户端 消息类型
const (
	// 连接相关
	MsgConnected          MessageType = "connected"           // 连接成功
	MsgPong               MessageType = "pong"                // 心跳 pong
	MsgPlayerDisconnected MessageType = "player_disconnected" // 玩家掉线通知

	// 房间相关
	MsgRoomCreated    MessageType = "room_created"     // 房间创建成功
	MsgRoomJoined     MessageType = "room_joined"      // 加入房间成功
	MsgRoomInfoResult MessageType = "room_info_result" // 房间信息结果
	MsgRoomListResult MessageType = "room_list_result" // 房间列表结果
	MsgRoomExistence  MessageType = "room_existence"   // 房间存在性结果
	MsgUpdatePlayers  MessageType = "update_players"   // 玩家列表/积分更新

	// 游戏流程
	MsgNewTurn      MessageType = "new_turn"      // 新回合开始
	MsgYourWord     MessageType = "your_word"     // 画家专属：本回合词语
	MsgAttempt      MessageType = "attempt"       // 猜词反馈（仅发给猜词者）
	MsgCorrectGuess MessageType = "correct_guess" // 有玩家猜对
	MsgEndGame      MessageType = "end_game"      // 比赛结束

	// 错误
	MsgError MessageType = "error" // 错误消息
)
