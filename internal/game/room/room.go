package room

import (
	"sync"
	"time"

	"github.com/palemoky/draw-and-guess/internal/config"
	"github.com/palemoky/draw-and-guess/internal/protocol"
)

// WordSource 词库契约：按主题返回候选词，数量需满足整场比赛的用词量
type WordSource interface {
	ForTheme(theme string) ([]string, error)
}

// Room 一场游戏会话
// 纯状态机：只被调用方查询和修改，从不主动向外发消息
// 所有修改状态的操作都持有 r.mu，同一房间的并发调用被串行化
type Room struct {
	Name       string
	IsPrivate  bool
	MaxPlayers int
	CreatedAt  time.Time

	owner string

	// 最近一次玩家活动的时间，空置回收以它为准
	// 全员掉线但名单未清空的房间不算空置，给掉线玩家留出重连窗口
	lastActive time.Time

	// 花名册：一个用户名同一时刻只会出现在其中一个集合里
	active       map[string]*Player
	disconnected map[string]*Player
	rosterOrder  []string // 首次加入顺序，积分相同时按它排名

	// 比赛配置
	totalRounds int
	theme       string

	// 比赛进度
	currentRound    int // 0 表示还在大厅
	turnOrder       []string
	turnCursor      int
	playerInTurn    *Player
	wordQueue       []string
	secretWord      string
	turnStartedAt   time.Time
	guesserBudget   int
	drawerBudget    int
	guessedThisTurn map[string]struct{}
	matchEnded      bool

	source WordSource
	cfg    config.GameConfig

	mu sync.Mutex
}

// NewRoom 创建处于大厅状态的房间
func NewRoom(name string, isPrivate bool, owner string, cfg config.GameConfig, source WordSource) *Room {
	now := time.Now()
	return &Room{
		Name:         name,
		IsPrivate:    isPrivate,
		MaxPlayers:   cfg.MaxPlayers,
		CreatedAt:    now,
		lastActive:   now,
		owner:        owner,
		active:       make(map[string]*Player),
		disconnected: make(map[string]*Player),
		totalRounds:  cfg.TotalRounds,
		source:       source,
		cfg:          cfg,
	}
}

// Join 玩家加入房间，幂等：已在房间内直接返回成功
// 掉线玩家重新加入时恢复原有积分；房间满员且玩家未知时返回 false
func (r *Room) Join(username, id, avatar string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.active[username]; ok {
		r.touchLocked()
		return true
	}

	// 掉线重连：原样恢复，积分保留
	if p, ok := r.disconnected[username]; ok {
		delete(r.disconnected, username)
		r.active[username] = p
		r.touchLocked()
		return true
	}

	if len(r.active) >= r.MaxPlayers {
		return false
	}

	p := NewPlayer(username, id, avatar)
	r.active[username] = p
	r.rosterOrder = append(r.rosterOrder, username)
	r.touchLocked()

	// 比赛已经开始时，新玩家排在轮换顺序末尾，等轮到才能作画
	if r.currentRound != 0 {
		r.turnOrder = append(r.turnOrder, username)
	}

	return true
}

// Disconnect 玩家掉线：移入掉线集合，积分保留，可重连恢复
// 房主掉线时把房主移交给任意一名剩余在线玩家
func (r *Room) Disconnect(username string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.active[username]
	if !ok {
		return false
	}

	delete(r.active, username)
	r.disconnected[username] = p
	r.touchLocked()

	if r.owner == username {
		r.owner = ""
		for _, name := range r.rosterOrder {
			if _, stillActive := r.active[name]; stillActive {
				r.owner = name
				break
			}
		}
	}

	return true
}

func (r *Room) touchLocked() {
	r.lastActive = time.Now()
}

// LastActive 返回最近一次玩家活动的时间
func (r *Room) LastActive() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastActive
}

// Owner 返回当前房主用户名，房间空置时为空字符串
func (r *Room) Owner() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.owner
}

// HasActivePlayer 判断用户名是否为在线玩家
func (r *Room) HasActivePlayer(username string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.active[username]
	return ok
}

// PlayerCount 返回在线玩家数
func (r *Room) PlayerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}

// Theme 返回本场比赛的主题
func (r *Room) Theme() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.theme
}

// CurrentRound 返回当前回合数，0 表示还在大厅
func (r *Room) CurrentRound() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentRound
}

// IsEnded 比赛是否已结束
func (r *Room) IsEnded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.matchEnded
}

// PlayerInTurn 返回当前画家的用户名，没有则为空字符串
func (r *Room) PlayerInTurn() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.playerInTurn == nil {
		return ""
	}
	return r.playerInTurn.Username
}

// SecretWord 返回当前词语
// 仅供传输层单独发给画家，公开投影 View 永远不携带它
func (r *Room) SecretWord() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.secretWord
}

// Players 返回在线玩家的公开信息，按首次加入顺序排列
func (r *Room) Players() []protocol.PlayerInfo {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.playersLocked()
}

// View 返回房间的公开投影，用于广播
func (r *Room) View() protocol.RoomView {
	r.mu.Lock()
	defer r.mu.Unlock()

	view := protocol.RoomView{
		Name:         r.Name,
		Owner:        r.owner,
		IsPrivate:    r.IsPrivate,
		MaxPlayers:   r.MaxPlayers,
		Theme:        r.theme,
		Players:      r.playersLocked(),
		CurrentRound: r.currentRound,
		TotalRounds:  r.totalRounds,
		MatchEnded:   r.matchEnded,
	}
	if r.playerInTurn != nil {
		view.PlayerInTurn = r.playerInTurn.Username
	}
	return view
}

func (r *Room) playersLocked() []protocol.PlayerInfo {
	players := make([]protocol.PlayerInfo, 0, len(r.active))
	for _, name := range r.rosterOrder {
		p, ok := r.active[name]
		if !ok {
			continue
		}
		players = append(players, protocol.PlayerInfo{
			ID:       p.ID,
			Username: p.Username,
			Avatar:   p.Avatar,
			Points:   p.Points(),
		})
	}
	return players
}
