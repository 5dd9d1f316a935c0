package room

import "math"

// Player 房间内的玩家，积分只由房间的计分操作修改
type Player struct {
	Username string
	ID       string
	Avatar   string
	points   int
}

// NewPlayer 创建玩家，初始积分为 0
func NewPlayer(username, id, avatar string) *Player {
	return &Player{
		Username: username,
		ID:       id,
		Avatar:   avatar,
	}
}

// AddPoints 增加积分，负数被忽略，溢出时封顶
func (p *Player) AddPoints(n int) {
	if n <= 0 {
		return
	}
	if p.points > math.MaxInt-n {
		p.points = math.MaxInt
		return
	}
	p.points += n
}

// ResetPoints 积分清零（新一场比赛开始时调用）
func (p *Player) ResetPoints() {
	p.points = 0
}

// Points 返回当前积分
func (p *Player) Points() int {
	return p.points
}
