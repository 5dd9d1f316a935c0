package room

import (
	"sort"
	"time"

	"github.com/palemoky/draw-and-guess/internal/apperrors"
	"github.com/palemoky/draw-and-guess/internal/game/guess"
	"github.com/palemoky/draw-and-guess/internal/protocol"
)

// StartGame 开始一场比赛：抽词、固定轮换顺序、进入第 1 回合第 1 个画家
// 只在大厅状态可用；比赛结束后重新开始必须走 PlayAgain，那里才会清零积分
func (r *Room) StartGame(theme string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentRound != 0 {
		return apperrors.ErrGameStarted
	}

	return r.startGameLocked(theme)
}

// PlayAgain 再来一局：积分清零、清空掉线名单、用上一场主题立即开始新比赛
// 对调用方而言是一次原子操作；只有上一场打完才能调用，进行中的比赛不可被重置
func (r *Room) PlayAgain() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.theme == "" {
		return apperrors.ErrGameNotStart
	}
	if !r.matchEnded {
		return apperrors.ErrGameStarted
	}

	for _, p := range r.active {
		p.ResetPoints()
	}
	r.disconnected = make(map[string]*Player)

	// 花名册只保留仍然在线的玩家，离开的玩家重新加入时按新人处理
	roster := r.rosterOrder[:0]
	for _, name := range r.rosterOrder {
		if _, ok := r.active[name]; ok {
			roster = append(roster, name)
		}
	}
	r.rosterOrder = roster

	return r.startGameLocked(r.theme)
}

func (r *Room) startGameLocked(theme string) error {
	pool, err := r.source.ForTheme(theme)
	if err != nil {
		return err
	}

	// 轮换顺序在开赛时定格，整场比赛不变（中途加入的玩家追加在末尾）
	order := make([]string, 0, len(r.active))
	for _, name := range r.rosterOrder {
		if _, ok := r.active[name]; ok {
			order = append(order, name)
		}
	}
	if len(order) == 0 {
		return apperrors.ErrNoActivePlayers
	}

	// 每个回合每位画家消耗一个词，开赛前必须确认词量够用
	if need := r.totalRounds * len(order); len(pool) < need {
		return apperrors.ErrWordPoolExhausted
	}

	r.theme = theme
	r.turnOrder = order
	r.wordQueue = pool
	r.currentRound = 0
	r.turnCursor = 0
	r.matchEnded = false
	r.playerInTurn = nil
	r.guessedThisTurn = nil
	r.secretWord = ""

	r.advanceRoundLocked()
	return r.advanceTurnLocked()
}

// NextTurn 推进到下一个画家，由调用方在全员猜对或超时后触发
// 回合走完时自动推进回合；比赛结束后调用是无操作
func (r *Room) NextTurn() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentRound == 0 {
		return apperrors.ErrGameNotStart
	}
	if r.matchEnded {
		return nil
	}
	return r.advanceTurnLocked()
}

// advanceTurnLocked 从当前游标向后找下一个在线画家
// 有界扫描：跳过掉线玩家，游标走完则推进回合再从头找一遍
// 整轮都没有在线玩家时比赛确定性终止，绝不无限循环
func (r *Room) advanceTurnLocked() error {
	if !r.anyActiveInOrderLocked() {
		r.matchEnded = true
		r.playerInTurn = nil
		return apperrors.ErrNoActivePlayers
	}

	for range 2 {
		for r.turnCursor < len(r.turnOrder) {
			name := r.turnOrder[r.turnCursor]
			r.turnCursor++
			if p, ok := r.active[name]; ok {
				return r.beginTurnLocked(p)
			}
		}

		// 游标走完一整轮，推进回合
		r.advanceRoundLocked()
		if r.matchEnded {
			return nil
		}
	}

	// 不可达：上面已确认至少有一名在线玩家
	r.matchEnded = true
	r.playerInTurn = nil
	return apperrors.ErrNoActivePlayers
}

// advanceRoundLocked 回合计数加一并重置游标，回合打满后比赛结束
func (r *Room) advanceRoundLocked() {
	r.currentRound++
	r.turnCursor = 0
	if r.currentRound > r.totalRounds {
		r.matchEnded = true
		r.playerInTurn = nil
	}
}

// beginTurnLocked 开启新回合：取下一个词并重置本回合计分状态
func (r *Room) beginTurnLocked(drawer *Player) error {
	if len(r.wordQueue) == 0 {
		// 中途加入的玩家会让实际回合数超过开赛时的预算
		r.matchEnded = true
		r.playerInTurn = nil
		return apperrors.ErrWordPoolExhausted
	}

	r.secretWord = guess.Normalize(r.wordQueue[0])
	r.wordQueue = r.wordQueue[1:]
	r.playerInTurn = drawer
	r.guessedThisTurn = make(map[string]struct{})
	r.turnStartedAt = time.Now()
	r.touchLocked()
	r.guesserBudget = r.cfg.GuesserBudget
	r.drawerBudget = r.cfg.DrawerBudget
	return nil
}

func (r *Room) anyActiveInOrderLocked() bool {
	for _, name := range r.turnOrder {
		if _, ok := r.active[name]; ok {
			return true
		}
	}
	return false
}

// computeAwardLocked 计算本次猜对的得分
// 分数随耗时递减；画家分还随在线人数摊薄，人越多越奖励抢答
func (r *Room) computeAwardLocked() (guesserPoints, drawerPoints int) {
	elapsed := int(time.Since(r.turnStartedAt) / time.Second)
	if elapsed < 1 {
		elapsed = 1
	}

	players := len(r.active)
	if players < 1 {
		players = 1
	}

	return r.guesserBudget / elapsed, r.drawerBudget / (elapsed * players)
}

// AwardGuess 给猜对的玩家和画家计分
// 同一玩家同一回合最多计分一次，重复调用返回 false 且不改变积分
func (r *Room) AwardGuess(username string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentRound == 0 || r.matchEnded || r.playerInTurn == nil {
		return false
	}
	if username == r.playerInTurn.Username {
		return false
	}

	p, ok := r.active[username]
	if !ok {
		return false
	}
	if _, done := r.guessedThisTurn[username]; done {
		return false
	}

	guesserPoints, drawerPoints := r.computeAwardLocked()
	p.AddPoints(guesserPoints)
	r.playerInTurn.AddPoints(drawerPoints)
	r.guessedThisTurn[username] = struct{}{}
	return true
}

// AllGuessedCorrectly 画家之外的在线玩家是否全部猜对
// 调用方据此决定是否提前结束本回合
func (r *Room) AllGuessedCorrectly() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.playerInTurn == nil {
		return false
	}
	for name := range r.active {
		if name == r.playerInTurn.Username {
			continue
		}
		if _, ok := r.guessedThisTurn[name]; !ok {
			return false
		}
	}
	return true
}

// EvaluateGuess 用当前词语判定一次猜词
func (r *Room) EvaluateGuess(text string) guess.Result {
	r.mu.Lock()
	secret := r.secretWord
	r.mu.Unlock()
	return guess.Evaluate(secret, text)
}

// MatchResults 在线玩家的最终排名：按积分降序，同分按加入顺序，名次从 1 连续编号
func (r *Room) MatchResults() []protocol.MatchResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	results := make([]protocol.MatchResult, 0, len(r.active))
	for _, name := range r.rosterOrder {
		p, ok := r.active[name]
		if !ok {
			continue
		}
		results = append(results, protocol.MatchResult{
			ID:       p.ID,
			Username: p.Username,
			Points:   p.Points(),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Points > results[j].Points
	})
	for i := range results {
		results[i].Placement = i + 1
	}
	return results
}
