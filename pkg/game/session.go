package game

import "github.com/decker502/fruitmerge/pkg/types"

// Session 存储一局游戏的状态
// 由场景持有并注入到各系统中，重新开始时调用 Reset
type Session struct {
	Score       int             // 当前分数（非负，只在合成时增加）
	IsGameOver  bool            // 是否已结束（单向，直到重新开始）
	PreviewTier types.FruitTier // 下一个将要生成的水果阶级

	// Tick 逻辑帧序号，每次场景 Update 开始时递增
	// 用于判断水果是否在当前帧内生成
	Tick uint64
}

// NewSession 创建新的一局
func NewSession() *Session {
	return &Session{PreviewTier: types.TierCherry}
}

// AddScore 增加分数，非正数被忽略
func (s *Session) AddScore(amount int) {
	if amount <= 0 {
		return
	}
	s.Score += amount
}

// EndGame 标记游戏结束
// 只有从进行中进入结束状态时返回 true，重复调用返回 false
func (s *Session) EndGame() bool {
	if s.IsGameOver {
		return false
	}
	s.IsGameOver = true
	return true
}

// AdvanceTick 推进逻辑帧并返回新的帧序号
func (s *Session) AdvanceTick() uint64 {
	s.Tick++
	return s.Tick
}

// Reset 重置为新一局的初始状态
// Tick 保持单调递增，不随重置归零
func (s *Session) Reset() {
	s.Score = 0
	s.IsGameOver = false
	s.PreviewTier = types.TierCherry
}
