package systems

import (
	"log"

	"github.com/decker502/fruitmerge/pkg/components"
	"github.com/decker502/fruitmerge/pkg/ecs"
	"github.com/decker502/fruitmerge/pkg/game"
)

// GameOverSystem 检测水果是否越过顶部边界
// 任意水果中心 Y 小于边界即结束游戏（单向，直到重新开始）
type GameOverSystem struct {
	entityManager *ecs.EntityManager
	session       *game.Session
	sounds        SoundPlayer
	topY          float64
}

// NewGameOverSystem 创建游戏结束检测系统
func NewGameOverSystem(em *ecs.EntityManager, session *game.Session, sounds SoundPlayer, topY float64) *GameOverSystem {
	return &GameOverSystem{
		entityManager: em,
		session:       session,
		sounds:        sounds,
		topY:          topY,
	}
}

// Update 扫描所有水果，本帧触发结束时返回 true
func (s *GameOverSystem) Update() bool {
	if s.session.IsGameOver {
		return false
	}

	for _, id := range ecs.GetEntitiesWith2[*components.FruitComponent, *components.PositionComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if pos.Y >= s.topY {
			continue
		}

		if !s.session.EndGame() {
			return false
		}
		log.Printf("[GameOverSystem] 水果越过顶部边界 (id=%d, y=%.1f)，最终分数 %d", id, pos.Y, s.session.Score)
		if s.sounds != nil {
			s.sounds.PlaySound(game.SoundGameOver)
		}
		return true
	}
	return false
}
