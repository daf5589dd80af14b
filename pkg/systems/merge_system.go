package systems

import (
	"fmt"
	"log"

	"github.com/decker502/fruitmerge/pkg/components"
	"github.com/decker502/fruitmerge/pkg/config"
	"github.com/decker502/fruitmerge/pkg/ecs"
	"github.com/decker502/fruitmerge/pkg/entities"
	"github.com/decker502/fruitmerge/pkg/game"
	"github.com/decker502/fruitmerge/pkg/types"
	"github.com/decker502/fruitmerge/pkg/utils"
	"github.com/jakecoffman/cp"
)

// BodyResolver 根据刚体查找所属实体
type BodyResolver interface {
	EntityForBody(body *cp.Body) (ecs.EntityID, bool)
}

// MergeSystem 合成判定
// 消费物理步进产生的碰撞批次：两个同阶、空闲的水果相撞时锁定双方，
// 播放挤压动画，动画结束后在中点生成下一阶水果并计分
type MergeSystem struct {
	em         *ecs.EntityManager
	session    *game.Session
	bodies     BodyResolver
	world      entities.PhysicsWorld
	images     entities.FruitImageSource
	sounds     SoundPlayer
	cfg        *config.GameConfig
	fruitScale float64
}

// NewMergeSystem 创建合成系统
func NewMergeSystem(
	em *ecs.EntityManager,
	session *game.Session,
	physics *PhysicsSystem,
	images entities.FruitImageSource,
	sounds SoundPlayer,
	cfg *config.GameConfig,
) *MergeSystem {
	return &MergeSystem{
		em:         em,
		session:    session,
		bodies:     physics,
		world:      physics,
		images:     images,
		sounds:     sounds,
		cfg:        cfg,
		fruitScale: 1,
	}
}

// SetFruitScale 设置合成产物的尺寸缩放
func (s *MergeSystem) SetFruitScale(scale float64) {
	if scale <= 0 {
		scale = 1
	}
	s.fruitScale = scale
}

// HandleCollisions 处理一批碰撞事件，返回本批次开始的合成数量
// 共享同一水果的多个配对中只有第一个生效，其余直接丢弃
func (s *MergeSystem) HandleCollisions(batch []CollisionPair) int {
	if s.session.IsGameOver {
		return 0
	}
	started := 0
	for _, pair := range batch {
		a, okA := s.bodies.EntityForBody(pair.A)
		b, okB := s.bodies.EntityForBody(pair.B)
		if !okA || !okB || a == b {
			continue
		}
		if s.TryMerge(a, b) {
			started++
		}
	}
	return started
}

// TryMerge 尝试合成两个水果
// 满足条件时同步设置双方的 IsMerging 并启动挤压动画，返回 true
func (s *MergeSystem) TryMerge(a, b ecs.EntityID) bool {
	fruitA, okA := ecs.GetComponent[*components.FruitComponent](s.em, a)
	fruitB, okB := ecs.GetComponent[*components.FruitComponent](s.em, b)
	if !okA || !okB {
		return false
	}
	if fruitA.IsMerging || fruitB.IsMerging || fruitA.IsExploding || fruitB.IsExploding {
		return false
	}
	if fruitA.Tier != fruitB.Tier {
		return false
	}
	next, ok := fruitA.Tier.Next()
	if !ok {
		return false
	}
	// 当前帧生成的水果不参与合成
	if fruitA.BornTick == s.session.Tick || fruitB.BornTick == s.session.Tick {
		return false
	}

	fruitA.IsMerging = true
	fruitB.IsMerging = true

	anim := s.cfg.Animation
	entities.NewTween(s.em, components.TweenComponent{
		Targets:  []ecs.EntityID{a, b},
		Duration: anim.SquashDuration,
		Yoyo:     true,
		Tracks:   []components.TweenTrack{{Property: components.TweenScale, From: 1, To: anim.SquashScale}},
		OnComplete: func() {
			if err := s.completeMerge(a, b, next); err != nil {
				log.Printf("[MergeSystem] 合成失败: %v", err)
			}
		},
	})

	log.Printf("[MergeSystem] 开始合成: %v + %v -> %v (id=%d, id=%d)", fruitA.Tier, fruitB.Tier, next, a, b)
	return true
}

// completeMerge 挤压动画结束后执行替换
// 任一来源已被移除或正在爆炸时放弃合成，并恢复幸存者的状态。
// 游戏结束后进行中的合成同样放弃：结算面板上的分数即最终分数
func (s *MergeSystem) completeMerge(a, b ecs.EntityID, next types.FruitTier) error {
	if s.session.IsGameOver {
		s.releaseSurvivor(a)
		s.releaseSurvivor(b)
		log.Printf("[MergeSystem] 游戏已结束，放弃合成 (id=%d, id=%d)", a, b)
		return nil
	}
	posA, okA := s.livingFruitPosition(a)
	posB, okB := s.livingFruitPosition(b)
	if !okA || !okB {
		s.releaseSurvivor(a)
		s.releaseSurvivor(b)
		return fmt.Errorf("source fruit removed before merge completion (id=%d, id=%d)", a, b)
	}

	x, y := utils.Midpoint(posA.X, posA.Y, posB.X, posB.Y)

	merged, err := entities.NewFruitEntity(s.em, s.world, s.images, entities.FruitParams{
		X:        x,
		Y:        y,
		Tier:     next,
		BornTick: s.session.Tick,
		Scale:    s.fruitScale,
	})
	if err != nil {
		s.releaseSurvivor(a)
		s.releaseSurvivor(b)
		return err
	}

	entities.DestroyFruit(s.em, s.world, a)
	entities.DestroyFruit(s.em, s.world, b)
	s.session.AddScore(s.cfg.MergeReward)

	anim := s.cfg.Animation
	entities.NewMergeFlash(s.em, x, y, anim)
	entities.NewScorePopup(s.em, x, y+config.PopupOffsetY, fmt.Sprintf("+%d", s.cfg.MergeReward), anim)
	if s.sounds != nil {
		s.sounds.PlaySound(game.SoundMerge)
	}

	log.Printf("[MergeSystem] 合成完成: %v (id=%d) 分数=%d", next, merged, s.session.Score)
	return nil
}

func (s *MergeSystem) livingFruitPosition(id ecs.EntityID) (*components.PositionComponent, bool) {
	fruit, ok := ecs.GetComponent[*components.FruitComponent](s.em, id)
	if !ok || fruit.IsExploding {
		return nil, false
	}
	return ecs.GetComponent[*components.PositionComponent](s.em, id)
}

// releaseSurvivor 解除合成锁定并恢复缩放
func (s *MergeSystem) releaseSurvivor(id ecs.EntityID) {
	fruit, ok := ecs.GetComponent[*components.FruitComponent](s.em, id)
	if !ok {
		return
	}
	fruit.IsMerging = false
	if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.em, id); ok {
		scale.ScaleX, scale.ScaleY = 1, 1
	}
}
