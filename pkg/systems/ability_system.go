package systems

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/fruitmerge/pkg/components"
	"github.com/decker502/fruitmerge/pkg/config"
	"github.com/decker502/fruitmerge/pkg/ecs"
	"github.com/decker502/fruitmerge/pkg/entities"
	"github.com/decker502/fruitmerge/pkg/game"
	"github.com/decker502/fruitmerge/pkg/types"
	"github.com/decker502/fruitmerge/pkg/utils"
)

// explodeHighlightTint 爆炸瞄准高亮染色
var explodeHighlightTint = color.RGBA{R: 0xff, G: 0x66, B: 0x66, A: 0xff}

const (
	// IconAlphaAvailable 有剩余次数时的图标不透明度
	IconAlphaAvailable = 1.0
	// IconAlphaDepleted 次数用尽时的图标不透明度
	IconAlphaDepleted = 0.4
	// GlowAlphaActive 当前模式图标的光晕不透明度
	GlowAlphaActive = 0.5
)

// AbilitySystem 技能系统
//
// 此系统负责：
//   - 爆炸：切换瞄准模式，点击移除指针附近的一个水果
//   - 叫奶奶：沿容器宽度依次生成一排樱桃
//   - 瞄准模式下高亮指针附近的水果
//
// 技能状态以单例组件形式挂载在专用实体上
type AbilitySystem struct {
	entityManager *ecs.EntityManager
	session       *game.Session
	spawner       *SpawnSystem
	world         entities.PhysicsWorld
	sounds        SoundPlayer
	cfg           *config.GameConfig

	abilityEntity ecs.EntityID
	width         float64
}

// NewAbilitySystem 创建技能系统，并以初始次数创建技能状态实体
//
// 参数：
//   - em: 实体管理器
//   - session: 当前一局的状态
//   - spawner: 生成系统（叫奶奶使用）
//   - world: 物理世界（爆炸移除水果使用）
//   - sounds: 音效播放，可为 nil
//   - cfg: 玩法参数
func NewAbilitySystem(
	em *ecs.EntityManager,
	session *game.Session,
	spawner *SpawnSystem,
	world entities.PhysicsWorld,
	sounds SoundPlayer,
	cfg *config.GameConfig,
) *AbilitySystem {
	s := &AbilitySystem{
		entityManager: em,
		session:       session,
		spawner:       spawner,
		world:         world,
		sounds:        sounds,
		cfg:           cfg,
		width:         config.GameWindowWidth,
	}
	s.abilityEntity = em.CreateEntity()
	em.AddComponent(s.abilityEntity, &components.AbilityComponent{
		Mode:           components.AbilityModeNone,
		ExplodeCharges: cfg.AbilityCharges,
		GrandmaCharges: cfg.AbilityCharges,
	})
	return s
}

// AbilityEntity 返回技能状态实体ID
func (s *AbilitySystem) AbilityEntity() ecs.EntityID {
	return s.abilityEntity
}

// State 返回技能状态组件
func (s *AbilitySystem) State() *components.AbilityComponent {
	state, ok := ecs.GetComponent[*components.AbilityComponent](s.entityManager, s.abilityEntity)
	if !ok {
		// 状态实体被意外删除时重建
		state = &components.AbilityComponent{}
		s.abilityEntity = s.entityManager.CreateEntity()
		s.entityManager.AddComponent(s.abilityEntity, state)
	}
	return state
}

// Mode 返回当前模式
func (s *AbilitySystem) Mode() components.AbilityMode {
	return s.State().Mode
}

// SetPlayfieldWidth 设置容器宽度（叫奶奶的生成范围）
func (s *AbilitySystem) SetPlayfieldWidth(width float64) {
	if width > 0 {
		s.width = width
	}
}

// ToggleExplode 切换爆炸瞄准模式
// 次数为 0 或游戏已结束时忽略，返回是否切换
func (s *AbilitySystem) ToggleExplode() bool {
	state := s.State()
	if state.ExplodeCharges <= 0 || s.session.IsGameOver {
		return false
	}
	if state.Mode == components.AbilityModeExplode {
		state.Mode = components.AbilityModeNone
		s.ClearHighlight()
	} else {
		state.Mode = components.AbilityModeExplode
	}
	log.Printf("[AbilitySystem] 爆炸模式: %v", state.Mode)
	return true
}

// UseGrandma 激活叫奶奶
// 立即扣除一次次数，按固定间隔依次生成樱桃，然后回到普通模式。
// 次数为 0 或游戏已结束时忽略
func (s *AbilitySystem) UseGrandma() bool {
	state := s.State()
	if state.GrandmaCharges <= 0 || s.session.IsGameOver {
		return false
	}
	state.Mode = components.AbilityModeGrandma
	s.ClearHighlight()

	g := s.cfg.Grandma
	xs := utils.EvenlySpaced(g.Margin, s.width-g.Margin, g.Count)
	for i, x := range xs {
		entities.NewDelayedCall(s.entityManager, fmt.Sprintf("grandma_spawn_%d", i), g.Delay*float64(i), func() {
			if s.session.IsGameOver {
				return
			}
			if _, err := s.spawner.SpawnTier(x, g.SpawnY, types.TierCherry); err != nil {
				log.Printf("[AbilitySystem] 叫奶奶生成失败: %v", err)
			}
		})
	}

	state.GrandmaCharges--
	state.Mode = components.AbilityModeNone
	log.Printf("[AbilitySystem] 叫奶奶: 生成 %d 个樱桃，剩余 %d 次", len(xs), state.GrandmaCharges)
	return true
}

// HandlePointerDown 处理指针按下
// 按在任一技能图标上时作为 UI 操作处理；爆炸模式下尝试移除目标水果。
// 返回 true 表示事件已被消费，调用方不应再生成水果
func (s *AbilitySystem) HandlePointerDown(x, y float64) bool {
	if utils.PointInRect(x, y, config.ExplodeIconBounds()) {
		s.ToggleExplode()
		return true
	}
	if utils.PointInRect(x, y, config.GrandmaIconBounds()) {
		s.UseGrandma()
		return true
	}

	state := s.State()
	switch state.Mode {
	case components.AbilityModeExplode:
		s.explodeAt(x, y)
		return true
	case components.AbilityModeGrandma:
		return true
	case components.AbilityModeNone:
		return false
	}
	return false
}

// explodeAt 移除指针附近的第一个水果，模式总是回到普通
// 没有命中时不消耗次数
func (s *AbilitySystem) explodeAt(x, y float64) {
	state := s.State()
	defer func() {
		state.Mode = components.AbilityModeNone
		s.ClearHighlight()
	}()

	if state.ExplodeCharges <= 0 {
		return
	}
	target, ok := s.FindTarget(x, y)
	if !ok {
		log.Printf("[AbilitySystem] 爆炸未命中 (%.0f, %.0f)", x, y)
		return
	}

	s.explode(target)
	state.ExplodeCharges--
	log.Printf("[AbilitySystem] 爆炸水果 id=%d，剩余 %d 次", target, state.ExplodeCharges)
}

func (s *AbilitySystem) explode(id ecs.EntityID) {
	if fruit, ok := ecs.GetComponent[*components.FruitComponent](s.entityManager, id); ok {
		fruit.IsExploding = true
	}
	entities.NewTween(s.entityManager, components.TweenComponent{
		Targets:  []ecs.EntityID{id},
		Duration: s.cfg.Animation.ExplodeDuration,
		Easing:   utils.EaseInBack,
		Tracks: []components.TweenTrack{
			{Property: components.TweenScale, From: 1, To: 0},
			{Property: components.TweenAlpha, From: 1, To: 0},
		},
		OnComplete: func() {
			entities.DestroyFruit(s.entityManager, s.world, id)
		},
	})
	if s.sounds != nil {
		s.sounds.PlaySound(game.SoundExplode)
	}
}

// FindTarget 查找距指针小于 半径 + 容差 的第一个水果（按创建顺序）
// 正在爆炸的水果被跳过
func (s *AbilitySystem) FindTarget(x, y float64) (ecs.EntityID, bool) {
	inReach := s.fruitsInReach(x, y)
	if len(inReach) == 0 {
		return 0, false
	}
	return inReach[0], true
}

func (s *AbilitySystem) fruitsInReach(x, y float64) []ecs.EntityID {
	var result []ecs.EntityID
	fruits := ecs.SortEntities(ecs.GetEntitiesWith3[
		*components.FruitComponent,
		*components.PositionComponent,
		*components.PhysicsBodyComponent,
	](s.entityManager))

	for _, id := range fruits {
		fruit, _ := ecs.GetComponent[*components.FruitComponent](s.entityManager, id)
		if fruit.IsExploding {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		phys, _ := ecs.GetComponent[*components.PhysicsBodyComponent](s.entityManager, id)
		if utils.Distance(x, y, pos.X, pos.Y) < phys.Radius+s.cfg.ExplodeTolerance {
			result = append(result, id)
		}
	}
	return result
}

// UpdateHighlight 爆炸模式下高亮指针附近的所有水果，其余恢复原样
// 其他模式下清除全部高亮
func (s *AbilitySystem) UpdateHighlight(x, y float64) {
	state := s.State()
	if state.Mode != components.AbilityModeExplode {
		s.ClearHighlight()
		return
	}

	inReach := make(map[ecs.EntityID]bool)
	for _, id := range s.fruitsInReach(x, y) {
		inReach[id] = true
	}

	state.HighlightedFruit = 0
	for _, id := range ecs.SortEntities(ecs.GetEntitiesWith1[*components.FruitComponent](s.entityManager)) {
		if inReach[id] {
			s.entityManager.AddComponent(id, &components.HoverHighlightComponent{
				Scale:    s.cfg.Animation.HighlightScale,
				Tint:     explodeHighlightTint,
				IsActive: true,
			})
			if state.HighlightedFruit == 0 {
				state.HighlightedFruit = id
			}
			continue
		}
		ecs.RemoveComponent[*components.HoverHighlightComponent](s.entityManager, id)
	}
}

// ClearHighlight 清除所有水果的高亮
func (s *AbilitySystem) ClearHighlight() {
	for _, id := range ecs.GetEntitiesWith1[*components.HoverHighlightComponent](s.entityManager) {
		ecs.RemoveComponent[*components.HoverHighlightComponent](s.entityManager, id)
	}
	if state, ok := ecs.GetComponent[*components.AbilityComponent](s.entityManager, s.abilityEntity); ok {
		state.HighlightedFruit = 0
	}
}

// Reset 恢复初始次数并回到普通模式
func (s *AbilitySystem) Reset() {
	state := s.State()
	state.Mode = components.AbilityModeNone
	state.ExplodeCharges = s.cfg.AbilityCharges
	state.GrandmaCharges = s.cfg.AbilityCharges
	s.ClearHighlight()
}

// IconAlpha 图标不透明度：次数用尽时变暗
func IconAlpha(charges int) float64 {
	if charges > 0 {
		return IconAlphaAvailable
	}
	return IconAlphaDepleted
}

// GlowAlpha 图标光晕不透明度：只有当前模式的图标发光
func GlowAlpha(current, own components.AbilityMode) float64 {
	if current == own && current != components.AbilityModeNone {
		return GlowAlphaActive
	}
	return 0
}
