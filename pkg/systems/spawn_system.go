package systems

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/fruitmerge/pkg/components"
	"github.com/decker502/fruitmerge/pkg/config"
	"github.com/decker502/fruitmerge/pkg/ecs"
	"github.com/decker502/fruitmerge/pkg/entities"
	"github.com/decker502/fruitmerge/pkg/game"
	"github.com/decker502/fruitmerge/pkg/types"
	"github.com/decker502/fruitmerge/pkg/utils"
)

// SoundPlayer 播放音效
// 由 game.AudioManager 实现，可为 nil
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// SpawnSystem 管理水果生成
// 维护"下一个水果"预览，玩家点击时在指针 X 处生成预览水果并随机选出新的预览
type SpawnSystem struct {
	em      *ecs.EntityManager
	session *game.Session
	world   entities.PhysicsWorld
	images  entities.FruitImageSource
	sounds  SoundPlayer
	cfg     *config.GameConfig
	rng     *rand.Rand

	// fruitScale 水果尺寸缩放（移动端 < 1）
	fruitScale float64
}

// NewSpawnSystem 创建生成系统
//
// 参数:
//   - em: 实体管理器
//   - session: 当前一局的状态（持有预览阶级）
//   - world: 物理世界
//   - images: 水果图片来源，可为 nil
//   - sounds: 音效播放，可为 nil
//   - cfg: 玩法参数
//   - rng: 随机源，为 nil 时使用随机种子
func NewSpawnSystem(
	em *ecs.EntityManager,
	session *game.Session,
	world entities.PhysicsWorld,
	images entities.FruitImageSource,
	sounds SoundPlayer,
	cfg *config.GameConfig,
	rng *rand.Rand,
) *SpawnSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &SpawnSystem{
		em:         em,
		session:    session,
		world:      world,
		images:     images,
		sounds:     sounds,
		cfg:        cfg,
		rng:        rng,
		fruitScale: 1,
	}
}

// SetFruitScale 设置水果尺寸缩放
func (s *SpawnSystem) SetFruitScale(scale float64) {
	if scale <= 0 {
		scale = 1
	}
	s.fruitScale = scale
}

// FruitScale 返回水果尺寸缩放
func (s *SpawnSystem) FruitScale() float64 {
	return s.fruitScale
}

// PreviewTier 返回下一个将要生成的水果阶级
func (s *SpawnSystem) PreviewTier() types.FruitTier {
	return s.session.PreviewTier
}

// SpawnAt 在 (x, y) 生成预览中的水果，然后随机选出新的预览
// 预览阶级不在可生成范围内时退回樱桃
func (s *SpawnSystem) SpawnAt(x, y float64) (ecs.EntityID, error) {
	tier := s.session.PreviewTier
	if !tier.IsSpawnable() {
		tier = types.TierCherry
	}

	id, err := s.SpawnTier(x, y, tier)
	if err != nil {
		return 0, err
	}

	s.session.PreviewTier = s.pickPreview()
	if s.sounds != nil {
		s.sounds.PlaySound(game.SoundSpawn)
	}
	return id, nil
}

// SpawnTier 在 (x, y) 生成指定阶级的水果，并播放缩放出现动画（0 → 1）
// 不改变预览
func (s *SpawnSystem) SpawnTier(x, y float64, tier types.FruitTier) (ecs.EntityID, error) {
	id, err := entities.NewFruitEntity(s.em, s.world, s.images, entities.FruitParams{
		X:        x,
		Y:        y,
		Tier:     tier,
		BornTick: s.session.Tick,
		Scale:    s.fruitScale,
	})
	if err != nil {
		return 0, fmt.Errorf("spawn %v at (%.0f, %.0f): %w", tier, x, y, err)
	}

	if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.em, id); ok {
		scale.ScaleX, scale.ScaleY = 0, 0
	}
	entities.NewTween(s.em, components.TweenComponent{
		Targets:  []ecs.EntityID{id},
		Duration: s.cfg.Animation.SpawnDuration,
		Easing:   utils.EaseOutBack,
		Tracks:   []components.TweenTrack{{Property: components.TweenScale, From: 0, To: 1}},
	})

	log.Printf("[SpawnSystem] 生成 %v (id=%d) at (%.0f, %.0f)", tier, id, x, y)
	return id, nil
}

// pickPreview 从可生成的阶级中等概率随机选取
func (s *SpawnSystem) pickPreview() types.FruitTier {
	tiers := types.SpawnableTiers()
	return tiers[s.rng.Intn(len(tiers))]
}

// Reset 预览重置为樱桃
func (s *SpawnSystem) Reset() {
	s.session.PreviewTier = types.TierCherry
}
