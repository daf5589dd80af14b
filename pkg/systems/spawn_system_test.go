package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/fruitmerge/pkg/components"
	"github.com/decker502/fruitmerge/pkg/ecs"
	"github.com/decker502/fruitmerge/pkg/game"
	"github.com/decker502/fruitmerge/pkg/types"
)

func newTestSpawnSystem(w *testWorld, seed int64) *SpawnSystem {
	return NewSpawnSystem(w.em, w.session, w.physics, nil, w.sounds, w.cfg, rand.New(rand.NewSource(seed)))
}

func TestSpawnAtUsesPreview(t *testing.T) {
	w := newTestWorld(t)
	w.session.Tick = 3
	ss := newTestSpawnSystem(w, 1)

	if ss.PreviewTier() != types.TierCherry {
		t.Fatalf("初始预览应为樱桃, got %v", ss.PreviewTier())
	}

	id, err := ss.SpawnAt(120, w.cfg.SpawnY)
	if err != nil {
		t.Fatalf("SpawnAt failed: %v", err)
	}

	fruit := w.fruit(t, id)
	if fruit.Tier != types.TierCherry {
		t.Errorf("生成阶级 = %v, want cherry", fruit.Tier)
	}
	if fruit.BornTick != 3 {
		t.Errorf("BornTick = %d, want 3", fruit.BornTick)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	if pos.X != 120 || pos.Y != w.cfg.SpawnY {
		t.Errorf("生成位置 = (%v, %v)", pos.X, pos.Y)
	}
	if !ss.PreviewTier().IsSpawnable() {
		t.Errorf("新预览 %v 应在可生成范围内", ss.PreviewTier())
	}
	if w.sounds.count(game.SoundSpawn) != 1 {
		t.Error("应播放生成音效")
	}
}

func TestSpawnAppearAnimation(t *testing.T) {
	w := newTestWorld(t)
	ss := newTestSpawnSystem(w, 1)
	tweens := NewTweenSystem(w.em)

	id, err := ss.SpawnTier(100, 100, types.TierOrange)
	if err != nil {
		t.Fatalf("SpawnTier failed: %v", err)
	}
	scale, _ := ecs.GetComponent[*components.ScaleComponent](w.em, id)
	if scale.ScaleX != 0 {
		t.Errorf("出现动画应从 0 开始, got %v", scale.ScaleX)
	}

	tweens.Update(w.cfg.Animation.SpawnDuration + 0.01)
	if scale.ScaleX != 1 || scale.ScaleY != 1 {
		t.Errorf("出现动画结束后缩放应为 1, got %v", scale.ScaleX)
	}
	if ss.PreviewTier() != types.TierCherry {
		t.Error("SpawnTier 不应改变预览")
	}
}

func TestSpawnPreviewDistribution(t *testing.T) {
	w := newTestWorld(t)
	ss := newTestSpawnSystem(w, 42)

	seen := make(map[types.FruitTier]int)
	for i := 0; i < 200; i++ {
		if _, err := ss.SpawnAt(240, w.cfg.SpawnY); err != nil {
			t.Fatalf("SpawnAt failed: %v", err)
		}
		tier := ss.PreviewTier()
		if !tier.IsSpawnable() {
			t.Fatalf("预览 %v 超出可生成范围", tier)
		}
		seen[tier]++
	}
	if len(seen) != types.SpawnableTierCount {
		t.Errorf("200 次随机应覆盖全部 %d 个可生成阶级, got %v", types.SpawnableTierCount, seen)
	}
}

func TestSpawnDeterministicWithSeed(t *testing.T) {
	sequence := func() []types.FruitTier {
		w := newTestWorld(t)
		ss := newTestSpawnSystem(w, 7)
		var tiers []types.FruitTier
		for i := 0; i < 10; i++ {
			if _, err := ss.SpawnAt(240, 50); err != nil {
				t.Fatalf("SpawnAt failed: %v", err)
			}
			tiers = append(tiers, ss.PreviewTier())
		}
		return tiers
	}

	first, second := sequence(), sequence()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("相同种子的预览序列应一致: %v vs %v", first, second)
		}
	}
}

func TestSpawnNonSpawnablePreview(t *testing.T) {
	w := newTestWorld(t)
	ss := newTestSpawnSystem(w, 1)
	w.session.PreviewTier = types.TierApple

	id, err := ss.SpawnAt(100, 50)
	if err != nil {
		t.Fatalf("SpawnAt failed: %v", err)
	}
	if tier := w.fruit(t, id).Tier; tier != types.TierCherry {
		t.Errorf("不可生成的预览应退回樱桃, got %v", tier)
	}
}

func TestSpawnInvalidTier(t *testing.T) {
	w := newTestWorld(t)
	ss := newTestSpawnSystem(w, 1)

	if _, err := ss.SpawnTier(100, 50, types.FruitTier(42)); err == nil {
		t.Error("非法阶级应返回错误")
	}
	if w.physics.BodyCount() != 0 {
		t.Error("失败时不应注册刚体")
	}
}

func TestSpawnFruitScale(t *testing.T) {
	w := newTestWorld(t)
	ss := newTestSpawnSystem(w, 1)
	ss.SetFruitScale(0.7)

	id, err := ss.SpawnTier(100, 50, types.TierCherry)
	if err != nil {
		t.Fatalf("SpawnTier failed: %v", err)
	}
	phys, _ := ecs.GetComponent[*components.PhysicsBodyComponent](w.em, id)
	if !almostEqual(phys.Radius, types.TierCherry.Radius()*0.7, 1e-9) {
		t.Errorf("Radius = %v, want %v", phys.Radius, types.TierCherry.Radius()*0.7)
	}

	ss.SetFruitScale(0)
	if ss.FruitScale() != 1 {
		t.Errorf("非正缩放应视为 1, got %v", ss.FruitScale())
	}
}

func TestSpawnReset(t *testing.T) {
	w := newTestWorld(t)
	ss := newTestSpawnSystem(w, 1)
	w.session.PreviewTier = types.TierKiwi

	ss.Reset()
	if ss.PreviewTier() != types.TierCherry {
		t.Errorf("Reset 后预览 = %v, want cherry", ss.PreviewTier())
	}
}
